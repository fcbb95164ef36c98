package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chefincasa/backend/internal/apperrors"
	"github.com/chefincasa/backend/internal/models"
	"github.com/chefincasa/backend/internal/testhelpers"
	"github.com/chefincasa/backend/internal/types"
)

// makeFileHeader builds a multipart.FileHeader the way gin would hand it to
// the service.
func makeFileHeader(t *testing.T, contentType string, payload []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="file"; filename="photo.bin"`}
	header["Content-Type"] = []string{contentType}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	files := req.MultipartForm.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func newPhotoFixture(t *testing.T) (*PhotoService, *models.Chef, string) {
	db := testhelpers.SetupTestDB(t)
	chef := testhelpers.CreateTestChef(t, db, "chef@example.com")
	dir := t.TempDir()
	svc := NewPhotoService(db, dir, "http://localhost:8080", zap.NewNop())
	return svc, chef, dir
}

func countFiles(t *testing.T, root string) int {
	t.Helper()
	n := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			n++
		}
		return nil
	})
	require.NoError(t, err)
	return n
}

func TestUploadProfilePhotoReplacesOldFile(t *testing.T) {
	svc, chef, dir := newPhotoFixture(t)
	ctx := context.Background()

	profile, err := svc.UploadProfilePhoto(ctx, chef.ID, makeFileHeader(t, "image/jpeg", []byte("first")))
	require.NoError(t, err)
	assert.Contains(t, profile.ProfileImageURL, "/static/profiles/"+chef.ID.String()+"/")
	assert.Equal(t, "image/jpeg", profile.ProfileImageMime)
	assert.Equal(t, 1, countFiles(t, dir))

	firstPath := profile.ProfileImagePath

	profile, err = svc.UploadProfilePhoto(ctx, chef.ID, makeFileHeader(t, "image/png", []byte("second")))
	require.NoError(t, err)
	assert.NotEqual(t, firstPath, profile.ProfileImagePath)
	assert.Equal(t, 1, countFiles(t, dir), "the previous file is gone")

	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(profile.ProfileImagePath)))
	assert.NoError(t, err)
}

func TestUploadRejectsBadMimeAndSize(t *testing.T) {
	svc, chef, dir := newPhotoFixture(t)
	ctx := context.Background()

	_, err := svc.UploadProfilePhoto(ctx, chef.ID, makeFileHeader(t, "application/pdf", []byte("nope")))
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.StatusOf(err))

	big := make([]byte, maxUploadBytes+1)
	_, err = svc.UploadDishPhoto(ctx, chef.ID, makeFileHeader(t, "image/jpeg", big), nil)
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.StatusOf(err))

	assert.Zero(t, countFiles(t, dir), "rejected uploads leave nothing on disk")
}

func TestUploadDishPhotoAndDelete(t *testing.T) {
	svc, chef, dir := newPhotoFixture(t)
	ctx := context.Background()

	desc := "Il piatto del giorno"
	photo, err := svc.UploadDishPhoto(ctx, chef.ID, makeFileHeader(t, "image/webp", []byte("img")), &desc)
	require.NoError(t, err)
	assert.Contains(t, photo.ImageURL, "/static/dishes/")
	require.NotNil(t, photo.Description)
	assert.Equal(t, 1, countFiles(t, dir))

	require.NoError(t, svc.DeleteDishPhoto(ctx, chef.ID, photo.ID))
	assert.Zero(t, countFiles(t, dir), "file removed with the row")

	var count int64
	require.NoError(t, svc.db.Model(&models.ChefDishPhoto{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteDishPhotoFallsBackToURLPath(t *testing.T) {
	svc, chef, dir := newPhotoFixture(t)
	ctx := context.Background()

	// Simulate a legacy row tracking only the public URL
	rel := "dishes/legacy.jpg"
	full := filepath.Join(dir, "dishes", "legacy.jpg")
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte("img"), 0o644))

	photo := models.ChefDishPhoto{
		ChefID:   chef.ID,
		ImageURL: "http://localhost:8080/static/" + rel,
	}
	require.NoError(t, svc.db.Create(&photo).Error)

	require.NoError(t, svc.DeleteDishPhoto(ctx, chef.ID, photo.ID))
	_, err := os.Stat(full)
	assert.True(t, os.IsNotExist(err))
}

func TestCreateDishPhotoFromURL(t *testing.T) {
	svc, chef, dir := newPhotoFixture(t)
	ctx := context.Background()

	w, h := 800, 600
	photo, err := svc.CreateDishPhoto(ctx, chef.ID, &types.CreateDishPhotoRequest{
		ImageURL:    "https://cdn.example.com/dish.jpg",
		Description: strptr("Dalla cucina"),
		ImageWidth:  &w,
		ImageHeight: &h,
	})
	require.NoError(t, err)
	assert.Empty(t, photo.ImagePath)
	assert.Zero(t, countFiles(t, dir), "pre-hosted photos never touch the disk")

	// Deleting it only removes the row
	require.NoError(t, svc.DeleteDishPhoto(ctx, chef.ID, photo.ID))
}

func TestDishPhotoOwnership(t *testing.T) {
	svc, chef, _ := newPhotoFixture(t)
	intruder := testhelpers.CreateTestChef(t, svc.db, "intruder@example.com")
	ctx := context.Background()

	photo, err := svc.CreateDishPhoto(ctx, chef.ID, &types.CreateDishPhotoRequest{
		ImageURL: "https://cdn.example.com/dish.jpg",
	})
	require.NoError(t, err)

	err = svc.DeleteDishPhoto(ctx, intruder.ID, photo.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.StatusOf(err))

	photos, err := svc.ListDishPhotos(ctx, chef.ID)
	require.NoError(t, err)
	assert.Len(t, photos, 1)
}
