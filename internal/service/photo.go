package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chefincasa/backend/internal/apperrors"
	"github.com/chefincasa/backend/internal/models"
	"github.com/chefincasa/backend/internal/types"
)

const maxUploadBytes = 5 << 20 // 5MB

// allowedImageMimes maps accepted content types to the extension the stored
// file gets.
var allowedImageMimes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// PhotoService stores uploaded images on local disk under the uploads root
// and tracks them in the database. The DB row is the source of truth: disk
// cleanup is always best-effort and never fails the primary operation.
type PhotoService struct {
	db            *gorm.DB
	uploadsDir    string
	publicBaseURL string
	logger        *zap.Logger
}

func NewPhotoService(db *gorm.DB, uploadsDir, publicBaseURL string, logger *zap.Logger) *PhotoService {
	return &PhotoService{
		db:            db,
		uploadsDir:    uploadsDir,
		publicBaseURL: publicBaseURL,
		logger:        logger,
	}
}

// UploadProfilePhoto stores the file under the chef's profile directory,
// upserts the profile row, then deletes the previous file. The old file is
// only removed after the DB write succeeds, and only when the path actually
// changed.
func (s *PhotoService) UploadProfilePhoto(ctx context.Context, chefID uuid.UUID, file *multipart.FileHeader) (*models.ChefProfile, error) {
	mime, ext, err := validateUpload(file)
	if err != nil {
		return nil, err
	}

	relPath := filepath.ToSlash(filepath.Join("profiles", chefID.String(), fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)))
	if err := s.saveFile(file, relPath); err != nil {
		return nil, err
	}

	var profile models.ChefProfile
	oldPath := ""
	err = s.db.WithContext(ctx).Where("chef_id = ?", chefID).First(&profile).Error
	switch {
	case err == nil:
		oldPath = profile.ProfileImagePath
		profile.ProfileImageURL = s.publicURL(relPath)
		profile.ProfileImagePath = relPath
		profile.ProfileImageMime = mime
		err = s.db.WithContext(ctx).Save(&profile).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile = models.ChefProfile{
			ChefID:           chefID,
			ProfileImageURL:  s.publicURL(relPath),
			ProfileImagePath: relPath,
			ProfileImageMime: mime,
			Languages:        models.JSONBStringArray{},
			Skills:           models.JSONBStringArray{},
		}
		err = s.db.WithContext(ctx).Create(&profile).Error
	}
	if err != nil {
		// The row never made it: clean up the file we just wrote
		s.removeFile(relPath)
		return nil, err
	}

	if oldPath != "" && oldPath != relPath {
		s.removeFile(oldPath)
	}
	return &profile, nil
}

// UploadDishPhoto stores the file under the shared dishes directory with a
// randomized name so concurrent uploads across chefs never collide.
func (s *PhotoService) UploadDishPhoto(ctx context.Context, chefID uuid.UUID, file *multipart.FileHeader, description *string) (*models.ChefDishPhoto, error) {
	mime, ext, err := validateUpload(file)
	if err != nil {
		return nil, err
	}
	if description != nil && len(*description) > 240 {
		return nil, apperrors.BadRequest("descrizione troppo lunga (max 240 caratteri)")
	}

	relPath := filepath.ToSlash(filepath.Join("dishes", fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), randomSuffix(), ext)))
	if err := s.saveFile(file, relPath); err != nil {
		return nil, err
	}

	photo := models.ChefDishPhoto{
		ChefID:      chefID,
		ImageURL:    s.publicURL(relPath),
		ImagePath:   relPath,
		ImageMime:   mime,
		Description: normalizeDescription(description),
	}

	if err := s.db.WithContext(ctx).Create(&photo).Error; err != nil {
		s.removeFile(relPath)
		return nil, err
	}
	return &photo, nil
}

// CreateDishPhoto records a photo already hosted elsewhere; nothing touches
// the local disk.
func (s *PhotoService) CreateDishPhoto(ctx context.Context, chefID uuid.UUID, req *types.CreateDishPhotoRequest) (*models.ChefDishPhoto, error) {
	if !isHTTPURL(req.ImageURL) {
		return nil, apperrors.BadRequest("imageUrl deve essere un URL http o https")
	}

	photo := models.ChefDishPhoto{
		ChefID:      chefID,
		ImageURL:    req.ImageURL,
		Description: normalizeDescription(req.Description),
		ImageWidth:  req.ImageWidth,
		ImageHeight: req.ImageHeight,
	}

	if err := s.db.WithContext(ctx).Create(&photo).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

// ListDishPhotos is the public gallery listing, newest first.
func (s *PhotoService) ListDishPhotos(ctx context.Context, chefID uuid.UUID) ([]models.ChefDishPhoto, error) {
	var photos []models.ChefDishPhoto
	err := s.db.WithContext(ctx).
		Where("chef_id = ?", chefID).
		Order("created_at DESC").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

// UpdateDishPhoto edits the description; the image itself is immutable.
func (s *PhotoService) UpdateDishPhoto(ctx context.Context, chefID, photoID uuid.UUID, req *types.UpdateDishPhotoRequest) (*models.ChefDishPhoto, error) {
	photo, err := s.getOwned(ctx, chefID, photoID)
	if err != nil {
		return nil, err
	}

	if req.Description.Set {
		if req.Description.Value != nil && len(*req.Description.Value) > 240 {
			return nil, apperrors.BadRequest("descrizione troppo lunga (max 240 caratteri)")
		}
		photo.Description = normalizeDescription(req.Description.Value)
		if err := s.db.WithContext(ctx).Save(photo).Error; err != nil {
			return nil, err
		}
	}
	return photo, nil
}

// DeleteDishPhoto removes the DB row after attempting to delete the file.
// The relative path comes from the stored ImagePath, falling back to parsing
// it out of a /static/... URL for rows created before paths were tracked.
func (s *PhotoService) DeleteDishPhoto(ctx context.Context, chefID, photoID uuid.UUID) error {
	photo, err := s.getOwned(ctx, chefID, photoID)
	if err != nil {
		return err
	}

	relPath := photo.ImagePath
	if relPath == "" {
		relPath = staticRelPath(photo.ImageURL)
	}
	if relPath != "" {
		s.removeFile(relPath)
	}

	return s.db.WithContext(ctx).Delete(&models.ChefDishPhoto{}, "id = ?", photo.ID).Error
}

func (s *PhotoService) getOwned(ctx context.Context, chefID, photoID uuid.UUID) (*models.ChefDishPhoto, error) {
	var photo models.ChefDishPhoto
	err := s.db.WithContext(ctx).
		Where("id = ? AND chef_id = ?", photoID, chefID).
		First(&photo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Foto non trovata")
		}
		return nil, err
	}
	return &photo, nil
}

func (s *PhotoService) saveFile(file *multipart.FileHeader, relPath string) error {
	dst := filepath.Join(s.uploadsDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return err
	}
	return nil
}

// removeFile deletes a stored file best-effort. An orphaned file is an
// acceptable failure mode; a dangling DB reference is not, so failures are
// logged and swallowed.
func (s *PhotoService) removeFile(relPath string) {
	full := filepath.Join(s.uploadsDir, filepath.FromSlash(relPath))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("failed to remove uploaded file", zap.String("path", relPath), zap.Error(err))
	}
}

func (s *PhotoService) publicURL(relPath string) string {
	return s.publicBaseURL + "/static/" + relPath
}

// staticRelPath extracts the uploads-relative path from a /static/... URL,
// returning "" when the URL points elsewhere.
func staticRelPath(rawURL string) string {
	idx := strings.Index(rawURL, "/static/")
	if idx < 0 {
		return ""
	}
	rel := rawURL[idx+len("/static/"):]
	rel = path.Clean(rel)
	if rel == "." || rel == "/" || strings.HasPrefix(rel, "..") {
		return ""
	}
	return rel
}

func validateUpload(file *multipart.FileHeader) (mime, ext string, err error) {
	if file == nil {
		return "", "", apperrors.BadRequest("file mancante")
	}
	if file.Size > maxUploadBytes {
		return "", "", apperrors.BadRequest("immagine troppo grande (max 5MB)")
	}

	mime = file.Header.Get("Content-Type")
	ext, ok := allowedImageMimes[mime]
	if !ok {
		return "", "", apperrors.BadRequest("formato immagine non supportato")
	}
	return mime, ext, nil
}

func randomSuffix() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano()%100000000)
	}
	return hex.EncodeToString(b)
}
