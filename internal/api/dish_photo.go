package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chefincasa/backend/internal/apperrors"
	"github.com/chefincasa/backend/internal/middleware"
	"github.com/chefincasa/backend/internal/service"
	"github.com/chefincasa/backend/internal/types"
)

// DishPhotoHandler serves the chef's photo gallery. Listing is public so the
// storefront can render a chef's page without a session; mutations stay
// behind auth and ownership.
type DishPhotoHandler struct {
	photos *service.PhotoService
}

func NewDishPhotoHandler(photos *service.PhotoService) *DishPhotoHandler {
	return &DishPhotoHandler{photos: photos}
}

// RegisterPublicRoutes mounts the unauthenticated gallery listing.
func (h *DishPhotoHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/chefs/:chefId/dish-photos", h.List)
}

func (h *DishPhotoHandler) RegisterRoutes(chef *gin.RouterGroup) {
	photos := chef.Group("/dish-photos")
	{
		photos.POST("", h.Create)
		photos.POST("/upload", h.Upload)
		photos.PATCH("/:photoId", h.Update)
		photos.DELETE("/:photoId", h.Delete)
	}
}

func (h *DishPhotoHandler) List(c *gin.Context) {
	chefID, ok := parseIDParam(c, "chefId")
	if !ok {
		return
	}

	photos, err := h.photos.ListDishPhotos(c.Request.Context(), chefID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, photos)
}

func (h *DishPhotoHandler) Create(c *gin.Context) {
	chefID := middleware.ScopedChefID(c)

	var req types.CreateDishPhotoRequest
	if !bindJSON(c, &req) {
		return
	}

	photo, err := h.photos.CreateDishPhoto(c.Request.Context(), chefID, &req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, photo)
}

func (h *DishPhotoHandler) Upload(c *gin.Context) {
	chefID := middleware.ScopedChefID(c)

	file, err := c.FormFile("file")
	if err != nil {
		fail(c, apperrors.BadRequest("campo 'file' mancante"))
		return
	}

	var description *string
	if v := c.PostForm("description"); v != "" {
		description = &v
	}

	photo, err := h.photos.UploadDishPhoto(c.Request.Context(), chefID, file, description)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, photo)
}

func (h *DishPhotoHandler) Update(c *gin.Context) {
	chefID := middleware.ScopedChefID(c)
	photoID, ok := parseIDParam(c, "photoId")
	if !ok {
		return
	}

	var req types.UpdateDishPhotoRequest
	if !bindJSON(c, &req) {
		return
	}

	photo, err := h.photos.UpdateDishPhoto(c.Request.Context(), chefID, photoID, &req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, photo)
}

func (h *DishPhotoHandler) Delete(c *gin.Context) {
	chefID := middleware.ScopedChefID(c)
	photoID, ok := parseIDParam(c, "photoId")
	if !ok {
		return
	}

	if err := h.photos.DeleteDishPhoto(c.Request.Context(), chefID, photoID); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"deleted": true})
}
