package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chefincasa/backend/internal/apperrors"
	"github.com/chefincasa/backend/internal/middleware"
	"github.com/chefincasa/backend/internal/service"
	"github.com/chefincasa/backend/internal/types"
)

// ProfileHandler serves the chef-scoped profile endpoints.
type ProfileHandler struct {
	profiles *service.ProfileService
	photos   *service.PhotoService
}

func NewProfileHandler(profiles *service.ProfileService, photos *service.PhotoService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, photos: photos}
}

func (h *ProfileHandler) RegisterRoutes(chef *gin.RouterGroup) {
	profile := chef.Group("/profile")
	{
		profile.GET("", h.Get)
		profile.PATCH("", h.Update)
		profile.PUT("", h.Update)
		profile.POST("/photo", h.UploadPhoto)
	}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	chefID := middleware.ScopedChefID(c)

	profile, err := h.profiles.Get(c.Request.Context(), chefID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, profile)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	chefID := middleware.ScopedChefID(c)

	var req types.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.profiles.Update(c.Request.Context(), chefID, &req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, profile)
}

func (h *ProfileHandler) UploadPhoto(c *gin.Context) {
	chefID := middleware.ScopedChefID(c)

	file, err := c.FormFile("photo")
	if err != nil {
		fail(c, apperrors.BadRequest("campo 'photo' mancante"))
		return
	}

	profile, err := h.photos.UploadProfilePhoto(c.Request.Context(), chefID, file)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, profile)
}
