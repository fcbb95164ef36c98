package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chefincasa/backend/internal/middleware"
	"github.com/chefincasa/backend/internal/service"
	"github.com/chefincasa/backend/internal/types"
)

// MenuHandler serves the chef's menus.
type MenuHandler struct {
	menus *service.MenuService
}

func NewMenuHandler(menus *service.MenuService) *MenuHandler {
	return &MenuHandler{menus: menus}
}

func (h *MenuHandler) RegisterRoutes(chef *gin.RouterGroup) {
	menus := chef.Group("/menus")
	{
		menus.GET("", h.List)
		menus.POST("", h.Create)
		menus.GET("/:menuId", h.Get)
		menus.PATCH("/:menuId", h.Update)
		menus.DELETE("/:menuId", h.Delete)
	}
}

func (h *MenuHandler) List(c *gin.Context) {
	chefID := middleware.ScopedChefID(c)

	menus, err := h.menus.List(c.Request.Context(), chefID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, menus)
}

func (h *MenuHandler) Get(c *gin.Context) {
	chefID := middleware.ScopedChefID(c)
	menuID, ok := parseIDParam(c, "menuId")
	if !ok {
		return
	}

	menu, err := h.menus.Get(c.Request.Context(), chefID, menuID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, menu)
}

func (h *MenuHandler) Create(c *gin.Context) {
	chefID := middleware.ScopedChefID(c)

	var req types.CreateMenuRequest
	if !bindJSON(c, &req) {
		return
	}

	menu, err := h.menus.Create(c.Request.Context(), chefID, &req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, menu)
}

func (h *MenuHandler) Update(c *gin.Context) {
	chefID := middleware.ScopedChefID(c)
	menuID, ok := parseIDParam(c, "menuId")
	if !ok {
		return
	}

	var req types.UpdateMenuRequest
	if !bindJSON(c, &req) {
		return
	}

	menu, err := h.menus.Update(c.Request.Context(), chefID, menuID, &req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, menu)
}

func (h *MenuHandler) Delete(c *gin.Context) {
	chefID := middleware.ScopedChefID(c)
	menuID, ok := parseIDParam(c, "menuId")
	if !ok {
		return
	}

	if err := h.menus.Delete(c.Request.Context(), chefID, menuID); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"deleted": true})
}
