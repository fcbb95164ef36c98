package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chefincasa/backend/internal/middleware"
	"github.com/chefincasa/backend/internal/service"
	"github.com/chefincasa/backend/internal/types"
)

// MenuDishHandler serves the composition of a single menu: the rows binding
// dishes into it, their ordinals and the bulk reorder.
type MenuDishHandler struct {
	menuDishes *service.MenuDishService
}

func NewMenuDishHandler(menuDishes *service.MenuDishService) *MenuDishHandler {
	return &MenuDishHandler{menuDishes: menuDishes}
}

func (h *MenuDishHandler) RegisterRoutes(chef *gin.RouterGroup) {
	rows := chef.Group("/menus/:menuId/dishes")
	{
		rows.GET("", h.List)
		rows.POST("", h.Add)
		rows.PATCH("/reorder", h.Reorder)
		rows.PATCH("/:menuDishId", h.Update)
		rows.DELETE("/:menuDishId", h.Remove)
	}
}

func (h *MenuDishHandler) List(c *gin.Context) {
	chefID := middleware.ScopedChefID(c)
	menuID, ok := parseIDParam(c, "menuId")
	if !ok {
		return
	}

	rows, err := h.menuDishes.ListByMenu(c.Request.Context(), chefID, menuID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, rows)
}

func (h *MenuDishHandler) Add(c *gin.Context) {
	chefID := middleware.ScopedChefID(c)
	menuID, ok := parseIDParam(c, "menuId")
	if !ok {
		return
	}

	var req types.AddMenuDishRequest
	if !bindJSON(c, &req) {
		return
	}

	row, err := h.menuDishes.Add(c.Request.Context(), chefID, menuID, &req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, row)
}

func (h *MenuDishHandler) Update(c *gin.Context) {
	chefID := middleware.ScopedChefID(c)
	menuID, ok := parseIDParam(c, "menuId")
	if !ok {
		return
	}
	menuDishID, ok := parseIDParam(c, "menuDishId")
	if !ok {
		return
	}

	var req types.UpdateMenuDishRequest
	if !bindJSON(c, &req) {
		return
	}

	row, err := h.menuDishes.UpdateOne(c.Request.Context(), chefID, menuID, menuDishID, &req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, row)
}

func (h *MenuDishHandler) Reorder(c *gin.Context) {
	chefID := middleware.ScopedChefID(c)
	menuID, ok := parseIDParam(c, "menuId")
	if !ok {
		return
	}

	var req types.ReorderMenuDishesRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.menuDishes.Reorder(c.Request.Context(), chefID, menuID, req.Items); err != nil {
		fail(c, err)
		return
	}

	rows, err := h.menuDishes.ListByMenu(c.Request.Context(), chefID, menuID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, rows)
}

func (h *MenuDishHandler) Remove(c *gin.Context) {
	chefID := middleware.ScopedChefID(c)
	menuID, ok := parseIDParam(c, "menuId")
	if !ok {
		return
	}
	menuDishID, ok := parseIDParam(c, "menuDishId")
	if !ok {
		return
	}

	if err := h.menuDishes.Remove(c.Request.Context(), chefID, menuID, menuDishID); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"deleted": true})
}
