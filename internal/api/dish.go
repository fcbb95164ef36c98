package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chefincasa/backend/internal/apperrors"
	"github.com/chefincasa/backend/internal/middleware"
	"github.com/chefincasa/backend/internal/service"
	"github.com/chefincasa/backend/internal/types"
)

// DishHandler serves the chef's reusable dish catalog.
type DishHandler struct {
	dishes *service.DishService
}

func NewDishHandler(dishes *service.DishService) *DishHandler {
	return &DishHandler{dishes: dishes}
}

func (h *DishHandler) RegisterRoutes(chef *gin.RouterGroup) {
	dishes := chef.Group("/dishes")
	{
		dishes.GET("", h.List)
		dishes.POST("", h.Create)
		dishes.GET("/:dishId", h.Get)
		dishes.PATCH("/:dishId", h.Update)
		dishes.DELETE("/:dishId", h.Delete)
	}
}

func (h *DishHandler) List(c *gin.Context) {
	chefID := middleware.ScopedChefID(c)

	var query types.ListDishesQuery
	if !bindQuery(c, &query) {
		return
	}

	dishes, err := h.dishes.List(c.Request.Context(), chefID, query.Categoria, query.Limit)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, dishes)
}

func (h *DishHandler) Get(c *gin.Context) {
	chefID := middleware.ScopedChefID(c)
	dishID, ok := parseIDParam(c, "dishId")
	if !ok {
		return
	}

	dish, err := h.dishes.Get(c.Request.Context(), chefID, dishID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, dish)
}

func (h *DishHandler) Create(c *gin.Context) {
	chefID := middleware.ScopedChefID(c)

	var req types.CreateDishRequest
	if !bindJSON(c, &req) {
		return
	}

	dish, err := h.dishes.Create(c.Request.Context(), chefID, &req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, dish)
}

func (h *DishHandler) Update(c *gin.Context) {
	chefID := middleware.ScopedChefID(c)
	dishID, ok := parseIDParam(c, "dishId")
	if !ok {
		return
	}

	var req types.UpdateDishRequest
	if !bindJSON(c, &req) {
		return
	}

	dish, err := h.dishes.Update(c.Request.Context(), chefID, dishID, &req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, dish)
}

func (h *DishHandler) Delete(c *gin.Context) {
	chefID := middleware.ScopedChefID(c)
	dishID, ok := parseIDParam(c, "dishId")
	if !ok {
		return
	}

	if err := h.dishes.Delete(c.Request.Context(), chefID, dishID); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"deleted": true})
}

// parseIDParam parses a uuid path parameter, answering 400 on garbage.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		fail(c, apperrors.BadRequest("id non valido"))
		return uuid.Nil, false
	}
	return id, true
}
