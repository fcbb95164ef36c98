package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chefincasa/backend/internal/middleware"
	"github.com/chefincasa/backend/internal/service"
	"github.com/chefincasa/backend/internal/types"
)

// InquiryHandler serves the public contact form and the chef-scoped inbox.
type InquiryHandler struct {
	inquiries   *service.InquiryService
	rateLimiter *middleware.RateLimiter
}

func NewInquiryHandler(inquiries *service.InquiryService, rateLimiter *middleware.RateLimiter) *InquiryHandler {
	return &InquiryHandler{inquiries: inquiries, rateLimiter: rateLimiter}
}

// RegisterPublicRoutes mounts the unauthenticated submission endpoint.
func (h *InquiryHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.POST("/inquiries", h.rateLimiter.Middleware(), h.Create)
}

func (h *InquiryHandler) RegisterRoutes(chef *gin.RouterGroup) {
	inquiries := chef.Group("/inquiries")
	{
		inquiries.GET("", h.List)
		inquiries.PATCH("/:inquiryId", h.UpdateStatus)
	}
}

func (h *InquiryHandler) Create(c *gin.Context) {
	var req types.CreateInquiryRequest
	if !bindJSON(c, &req) {
		return
	}

	inquiry, err := h.inquiries.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, inquiry)
}

func (h *InquiryHandler) List(c *gin.Context) {
	chefID := middleware.ScopedChefID(c)

	inquiries, err := h.inquiries.ListByChef(c.Request.Context(), chefID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, inquiries)
}

func (h *InquiryHandler) UpdateStatus(c *gin.Context) {
	chefID := middleware.ScopedChefID(c)
	inquiryID, ok := parseIDParam(c, "inquiryId")
	if !ok {
		return
	}

	var req types.UpdateInquiryStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.inquiries.UpdateStatus(c.Request.Context(), chefID, inquiryID, req.Status); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"status": req.Status})
}
