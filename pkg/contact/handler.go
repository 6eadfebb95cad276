package contact

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"incuhub/pkg/response"
)

type ContactHandler struct {
	service ContactService
}

func NewContactHandler(service ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/contact-messages", h.createMessage)
}

func (h *ContactHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/contact-messages", h.listMessages)
	rg.PATCH("/contact-messages/:id/resolve", h.resolveMessage)
}

type createMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// @Summary      Send a contact message
// @Description  Stores one contact form submission
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        request body createMessageRequest true "Contact message"
// @Success      201  {object}  response.APIResponse{data=ContactMessage} "Message stored"
// @Failure      400  {object}  response.APIResponse "Validation failure"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /api/contact-messages [post]
func (h *ContactHandler) createMessage(c *gin.Context) {
	var req createMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	created, fieldErrs, err := h.service.CreateMessage(c.Request.Context(), ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, "failed to store message", nil)
		return
	}
	if len(fieldErrs) > 0 {
		response.SendValidationErrors(c, http.StatusBadRequest, "message failed validation", fieldErrs)
		return
	}

	response.SendAPIResponse(c, http.StatusCreated, true, "message received", created)
}

// @Summary      List contact messages
// @Description  Retrieves a paginated list of contact messages
// @Tags         admin
// @Produce      json
// @Param        page   query     int  false  "Page number" default(1)
// @Param        limit  query     int  false  "Items per page" default(10)
// @Success      200  {object}  response.APIResponse{data=ContactMessageList} "Messages listed"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /admin/contact-messages [get]
func (h *ContactHandler) listMessages(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	messages, total, err := h.service.ListMessages(c.Request.Context(), page, limit)
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	data := ContactMessageList{Items: messages, Total: total, Page: page, Limit: limit}
	response.SendAPIResponse(c, http.StatusOK, true, "messages listed", data)
}

// @Summary      Resolve a contact message
// @Description  Marks a contact message as handled
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "Message ID"
// @Success      200  {object}  response.APIResponse "Message resolved"
// @Failure      400  {object}  response.APIResponse "Invalid message ID"
// @Failure      404  {object}  response.APIResponse "Message not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /admin/contact-messages/{id}/resolve [patch]
func (h *ContactHandler) resolveMessage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid message id", nil)
		return
	}

	if err := h.service.MarkResolved(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrMessageNotFound) {
			response.SendAPIResponse(c, http.StatusNotFound, false, "message not found", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "message resolved", nil)
}
