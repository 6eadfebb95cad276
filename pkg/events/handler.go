package events

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"incuhub/pkg/response"
)

type EventHandler struct {
	service EventService
}

func NewEventHandler(service EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/event-registrations", h.register)
}

func (h *EventHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/event-registrations", h.listRegistrations)
}

type registerRequest struct {
	EventName    string `json:"event_name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Organization string `json:"organization"`
}

// @Summary      Register for an event
// @Description  Stores one event registration
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request body registerRequest true "Event registration"
// @Success      201  {object}  response.APIResponse{data=EventRegistration} "Registration stored"
// @Failure      400  {object}  response.APIResponse "Validation failure"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /api/event-registrations [post]
func (h *EventHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	created, fieldErrs, err := h.service.Register(c.Request.Context(), EventRegistration{
		EventName:    req.EventName,
		Email:        req.Email,
		Organization: req.Organization,
	})
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, "failed to store registration", nil)
		return
	}
	if len(fieldErrs) > 0 {
		response.SendValidationErrors(c, http.StatusBadRequest, "registration failed validation", fieldErrs)
		return
	}

	response.SendAPIResponse(c, http.StatusCreated, true, "registration received", created)
}

// @Summary      List event registrations
// @Description  Retrieves registrations, optionally filtered by event name
// @Tags         admin
// @Produce      json
// @Param        event  query     string  false  "Filter by event name"
// @Param        page   query     int     false  "Page number" default(1)
// @Param        limit  query     int     false  "Items per page" default(10)
// @Success      200  {object}  response.APIResponse{data=EventRegistrationList} "Registrations listed"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /admin/event-registrations [get]
func (h *EventHandler) listRegistrations(c *gin.Context) {
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

	registrations, total, err := h.service.ListRegistrations(c.Request.Context(), c.Query("event"), page, limit)
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	data := EventRegistrationList{Items: registrations, Total: total, Page: page, Limit: limit}
	response.SendAPIResponse(c, http.StatusOK, true, "registrations listed", data)
}
