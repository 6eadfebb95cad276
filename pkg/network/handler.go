package network

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"incuhub/pkg/response"
	"incuhub/pkg/uploads"
)

// maxRequestBytes bounds the signup form: one CV at the upload ceiling plus
// text fields.
const maxRequestBytes = uploads.MaxObjectSize + 1<<20

type NetworkHandler struct {
	service NetworkService
	store   uploads.Store
}

func NewNetworkHandler(service NetworkService, store uploads.Store) *NetworkHandler {
	return &NetworkHandler{service: service, store: store}
}

func (h *NetworkHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/network-signups", h.signup)
}

func (h *NetworkHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/network-signups", h.listSignups)
	rg.PATCH("/network-signups/:id/status", h.setStatus)
}

type setSignupStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// @Summary      Join the mentor and investor network
// @Description  Stores a mentor or investor signup; an optional CV can be attached as a document upload
// @Tags         network
// @Accept       multipart/form-data
// @Produce      json
// @Param        name            formData  string  true   "Full name"
// @Param        email           formData  string  true   "Email"
// @Param        role            formData  string  true   "Mentor or Investor"
// @Param        expertiseAreas  formData  string  false  "Comma-separated expertise areas"
// @Param        cv              formData  file    false  "CV (PDF/DOC/DOCX, max 5 MB)"
// @Success      201  {object}  response.APIResponse{data=NetworkSignup} "Signup stored"
// @Failure      400  {object}  response.APIResponse "Validation failure"
// @Failure      409  {object}  response.APIResponse "Email already signed up"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /api/network-signups [post]
func (h *NetworkHandler) signup(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBytes)

	if err := c.Request.ParseMultipartForm(maxRequestBytes); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid multipart payload", nil)
		return
	}

	input := NetworkSignup{
		Name:           strings.TrimSpace(c.PostForm("name")),
		Email:          strings.TrimSpace(c.PostForm("email")),
		Role:           strings.TrimSpace(c.PostForm("role")),
		ExpertiseAreas: strings.TrimSpace(c.PostForm("expertiseAreas")),
	}

	if header, err := c.FormFile("cv"); err == nil {
		f, err := header.Open()
		if err != nil {
			response.SendAPIResponse(c, http.StatusInternalServerError, false, "failed to read uploaded CV", nil)
			return
		}
		defer f.Close()

		meta := uploads.FileMeta{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
		}
		key, err := h.store.Save(c.Request.Context(), f, meta)
		if err != nil {
			if errors.Is(err, uploads.ErrFileTooLarge) || errors.Is(err, uploads.ErrTypeNotAllowed) {
				response.SendValidationErrors(c, http.StatusBadRequest, "uploaded CV was rejected", map[string]string{"cv": err.Error()})
				return
			}
			response.SendAPIResponse(c, http.StatusInternalServerError, false, "failed to store uploaded CV", nil)
			return
		}
		input.CVKey = key
	}

	created, fieldErrs, err := h.service.Signup(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadySignedUp) {
			response.SendAPIResponse(c, http.StatusConflict, false, ErrEmailAlreadySignedUp.Error(), nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, "failed to store signup", nil)
		return
	}
	if len(fieldErrs) > 0 {
		response.SendValidationErrors(c, http.StatusBadRequest, "signup failed validation", fieldErrs)
		return
	}

	response.SendAPIResponse(c, http.StatusCreated, true, "signup received", created)
}

// @Summary      List network signups
// @Description  Retrieves signups, optionally filtered by role
// @Tags         admin
// @Produce      json
// @Param        role   query     string  false  "Mentor or Investor"
// @Param        page   query     int     false  "Page number" default(1)
// @Param        limit  query     int     false  "Items per page" default(10)
// @Success      200  {object}  response.APIResponse{data=NetworkSignupList} "Signups listed"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /admin/network-signups [get]
func (h *NetworkHandler) listSignups(c *gin.Context) {
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

	signups, total, err := h.service.ListSignups(c.Request.Context(), c.Query("role"), page, limit)
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	data := NetworkSignupList{Items: signups, Total: total, Page: page, Limit: limit}
	response.SendAPIResponse(c, http.StatusOK, true, "signups listed", data)
}

// @Summary      Review a network signup
// @Description  Approves or declines a mentor/investor signup
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id  path  int  true  "Signup ID"
// @Param        request body setSignupStatusRequest true "New status"
// @Success      200  {object}  response.APIResponse "Status updated"
// @Failure      400  {object}  response.APIResponse "Invalid status"
// @Failure      404  {object}  response.APIResponse "Signup not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /admin/network-signups/{id}/status [patch]
func (h *NetworkHandler) setStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid signup id", nil)
		return
	}

	var req setSignupStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	if err := h.service.SetStatus(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, ErrSignupNotFound):
			response.SendAPIResponse(c, http.StatusNotFound, false, "signup not found", nil)
		case errors.Is(err, ErrInvalidStatus):
			response.SendAPIResponse(c, http.StatusBadRequest, false, ErrInvalidStatus.Error(), nil)
		default:
			response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		}
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "signup status updated", nil)
}
