package applications

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"incuhub/pkg/response"
	"incuhub/pkg/uploads"
)

// maxRequestBytes bounds the whole multipart request: two documents at the
// 5 MB ceiling plus form fields.
const maxRequestBytes = 2*MaxFileSize + 1<<20

type ApplicationHandler struct {
	service ApplicationService
	store   uploads.Store
}

func NewApplicationHandler(service ApplicationService, store uploads.Store) *ApplicationHandler {
	return &ApplicationHandler{service: service, store: store}
}

func (h *ApplicationHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/application-submission", h.submitApplication)
	router.GET("/api/applications/track/:trackingID", h.trackApplication)
}

func (h *ApplicationHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/applications", h.listApplications)
	rg.PATCH("/applications/:id/status", h.setStatus)
}

type submissionResult struct {
	SubmissionID int64  `json:"submission_id"`
	TrackingID   string `json:"tracking_id"`
}

type setStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// @Summary      Submit an incubation program application
// @Description  Accepts the complete multi-step application as a multipart form with the pitch deck and an optional business plan
// @Tags         applications
// @Accept       multipart/form-data
// @Produce      json
// @Param        founderName   formData  string  true   "Founder full name"
// @Param        email         formData  string  true   "Founder email"
// @Param        phone         formData  string  false  "Phone, digits only"
// @Param        ventureName   formData  string  true   "Venture name"
// @Param        industry      formData  string  false  "Industry"  default(Technology)
// @Param        gdprConsent   formData  boolean true   "GDPR consent, must be true"
// @Param        pitchDeck     formData  file    true   "Pitch deck (PDF/DOC/DOCX, max 5 MB)"
// @Param        businessPlan  formData  file    false  "Business plan (PDF/DOC/DOCX, max 5 MB)"
// @Success      201  {object}  response.APIResponse{data=submissionResult} "Application submitted"
// @Failure      400  {object}  response.APIResponse "Validation failure with field reasons"
// @Failure      429  {object}  response.APIResponse "Too many submissions"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /api/application-submission [post]
func (h *ApplicationHandler) submitApplication(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBytes)

	if err := c.Request.ParseMultipartForm(maxRequestBytes); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid multipart payload", nil)
		return
	}

	sub := Submission{
		FounderName: strings.TrimSpace(c.PostForm("founderName")),
		Email:       strings.TrimSpace(c.PostForm("email")),
		Phone:       strings.TrimSpace(c.PostForm("phone")),
		VentureName: strings.TrimSpace(c.PostForm("ventureName")),
		Industry:    strings.TrimSpace(c.PostForm("industry")),
		GDPRConsent: strings.EqualFold(c.PostForm("gdprConsent"), "true"),
	}

	pitchDeck, err := c.FormFile("pitchDeck")
	if err == nil {
		sub.PitchDeck = fileInputFromHeader(pitchDeck)
	}
	businessPlan, err := c.FormFile("businessPlan")
	if err == nil {
		sub.BusinessPlan = fileInputFromHeader(businessPlan)
	}

	// Reject bad field values before writing anything to storage.
	if fieldErrs := Validate(sub); len(fieldErrs) > 0 {
		response.SendValidationErrors(c, http.StatusBadRequest, "application failed validation", fieldErrs)
		return
	}

	var refs FileRefs
	refs.PitchDeckKey, err = h.storeDocument(c, pitchDeck, sub.PitchDeck)
	if err != nil {
		h.sendUploadError(c, "pitchDeck", err)
		return
	}
	if businessPlan != nil {
		refs.BusinessPlanKey, err = h.storeDocument(c, businessPlan, sub.BusinessPlan)
		if err != nil {
			h.sendUploadError(c, "businessPlan", err)
			return
		}
	}

	app, err := h.service.Submit(c.Request.Context(), sub, refs)
	if err != nil {
		var vErr *ValidationError
		switch {
		case errors.As(err, &vErr):
			response.SendValidationErrors(c, http.StatusBadRequest, "application failed validation", vErr.Fields)
		case errors.Is(err, ErrTooManySubmissions):
			response.SendAPIResponse(c, http.StatusTooManyRequests, false, ErrTooManySubmissions.Error(), nil)
		default:
			response.SendAPIResponse(c, http.StatusInternalServerError, false, "failed to save application", nil)
		}
		return
	}

	result := submissionResult{SubmissionID: app.ID, TrackingID: app.TrackingID}
	response.SendAPIResponse(c, http.StatusCreated, true, "application submitted", result)
}

// @Summary      Track an application
// @Description  Public status lookup by tracking token
// @Tags         applications
// @Produce      json
// @Param        trackingID  path  string  true  "Tracking token"
// @Success      200  {object}  response.APIResponse{data=StatusView} "Application status"
// @Failure      404  {object}  response.APIResponse "Application not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /api/applications/track/{trackingID} [get]
func (h *ApplicationHandler) trackApplication(c *gin.Context) {
	trackingID := c.Param("trackingID")

	app, err := h.service.GetByTrackingID(c.Request.Context(), trackingID)
	if err != nil {
		if errors.Is(err, ErrApplicationNotFound) {
			response.SendAPIResponse(c, http.StatusNotFound, false, "application not found", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, "failed to look up application", nil)
		return
	}

	view := StatusView{
		TrackingID:  app.TrackingID,
		VentureName: app.VentureName,
		Status:      app.Status,
		CreatedAt:   app.CreatedAt,
	}
	response.SendAPIResponse(c, http.StatusOK, true, "application fetched", view)
}

// @Summary      List applications
// @Description  Retrieves a paginated list of submitted applications
// @Tags         admin
// @Produce      json
// @Param        page   query     int  false  "Page number" default(1)
// @Param        limit  query     int  false  "Items per page" default(10)
// @Success      200  {object}  response.APIResponse{data=ApplicationList} "Applications listed"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /admin/applications [get]
func (h *ApplicationHandler) listApplications(c *gin.Context) {
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

	apps, total, err := h.service.ListApplications(c.Request.Context(), page, limit)
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	data := ApplicationList{Items: apps, Total: total, Page: page, Limit: limit}
	response.SendAPIResponse(c, http.StatusOK, true, "applications listed", data)
}

// @Summary      Update application status
// @Description  Moves an application forward through the review pipeline
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id  path  int  true  "Application ID"
// @Param        request body setStatusRequest true "New status"
// @Success      200  {object}  response.APIResponse "Status updated"
// @Failure      400  {object}  response.APIResponse "Invalid status or transition"
// @Failure      404  {object}  response.APIResponse "Application not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /admin/applications/{id}/status [patch]
func (h *ApplicationHandler) setStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid application id", nil)
		return
	}

	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	if err := h.service.SetStatus(c.Request.Context(), id, Status(req.Status)); err != nil {
		switch {
		case errors.Is(err, ErrApplicationNotFound):
			response.SendAPIResponse(c, http.StatusNotFound, false, "application not found", nil)
		case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidTransition):
			response.SendAPIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
		default:
			response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		}
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "application status updated", nil)
}

func (h *ApplicationHandler) storeDocument(c *gin.Context, header *multipart.FileHeader, input *FileInput) (string, error) {
	f, err := header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	meta := uploads.FileMeta{Name: input.Name, ContentType: input.ContentType, Size: input.Size}
	return h.store.Save(c.Request.Context(), f, meta)
}

func (h *ApplicationHandler) sendUploadError(c *gin.Context, field string, err error) {
	if errors.Is(err, uploads.ErrFileTooLarge) || errors.Is(err, uploads.ErrTypeNotAllowed) {
		response.SendValidationErrors(c, http.StatusBadRequest, "uploaded file was rejected", map[string]string{field: err.Error()})
		return
	}
	response.SendAPIResponse(c, http.StatusInternalServerError, false, "failed to store uploaded file", nil)
}

func fileInputFromHeader(h *multipart.FileHeader) *FileInput {
	return &FileInput{
		Name:        h.Filename,
		ContentType: h.Header.Get("Content-Type"),
		Size:        h.Size,
	}
}
