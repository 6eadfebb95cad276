package applications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"incuhub/pkg/uploads"
)

type mockApplicationService struct {
	mock.Mock
}

func (m *mockApplicationService) Submit(ctx context.Context, sub Submission, refs FileRefs) (Application, error) {
	args := m.Called(ctx, sub, refs)
	app, _ := args.Get(0).(Application)
	return app, args.Error(1)
}

func (m *mockApplicationService) GetByTrackingID(ctx context.Context, trackingID string) (Application, error) {
	args := m.Called(ctx, trackingID)
	app, _ := args.Get(0).(Application)
	return app, args.Error(1)
}

func (m *mockApplicationService) SetStatus(ctx context.Context, id int64, status Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockApplicationService) ListApplications(ctx context.Context, page, limit int) ([]Application, int64, error) {
	args := m.Called(ctx, page, limit)
	apps, _ := args.Get(0).([]Application)
	return apps, args.Get(1).(int64), args.Error(2)
}

func setupApplicationRouter(t *testing.T, service ApplicationService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := uploads.NewDiskStore(t.TempDir())
	require.NoError(t, err)

	router := gin.New()
	handler := NewApplicationHandler(service, store)
	handler.RegisterRoutes(router)
	handler.RegisterAdminRoutes(router.Group("/admin"))
	return router
}

type formFile struct {
	field       string
	name        string
	contentType string
	content     []byte
}

func multipartBody(t *testing.T, fields map[string]string, files ...formFile) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for _, f := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.field, f.name))
		header.Set("Content-Type", f.contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func validFormFields() map[string]string {
	return map[string]string{
		"founderName": "Ada Lovelace",
		"email":       "ada@example.com",
		"phone":       "4155550123",
		"ventureName": "Analytical Engines",
		"industry":    "Technology",
		"gdprConsent": "true",
	}
}

func pitchDeckFile() formFile {
	return formFile{
		field:       "pitchDeck",
		name:        "deck.pdf",
		contentType: "application/pdf",
		content:     bytes.Repeat([]byte("p"), 1024),
	}
}

func TestSubmitApplication_Success(t *testing.T) {
	service := new(mockApplicationService)
	router := setupApplicationRouter(t, service)

	service.On("Submit", mock.Anything, mock.MatchedBy(func(sub Submission) bool {
		return sub.FounderName == "Ada Lovelace" && sub.GDPRConsent && sub.PitchDeck != nil
	}), mock.MatchedBy(func(refs FileRefs) bool {
		_, err := uuid.Parse(refs.PitchDeckKey)
		return err == nil && refs.BusinessPlanKey == ""
	})).Return(Application{ID: 12, TrackingID: "track-12", Status: StatusSubmitted}, nil)

	body, contentType := multipartBody(t, validFormFields(), pitchDeckFile())
	req := httptest.NewRequest(http.MethodPost, "/api/application-submission", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool             `json:"success"`
		Data    submissionResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.EqualValues(t, 12, resp.Data.SubmissionID)
	require.Equal(t, "track-12", resp.Data.TrackingID)

	service.AssertExpectations(t)
}

func TestSubmitApplication_InvalidEmailRejectedBeforeService(t *testing.T) {
	service := new(mockApplicationService)
	router := setupApplicationRouter(t, service)

	fields := validFormFields()
	fields["email"] = "not-an-email"

	body, contentType := multipartBody(t, fields, pitchDeckFile())
	req := httptest.NewRequest(http.MethodPost, "/api/application-submission", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Errors  map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.Contains(t, resp.Errors, "email")

	service.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitApplication_MissingPitchDeck(t *testing.T) {
	service := new(mockApplicationService)
	router := setupApplicationRouter(t, service)

	body, contentType := multipartBody(t, validFormFields())
	req := httptest.NewRequest(http.MethodPost, "/api/application-submission", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp.Errors, "pitchDeck")

	service.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitApplication_DisallowedFileType(t *testing.T) {
	service := new(mockApplicationService)
	router := setupApplicationRouter(t, service)

	deck := pitchDeckFile()
	deck.name = "deck.zip"
	deck.contentType = "application/zip"

	body, contentType := multipartBody(t, validFormFields(), deck)
	req := httptest.NewRequest(http.MethodPost, "/api/application-submission", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp.Errors, "pitchDeck")

	service.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitApplication_RateLimited(t *testing.T) {
	service := new(mockApplicationService)
	router := setupApplicationRouter(t, service)

	service.On("Submit", mock.Anything, mock.Anything, mock.Anything).Return(Application{}, ErrTooManySubmissions)

	body, contentType := multipartBody(t, validFormFields(), pitchDeckFile())
	req := httptest.NewRequest(http.MethodPost, "/api/application-submission", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestSubmitApplication_ServiceFailure(t *testing.T) {
	service := new(mockApplicationService)
	router := setupApplicationRouter(t, service)

	service.On("Submit", mock.Anything, mock.Anything, mock.Anything).Return(Application{}, fmt.Errorf("persist application: connection reset"))

	body, contentType := multipartBody(t, validFormFields(), pitchDeckFile())
	req := httptest.NewRequest(http.MethodPost, "/api/application-submission", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestTrackApplication_Found(t *testing.T) {
	service := new(mockApplicationService)
	router := setupApplicationRouter(t, service)

	created := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	service.On("GetByTrackingID", mock.Anything, "track-9").Return(Application{
		ID:          9,
		TrackingID:  "track-9",
		FounderName: "Ada Lovelace",
		Email:       "ada@example.com",
		VentureName: "Analytical Engines",
		Status:      StatusUnderReview,
		CreatedAt:   created,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/applications/track/track-9", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data StatusView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "track-9", resp.Data.TrackingID)
	require.Equal(t, StatusUnderReview, resp.Data.Status)

	// The public lookup must not leak contact details.
	require.NotContains(t, w.Body.String(), "ada@example.com")
}

func TestTrackApplication_NotFound(t *testing.T) {
	service := new(mockApplicationService)
	router := setupApplicationRouter(t, service)

	service.On("GetByTrackingID", mock.Anything, "missing").Return(Application{}, ErrApplicationNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/applications/track/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListApplications_Pagination(t *testing.T) {
	service := new(mockApplicationService)
	router := setupApplicationRouter(t, service)

	service.On("ListApplications", mock.Anything, 2, 5).Return([]Application{{ID: 6}}, int64(11), nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/applications?page=2&limit=5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data ApplicationList `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.EqualValues(t, 11, resp.Data.Total)
	require.Equal(t, 2, resp.Data.Page)
	require.Len(t, resp.Data.Items, 1)

	service.AssertExpectations(t)
}

func TestSetStatus_Success(t *testing.T) {
	service := new(mockApplicationService)
	router := setupApplicationRouter(t, service)

	service.On("SetStatus", mock.Anything, int64(4), StatusInterview).Return(nil)

	payload := bytes.NewBufferString(`{"status":"Interview"}`)
	req := httptest.NewRequest(http.MethodPatch, "/admin/applications/4/status", payload)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}

func TestSetStatus_InvalidTransition(t *testing.T) {
	service := new(mockApplicationService)
	router := setupApplicationRouter(t, service)

	service.On("SetStatus", mock.Anything, int64(4), StatusSubmitted).Return(ErrInvalidTransition)

	payload := bytes.NewBufferString(`{"status":"Submitted"}`)
	req := httptest.NewRequest(http.MethodPatch, "/admin/applications/4/status", payload)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetStatus_BadID(t *testing.T) {
	service := new(mockApplicationService)
	router := setupApplicationRouter(t, service)

	payload := bytes.NewBufferString(`{"status":"Interview"}`)
	req := httptest.NewRequest(http.MethodPatch, "/admin/applications/abc/status", payload)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	service.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
}
