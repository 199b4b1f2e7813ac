package submissions

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labelreader/label-api/api/types"
	"github.com/labelreader/label-api/internal/models"
	"github.com/labelreader/label-api/internal/services/auth"
	submissionsService "github.com/labelreader/label-api/internal/services/submissions"
)

// fakeSubmissionService scripts the lifecycle operations the handlers call
type fakeSubmissionService struct {
	submissionsService.SubmissionService

	transitionErr error
	deleteErr     error
	submission    *models.Submission
	lastStatus    string
}

func (f *fakeSubmissionService) Transition(ctx context.Context, submissionID uint, newStatus string) (*models.Submission, error) {
	f.lastStatus = newStatus
	if f.transitionErr != nil {
		return nil, f.transitionErr
	}
	sub := *f.submission
	sub.Status = newStatus
	return &sub, nil
}

func (f *fakeSubmissionService) Delete(ctx context.Context, submissionID, requesterArtistID uint) error {
	return f.deleteErr
}

func (f *fakeSubmissionService) Get(ctx context.Context, submissionID, requesterArtistID uint) (*models.Submission, error) {
	if f.submission == nil {
		return nil, submissionsService.ErrSubmissionNotFound
	}
	if f.submission.ArtistID != requesterArtistID {
		return nil, submissionsService.ErrNotOwner
	}
	return f.submission, nil
}

func setupRouter(service submissionsService.SubmissionService, actor *auth.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	deps := &types.Dependencies{SubmissionService: service}

	identity := func(c *gin.Context) {
		if actor != nil {
			types.SetActor(c, actor)
		}
		c.Next()
	}
	noop := func(c *gin.Context) { c.Next() }
	group := engine.Group("/api/v1/submissions")
	group.Use(identity)
	RegisterRoutes(group, deps, noop, noop, noop)
	return engine
}

func performJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestTransitionHandler(t *testing.T) {
	service := &fakeSubmissionService{
		submission: &models.Submission{ArtistID: 1, Title: "Night Drive", Status: models.StatusUnderReview},
	}
	engine := setupRouter(service, &auth.Actor{UserID: 10, Role: models.RoleLabel})

	w := performJSON(t, engine, http.MethodPost, "/api/v1/submissions/7/status",
		types.TransitionRequest{Status: models.StatusApproved})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StatusApproved, service.lastStatus)

	var response types.SingleSubmissionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, models.StatusApproved, response.Submission.Status)
}

func TestTransitionHandlerConflict(t *testing.T) {
	service := &fakeSubmissionService{
		submission:    &models.Submission{ArtistID: 1, Status: models.StatusApproved},
		transitionErr: &submissionsService.TransitionError{From: models.StatusApproved, To: models.StatusPending},
	}
	engine := setupRouter(service, &auth.Actor{UserID: 10, Role: models.RoleLabel})

	w := performJSON(t, engine, http.MethodPost, "/api/v1/submissions/7/status",
		types.TransitionRequest{Status: models.StatusPending})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestTransitionHandlerMissingBody(t *testing.T) {
	service := &fakeSubmissionService{submission: &models.Submission{ArtistID: 1}}
	engine := setupRouter(service, &auth.Actor{UserID: 10, Role: models.RoleLabel})

	w := performJSON(t, engine, http.MethodPost, "/api/v1/submissions/7/status", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetHandlerOwnership(t *testing.T) {
	service := &fakeSubmissionService{
		submission: &models.Submission{ArtistID: 1, Title: "Night Drive"},
	}

	owner := setupRouter(service, &auth.Actor{UserID: 1, Role: models.RoleArtist})
	w := performJSON(t, owner, http.MethodGet, "/api/v1/submissions/7", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	stranger := setupRouter(service, &auth.Actor{UserID: 2, Role: models.RoleArtist})
	w = performJSON(t, stranger, http.MethodGet, "/api/v1/submissions/7", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteHandlerNotFound(t *testing.T) {
	service := &fakeSubmissionService{deleteErr: submissionsService.ErrSubmissionNotFound}
	engine := setupRouter(service, &auth.Actor{UserID: 1, Role: models.RoleArtist})

	w := performJSON(t, engine, http.MethodDelete, "/api/v1/submissions/7", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvalidIDParam(t *testing.T) {
	service := &fakeSubmissionService{submission: &models.Submission{ArtistID: 1}}
	engine := setupRouter(service, &auth.Actor{UserID: 1, Role: models.RoleArtist})

	w := performJSON(t, engine, http.MethodGet, "/api/v1/submissions/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
