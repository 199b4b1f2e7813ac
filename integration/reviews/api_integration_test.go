package reviews_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labelreader/label-api/api"
	"github.com/labelreader/label-api/api/types"
	"github.com/labelreader/label-api/internal/database"
	"github.com/labelreader/label-api/internal/models"
	"github.com/labelreader/label-api/internal/services/auth"
	"github.com/labelreader/label-api/internal/services/storage"
	"github.com/labelreader/label-api/pkg/config"
)

const (
	artistID = uint(1)
	labelID  = uint(10)
)

// ReviewTestSuite holds the full server and identities for the
// submit-review-play flow
type ReviewTestSuite struct {
	t           *testing.T
	server      *api.Server
	db          *database.DB
	artistToken string
	labelToken  string
}

func setupReviewTestSuite(t *testing.T) *ReviewTestSuite {
	require.NoError(t, config.Init())

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// A single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.MigrateAll())

	blobStore, err := storage.NewLocalBlobStore(t.TempDir())
	require.NoError(t, err)

	server := api.NewServer("127.0.0.1:0")
	server.SetDependencies(&types.Dependencies{DB: db, BlobStore: blobStore})
	require.NoError(t, server.Initialize())

	// Tokens are minted against the same secret the server validates with
	tokens := auth.NewService(config.GetString("auth.jwt_secret"))
	artistToken, err := tokens.IssueToken(artistID, models.RoleArtist, time.Hour)
	require.NoError(t, err)
	labelToken, err := tokens.IssueToken(labelID, models.RoleLabel, time.Hour)
	require.NoError(t, err)

	return &ReviewTestSuite{
		t:           t,
		server:      server,
		db:          db,
		artistToken: artistToken,
		labelToken:  labelToken,
	}
}

func (s *ReviewTestSuite) do(method, path, token string, body []byte, contentType string) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	recorder := httptest.NewRecorder()
	s.server.Engine().ServeHTTP(recorder, req)
	return recorder
}

func (s *ReviewTestSuite) doJSON(method, path, token string, payload any) *httptest.ResponseRecorder {
	s.t.Helper()

	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		require.NoError(s.t, err)
	}
	return s.do(method, path, token, body, "application/json")
}

func (s *ReviewTestSuite) uploadSubmission(title, genre string) *models.Submission {
	s.t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(s.t, writer.WriteField("title", title))
	require.NoError(s.t, writer.WriteField("artist_name", "Vector North"))
	require.NoError(s.t, writer.WriteField("genre", genre))
	part, err := writer.CreateFormFile("audio", "track.mp3")
	require.NoError(s.t, err)
	_, err = part.Write([]byte("ID3 not really audio"))
	require.NoError(s.t, err)
	require.NoError(s.t, writer.Close())

	recorder := s.do(http.MethodPost, "/api/v1/submissions", s.artistToken, buf.Bytes(), writer.FormDataContentType())
	require.Equal(s.t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var response types.SingleSubmissionResponse
	require.NoError(s.t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.NotNil(s.t, response.Submission)
	return response.Submission
}

func TestSubmissionReviewLifecycle(t *testing.T) {
	suite := setupReviewTestSuite(t)

	// A fresh profile so counters and stats have a home
	recorder := suite.doJSON(http.MethodPut, "/api/v1/profiles/artist", suite.artistToken, map[string]string{
		"artist_name": "Vector North",
		"genre":       "techno",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	submission := suite.uploadSubmission("Night Drive", "techno")
	assert.Equal(t, models.StatusPending, submission.Status)
	assert.True(t, submission.Published)

	// The label finds it through discovery
	recorder = suite.doJSON(http.MethodGet, "/api/v1/discover?genre=techno", suite.labelToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	var listing types.SubmissionsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &listing))
	require.Len(t, listing.Submissions, 1)
	assert.Equal(t, submission.ID, listing.Submissions[0].ID)

	// The label can stream the audio before rating
	recorder = suite.do(http.MethodGet, fmt.Sprintf("/api/v1/discover/%d/audio", submission.ID), suite.labelToken, nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "ID3 not really audio", recorder.Body.String())

	// The first rating moves the submission under review and aggregates
	recorder = suite.doJSON(http.MethodPut, fmt.Sprintf("/api/v1/submissions/%d/rating", submission.ID), suite.labelToken, types.RateSubmissionRequest{
		Score:      4,
		ReviewText: "Strong groove, weak drop",
		Interested: true,
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	var rated types.SingleRatingResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &rated))
	require.NotNil(t, rated.Submission)
	assert.Equal(t, models.StatusUnderReview, rated.Submission.Status)
	assert.Equal(t, 1, rated.Submission.TotalRatings)
	assert.InDelta(t, 4.0, rated.Submission.AverageRating, 0.001)

	// Re-rating overwrites in place instead of adding a second row
	recorder = suite.doJSON(http.MethodPut, fmt.Sprintf("/api/v1/submissions/%d/rating", submission.ID), suite.labelToken, types.RateSubmissionRequest{
		Score:      5,
		Interested: true,
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &rated))
	assert.Equal(t, 1, rated.Submission.TotalRatings)
	assert.InDelta(t, 5.0, rated.Submission.AverageRating, 0.001)

	// The label approves it
	recorder = suite.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/submissions/%d/status", submission.ID), suite.labelToken, types.TransitionRequest{
		Status: models.StatusApproved,
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	// Plays are anonymous, no token needed
	recorder = suite.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/discover/%d/play", submission.ID), "", nil)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	var play types.PlayResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &play))
	assert.Equal(t, 1, play.PlayCount)

	// The artist sees the rating and status change in the inbox
	recorder = suite.doJSON(http.MethodGet, "/api/v1/notifications", suite.artistToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	var inbox types.NotificationsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &inbox))
	kinds := make([]string, 0, len(inbox.Notifications))
	for _, n := range inbox.Notifications {
		kinds = append(kinds, n.Kind)
	}
	assert.Contains(t, kinds, models.NotificationNewRating)
	assert.Contains(t, kinds, models.NotificationStatusChange)

	// Artist analytics reflect the whole flow
	recorder = suite.doJSON(http.MethodGet, "/api/v1/analytics/artist", suite.artistToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	var artistView types.ArtistAnalyticsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &artistView))
	require.NotNil(t, artistView.Analytics)
	assert.Equal(t, int64(1), artistView.Analytics.TotalSubmissions)
	assert.Equal(t, int64(1), artistView.Analytics.TotalPlays)
	assert.Equal(t, int64(1), artistView.Analytics.TotalRatings)
	assert.InDelta(t, 5.0, artistView.Analytics.AverageRating, 0.001)

	// Platform analytics are public
	recorder = suite.doJSON(http.MethodGet, "/api/v1/analytics/platform", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	var platformView types.PlatformAnalyticsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &platformView))
	require.NotNil(t, platformView.Analytics)
	assert.Equal(t, int64(1), platformView.Analytics.TotalSubmissions)
	require.Len(t, platformView.Analytics.TopRated, 1)
	assert.Equal(t, submission.ID, platformView.Analytics.TopRated[0].ID)
}

func TestRoleBoundaries(t *testing.T) {
	suite := setupReviewTestSuite(t)
	submission := suite.uploadSubmission("Fault Lines", "house")

	// A label cannot upload submissions
	recorder := suite.do(http.MethodPost, "/api/v1/submissions", suite.labelToken, nil, "multipart/form-data")
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	// An artist cannot rate
	recorder = suite.doJSON(http.MethodPut, fmt.Sprintf("/api/v1/submissions/%d/rating", submission.ID), suite.artistToken, types.RateSubmissionRequest{Score: 5})
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	// Anonymous discovery is rejected
	recorder = suite.doJSON(http.MethodGet, "/api/v1/discover", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// Garbage tokens are rejected
	recorder = suite.doJSON(http.MethodGet, "/api/v1/submissions", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestLifecycleGuards(t *testing.T) {
	suite := setupReviewTestSuite(t)
	submission := suite.uploadSubmission("Afterglow", "ambient")

	// PENDING cannot jump straight to APPROVED
	recorder := suite.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/submissions/%d/status", submission.ID), suite.labelToken, types.TransitionRequest{
		Status: models.StatusApproved,
	})
	assert.Equal(t, http.StatusConflict, recorder.Code)

	// Out-of-range scores never reach the database
	recorder = suite.doJSON(http.MethodPut, fmt.Sprintf("/api/v1/submissions/%d/rating", submission.ID), suite.labelToken, types.RateSubmissionRequest{Score: 9})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var count int64
	require.NoError(t, suite.db.DB.Model(&models.Rating{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
