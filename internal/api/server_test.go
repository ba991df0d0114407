package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/repository"
	"github.com/alexanderramin/pulse/internal/service"
	"github.com/alexanderramin/pulse/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var apiNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func setupServer(t *testing.T) (*Server, *repository.SQLiteTaskRepo, *domain.User) {
	t.Helper()
	database := testutil.NewTestDB(t)
	tasks := repository.NewSQLiteTaskRepo(database)
	users := repository.NewSQLiteUserRepo(database)
	snapshots := repository.NewSQLiteScoreSnapshotRepo(database)
	svc := service.NewAnalyticsService(tasks, users, snapshots, service.AnalyticsOptions{})

	user := testutil.NewTestUser("ada", testutil.WithTeam("team-1"))
	require.NoError(t, users.Create(context.Background(), user))

	return NewServer(svc, nil), tasks, user
}

func doGET(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorDetail {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestExecutionScoreEndpoint(t *testing.T) {
	srv, tasks, user := setupServer(t)

	done := testutil.NewTestTask("shipped",
		testutil.WithAssignee(user.ID),
		testutil.WithStatus(domain.TaskDone),
		testutil.WithCompletedAt(apiNow.AddDate(0, 0, -1)))
	require.NoError(t, tasks.Create(context.Background(), done))

	rec := doGET(t, srv, "/my-work/execution-score?user="+user.ID+"&now=2025-06-15T12:00:00Z")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var score contract.ExecutionScore
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &score))
	assert.Greater(t, score.Current, 0.0)
	assert.LessOrEqual(t, score.Current, 100.0)
}

func TestVelocityEndpoint(t *testing.T) {
	srv, tasks, user := setupServer(t)

	done := testutil.NewTestTask("shipped",
		testutil.WithAssignee(user.ID),
		testutil.WithStatus(domain.TaskDone),
		testutil.WithCompletedAt(apiNow.AddDate(0, 0, -2)))
	require.NoError(t, tasks.Create(context.Background(), done))

	rec := doGET(t, srv, "/my-work/velocity?user="+user.ID+"&days=7&now=2025-06-15")
	require.Equal(t, http.StatusOK, rec.Code)

	var metrics contract.VelocityMetrics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &metrics))
	assert.Len(t, metrics.Daily, 7)
}

func TestBottlenecksEndpoint_EmptyIsJSONArray(t *testing.T) {
	srv, _, user := setupServer(t)

	rec := doGET(t, srv, "/my-work/bottlenecks?user="+user.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestWorkloadEndpoint(t *testing.T) {
	srv, _, _ := setupServer(t)

	rec := doGET(t, srv, "/my-work/workload?team=team-1&now=2025-06-15")
	require.Equal(t, http.StatusOK, rec.Code)

	var workload contract.TeamWorkload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &workload))
	assert.Len(t, workload.Members, 1)
}

func TestUnknownUserIs404(t *testing.T) {
	srv, _, _ := setupServer(t)

	rec := doGET(t, srv, "/my-work/execution-score?user=ghost")
	require.Equal(t, http.StatusNotFound, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, contract.ErrCodeUnknownUser, detail.Code)
}

func TestUnknownTeamIs404(t *testing.T) {
	srv, _, _ := setupServer(t)

	rec := doGET(t, srv, "/my-work/workload?team=ghosts")
	require.Equal(t, http.StatusNotFound, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, contract.ErrCodeUnknownTeam, detail.Code)
}

func TestMissingUserIs400(t *testing.T) {
	srv, _, _ := setupServer(t)

	rec := doGET(t, srv, "/my-work/velocity")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, contract.ErrCodeInvalidRequest, detail.Code)
}

func TestBadQueryParamsAre400(t *testing.T) {
	srv, _, user := setupServer(t)

	for _, path := range []string{
		"/my-work/velocity?user=" + user.ID + "&days=abc",
		"/my-work/velocity?user=" + user.ID + "&days=-3",
		"/my-work/velocity?user=" + user.ID + "&now=yesterday",
	} {
		rec := doGET(t, srv, path)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestWriteEndpointsRejected(t *testing.T) {
	srv, _, user := setupServer(t)

	req := httptest.NewRequest(http.MethodPost, "/my-work/execution-score?user="+user.ID, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealthz(t *testing.T) {
	srv, _, _ := setupServer(t)

	rec := doGET(t, srv, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
