package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jrsteele09/go-session-server/internal/metrics"
	"github.com/stretchr/testify/require"
)

func TestHandlerExposesCounters(t *testing.T) {
	metrics.IncLoginAttempts(metrics.ResultSuccess)
	metrics.IncLoginAttempts(metrics.ResultFailure)
	metrics.IncLogouts()
	metrics.AddSessionsSwept(2)
	metrics.SetActiveSessions(3)

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	text := string(body)

	require.Contains(t, text, `session_server_login_attempts_total{result="success"}`)
	require.Contains(t, text, `session_server_login_attempts_total{result="failure"}`)
	require.Contains(t, text, "session_server_logouts_total")
	require.Contains(t, text, "session_server_sessions_swept_total")
	require.Contains(t, text, "session_server_sessions 3")
}
