package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const (
	namespace = "session_server"

	labelResult = "result"

	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Login attempts by result",
	}, []string{labelResult})

	logouts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Logout requests",
	})

	sessionsSwept = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_swept_total",
		Help:      "Expired sessions removed by the sweeper",
	})

	activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions",
		Help:      "Sessions currently held in the registry",
	})
)

func IncLoginAttempts(result string) {
	m, err := loginAttempts.GetMetricWithLabelValues(result)
	if err != nil {
		log.Warn().Err(err).Msg("get metric")
		return
	}
	m.Inc()
}

func IncLogouts() {
	logouts.Inc()
}

func AddSessionsSwept(n int) {
	sessionsSwept.Add(float64(n))
}

func SetActiveSessions(n int) {
	activeSessions.Set(float64(n))
}

// Handler serves the default registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
