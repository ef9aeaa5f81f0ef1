package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Logins = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tantsuball_logins_total",
		Help: "Number of successful logins",
	})

	Registrations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tantsuball_registrations_total",
		Help: "Number of successful registrations",
	})

	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tantsuball_bookings_created_total",
		Help: "Number of bookings committed via the workflow",
	})

	BookingsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tantsuball_bookings_cancelled_total",
		Help: "Number of bookings cancelled by their owner",
	})

	WorkflowSteps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tantsuball_workflow_steps_total",
		Help: "Workflow step transitions by resulting step",
	}, []string{"step"})
)

// Handler exposes the default registry for the /metrics route.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
