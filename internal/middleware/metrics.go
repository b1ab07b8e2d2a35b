package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by command name.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "commons_redis_errors_total",
	Help: "Number of Redis command errors",
}, []string{"command"})

// AccountDeletionsFired counts deferred account deletions that found the
// pending flag still set and removed the account.
var AccountDeletionsFired = promauto.NewCounter(prometheus.CounterOpts{
	Name: "commons_account_deletions_fired_total",
	Help: "Deferred account deletions that executed",
})

// AccountDeletionsAborted counts deferred deletions that fired but found
// the pending flag cleared and did nothing.
var AccountDeletionsAborted = promauto.NewCounter(prometheus.CounterOpts{
	Name: "commons_account_deletions_aborted_total",
	Help: "Deferred account deletions that fired as a no-op",
})

var (
	promOnce     sync.Once
	promInstance *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the Prometheus middleware for the given service name.
// The middleware registers collectors in the default registry, so repeated
// calls return the instance created first.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promInstance = fiberprometheus.New(serviceName)
	})
	return promInstance
}

// MetricsMiddleware returns the request-level Prometheus middleware handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
