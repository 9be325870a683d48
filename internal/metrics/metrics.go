package metrics

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var requestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "fileshare",
		Name:      "http_requests_total",
		Help:      "HTTP requests processed, partitioned by method, route and status.",
	},
	[]string{"method", "route", "status"},
)

// Register attaches the Prometheus metrics endpoint to the router.
func Register(router *gin.Engine, path string) {
	prometheus.MustRegister(requestsTotal)
	router.GET(path, gin.WrapH(promhttp.Handler()))
}

// Middleware counts completed requests per route and status.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
