package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Accounts
	UsersRegistered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "Total successful registrations",
		},
	)
	LoginFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "login_failures_total",
			Help: "Logins rejected for a wrong password",
		},
	)

	// Posts
	PostsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "posts_created_total",
			Help: "Total posts created",
		},
	)
	PostsDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "posts_deleted_total",
			Help: "Total posts deleted",
		},
	)

	// Image relay
	ImageUploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "image_uploads_total",
			Help: "Image uploads by outcome",
		},
		[]string{"result"}, // ok|rejected|failed
	)

	initOnce sync.Once
)

// /metrics endpoint handler
var Handler = promhttp.Handler

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestsTotal)
		prometheus.MustRegister(UsersRegistered)
		prometheus.MustRegister(LoginFailures)
		prometheus.MustRegister(PostsCreated)
		prometheus.MustRegister(PostsDeleted)
		prometheus.MustRegister(ImageUploads)
	})
}
