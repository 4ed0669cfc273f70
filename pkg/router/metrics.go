package router

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jervis_router_requests_total",
			Help: "Total inference requests by priority, backend kind and outcome",
		},
		[]string{"priority", "backend", "outcome"},
	)
	preemptionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jervis_router_preemptions_total",
			Help: "Total NORMAL requests preempted by CRITICAL traffic",
		},
	)
	modelLoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jervis_router_model_loads_total",
			Help: "Total model load operations by outcome",
		},
		[]string{"outcome"},
	)
	modelUnloadsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jervis_router_model_unloads_total",
			Help: "Total model unload operations",
		},
	)
	reservationActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "jervis_router_reservation_active",
			Help: "1 while an orchestrator reservation is held",
		},
	)
	backendHealthy = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "jervis_router_backend_healthy",
			Help: "Backend health by name (1 healthy, 0 unhealthy)",
		},
		[]string{"backend"},
	)
	activeRequests = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "jervis_router_active_requests",
			Help: "In-flight requests by backend",
		},
		[]string{"backend"},
	)
)

// MetricsRegistry returns a registry with all router collectors registered.
func MetricsRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		requestsTotal,
		preemptionsTotal,
		modelLoadsTotal,
		modelUnloadsTotal,
		reservationActive,
		backendHealthy,
		activeRequests,
	)
	return reg
}
