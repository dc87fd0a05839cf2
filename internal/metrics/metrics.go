// Package metrics define las métricas Prometheus del servicio en un paquete
// propio para evitar ciclos de import entre HTTP y servicios.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_ms",
		Help:    "Duración de requests HTTP en milisegundos",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"method", "path", "status"})

	SignupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_signups_total",
		Help: "Signups por resultado (ok|conflict|error)",
	}, []string{"result"})

	SigninsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_signins_total",
		Help: "Signins por resultado (ok|unauthorized|error)",
	}, []string{"result"})

	TaskOpsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "task_ops_total",
		Help: "Operaciones de tareas por op y resultado",
	}, []string{"op", "result"})
)

// Register registra todas las métricas en reg (default si es nil).
// Tolera doble registro para no romper en tests.
func Register(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	for _, c := range []prometheus.Collector{
		HTTPRequestDuration, SignupsTotal, SigninsTotal, TaskOpsTotal,
	} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}
	return nil
}
