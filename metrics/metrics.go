package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg            *prometheus.Registry
	OrdersPlaced   prometheus.Counter
	OrdersRejected prometheus.Counter
	OrdersFailed   prometheus.Counter
	BookingsMade   prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	placed := prometheus.NewCounter(prometheus.CounterOpts{Name: "gloryland_orders_placed_total"})
	rejected := prometheus.NewCounter(prometheus.CounterOpts{Name: "gloryland_orders_rejected_total"})
	failed := prometheus.NewCounter(prometheus.CounterOpts{Name: "gloryland_orders_failed_total"})
	bookings := prometheus.NewCounter(prometheus.CounterOpts{Name: "gloryland_bookings_made_total"})

	r.MustRegister(placed, rejected, failed, bookings)
	return &Registry{
		reg:            r,
		OrdersPlaced:   placed,
		OrdersRejected: rejected,
		OrdersFailed:   failed,
		BookingsMade:   bookings,
	}
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
