package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	rescheduleTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "campervan_calendar",
			Name:      "reschedule_total",
			Help:      "Count of reschedule attempts by outcome.",
		},
		[]string{"outcome"},
	)

	stationSearchTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "campervan_calendar",
			Name:      "station_search_total",
			Help:      "Count of station search requests.",
		},
	)

	calendarRenderTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "campervan_calendar",
			Name:      "calendar_render_total",
			Help:      "Count of calendar render model computations by mode.",
		},
		[]string{"mode"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(rescheduleTotal, stationSearchTotal, calendarRenderTotal)
	})
}

func IncReschedule(outcome string) {
	rescheduleTotal.WithLabelValues(outcome).Inc()
}

func IncStationSearch() {
	stationSearchTotal.Inc()
}

func IncCalendarRender(mode string) {
	calendarRenderTotal.WithLabelValues(mode).Inc()
}
