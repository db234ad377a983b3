package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	actionsAppliedCounter  prometheus.Counter
	actionsRejectedCounter prometheus.Counter
	handsDealtCounter      prometheus.Counter
	showdownsCounter       prometheus.Counter
	activeRoomsGauge       prometheus.Gauge
}

func (m *metrics) ActionApplied() {
	m.actionsAppliedCounter.Inc()
}

func (m *metrics) ActionRejected() {
	m.actionsRejectedCounter.Inc()
}

func (m *metrics) HandDealt() {
	m.handsDealtCounter.Inc()
}

func (m *metrics) ShowdownSettled() {
	m.showdownsCounter.Inc()
}

func (m *metrics) SetActiveRoomCount(count int) {
	m.activeRoomsGauge.Set(float64(count))
}

var Metrics = &metrics{
	actionsAppliedCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "player_actions_applied_total",
		Help: "Total number of player actions applied to a game",
	}),
	actionsRejectedCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "player_actions_rejected_total",
		Help: "Total number of player actions ignored (wrong actor or no game)",
	}),
	handsDealtCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "hands_dealt_total",
		Help: "Total number of hands dealt",
	}),
	showdownsCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "showdowns_settled_total",
		Help: "Total number of hands settled at showdown",
	}),
	activeRoomsGauge: promauto.NewGauge(prometheus.GaugeOpts{
		Name: "active_rooms_count",
		Help: "Count of rooms with a live game instance",
	}),
}
