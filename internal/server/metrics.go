package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	GamesFinished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "manual_games_finished_total",
			Help: "Manual games finished, by outcome kind",
		},
		[]string{"kind"},
	)
	TrialsCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sim_trials_completed_total",
			Help: "Batch simulation trials fully counted",
		},
	)
	SimsStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sims_started_total",
			Help: "Batch simulations started",
		},
	)
	SimsCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sims_cancelled_total",
			Help: "Batch simulations stopped before completion",
		},
	)
	SimProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sim_progress_fraction",
			Help: "Progress of the current batch simulation in [0,1]",
		},
	)
)

func init() {
	prometheus.MustRegister(GamesFinished)
	prometheus.MustRegister(TrialsCompleted)
	prometheus.MustRegister(SimsStarted)
	prometheus.MustRegister(SimsCancelled)
	prometheus.MustRegister(SimProgress)
}
