package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	hits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finvue_cache_hits_total",
		Help: "Number of cache reads served from an unexpired entry.",
	}, []string{"class"})

	misses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finvue_cache_misses_total",
		Help: "Number of cache reads that had to compute their value.",
	}, []string{"class"})

	invalidations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finvue_cache_invalidations_total",
		Help: "Number of cache entries removed by explicit invalidation.",
	}, []string{"class"})
)
