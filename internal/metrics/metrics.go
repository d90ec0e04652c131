package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "english_school",
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "List cache lookups served from the cache.",
	}, []string{"region"})

	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "english_school",
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "List cache lookups that found no entry.",
	}, []string{"region"})

	CacheRefills = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "english_school",
		Subsystem: "cache",
		Name:      "refills_total",
		Help:      "Times a list cache region was reloaded from the database.",
	}, []string{"region"})

	CacheInvalidations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "english_school",
		Subsystem: "cache",
		Name:      "invalidations_total",
		Help:      "Explicit list cache evictions after writes.",
	}, []string{"region"})

	EntityWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "english_school",
		Name:      "entity_writes_total",
		Help:      "Committed writes by entity and operation.",
	}, []string{"entity", "op"})
)
