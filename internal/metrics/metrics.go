package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fastfeet_front_cache_hits_total",
		Help: "Cache reads answered from a fresh entry, by resource kind.",
	},
		[]string{"kind"},
	)

	CacheMissesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fastfeet_front_cache_misses_total",
		Help: "Cache reads that issued an upstream fetch, by resource kind.",
	},
		[]string{"kind"},
	)

	CacheStaleServedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fastfeet_front_cache_stale_served_total",
		Help: "Cache reads answered from a stale entry while a background refetch ran.",
	},
		[]string{"kind"},
	)

	UpstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fastfeet_front_upstream_requests_total",
		Help: "Requests sent to the FastFeet API, by operation and outcome.",
	},
		[]string{"operation", "outcome"},
	)

	OrdersPickedUpTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fastfeet_front_orders_picked_up_total",
		Help: "Pick-up mutations confirmed by the server.",
	})

	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fastfeet_front_orders_created_total",
		Help: "Orders successfully created.",
	})

	RecipientsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fastfeet_front_recipients_created_total",
		Help: "Recipients successfully created.",
	})
)
