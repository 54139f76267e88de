package gasreport

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	treesAnalyzed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gas_reporter_trees_analyzed_total",
		Help: "Total number of call-trace trees analyzed",
	})

	nodesVisited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gas_reporter_trace_nodes_visited_total",
		Help: "Total number of trace nodes visited during analysis",
	})

	contractsReported = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gas_reporter_contracts_reported",
		Help: "Number of contracts in the finalized report",
	})
)
