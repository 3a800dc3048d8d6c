/*
Package monitoring provides Prometheus metrics for file loads and dumps.

# Metrics

  - pplio_operations_total{op,suffix,status}: loads and dumps by outcome
  - pplio_operation_duration_seconds{op,suffix}: codec latency

# Usage

	reg := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(reg)

	timer := monitoring.NewTimer(metrics, monitoring.OpLoad, ".csv")
	obj, err := load(path, nil)
	timer.Stop(err)
*/
package monitoring
