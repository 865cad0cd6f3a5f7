package navigator

import "github.com/prometheus/client_golang/prometheus"

// QueriesCounter exposes the per-result query counter to tests.
func QueriesCounter(m *Metrics, result string) prometheus.Counter {
	return m.queries.WithLabelValues(result)
}
