package ledger

// MetricsCollector records ledger operation outcomes.
type MetricsCollector interface {
	RecordMutation(entryType string, amount float64)
	RecordError(operation, errType string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordMutation(string, float64) {}
func (n *NoopMetricsCollector) RecordError(string, string)     {}
