package engine

import "fmt"

// UnknownMetricError reports an evaluation request for a metric id that is
// not in the registry. This is a caller error; retrying without fixing the
// id is pointless.
type UnknownMetricError struct {
	MetricID string
}

func (e *UnknownMetricError) Error() string {
	return fmt.Sprintf("unknown metric %q", e.MetricID)
}

// MissingInputError reports a required line item absent from the inputs.
// Absent is distinct from present-with-value-zero: the latter is a valid
// figure, the former an incomplete statement.
type MissingInputError struct {
	MetricID string
	Input    string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("metric %q: missing required input %q", e.MetricID, e.Input)
}
