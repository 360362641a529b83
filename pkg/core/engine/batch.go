package engine

import (
	"context"
	"sync"
	"time"

	"finratio/pkg/core/metric"
)

// BatchRequest asks for a set of metrics to be evaluated against one
// company's financial-statement line items. An empty Metrics list means
// every registered metric.
type BatchRequest struct {
	CompanyName   string        `json:"company_name"`
	FinancialData metric.Inputs `json:"financial_data"`
	Metrics       []string      `json:"metrics,omitempty"`
}

// MetricError is a per-metric failure inside a batch. One bad metric id or
// missing line item never discards the results computed for the others.
type MetricError struct {
	MetricID string `json:"metric_id"`
	Message  string `json:"message"`
}

// BatchReport collects the results of one batch evaluation. Results keep
// the request order regardless of which goroutine finished first.
type BatchReport struct {
	CompanyName  string            `json:"company_name"`
	AnalysisDate time.Time         `json:"analysis_date"`
	Results      []*AnalysisResult `json:"results"`
	Errors       []MetricError     `json:"errors,omitempty"`
}

// EvaluateBatch evaluates each requested metric independently, fanning out
// one goroutine per metric and collecting into request-order slots. The
// evaluations share no mutable state, so no ordering dependency exists
// between them.
func (e *Engine) EvaluateBatch(ctx context.Context, req BatchRequest) *BatchReport {
	ids := req.Metrics
	if len(ids) == 0 {
		ids = e.registry.IDs()
	}

	results := make([]*AnalysisResult, len(ids))
	errs := make([]*MetricError, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(slot int, metricID string) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				errs[slot] = &MetricError{MetricID: metricID, Message: ctx.Err().Error()}
				return
			default:
			}

			res, err := e.Evaluate(metricID, req.FinancialData)
			if err != nil {
				errs[slot] = &MetricError{MetricID: metricID, Message: err.Error()}
				return
			}
			results[slot] = res
		}(i, id)
	}
	wg.Wait()

	report := &BatchReport{
		CompanyName:  req.CompanyName,
		AnalysisDate: time.Now().UTC(),
	}
	for i := range ids {
		if errs[i] != nil {
			report.Errors = append(report.Errors, *errs[i])
			continue
		}
		report.Results = append(report.Results, results[i])
	}
	return report
}
