package train

import (
	"log"
	"time"
)

// Progress is one training report.
type Progress struct {
	Iteration          int           // 1-indexed
	Loss               float64       // Cross-entropy of the training batch before the update
	TrainAccuracy      float64       // Accuracy of the training batch before the update
	ValidationAccuracy float64       // Accuracy of the updated parameters on the validation set
	Elapsed            time.Duration // Time since training started
}

// Reporter receives training progress.
type Reporter interface {
	Report(p Progress)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(p Progress)

// Report calls f(p).
func (f ReporterFunc) Report(p Progress) {
	f(p)
}

// LogReporter writes one line per report to a logger.
type LogReporter struct {
	logger *log.Logger
}

// NewLogReporter creates a LogReporter. A nil logger means log.Default().
func NewLogReporter(logger *log.Logger) *LogReporter {
	if logger == nil {
		logger = log.Default()
	}
	return &LogReporter{logger: logger}
}

// Report implements Reporter.
func (r *LogReporter) Report(p Progress) {
	r.logger.Printf("Iteration: %d, Loss: %.4f, Accuracy: %.4f, Validation Accuracy: %.4f",
		p.Iteration, p.Loss, p.TrainAccuracy, p.ValidationAccuracy)
}

// HistoryReporter records every report.
type HistoryReporter struct {
	History []Progress
}

// Report implements Reporter.
func (r *HistoryReporter) Report(p Progress) {
	r.History = append(r.History, p)
}

// Iterations returns the reported iteration numbers.
func (r *HistoryReporter) Iterations() []int {
	out := make([]int, len(r.History))
	for i, p := range r.History {
		out[i] = p.Iteration
	}
	return out
}

// Last returns the most recent report and false when nothing was reported.
func (r *HistoryReporter) Last() (Progress, bool) {
	if len(r.History) == 0 {
		return Progress{}, false
	}
	return r.History[len(r.History)-1], true
}

// MultiReporter forwards every report to each reporter in order.
type MultiReporter []Reporter

// Report implements Reporter.
func (m MultiReporter) Report(p Progress) {
	for _, r := range m {
		if r != nil {
			r.Report(p)
		}
	}
}

type nopReporter struct{}

func (nopReporter) Report(Progress) {}
