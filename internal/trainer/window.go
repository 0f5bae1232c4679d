package trainer

import "time"

// Window accumulates training throughput between log lines.
type Window struct {
	records int
	data    time.Duration
	compute time.Duration
	steps   int
	loss    float64
}

// Record adds one measurement: records consumed, time spent decoding and
// time spent in the gradient step.
func (w *Window) Record(records int, dataTime, computeTime time.Duration) {
	w.records += records
	w.data += dataTime
	w.compute += computeTime
	w.steps++
}

// SetLoss stores the most recently sampled loss.
func (w *Window) SetLoss(loss float64) {
	w.loss = loss
}

// Snapshot returns aggregated metrics and resets the window.
func (w *Window) Snapshot() Snapshot {
	snap := Snapshot{LastLoss: w.loss}
	total := w.data + w.compute
	if total > 0 {
		snap.RecordsPerSec = float64(w.records) / total.Seconds()
	}
	if w.steps > 0 {
		snap.AvgDataMS = (w.data.Seconds() * 1000) / float64(w.steps)
		snap.AvgComputeMS = (w.compute.Seconds() * 1000) / float64(w.steps)
	}

	*w = Window{loss: w.loss}
	return snap
}

// Snapshot represents loggable metrics.
type Snapshot struct {
	RecordsPerSec float64
	AvgDataMS     float64
	AvgComputeMS  float64
	LastLoss      float64
}
