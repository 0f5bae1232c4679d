package trainer

// Progress is emitted after each consumed record.
type Progress struct {
	Completed int
	Total     int

	// Label is the digit of the record just consumed.
	Label int
}

// Ratio returns Completed/Total clamped to [0, 1]. It is 1 when Total is 0.
func (p Progress) Ratio() float64 {
	if p.Total <= 0 {
		return 1
	}
	return min(float64(p.Completed)/float64(p.Total), 1)
}

// report performs a non-blocking send. Events are dropped when the consumer
// is slow.
func report(ch chan<- Progress, p Progress) {
	if ch == nil {
		return
	}
	select {
	case ch <- p:
	default:
	}
}
