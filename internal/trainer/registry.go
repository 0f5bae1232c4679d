package trainer

import (
	"time"

	"github.com/born-ml/digits/internal/linalg"
	"github.com/born-ml/digits/internal/model"
	"go.uber.org/atomic"
)

// Published is an immutable snapshot handed to inference callers.
type Published[T linalg.Float] struct {
	Model     model.Model[T]
	Run       string
	Records   int
	Published time.Time
}

// Registry holds the most recently published model.
//
// Readers call Current and run Inference on the returned model
// concurrently. The training loop never publishes a model it still mutates.
type Registry[T linalg.Float] struct {
	current atomic.Pointer[Published[T]]
}

// Publish makes the result of a finished run visible to readers.
func (r *Registry[T]) Publish(res *Result[T]) *Published[T] {
	p := &Published[T]{
		Model:     res.Model,
		Run:       res.Run,
		Records:   res.Records,
		Published: time.Now(),
	}
	r.current.Store(p)
	return p
}

// Current returns the latest published model, or nil if none.
func (r *Registry[T]) Current() *Published[T] {
	return r.current.Load()
}
