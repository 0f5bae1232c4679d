package trainer

import (
	"context"
	"errors"
	"fmt"

	"github.com/born-ml/digits/internal/idx"
	"github.com/born-ml/digits/internal/linalg"
)

// Classes is the number of digit classes.
const Classes = 10

// Errors returned while consuming a dataset.
var (
	ErrLabelOutOfRange    = errors.New("label out of range")
	ErrUnsupportedPayload = errors.New("unsupported payload type")
)

// Source is a forward-only stream of paired records. *idx.Sequence
// implements it.
type Source interface {
	Next() bool
	Record() idx.Record
	Err() error
	ImageHeader() idx.Header
	LabelHeader() idx.Header
	Len() int
}

// Sample is one decoded test record.
type Sample struct {
	Image []byte
	Digit int
}

// Normalize maps raw pixel bytes to [0, 1].
func Normalize[T linalg.Float](image []byte) *linalg.Vector[T] {
	v := linalg.Zeros[T](len(image))
	for i, b := range image {
		v.Set(i, T(b)/255)
	}
	return v
}

// OneHot returns a vector of length classes with a 1 at class.
func OneHot[T linalg.Float](class, classes int) *linalg.Vector[T] {
	if class < 0 || class >= classes {
		panic(fmt.Sprintf("trainer: one hot: class %d out of range [0, %d)", class, classes))
	}
	v := linalg.Zeros[T](classes)
	v.Set(class, 1)
	return v
}

// checkSource rejects streams this package cannot interpret.
func checkSource(src Source) error {
	if h := src.ImageHeader(); h.Type != idx.UnsignedByte || h.CountPerItem < 1 {
		return fmt.Errorf("%w: images are %s", ErrUnsupportedPayload, h)
	}
	if h := src.LabelHeader(); h.Type != idx.UnsignedByte || h.CountPerItem != 1 {
		return fmt.Errorf("%w: labels are %s", ErrUnsupportedPayload, h)
	}
	return nil
}

func digit(rec idx.Record, index, classes int) (int, error) {
	d := int(rec.Label[0])
	if d >= classes {
		return 0, fmt.Errorf("record %d: %w: %d not in [0, %d)", index, ErrLabelOutOfRange, d, classes)
	}
	return d, nil
}

// LoadSamples decodes every remaining record of src into memory.
//
// Cancellation is checked between records; on cancellation no samples are
// returned.
func LoadSamples(ctx context.Context, src Source, progress chan<- Progress) ([]Sample, error) {
	if err := checkSource(src); err != nil {
		return nil, err
	}

	total := src.Len()
	samples := make([]Sample, 0, total)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !src.Next() {
			break
		}
		rec := src.Record()
		d, err := digit(rec, len(samples), Classes)
		if err != nil {
			return nil, err
		}
		samples = append(samples, Sample{Image: rec.Image, Digit: d})
		report(progress, Progress{Completed: len(samples), Total: total, Label: d})
	}
	if err := src.Err(); err != nil {
		return nil, fmt.Errorf("decode test set: %w", err)
	}
	return samples, nil
}
