// Package idx decodes paired IDX streams (MNIST images and labels) into a
// lazy, forward-only sequence of records.
//
// Each stream starts with a Header. Records are then read in lockstep: one
// item from the image stream and one from the label stream. A short read on
// either side ends the sequence; it is the normal end of data, not an error.
package idx

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"iter"

	"go.uber.org/multierr"
)

// Stream names used in FormatError.
const (
	StreamImages = "images"
	StreamLabels = "labels"
)

// Record is one decoded pair. The caller owns both slices.
type Record struct {
	Image []byte
	Label []byte
}

// Sequence yields records from an image stream and a label stream.
//
// Usage follows bufio.Scanner:
//
//	for seq.Next() {
//	    rec := seq.Record()
//	    ...
//	}
//	if err := seq.Err(); err != nil { ... }
//
// A Sequence is not safe for concurrent use and cannot be restarted.
type Sequence struct {
	images, labels *bufio.Reader
	imageHeader    Header
	labelHeader    Header
	closers        []io.Closer

	limit   int
	emitted int
	current Record
	err     error
	done    bool
}

// NewSequence reads both headers and returns a sequence positioned at the
// first record. Format errors are returned as *FormatError.
func NewSequence(images, labels io.Reader) (*Sequence, error) {
	s := &Sequence{
		images: bufio.NewReader(images),
		labels: bufio.NewReader(labels),
	}

	var err error
	if s.imageHeader, err = ReadHeader(s.images); err != nil {
		return nil, &FormatError{Stream: StreamImages, Err: err}
	}
	if s.labelHeader, err = ReadHeader(s.labels); err != nil {
		return nil, &FormatError{Stream: StreamLabels, Err: err}
	}
	s.limit = min(s.imageHeader.ItemCount, s.labelHeader.ItemCount)
	return s, nil
}

// ImageHeader returns the header of the image stream.
func (s *Sequence) ImageHeader() Header { return s.imageHeader }

// LabelHeader returns the header of the label stream.
func (s *Sequence) LabelHeader() Header { return s.labelHeader }

// Len returns the number of records both headers declare. Fewer may be
// produced if a stream is truncated.
func (s *Sequence) Len() int { return s.limit }

// Next advances to the next record. It returns false at the end of data or
// after an I/O error, which Err then reports.
func (s *Sequence) Next() bool {
	if s.done {
		return false
	}
	if s.emitted >= s.limit {
		s.finish(nil)
		return false
	}

	image, ok := s.readItem(s.images, s.imageHeader.ItemSize())
	if !ok {
		return false
	}
	label, ok := s.readItem(s.labels, s.labelHeader.ItemSize())
	if !ok {
		return false
	}

	s.current = Record{Image: image, Label: label}
	s.emitted++
	return true
}

// readAhead caps how much of an item is allocated before its bytes arrive.
const readAhead = 1 << 16

// readItem reads one item of size bytes. Memory grows with the bytes actually
// read, so a header declaring huge items cannot force a huge allocation.
func (s *Sequence) readItem(r *bufio.Reader, size int) ([]byte, bool) {
	var buf bytes.Buffer
	buf.Grow(min(size, readAhead))
	if _, err := io.CopyN(&buf, r, int64(size)); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			err = nil
		}
		s.finish(err)
		return nil, false
	}
	return buf.Bytes(), true
}

func (s *Sequence) finish(err error) {
	s.done = true
	s.current = Record{}
	s.err = err
}

// Record returns the record produced by the last successful Next.
func (s *Sequence) Record() Record { return s.current }

// Err returns the first non-EOF I/O error encountered, if any.
func (s *Sequence) Err() error { return s.err }

// Emitted returns how many records have been produced so far.
func (s *Sequence) Emitted() int { return s.emitted }

// Records returns an iterator over the remaining records. If iteration stops
// on an I/O error, the error is yielded once with a zero Record.
func (s *Sequence) Records() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for s.Next() {
			if !yield(s.Record(), nil) {
				return
			}
		}
		if err := s.Err(); err != nil {
			yield(Record{}, err)
		}
	}
}

// Close releases the underlying streams if the sequence was created by Open.
// Errors from both streams are combined.
func (s *Sequence) Close() error {
	var err error
	for _, c := range s.closers {
		err = multierr.Append(err, c.Close())
	}
	s.closers = nil
	return err
}
