package idx

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"go.uber.org/multierr"
)

// stream is an opened file, optionally behind a gzip reader.
type stream struct {
	io.Reader
	closers []io.Closer
}

func (s *stream) Close() error {
	var err error
	for i := len(s.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, s.closers[i].Close())
	}
	return err
}

// openStream opens path and decompresses it when the name ends in ".gz".
func openStream(path string) (*stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return &stream{Reader: f, closers: []io.Closer{f}}, nil
	}
	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("gzip %s: %w", path, err), f.Close())
	}
	return &stream{Reader: zr, closers: []io.Closer{f, zr}}, nil
}

// Open opens an image file and a label file and returns a sequence over
// them. The caller must Close the sequence.
func Open(imagesPath, labelsPath string) (*Sequence, error) {
	images, err := openStream(imagesPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", StreamImages, err)
	}
	labels, err := openStream(labelsPath)
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("open %s: %w", StreamLabels, err), images.Close())
	}

	seq, err := NewSequence(images, labels)
	if err != nil {
		return nil, multierr.Combine(err, images.Close(), labels.Close())
	}
	seq.closers = []io.Closer{images, labels}
	return seq, nil
}

// ReadHeaderFile decodes only the header of the file at path.
func ReadHeaderFile(path string) (Header, error) {
	s, err := openStream(path)
	if err != nil {
		return Header{}, err
	}
	h, err := ReadHeader(s)
	return h, multierr.Append(err, s.Close())
}
