// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package idx decodes paired IDX image and label files into a lazy sequence
// of records.
//
// Example:
//
//	seq, err := idx.Open("train-images-idx3-ubyte.gz", "train-labels-idx1-ubyte.gz")
//	if err != nil {
//	    return err
//	}
//	defer seq.Close()
//
//	for rec, err := range seq.Records() {
//	    if err != nil {
//	        return err
//	    }
//	    // rec.Image holds 784 pixels, rec.Label one digit.
//	}
package idx

import (
	"io"

	"github.com/born-ml/digits/internal/idx"
)

// DataType is the element-type tag of an IDX stream.
type DataType = idx.DataType

// Header is the decoded preamble of one IDX stream.
type Header = idx.Header

// Record is one image/label pair.
type Record = idx.Record

// Sequence yields records from two streams in lockstep.
type Sequence = idx.Sequence

// FormatError reports which stream failed to decode.
type FormatError = idx.FormatError

// Element types.
const (
	UnsignedByte = idx.UnsignedByte
	SignedByte   = idx.SignedByte
	Short        = idx.Short
	Int          = idx.Int
	Float        = idx.Float
	Double       = idx.Double
)

// Format errors.
var (
	ErrUnknownDataType   = idx.ErrUnknownDataType
	ErrTruncatedHeader   = idx.ErrTruncatedHeader
	ErrInvalidDimensions = idx.ErrInvalidDimensions
)

// ReadHeader decodes one header from r.
func ReadHeader(r io.Reader) (Header, error) { return idx.ReadHeader(r) }

// ReadHeaderFile decodes the header of the file at path.
func ReadHeaderFile(path string) (Header, error) { return idx.ReadHeaderFile(path) }

// NewSequence reads both headers and returns a sequence over the payloads.
func NewSequence(images, labels io.Reader) (*Sequence, error) {
	return idx.NewSequence(images, labels)
}

// Open opens two files, decompressing ".gz" names, and returns a sequence.
func Open(imagesPath, labelsPath string) (*Sequence, error) { return idx.Open(imagesPath, labelsPath) }
