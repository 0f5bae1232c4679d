package idx

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Header is the decoded preamble of one IDX stream.
//
// Layout, big-endian:
//
//	bytes 0-1   reserved
//	byte  2     element type
//	byte  3     dimensionality d (>= 1)
//	4*d bytes   dimension sizes, item count first
type Header struct {
	Type DataType

	// Dimensions is the rank byte d.
	Dimensions int

	// ItemCount is the leading dimension: the number of records.
	ItemCount int

	// CountPerItem is the product of all dimensions after the first.
	CountPerItem int

	// Sizes lists every dimension, ItemCount first.
	Sizes []int
}

// ItemSize returns the number of payload bytes one item spans.
func (h Header) ItemSize() int {
	return h.CountPerItem * h.Type.Size()
}

// String renders the header as "unsigned byte [60000 28 28]".
func (h Header) String() string {
	parts := make([]string, len(h.Sizes))
	for i, s := range h.Sizes {
		parts[i] = strconv.Itoa(s)
	}
	return fmt.Sprintf("%s [%s]", h.Type, strings.Join(parts, " "))
}

// ReadHeader decodes a header from r, consuming exactly 4+4*d bytes.
func ReadHeader(r io.Reader) (Header, error) {
	var preamble [4]byte
	if _, err := io.ReadFull(r, preamble[:]); err != nil {
		return Header{}, headerReadError(err)
	}

	h := Header{
		Type:       DataType(preamble[2]),
		Dimensions: int(preamble[3]),
	}
	if !h.Type.Valid() {
		return Header{}, fmt.Errorf("%w: 0x%02X", ErrUnknownDataType, preamble[2])
	}
	if h.Dimensions < 1 {
		return Header{}, fmt.Errorf("%w: rank must be at least 1", ErrInvalidDimensions)
	}

	raw := make([]byte, 4*h.Dimensions)
	if _, err := io.ReadFull(r, raw); err != nil {
		return Header{}, headerReadError(err)
	}

	h.Sizes = make([]int, h.Dimensions)
	h.CountPerItem = 1
	for i := range h.Sizes {
		size := int(binary.BigEndian.Uint32(raw[4*i:]))
		h.Sizes[i] = size
		if i == 0 {
			continue
		}
		if size != 0 && h.CountPerItem > math.MaxInt32/size {
			return Header{}, fmt.Errorf("%w: item of %v elements is too large", ErrInvalidDimensions, h.Sizes[1:i+1])
		}
		h.CountPerItem *= size
	}
	h.ItemCount = h.Sizes[0]
	return h, nil
}

func headerReadError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncatedHeader
	}
	return fmt.Errorf("read header: %w", err)
}
