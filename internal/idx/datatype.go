package idx

import "fmt"

// DataType is the element-type tag stored in byte 2 of an IDX header.
type DataType byte

// Element types defined by the IDX format.
const (
	UnsignedByte DataType = 0x08
	SignedByte   DataType = 0x09
	Short        DataType = 0x0B
	Int          DataType = 0x0C
	Float        DataType = 0x0D
	Double       DataType = 0x0E
)

// Size returns the width of one element in bytes, or 0 for unknown tags.
func (t DataType) Size() int {
	switch t {
	case UnsignedByte, SignedByte:
		return 1
	case Short:
		return 2
	case Int, Float:
		return 4
	case Double:
		return 8
	default:
		return 0
	}
}

// Valid reports whether t is one of the defined element types.
func (t DataType) Valid() bool {
	return t.Size() > 0
}

// String returns a human-readable name.
func (t DataType) String() string {
	switch t {
	case UnsignedByte:
		return "unsigned byte"
	case SignedByte:
		return "signed byte"
	case Short:
		return "short"
	case Int:
		return "int"
	case Float:
		return "float"
	case Double:
		return "double"
	default:
		return fmt.Sprintf("DataType(0x%02X)", byte(t))
	}
}
