// Package byteorder decodes unsigned integers from raw buffers filled in by
// the operating system. A window shorter than the requested width decodes as
// zero instead of panicking; callers size-check whole buffers up front.
package byteorder

import "encoding/binary"

// Order is the endianness of a byte window
type Order int

const (
	LittleEndian Order = iota
	BigEndian
)

func (o Order) byteOrder() binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Uint decodes a width-byte (2, 4 or 8) unsigned integer from the start of b.
// Unknown widths and short windows yield 0.
func Uint(b []byte, width int, order Order) uint64 {
	if len(b) < width {
		return 0
	}
	bo := order.byteOrder()
	switch width {
	case 2:
		return uint64(bo.Uint16(b))
	case 4:
		return uint64(bo.Uint32(b))
	case 8:
		return bo.Uint64(b)
	}
	return 0
}

func BigEndianUint16(b []byte) uint16 { return uint16(Uint(b, 2, BigEndian)) }

func BigEndianUint32(b []byte) uint32 { return uint32(Uint(b, 4, BigEndian)) }

func BigEndianUint64(b []byte) uint64 { return Uint(b, 8, BigEndian) }

func LittleEndianUint16(b []byte) uint16 { return uint16(Uint(b, 2, LittleEndian)) }

func LittleEndianUint32(b []byte) uint32 { return uint32(Uint(b, 4, LittleEndian)) }

func LittleEndianUint64(b []byte) uint64 { return Uint(b, 8, LittleEndian) }
