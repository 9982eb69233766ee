package bmpsteg

const (
	// DataOffsetPos is the position of the 32-bit little-endian data offset
	// field in the carrier header.
	DataOffsetPos = 10

	// MinHeaderLen is the shortest carrier the locator can read an offset from.
	MinHeaderLen = DataOffsetPos + 4

	// LengthPrefixSize is the size of the frame's payload length field.
	LengthPrefixSize = 4

	// SlicesPerByte is the number of carrier bytes used to hold one frame byte.
	SlicesPerByte = 4

	sliceBits uint = 2
	sliceMask byte = 0x03
	keepMask  byte = 0xFC
)

// Magic is the 2-byte bitmap file signature. It is reported by [Inspect]
// but never required by the codec.
var Magic = [2]byte{'B', 'M'}

// FrameLen returns the number of frame bytes needed for a payload of n bytes.
func FrameLen(n int) int {
	return LengthPrefixSize + n
}

// CarrierBytesFor returns the number of data-region bytes a payload of n bytes
// occupies once framed.
func CarrierBytesFor(n int) int {
	return SlicesPerByte * FrameLen(n)
}

// Info summarizes a carrier as seen by [Inspect].
type Info struct {
	DataOffset uint32
	DataLen    int
	Capacity   int

	// Bitmap is set when the carrier starts with Magic and its header
	// decodes as a bitmap. Width and Height are only valid when it is set.
	Bitmap bool
	Width  int
	Height int

	// HasPayload is set when the length prefix in the data region describes
	// a frame that fits the carrier. Any carrier may pass this by chance.
	HasPayload bool
	PayloadLen uint32
}
