package bmpsteg

import (
	"encoding/binary"
	"fmt"
)

// LocateOffset returns the pixel data offset stored little-endian at
// DataOffsetPos. The signature and the rest of the header are not checked.
func LocateOffset(carrier []byte) (uint32, error) {
	if len(carrier) < MinHeaderLen {
		return 0, fmt.Errorf("%w: carrier is %d bytes, header needs %d", ErrTruncatedInput, len(carrier), MinHeaderLen)
	}
	return binary.LittleEndian.Uint32(carrier[DataOffsetPos:MinHeaderLen]), nil
}

func dataRegion(carrier []byte, offset uint32) ([]byte, error) {
	if uint64(offset) > uint64(len(carrier)) {
		return nil, fmt.Errorf("%w: data offset %d beyond carrier length %d", ErrTruncatedInput, offset, len(carrier))
	}
	return carrier[offset:], nil
}

// putByte spreads b over the low bits of dst[0:4], least significant pair first.
func putByte(dst []byte, b byte) {
	_ = dst[SlicesPerByte-1]
	for j := 0; j < SlicesPerByte; j++ {
		dst[j] = dst[j]&keepMask | (b>>(sliceBits*uint(j)))&sliceMask
	}
}

// getByte is the inverse of putByte.
func getByte(src []byte) byte {
	_ = src[SlicesPerByte-1]
	var b byte
	for j := 0; j < SlicesPerByte; j++ {
		b |= (src[j] & sliceMask) << (sliceBits * uint(j))
	}
	return b
}

func writeFrameHeader(region []byte, n uint32) {
	var prefix [LengthPrefixSize]byte
	binary.LittleEndian.PutUint32(prefix[:], n)
	for i, b := range prefix {
		putByte(region[i*SlicesPerByte:], b)
	}
}

func readFrameHeader(region []byte) (uint32, error) {
	if len(region) < CarrierBytesFor(0) {
		return 0, fmt.Errorf("%w: data region is %d bytes, length prefix needs %d", ErrTruncatedInput, len(region), CarrierBytesFor(0))
	}
	var prefix [LengthPrefixSize]byte
	for i := range prefix {
		prefix[i] = getByte(region[i*SlicesPerByte:])
	}
	return binary.LittleEndian.Uint32(prefix[:]), nil
}

// checkFrameFits reports ErrCorruptFrame when a payload of n bytes cannot be
// stored in region. The arithmetic is done in 64 bits so any n is safe.
func checkFrameFits(region []byte, n uint32) error {
	need := uint64(SlicesPerByte) * (uint64(LengthPrefixSize) + uint64(n))
	if need > uint64(len(region)) {
		return fmt.Errorf("%w: length prefix %d needs %d carrier bytes, %d available", ErrCorruptFrame, n, need, len(region))
	}
	return nil
}
