package bmpsteg

import "fmt"

// Decode recovers the payload hidden in carrier at offset by Encode.
//
// The length prefix is rebuilt from the first 16 bytes of the data region and
// the payload from the 4*L bytes after it. The returned slice holds exactly
// the payload, with no prefix; an empty frame yields an empty, non-nil slice.
//
// Decode returns ErrTruncatedInput if the data region cannot hold a length
// prefix, ErrCorruptFrame if the prefix describes a payload longer than the
// data region, and ErrLimitExceeded if it exceeds the configured [Limits].
func Decode(carrier []byte, offset uint32, opts ...ReadOption) ([]byte, error) {
	cfg := newReadConfig(opts)
	return decode(carrier, offset, cfg.limits)
}

// Reveal is Decode with the offset read from the carrier header by
// [LocateOffset], unless WithReadOffset is given.
func Reveal(carrier []byte, opts ...ReadOption) ([]byte, error) {
	cfg := newReadConfig(opts)
	offset := cfg.offset
	if !cfg.hasOffset {
		off, err := LocateOffset(carrier)
		if err != nil {
			return nil, err
		}
		offset = off
	}
	return decode(carrier, offset, cfg.limits)
}

// PayloadLen returns the length recorded in the frame at offset without
// extracting the payload.
func PayloadLen(carrier []byte, offset uint32) (uint32, error) {
	region, err := dataRegion(carrier, offset)
	if err != nil {
		return 0, err
	}
	n, err := readFrameHeader(region)
	if err != nil {
		return 0, err
	}
	if err := checkFrameFits(region, n); err != nil {
		return 0, err
	}
	return n, nil
}

// Capacity returns the largest payload, in bytes, that fits in carrier at
// offset.
func Capacity(carrier []byte, offset uint32) (int, error) {
	region, err := dataRegion(carrier, offset)
	if err != nil {
		return 0, err
	}
	if len(region) < CarrierBytesFor(0) {
		return 0, fmt.Errorf("%w: data region is %d bytes, length prefix needs %d", ErrTruncatedInput, len(region), CarrierBytesFor(0))
	}
	return len(region)/SlicesPerByte - LengthPrefixSize, nil
}

func decode(carrier []byte, offset uint32, limits Limits) ([]byte, error) {
	region, n, err := validateDecode(carrier, offset, limits)
	if err != nil {
		return nil, err
	}

	out := make([]byte, n)
	data := region[CarrierBytesFor(0):]
	for i := range out {
		out[i] = getByte(data[i*SlicesPerByte:])
	}
	return out, nil
}
