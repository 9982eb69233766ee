package bmpsteg

// Encode hides payload in the data region of carrier, starting at offset.
//
// The payload is framed with a 4-byte little-endian length and each frame byte
// is spread over the two low bits of four consecutive carrier bytes, least
// significant pair first. Bytes before offset and bytes past the frame are
// copied unchanged, so the result always has the same length as carrier.
// carrier itself is not modified.
//
// Encode returns ErrTruncatedInput if offset lies past the end of carrier,
// ErrPayloadTooLarge if the frame does not fit in the data region, and
// ErrLimitExceeded if the payload or carrier exceeds the configured [Limits].
func Encode(carrier []byte, offset uint32, payload []byte, opts ...WriteOption) ([]byte, error) {
	cfg := newWriteConfig(opts)
	return encode(carrier, offset, payload, cfg.limits)
}

// Hide is Encode with the offset read from the carrier header by
// [LocateOffset], unless WithWriteOffset is given.
func Hide(carrier, payload []byte, opts ...WriteOption) ([]byte, error) {
	cfg := newWriteConfig(opts)
	offset := cfg.offset
	if !cfg.hasOffset {
		off, err := LocateOffset(carrier)
		if err != nil {
			return nil, err
		}
		offset = off
	}
	return encode(carrier, offset, payload, cfg.limits)
}

func encode(carrier []byte, offset uint32, payload []byte, limits Limits) ([]byte, error) {
	if _, err := validateEncode(carrier, offset, payload, limits); err != nil {
		return nil, err
	}

	out := make([]byte, len(carrier))
	copy(out, carrier)
	data := out[offset:]
	writeFrameHeader(data, uint32(len(payload)))
	data = data[CarrierBytesFor(0):]
	for i, b := range payload {
		putByte(data[i*SlicesPerByte:], b)
	}
	return out, nil
}
