package bmpsteg

import (
	"fmt"
	"math"
)

// validateEncode checks that a frame for payload can be written to carrier at
// offset and returns the data region it will occupy.
func validateEncode(carrier []byte, offset uint32, payload []byte, limits Limits) ([]byte, error) {
	if err := validateCarrier(carrier, limits); err != nil {
		return nil, err
	}
	region, err := dataRegion(carrier, offset)
	if err != nil {
		return nil, err
	}
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: payload length %d does not fit the length prefix", ErrPayloadTooLarge, len(payload))
	}
	if uint64(len(payload)) > uint64(limits.MaxPayloadLen) {
		return nil, fmt.Errorf("%w: payload length %d", ErrLimitExceeded, len(payload))
	}
	if need := CarrierBytesFor(len(payload)); need > len(region) {
		return nil, fmt.Errorf("%w: frame needs %d carrier bytes, %d available", ErrPayloadTooLarge, need, len(region))
	}
	return region, nil
}

// validateDecode checks the frame stored in carrier at offset and returns the
// data region together with the recorded payload length.
func validateDecode(carrier []byte, offset uint32, limits Limits) ([]byte, uint32, error) {
	if err := validateCarrier(carrier, limits); err != nil {
		return nil, 0, err
	}
	region, err := dataRegion(carrier, offset)
	if err != nil {
		return nil, 0, err
	}
	n, err := readFrameHeader(region)
	if err != nil {
		return nil, 0, err
	}
	if n > limits.MaxPayloadLen {
		return nil, 0, fmt.Errorf("%w: payload length %d", ErrLimitExceeded, n)
	}
	if err := checkFrameFits(region, n); err != nil {
		return nil, 0, err
	}
	return region, n, nil
}

func validateCarrier(carrier []byte, limits Limits) error {
	if uint64(len(carrier)) > limits.MaxCarrierLen {
		return fmt.Errorf("%w: carrier length %d", ErrLimitExceeded, len(carrier))
	}
	return nil
}
