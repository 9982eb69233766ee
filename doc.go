// Package bmpsteg hides arbitrary byte payloads in the pixel data of
// uncompressed bitmap images and recovers them.
//
// # Carrier Layout
//
// A carrier is any byte sequence with a 32-bit little-endian data offset at
// byte 10, the field a BMP file header uses to point at its pixel array.
// Bytes before the offset are never touched. From the offset onward every
// carrier byte stores two payload bits in its two least significant bits.
//
// The hidden data is a frame:
//   - a 4-byte little-endian payload length
//   - the payload bytes
//
// Each frame byte occupies four consecutive carrier bytes, least significant
// bit pair first. A payload of n bytes therefore needs 4*(n+4) bytes of pixel
// data; see [Capacity] and [CarrierBytesFor].
//
// # Basic Usage
//
// To hide a message in a bitmap:
//
//	carrier, _ := os.ReadFile("cover.bmp")
//	out, err := bmpsteg.Hide(carrier, []byte("meet at dawn"))
//	if err != nil {
//		return err
//	}
//	os.WriteFile("cover-out.bmp", out, 0o644)
//
// To recover it:
//
//	carrier, _ := os.ReadFile("cover-out.bmp")
//	msg, err := bmpsteg.Reveal(carrier)
//
// [Encode] and [Decode] take the data offset explicitly for callers that
// already know it. [HideFile] and [RevealFile] wrap the above with
// all-or-nothing file output.
//
// # Errors
//
// Malformed input is always reported, never truncated or read past:
// [ErrTruncatedInput] for carriers too short for the header or length prefix,
// [ErrCorruptFrame] for a length prefix pointing past the carrier,
// [ErrPayloadTooLarge] for payloads that do not fit, [ErrLimitExceeded] for
// inputs above the configured [Limits], and [ErrIO] for file failures.
//
// All functions are safe for concurrent use on independent buffers.
//
// The package does not compress, encrypt or otherwise disguise the payload.
package bmpsteg
