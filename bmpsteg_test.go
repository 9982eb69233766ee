package bmpsteg

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"testing"
)

// rawCarrier returns a carrier whose header points at offset, followed by
// dataLen bytes of fill.
func rawCarrier(offset uint32, dataLen int, fill byte) []byte {
	c := make([]byte, int(offset)+dataLen)
	copy(c, Magic[:])
	binary.LittleEndian.PutUint32(c[DataOffsetPos:MinHeaderLen], offset)
	for i := int(offset); i < len(c); i++ {
		c[i] = fill
	}
	return c
}

func TestLocateOffset(t *testing.T) {
	c := rawCarrier(54, 8, 0)
	off, err := LocateOffset(c)
	if err != nil {
		t.Fatal(err)
	}
	if off != 54 {
		t.Fatalf("expected offset 54, got %d", off)
	}
}

func TestLocateOffset_Truncated(t *testing.T) {
	for n := 0; n < MinHeaderLen; n++ {
		_, err := LocateOffset(make([]byte, n))
		if !errors.Is(err, ErrTruncatedInput) {
			t.Fatalf("len %d: expected ErrTruncatedInput, got %v", n, err)
		}
	}
	if _, err := LocateOffset(make([]byte, MinHeaderLen)); err != nil {
		t.Fatalf("len %d: %v", MinHeaderLen, err)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	allBytes := make([]byte, 256)
	for i := range allBytes {
		allBytes[i] = byte(i)
	}
	payloads := [][]byte{
		nil,
		{},
		[]byte("A"),
		[]byte("Hello world!"),
		allBytes,
		bytes.Repeat([]byte{0xff}, 1000),
	}
	fills := []byte{0x00, 0x80, 0xff, 0x5a}
	for _, fill := range fills {
		for _, p := range payloads {
			t.Run(fmt.Sprintf("fill=%#x/len=%d", fill, len(p)), func(t *testing.T) {
				c := rawCarrier(54, CarrierBytesFor(len(p))+7, fill)
				out, err := Encode(c, 54, p)
				if err != nil {
					t.Fatalf("Encode: %v", err)
				}
				got, err := Decode(out, 54)
				if err != nil {
					t.Fatalf("Decode: %v", err)
				}
				if !bytes.Equal(got, p) {
					t.Fatalf("payload mismatch\nwant: %x\ngot:  %x", p, got)
				}
			})
		}
	}
}

func TestEncode_PreservesHeaderAndLength(t *testing.T) {
	c := rawCarrier(54, 400, 0x37)
	for i := 0; i < 54; i++ {
		c[i] ^= byte(i * 7)
	}
	binary.LittleEndian.PutUint32(c[DataOffsetPos:MinHeaderLen], 54)
	orig := append([]byte(nil), c...)

	out, err := Encode(c, 54, []byte("secret"))
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(c) {
		t.Fatalf("length changed: %d -> %d", len(c), len(out))
	}
	if !bytes.Equal(out[:54], c[:54]) {
		t.Fatal("header modified")
	}
	if !bytes.Equal(c, orig) {
		t.Fatal("input carrier modified")
	}
	used := CarrierBytesFor(len("secret"))
	if !bytes.Equal(out[54+used:], c[54+used:]) {
		t.Fatal("bytes past the frame modified")
	}
	for i := 54; i < 54+used; i++ {
		if out[i]&keepMask != c[i]&keepMask {
			t.Fatalf("byte %d: high bits changed %#x -> %#x", i, c[i], out[i])
		}
	}
}

func TestEncode_SingleByteScenario(t *testing.T) {
	c := rawCarrier(MinHeaderLen, 20, 0x00)
	out, err := Encode(c, MinHeaderLen, []byte{0x41})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{
		1, 0, 0, 0, // length byte 0 = 0x01
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		1, 0, 0, 1, // 0x41 = 0b01_00_00_01
	}
	if !bytes.Equal(out[MinHeaderLen:], want) {
		t.Fatalf("data region mismatch\nwant: %v\ngot:  %v", want, out[MinHeaderLen:])
	}
	n, err := PayloadLen(out, MinHeaderLen)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("expected length 1, got %d", n)
	}
	got, err := Decode(out, MinHeaderLen)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{0x41}) {
		t.Fatalf("expected [0x41], got %x", got)
	}
}

func TestEncode_EmptyPayload(t *testing.T) {
	c := rawCarrier(54, 16, 0xff)
	out, err := Encode(c, 54, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i, b := range out[54:] {
		if b != keepMask {
			t.Fatalf("byte %d: expected %#x, got %#x", i, keepMask, b)
		}
	}
	got, err := Decode(out, 54)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil payload, got %#v", got)
	}
}

func TestEncode_CapacityBoundary(t *testing.T) {
	c := rawCarrier(54, 40, 0)
	capacity, err := Capacity(c, 54)
	if err != nil {
		t.Fatal(err)
	}
	if capacity != 6 {
		t.Fatalf("expected capacity 6, got %d", capacity)
	}
	out, err := Encode(c, 54, bytes.Repeat([]byte("x"), capacity))
	if err != nil {
		t.Fatalf("payload at capacity: %v", err)
	}
	if got, err := Decode(out, 54); err != nil || len(got) != capacity {
		t.Fatalf("decode at capacity: %d bytes, %v", len(got), err)
	}
	_, err = Encode(c, 54, bytes.Repeat([]byte("x"), capacity+1))
	if !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("expected ErrPayloadTooLarge, got %v", err)
	}
}

func TestEncode_RegionTooSmallForPrefix(t *testing.T) {
	c := rawCarrier(54, 15, 0)
	_, err := Encode(c, 54, nil)
	if !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("expected ErrPayloadTooLarge, got %v", err)
	}
}

func TestEncode_OffsetPastEnd(t *testing.T) {
	c := rawCarrier(54, 10, 0)
	_, err := Encode(c, uint32(len(c)+1), []byte("x"))
	if !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("expected ErrTruncatedInput, got %v", err)
	}
}

func TestHideReveal(t *testing.T) {
	c := rawCarrier(54, 200, 0x99)
	out, err := Hide(c, []byte("meet at dawn"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Reveal(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "meet at dawn" {
		t.Fatalf("got %q", got)
	}
}

func TestHideReveal_OffsetOverride(t *testing.T) {
	// The header field points past the end; the override makes it usable.
	c := rawCarrier(54, 200, 0x10)
	binary.LittleEndian.PutUint32(c[DataOffsetPos:MinHeaderLen], 0xffffffff)

	if _, err := Hide(c, []byte("x")); !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("expected ErrTruncatedInput, got %v", err)
	}
	out, err := Hide(c, []byte("override"), WithWriteOffset(54))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Reveal(out); !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("expected ErrTruncatedInput, got %v", err)
	}
	got, err := Reveal(out, WithReadOffset(54))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "override" {
		t.Fatalf("got %q", got)
	}
}

func TestHide_TruncatedCarrier(t *testing.T) {
	if _, err := Hide(make([]byte, 13), []byte("x")); !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("expected ErrTruncatedInput, got %v", err)
	}
	if _, err := Reveal(make([]byte, 13)); !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("expected ErrTruncatedInput, got %v", err)
	}
}

func TestEncodeDecode_Concurrent(t *testing.T) {
	c := rawCarrier(54, 4096, 0x42)
	orig := append([]byte(nil), c...)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := bytes.Repeat([]byte{byte(i)}, 10*i)
			out, err := Encode(c, 54, p)
			if err != nil {
				t.Errorf("worker %d: Encode: %v", i, err)
				return
			}
			got, err := Decode(out, 54)
			if err != nil {
				t.Errorf("worker %d: Decode: %v", i, err)
				return
			}
			if !bytes.Equal(got, p) {
				t.Errorf("worker %d: payload mismatch", i)
			}
		}(i)
	}
	wg.Wait()
	if !bytes.Equal(c, orig) {
		t.Fatal("shared carrier modified")
	}
}
