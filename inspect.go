package bmpsteg

import (
	"bytes"

	"golang.org/x/image/bmp"
)

// Inspect reports where the data region of carrier starts, how much it can
// hold, whether the header decodes as a bitmap, and whether the data region
// carries a well-formed frame.
//
// Only a carrier too short to hold the offset field is an error. An offset
// past the end of carrier is reported with a zero DataLen and Capacity.
func Inspect(carrier []byte) (Info, error) {
	off, err := LocateOffset(carrier)
	if err != nil {
		return Info{}, err
	}
	info := Info{DataOffset: off}
	if uint64(off) <= uint64(len(carrier)) {
		info.DataLen = len(carrier) - int(off)
	}
	if c, err := Capacity(carrier, off); err == nil {
		info.Capacity = c
	}
	if carrier[0] == Magic[0] && carrier[1] == Magic[1] {
		if cfg, err := bmp.DecodeConfig(bytes.NewReader(carrier)); err == nil {
			info.Bitmap = true
			info.Width = cfg.Width
			info.Height = cfg.Height
		}
	}
	if n, err := PayloadLen(carrier, off); err == nil {
		info.HasPayload = true
		info.PayloadLen = n
	}
	return info, nil
}
