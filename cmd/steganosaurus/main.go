// Command steganosaurus hides messages or files in bitmap images.
//
// Usage:
//
//	steganosaurus encode [-file PATH] [-offset N] <INPUT> <OUTPUT> [MESSAGE]
//	steganosaurus decode [-offset N] <INPUT> <OUTPUT>
//	steganosaurus inspect <INPUT>
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/logicossoftware/go-bmpsteg"
)

const usage = `steganosaurus v0.2.0

Usage:
    steganosaurus MODE [FLAGS] <INPUT> <OUTPUT> [MESSAGE]
    steganosaurus inspect <INPUT>

Hide messages or files in plain sight with steganography.

Modes:
    encode, enc, e      Encodes MESSAGE into the INPUT file and saves it to OUTPUT
    decode, dec, d      Decodes the message from INPUT and writes it to OUTPUT
    inspect, info, i    Prints the data offset, capacity and hidden frame of INPUT

Flags:
    -file PATH          Hide the content of PATH instead of MESSAGE (encode only)
    -offset N           Use N as the data offset instead of the INPUT header field
    -max-payload N      Largest payload to hide or recover, in bytes

ARGS:
    INPUT      The input image to use.
    OUTPUT     The location to save the output image (in encode mode) or the
               decoded message (in decode mode).
    MESSAGE    The message to hide in the image (only in encode mode).
`

type mode int

const (
	modeEncode mode = iota
	modeDecode
	modeInspect
)

func parseMode(s string) (mode, bool) {
	switch s {
	case "encode", "enc", "e":
		return modeEncode, true
	case "decode", "dec", "d":
		return modeDecode, true
	case "inspect", "info", "i":
		return modeInspect, true
	}
	return 0, false
}

type options struct {
	payloadPath string
	offset      int64
	maxPayload  uint64
}

func (o options) limits() bmpsteg.Limits {
	return bmpsteg.Limits{MaxPayloadLen: uint32(o.maxPayload)}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("steganosaurus: ")

	if len(os.Args) < 2 {
		usageError()
	}
	switch os.Args[1] {
	case "help", "-h", "--help":
		fmt.Print(usage)
		return
	}
	m, ok := parseMode(os.Args[1])
	if !ok {
		usageError()
	}

	var opts options
	fs := flag.NewFlagSet(os.Args[1], flag.ExitOnError)
	fs.StringVar(&opts.payloadPath, "file", "", "file to hide instead of MESSAGE")
	fs.Int64Var(&opts.offset, "offset", -1, "data offset override")
	fs.Uint64Var(&opts.maxPayload, "max-payload", 0, "largest payload in bytes (0 = library default)")
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	_ = fs.Parse(os.Args[2:])

	if opts.offset > math.MaxUint32 || opts.offset < -1 {
		log.Fatalf("-offset %d out of range", opts.offset)
	}
	if opts.maxPayload > math.MaxUint32 {
		log.Fatalf("-max-payload %d out of range", opts.maxPayload)
	}

	args := fs.Args()
	switch m {
	case modeEncode:
		runEncode(args, opts)
	case modeDecode:
		runDecode(args, opts)
	case modeInspect:
		runInspect(args, opts)
	}
}

func runEncode(args []string, opts options) {
	var payload []byte
	switch {
	case opts.payloadPath != "" && len(args) == 2:
		b, err := os.ReadFile(opts.payloadPath)
		if err != nil {
			log.Fatalf("read payload: %v", err)
		}
		payload = b
	case opts.payloadPath == "" && len(args) == 3:
		payload = []byte(args[2])
	default:
		usageError()
	}

	wopts := []bmpsteg.WriteOption{bmpsteg.WithWriteLimits(opts.limits())}
	if opts.offset >= 0 {
		wopts = append(wopts, bmpsteg.WithWriteOffset(uint32(opts.offset)))
	}
	if err := bmpsteg.HideFile(args[0], args[1], payload, wopts...); err != nil {
		log.Fatalf("encode: %v", err)
	}
	fmt.Printf("hid %d bytes in %s\n", len(payload), args[1])
}

func runDecode(args []string, opts options) {
	if len(args) != 2 || opts.payloadPath != "" {
		usageError()
	}
	ropts := []bmpsteg.ReadOption{bmpsteg.WithReadLimits(opts.limits())}
	if opts.offset >= 0 {
		ropts = append(ropts, bmpsteg.WithReadOffset(uint32(opts.offset)))
	}
	if err := bmpsteg.RevealFile(args[0], args[1], ropts...); err != nil {
		log.Fatalf("decode: %v", err)
	}
	fmt.Printf("wrote %s\n", args[1])
}

type report struct {
	DataOffset uint32 `json:"data_offset"`
	DataLen    int    `json:"data_len"`
	Capacity   int    `json:"capacity"`
	Bitmap     bool   `json:"bitmap"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	HasPayload bool   `json:"has_payload"`
	PayloadLen uint32 `json:"payload_len,omitempty"`
}

func runInspect(args []string, opts options) {
	if len(args) != 1 || opts.payloadPath != "" || opts.offset >= 0 {
		usageError()
	}
	carrier, err := os.ReadFile(args[0])
	if err != nil {
		log.Fatalf("read carrier: %v", err)
	}
	info, err := bmpsteg.Inspect(carrier)
	if err != nil {
		log.Fatalf("inspect: %v", err)
	}
	b, _ := json.MarshalIndent(report(info), "", "  ")
	fmt.Println(string(b))
}

func usageError() {
	fmt.Fprint(os.Stderr, usage)
	os.Exit(2)
}
