// Package main provides C-compatible exports for the bmpsteg library.
// Build with: go build -buildmode=c-shared -o bmpsteg.dll
package main

/*
#include <stdlib.h>
#include <stdint.h>

// Result structure for operations that return data
typedef struct {
    char* data;
    int   data_len;
    char* error;
} StegResult;
*/
import "C"

import (
	"unsafe"

	"github.com/logicossoftware/go-bmpsteg"
)

func main() {}

// StegFreeResult frees memory allocated by other Steg functions.
// Must be called to avoid memory leaks.
//
//export StegFreeResult
func StegFreeResult(result C.StegResult) {
	if result.data != nil {
		C.free(unsafe.Pointer(result.data))
	}
	if result.error != nil {
		C.free(unsafe.Pointer(result.error))
	}
}

// StegFreeString frees a C string allocated by Go.
//
//export StegFreeString
func StegFreeString(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

// makeResult creates a result with data.
func makeResult(data []byte) C.StegResult {
	var result C.StegResult
	if len(data) > 0 {
		result.data = (*C.char)(C.CBytes(data))
		result.data_len = C.int(len(data))
	}
	return result
}

// makeError creates a result with an error message.
func makeError(err error) C.StegResult {
	var result C.StegResult
	result.error = C.CString(err.Error())
	return result
}

// StegHide hides a payload in a bitmap carrier.
// Parameters:
//   - carrier: pointer to the carrier file bytes
//   - carrierLen: length of the carrier
//   - payload: pointer to the payload bytes (can be NULL when payloadLen is 0)
//   - payloadLen: length of the payload
//
// Returns StegResult with the modified carrier or error. Call StegFreeResult when done.
//
//export StegHide
func StegHide(carrier *C.char, carrierLen C.int, payload *C.char, payloadLen C.int) C.StegResult {
	goCarrier := C.GoBytes(unsafe.Pointer(carrier), carrierLen)
	var goPayload []byte
	if payload != nil && payloadLen > 0 {
		goPayload = C.GoBytes(unsafe.Pointer(payload), payloadLen)
	}

	out, err := bmpsteg.Hide(goCarrier, goPayload)
	if err != nil {
		return makeError(err)
	}
	return makeResult(out)
}

// StegReveal recovers the payload hidden in a bitmap carrier.
// An empty payload is returned as a result with NULL data and NULL error.
//
//export StegReveal
func StegReveal(carrier *C.char, carrierLen C.int) C.StegResult {
	goCarrier := C.GoBytes(unsafe.Pointer(carrier), carrierLen)

	payload, err := bmpsteg.Reveal(goCarrier)
	if err != nil {
		return makeError(err)
	}
	return makeResult(payload)
}

// StegCapacity returns the largest payload in bytes that fits in the carrier.
// Returns -1 on error.
//
//export StegCapacity
func StegCapacity(carrier *C.char, carrierLen C.int) C.int {
	goCarrier := C.GoBytes(unsafe.Pointer(carrier), carrierLen)

	off, err := bmpsteg.LocateOffset(goCarrier)
	if err != nil {
		return -1
	}
	n, err := bmpsteg.Capacity(goCarrier, off)
	if err != nil {
		return -1
	}
	return C.int(n)
}

// StegValidate checks that a carrier holds a well-formed frame.
// Returns NULL on success, or an error message string on failure.
// Call StegFreeString on the result if non-NULL.
//
//export StegValidate
func StegValidate(carrier *C.char, carrierLen C.int) *C.char {
	goCarrier := C.GoBytes(unsafe.Pointer(carrier), carrierLen)

	off, err := bmpsteg.LocateOffset(goCarrier)
	if err != nil {
		return C.CString(err.Error())
	}
	if _, err := bmpsteg.PayloadLen(goCarrier, off); err != nil {
		return C.CString(err.Error())
	}
	return nil
}
