// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

// Package state defines the binary encoding of emulation state. The hardware
// packages write their fields, in a fixed order, to an Encoder and read them
// back from a Decoder in the same order. Sections are tagged so that a
// mismatch between the writer and the reader is detected rather than
// producing a corrupt emulation.
//
// The package does not concern itself with where or how the encoded data is
// stored.
package state

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/jetsetilly/gophernes/curated"
)

// Error is the pattern for all errors returned by the Decoder.
const Error = "state: %v"

// Encoder accumulates encoded state. Encoding never fails.
type Encoder struct {
	buf bytes.Buffer
}

// NewEncoder is the preferred method of initialisation for the Encoder type.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Data returns the encoded state.
func (enc *Encoder) Data() []byte {
	return enc.buf.Bytes()
}

// Section writes a four character tag marking the start of a new section.
func (enc *Encoder) Section(tag string) {
	var t [4]byte
	copy(t[:], tag)
	enc.buf.Write(t[:])
}

func (enc *Encoder) Uint8(v uint8) {
	enc.buf.WriteByte(v)
}

func (enc *Encoder) Uint16(v uint16) {
	binary.Write(&enc.buf, binary.LittleEndian, v)
}

func (enc *Encoder) Uint32(v uint32) {
	binary.Write(&enc.buf, binary.LittleEndian, v)
}

func (enc *Encoder) Uint64(v uint64) {
	binary.Write(&enc.buf, binary.LittleEndian, v)
}

// Int is encoded as a signed 32 bit value.
func (enc *Encoder) Int(v int) {
	binary.Write(&enc.buf, binary.LittleEndian, int32(v))
}

func (enc *Encoder) Bool(v bool) {
	if v {
		enc.buf.WriteByte(1)
	} else {
		enc.buf.WriteByte(0)
	}
}

// Bytes writes a length prefixed byte slice.
func (enc *Encoder) Bytes(v []byte) {
	enc.Uint32(uint32(len(v)))
	enc.buf.Write(v)
}

// Decoder reads encoded state. The first error encountered is sticky: all
// subsequent reads return zero values and Err() returns the first error.
type Decoder struct {
	r   *bytes.Reader
	err error
}

// NewDecoder is the preferred method of initialisation for the Decoder type.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{r: bytes.NewReader(data)}
}

// Err returns the first error encountered while decoding.
func (dec *Decoder) Err() error {
	return dec.err
}

// Invalid records that a decoded value is out of range for the field it was
// read into. It has no effect if an error has already been recorded.
func (dec *Decoder) Invalid(field string, value int) {
	if dec.err == nil {
		dec.err = curated.Errorf(Error, fmt.Sprintf("%s out of range (%d)", field, value))
	}
}

// Remaining returns the number of bytes that have not been read.
func (dec *Decoder) Remaining() int {
	return dec.r.Len()
}

func (dec *Decoder) read(v interface{}) {
	if dec.err != nil {
		return
	}
	if err := binary.Read(dec.r, binary.LittleEndian, v); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		dec.err = curated.Errorf(Error, err)
	}
}

// Section checks that the next four bytes match the tag.
func (dec *Decoder) Section(tag string) {
	var t, expected [4]byte
	copy(expected[:], tag)
	dec.read(&t)
	if dec.err == nil && t != expected {
		dec.err = curated.Errorf(Error, "expected section "+tag)
	}
}

func (dec *Decoder) Uint8() uint8 {
	var v uint8
	dec.read(&v)
	return v
}

func (dec *Decoder) Uint16() uint16 {
	var v uint16
	dec.read(&v)
	return v
}

func (dec *Decoder) Uint32() uint32 {
	var v uint32
	dec.read(&v)
	return v
}

func (dec *Decoder) Uint64() uint64 {
	var v uint64
	dec.read(&v)
	return v
}

func (dec *Decoder) Int() int {
	var v int32
	dec.read(&v)
	return int(v)
}

func (dec *Decoder) Bool() bool {
	return dec.Uint8() != 0
}

// Bytes reads a length prefixed byte slice into dst. The encoded length must
// match the length of dst.
func (dec *Decoder) Bytes(dst []byte) {
	n := dec.Uint32()
	if dec.err != nil {
		return
	}
	if int(n) != len(dst) {
		dec.err = curated.Errorf(Error, "byte slice length mismatch")
		return
	}
	dec.read(dst)
}
