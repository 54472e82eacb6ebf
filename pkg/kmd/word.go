package kmd

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strings"
)

const instructionSize = 4

// Word is the decoded content of a body line.
// It is implemented by Instruction and Data.
type Word interface {
	// Bytes returns a copy of the bytes of the word.
	Bytes() []byte
	word()
}

// Instruction is a 32 bit instruction word in natural byte order.
// The dump format stores instruction bytes back to front, decoding
// reverses them.
type Instruction [instructionSize]byte

// Data is a sequence of data bytes in the order they appear in the dump.
type Data []byte

func (Instruction) word() {}
func (Data) word()        {}

// Bytes returns the instruction bytes.
func (i Instruction) Bytes() []byte {
	b := make([]byte, instructionSize)
	copy(b, i[:])
	return b
}

// Uint32 returns the instruction as value, as it was written in the dump.
func (i Instruction) Uint32() uint32 {
	return binary.LittleEndian.Uint32(i[:])
}

// String returns the instruction value as hex string.
func (i Instruction) String() string {
	return fmt.Sprintf("0x%08X", i.Uint32())
}

// MarshalJSON encodes the instruction as tagged object.
func (i Instruction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Bytes []int  `json:"bytes"`
	}{
		Type:  "instruction",
		Bytes: intBytes(i[:]),
	})
}

// Bytes returns the data bytes.
func (d Data) Bytes() []byte {
	b := make([]byte, len(d))
	copy(b, d)
	return b
}

// String returns the data bytes as space separated hex values.
func (d Data) String() string {
	parts := make([]string, len(d))
	for i, b := range d {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}

// MarshalJSON encodes the data as tagged object.
func (d Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Bytes []int  `json:"bytes"`
	}{
		Type:  "data",
		Bytes: intBytes(d),
	})
}

// intBytes avoids the base64 encoding that encoding/json applies to byte slices.
func intBytes(b []byte) []int {
	ints := make([]int, len(b))
	for i, v := range b {
		ints[i] = int(v)
	}
	return ints
}
