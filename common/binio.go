package common

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// WriteUint8, WriteUint16, WriteUint32, WriteFloat32, and WriteFloat64 write
// a single little-endian value to w. The persisted BSP/IM formats are
// declared little-endian by contract (spec §4.7, §9 "Endianness") even
// though the reference writer this module is grounded on does host-native
// I/O; these helpers make the little-endian conversion explicit so the
// format is portable to a big-endian host.

func WriteUint8(w io.Writer, v uint8) error {
	_, err := w.Write([]byte{v})
	return err
}

func WriteUint16(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func WriteUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func WriteFloat32(w io.Writer, v float32) error {
	return WriteUint32(w, math.Float32bits(v))
}

func WriteFloat64(w io.Writer, v float64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	_, err := w.Write(buf[:])
	return err
}

// WriteCString writes s followed by a single NUL terminator. Callers are
// responsible for validating s is short, NUL-free, 7-bit ASCII before
// calling this (triangle.Table.Validate does so for texture names).
//
// Parameters:
//   - w: the destination to write s to
//   - s: the string to write, assumed NUL-free
//
// Returns:
//   - error: an I/O error from w
func WriteCString(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return err
	}
	return WriteUint8(w, 0)
}

func ReadUint8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func ReadUint16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

func ReadUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func ReadFloat32(r io.Reader) (float32, error) {
	bits, err := ReadUint32(r)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

func ReadFloat64(r io.Reader) (float64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf[:])), nil
}

// ReadCString reads bytes up to and including the next NUL terminator and
// returns the string without it. maxLen bounds how many bytes it will scan
// before giving up, so a corrupt file without a terminator can't spin
// forever reading one byte at a time.
//
// Parameters:
//   - r: the source to read the NUL-terminated string from
//   - maxLen: the maximum number of bytes to scan before giving up
//
// Returns:
//   - string: the string read, without its NUL terminator
//   - error: an I/O error from r, or no terminator found within maxLen bytes
func ReadCString(r io.Reader, maxLen int) (string, error) {
	buf := make([]byte, 0, 16)
	var b [1]byte
	for len(buf) <= maxLen {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return "", err
		}
		if b[0] == 0 {
			return string(buf), nil
		}
		buf = append(buf, b[0])
	}
	return "", fmt.Errorf("common: string exceeds %d bytes with no NUL terminator", maxLen)
}
