// Package mail implements the TLV framed message format exchanged between
// Hyperion and a module's child process over stdin/stdout.
package mail

import (
	"encoding/binary"
	"errors"
	"io"
)

const (
	// TypeSize is the width in bytes of the type field.
	TypeSize = 1
	// PayloadSize is the width in bytes of the big-endian length prefix.
	PayloadSize = 8
	// HeaderSize is the combined width of type + length prefix.
	HeaderSize = TypeSize + PayloadSize

	// readChunk is the size of each read performed while filling the
	// rolling decode buffer.
	readChunk = 128
)

// Data type discriminants carried in Mail.Type.
const (
	// Log marks a mail carrying a line of process log output.
	Log byte = 0
	// Data marks a mail carrying application data destined for the bus.
	Data byte = 1
)

// ErrShortWrite is returned when a partial write occurs while encoding a
// Mail to a stream.
var ErrShortWrite = errors.New("mail: short write")

// Mail is a single TLV-framed message: Type (1 byte), Size (8 bytes,
// big-endian), Data (Size bytes).
type Mail struct {
	Type byte
	Size uint64
	Data []byte
}

// IsEOF reports whether this Mail is the EOF sentinel produced when a
// read from the underlying stream returns zero bytes (the child process
// has exited or closed its pipe). A decoded Log frame with an empty
// payload (Type 0, Size 0) also reports true.
func (m Mail) IsEOF() bool {
	return m.Type == 0 && m.Size == 0
}

// New builds a Mail from a type discriminant and payload, setting Size to
// len(data).
func New(typ byte, data []byte) Mail {
	return Mail{Type: typ, Size: uint64(len(data)), Data: data}
}

// Bytes serializes the Mail to its wire form: type byte, big-endian
// uint64 length, then the raw payload.
func (m Mail) Bytes() []byte {
	buf := make([]byte, HeaderSize+len(m.Data))
	buf[0] = m.Type
	binary.BigEndian.PutUint64(buf[TypeSize:HeaderSize], m.Size)
	copy(buf[HeaderSize:], m.Data)
	return buf
}

// WriteTo encodes the Mail and writes it in full to w.
func (m Mail) WriteTo(w io.Writer) (int64, error) {
	buf := m.Bytes()
	n, err := w.Write(buf)
	if err != nil {
		return int64(n), err
	}
	if n != len(buf) {
		return int64(n), ErrShortWrite
	}
	return int64(n), nil
}

// Reader decodes a stream of Mail values from an io.Reader, maintaining a
// rolling buffer across reads so a Mail split across multiple underlying
// reads is reassembled correctly.
//
// Reader is not safe for concurrent use.
type Reader struct {
	src io.Reader
	buf []byte
}

// NewReader wraps src for Mail decoding.
func NewReader(src io.Reader) *Reader {
	return &Reader{src: src}
}

// ReadMail reads and decodes the next Mail from the stream. It blocks
// until a complete Mail has been buffered, the underlying reader reports
// EOF, or an error occurs.
//
// A zero-byte read from the underlying stream (the child closing its
// pipe) yields the EOF sentinel Mail{Type: 0, Size: 0, Data: <partial
// buffer accumulated so far>}, mirroring the original child-process
// protocol: a dead process is reported once, not retried.
func (r *Reader) ReadMail() (Mail, error) {
	chunk := make([]byte, readChunk)
	var readErr error

	for {
		if len(r.buf) >= HeaderSize {
			typ := r.buf[0]
			size := binary.BigEndian.Uint64(r.buf[TypeSize:HeaderSize])

			if uint64(len(r.buf)) >= size+HeaderSize {
				payload := make([]byte, size)
				copy(payload, r.buf[HeaderSize:HeaderSize+size])
				r.buf = r.buf[HeaderSize+size:]

				return Mail{Type: typ, Size: size, Data: payload}, nil
			}
		}
		if readErr != nil {
			return Mail{}, readErr
		}

		n, err := r.src.Read(chunk)
		if n == 0 {
			if err == io.EOF || err == nil {
				return Mail{Type: 0, Size: 0, Data: r.buf}, nil
			}
			return Mail{}, err
		}

		r.buf = append(r.buf, chunk[:n]...)
		readErr = err
	}
}
