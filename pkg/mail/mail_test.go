package mail

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailRoundTrip(t *testing.T) {
	cases := []Mail{
		New(Log, []byte("hello")),
		New(Data, []byte{}),
		New(Data, bytes.Repeat([]byte{0xAB}, 1000)),
	}

	for _, m := range cases {
		var buf bytes.Buffer
		_, err := m.WriteTo(&buf)
		require.NoError(t, err)

		r := NewReader(&buf)
		got, err := r.ReadMail()
		require.NoError(t, err)

		assert.Equal(t, m.Type, got.Type)
		assert.Equal(t, m.Size, got.Size)
		assert.Equal(t, m.Data, got.Data)
	}
}

// chunkedReader dribbles out bytes a few at a time to exercise Reader's
// rolling-buffer reassembly across partial underlying reads.
type chunkedReader struct {
	data []byte
	pos  int
	step int
}

func (c *chunkedReader) Read(p []byte) (int, error) {
	if c.pos >= len(c.data) {
		return 0, io.EOF
	}
	n := c.step
	if n > len(p) {
		n = len(p)
	}
	if c.pos+n > len(c.data) {
		n = len(c.data) - c.pos
	}
	copy(p, c.data[c.pos:c.pos+n])
	c.pos += n
	return n, nil
}

func TestMailChunkedRead(t *testing.T) {
	m := New(Data, []byte("some reasonably sized payload for chunking"))
	wire := m.Bytes()

	for step := 1; step <= len(wire); step++ {
		cr := &chunkedReader{data: wire, step: step}
		r := NewReader(cr)
		got, err := r.ReadMail()
		require.NoErrorf(t, err, "step=%d", step)
		assert.Equal(t, m.Type, got.Type)
		assert.Equal(t, m.Data, got.Data)
	}
}

func TestMailEOFSentinel(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))
	got, err := r.ReadMail()
	require.NoError(t, err)
	assert.True(t, got.IsEOF())
}

func TestMailMultipleInOneRead(t *testing.T) {
	m1 := New(Log, []byte("first"))
	m2 := New(Data, []byte("second"))

	var buf bytes.Buffer
	_, _ = m1.WriteTo(&buf)
	_, _ = m2.WriteTo(&buf)

	r := NewReader(&buf)

	got1, err := r.ReadMail()
	require.NoError(t, err)
	assert.Equal(t, m1.Data, got1.Data)

	got2, err := r.ReadMail()
	require.NoError(t, err)
	assert.Equal(t, m2.Data, got2.Data)
}
