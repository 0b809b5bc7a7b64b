package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moolekkari/endianness/core"
	"github.com/moolekkari/endianness/internal/endian"
)

func TestSampleString(t *testing.T) {
	s := NewSample(core.SwapFunc(core.Swap32), 0x12345678)
	assert.Equal(t, Sample{Original: 0x12345678, Swapped: 0x78563412}, s)
	assert.Equal(t, "Original number: 0x12345678\nAfter swapping endianness: 0x78563412\n", s.String())
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, endian.LittleEndian, core.SwapFunc(core.Swap32), DefaultValues)
	require.NoError(t, err)

	expected := "System is Little Endian\n\n" +
		"Original number: 0x12345678\nAfter swapping endianness: 0x78563412\n\n" +
		"Original number: 0xaabbccdd\nAfter swapping endianness: 0xddccbbaa\n\n"
	assert.Equal(t, expected, buf.String())

	out := buf.String()
	assert.Less(t, strings.Index(out, "0x12345678"), strings.Index(out, "0x78563412"))
}

func TestWriteBigEndian(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, endian.BigEndian, core.SwapFunc(core.Swap32Builtin), nil))
	assert.Equal(t, "System is Big Endian\n\n", buf.String())
}

type failingWriter struct {
	after int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after == 0 {
		return 0, errors.New("write failed")
	}
	w.after--
	return len(p), nil
}

func TestWriteError(t *testing.T) {
	for after := 0; after < 2; after++ {
		err := Write(&failingWriter{after: after}, endian.Host, core.SwapFunc(core.Swap32), DefaultValues)
		assert.EqualError(t, err, "write failed")
	}
}
