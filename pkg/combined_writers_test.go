package pkg

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestCombinedWriter(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	cw := NewCombinedWriter(&buf1, &buf2)

	n, err := cw.Write([]byte("weigh-in logged"))
	require.NoError(t, err)
	assert.Equal(t, 2*len("weigh-in logged"), n)
	assert.Equal(t, "weigh-in logged", buf1.String())
	assert.Equal(t, "weigh-in logged", buf2.String())
}

func TestCombinedWriter_OneFails(t *testing.T) {
	var buf bytes.Buffer
	cw := NewCombinedWriter(failingWriter{}, &buf)

	n, err := cw.Write([]byte("abc"))
	require.Error(t, err)
	// the healthy writer still got the bytes
	assert.Equal(t, 3, n)
	assert.Equal(t, "abc", buf.String())
}
