package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	sc := bufio.NewScanner(strings.NewReader("  a@x.com \nnext\n"))
	var out bytes.Buffer

	got, err := GetSimpleText(sc, "Enter email", &out)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got)
	assert.Equal(t, "Enter email\n> ", out.String())

	got, err = GetSimpleText(sc, "again", &out)
	require.NoError(t, err)
	assert.Equal(t, "next", got)
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer

	got, err := GetSimpleText(bufio.NewScanner(strings.NewReader("lastline")), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(bufio.NewScanner(strings.NewReader("")), "Name?", &out)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetPassword(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) { return []byte("secret1"), nil }

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("secret1"), pw)
	assert.Equal(t, "Enter password: \n", out.String())
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }

	var out bytes.Buffer
	_, err := GetPassword(&out)
	require.Error(t, err)
}
