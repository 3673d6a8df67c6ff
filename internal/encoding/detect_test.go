package encoding_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/theezequiel42/water-tracker/internal/encoding"
)

const header = "Nome,Consumo Março 2025 (m³),Valor Março 2025 (R$),Valor em Atraso (R$)\n"

func readAll(t *testing.T, input []byte) (string, encoding.Charset) {
	t.Helper()

	r, charset, err := encoding.Decode(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(got), charset
}

func TestDecode_UTF8Passthrough(t *testing.T) {
	input := header + "João,12,\"R$ 45,90\",\n"

	got, charset := readAll(t, []byte(input))
	assert.Equal(t, input, got)
	assert.Equal(t, encoding.CharsetUTF8, charset)
}

func TestDecode_UTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte(header)...)

	got, charset := readAll(t, input)
	assert.Equal(t, header, got)
	assert.Equal(t, encoding.CharsetUTF8, charset)
}

func TestDecode_Windows1252(t *testing.T) {
	latin1, err := charmap.Windows1252.NewEncoder().String(header)
	require.NoError(t, err)

	got, charset := readAll(t, []byte(latin1))
	assert.Equal(t, header, got)
	assert.Contains(t, []encoding.Charset{encoding.CharsetWindows1252, encoding.CharsetISO8859_15}, charset)
}

func TestDecode_UTF16LE(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()

	utf16, err := enc.String(header)
	require.NoError(t, err)

	got, charset := readAll(t, []byte(utf16))
	assert.Equal(t, header, got)
	assert.Equal(t, encoding.CharsetUTF16LE, charset)
}

func TestDecode_MultiByteRuneAtSniffBoundary(t *testing.T) {
	// 4095 ASCII bytes followed by "ç" puts the rune across the 4096-byte window.
	input := strings.Repeat("a", 4095) + "ç\n"

	got, charset := readAll(t, []byte(input))
	assert.Equal(t, input, got)
	assert.Equal(t, encoding.CharsetUTF8, charset)
}

func TestNewUTF8Reader_Empty(t *testing.T) {
	r, err := encoding.NewUTF8Reader(bytes.NewReader(nil))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Empty(t, got)
}
