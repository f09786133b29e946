package strmark

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"
)

func TestEncodeDecode(t *testing.T) {
	test := []struct {
		name string
		src  string
	}{
		{name: "ascii", src: "SDV2"},
		{name: "multibyte", src: "こんにちはHello"},
		{name: "emoji", src: "🍣"},
		{name: "replacement_char", src: "a�b"},
		{name: "empty", src: ""},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			bits := Encode(tt.src)
			assert.Len(t, bits, len(tt.src)*8)
			assert.Equal(t, tt.src, Decode(bits))

			m := New()
			bits = m.Encode(tt.src)
			size := len(tt.src) * 8
			assert.Equal(t, size, m.Len(size))
			assert.Equal(t, tt.src, m.Decode(bits, size))
		})
	}
}

func TestStrMark_DecodeSize(t *testing.T) {
	m := New()
	bits := m.Encode("SDV2")
	assert.Equal(t, "SD", m.Decode(bits, 16))
	assert.Equal(t, "SDV2", m.Decode(bits, 64))
}

func TestDecode_Lossy(t *testing.T) {
	test := []struct {
		name string
		src  string
		want string
	}{
		{name: "invalid_byte", src: "A\xffB", want: "A�B"},
		{name: "two_invalid_bytes", src: "\xff\xfe", want: "��"},
		{name: "truncated_sequence", src: "\xe3\x81", want: "�"},
		{name: "truncated_emoji", src: "\xf0\x9f\x8dA", want: "�A"},
		{name: "broken_by_ascii", src: "\xe3A", want: "�A"},
		{name: "overlong", src: "\xe0\x80\xaf", want: "���"},
		{name: "surrogate", src: "\xed\xa0\x80", want: "���"},
		{name: "above_max", src: "\xf4\x90\x80\x80", want: "����"},
		{name: "lone_continuation", src: "\x80\x80", want: "��"},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(Encode(tt.src)))
			assert.Equal(t, tt.want, Lossy([]byte(tt.src)))
		})
	}

	t.Run("partial_byte_dropped", func(t *testing.T) {
		assert.Equal(t, "OK", Decode(append(Encode("OK"), true, false, true)))
	})
}

func TestReplacer_Stream(t *testing.T) {
	src := "こ\xe3\x81ん\xffに🍣\xf0\x9f"
	want := "こ�ん�に🍣�"

	// One byte per read splits every multibyte sequence across calls.
	r := transform.NewReader(iotest.OneByteReader(strings.NewReader(src)), Replacer())
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
	assert.Equal(t, want, Lossy([]byte(src)))
}
