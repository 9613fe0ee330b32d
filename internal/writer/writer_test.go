package writer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/regdebug/internal/catalog"
	"github.com/retroenv/regdebug/internal/snapshot"
	"github.com/retroenv/retrogolib/assert"
)

func testDecoded() catalog.Decoded {
	return catalog.Decoded{
		Raw:   0x917,
		Width: 32,
		Rendered: snapshot.Rendered{
			Name: "R",
			Fields: []snapshot.Pair{
				{Name: "f0", Value: "7"},
				{Name: "f1", Value: "Y", Symbolic: true},
				{Name: "f2", Value: "9"},
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"text", Text, false},
		{"PRETTY", Pretty, false},
		{"inspect", Inspect, false},
		{"", Text, false},
		{"json", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnsupportedFormat))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, Options{})

	assert.NoError(t, w.Write(testDecoded()))
	assert.NoError(t, w.Write(testDecoded()))
	assert.Equal(t, "R { f0: 7, f1: Y, f2: 9 }\nR { f0: 7, f1: Y, f2: 9 }\n", buf.String())
}

func TestWriteTextHexComments(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, Options{Format: Text, HexComments: true})

	assert.NoError(t, w.Write(testDecoded()))
	assert.Equal(t, "R { f0: 7, f1: Y, f2: 9 }  # 0x00000917\n", buf.String())
}

func TestWritePretty(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, Options{Format: Pretty, HexComments: true})

	assert.NoError(t, w.Write(testDecoded()))
	assert.NoError(t, w.Write(testDecoded()))

	block := "# 0x00000917\nR {\n    f0: 7,\n    f1: Y,\n    f2: 9,\n}\n"
	assert.Equal(t, block+"\n"+block, buf.String())
}

func TestWriteInspect(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, Options{Format: Inspect})

	assert.NoError(t, w.Write(testDecoded()))
	out := buf.String()
	assert.Contains(t, out, "Rendered")
	assert.Contains(t, out, "\"f1\"")
	assert.Contains(t, out, "Symbolic")
	assert.False(t, strings.Contains(out, "\x1b["), "colors should be disabled")
}

func TestWriteLayout(t *testing.T) {
	entry, ok := catalog.Lookup("mtvec")
	assert.True(t, ok)

	var buf bytes.Buffer
	w := New(&buf, Options{})
	assert.NoError(t, w.WriteLayout(entry))

	want := "mtvec (32 bit) - Machine trap-handler base address\n" +
		"    [1:0]    mode         Direct=0, Vectored=1\n" +
		"    [31:2]   base\n"
	assert.Equal(t, want, buf.String())
}
