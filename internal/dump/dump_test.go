package dump

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParse(t *testing.T) {
	input := `# panic dump
mstatus = 0x00001880
mcause: 0x8000000b   // machine external interrupt

pmpcfg=0b1001_1111
uart_div = 138
`
	entries, err := Parse(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Len(t, entries, 4)

	assert.Equal(t, Entry{Line: 2, Name: "mstatus", Value: 0x1880}, entries[0])
	assert.Equal(t, Entry{Line: 3, Name: "mcause", Value: 0x8000000b}, entries[1])
	assert.Equal(t, Entry{Line: 5, Name: "pmpcfg", Value: 0x9f}, entries[2])
	assert.Equal(t, Entry{Line: 6, Name: "uart_div", Value: 138}, entries[3])
}

func TestParseEmpty(t *testing.T) {
	entries, err := Parse(strings.NewReader("\n# nothing\n"))
	assert.NoError(t, err)
	assert.Len(t, entries, 0)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		errText string
	}{
		{"missing separator", "mstatus 0x10", "line 1: invalid register dump: missing '=' or ':' separator"},
		{"missing name", "ok = 1\n = 0x10", "line 2: invalid register dump: missing register name"},
		{"name with space", "m status = 1", "contains whitespace"},
		{"missing value", "mstatus =", "register mstatus: invalid register dump: missing value"},
		{"bad number", "mstatus = 0xzz", "value '0xzz' is not a valid number"},
		{"overflow", "satp = 0x1_0000_0000_0000_0000", "not a valid number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrSyntax))
			assert.ErrorContains(t, err, tt.errText)
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input string
		want  uint64
	}{
		{"0", 0},
		{"42", 42},
		{"0x2A", 42},
		{"0X2a", 42},
		{"0b101010", 42},
		{"0o52", 42},
		{"0xffff_ffff", 0xffffffff},
		{"0xffffffffffffffff", 0xffffffffffffffff},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := ParseValue(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestLoaderLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fault.txt")
	assert.NoError(t, os.WriteFile(path, []byte("mtvec = 0x20010101\n"), 0o600))

	entries, err := NewLoader().Load(path)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "mtvec", entries[0].Name)

	_, err = NewLoader().Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
