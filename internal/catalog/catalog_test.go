package catalog

import (
	"errors"
	"sort"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// TestDescriptorConsistency verifies for every catalog register that the
// field names, fields and decoders have the same length.
func TestDescriptorConsistency(t *testing.T) {
	all := All()
	assert.True(t, len(all) > 0)

	for _, e := range all {
		t.Run(e.Name(), func(t *testing.T) {
			assert.NoError(t, e.Validate())
			assert.NotEmpty(t, e.Description())

			layout := e.Layout()
			assert.Equal(t, e.Name(), layout.Name)
			assert.Equal(t, e.Width(), layout.Width)

			decoded, err := e.Decode(0)
			assert.NoError(t, err)
			assert.Equal(t, len(layout.Fields), len(decoded.Rendered.Fields))
			for i, fl := range layout.Fields {
				assert.Equal(t, fl.Name, decoded.Rendered.Fields[i].Name)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	e, ok := Lookup("MSTATUS")
	assert.True(t, ok)
	assert.Equal(t, "mstatus", e.Name())

	_, ok = Lookup("nosuchreg")
	assert.False(t, ok)
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Equal(t, len(entries), len(names))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		register string
		raw      uint64
		want     string
	}{
		{"mtvec", 0x20010101, "mtvec { mode: Vectored, base: 134234176 }"},
		{"mtvec", 0x20010102, "mtvec { mode: 2, base: 134234176 }"},
		{"mcause", 0x8000000b, "mcause { reason: 11, is_interrupt: 1 }"},
		{"misa", 0x40101105, "misa { extensions: 1052933, mxl: RV32 }"},
		{"pmpcfg", 0x9f, "pmpcfg { r: 1, w: 1, x: 1, a: NAPOT, l: 1 }"},
		{"satp", 0x8000000000080400, "satp { ppn: 525312, asid: 0, mode: Sv39 }"},
		{"uart_txctrl", 0x10003, "uart_txctrl { txen: 1, nstop: Two, txcnt: 1 }"},
		{"prci_pllcfg", 0x80060df1, "prci_pllcfg { pllr: R2, pllf: 31, pllq: Q8, sel: HFROSC, refsel: HFXOSC, bypass: 1, lock: 1 }"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			e, ok := Lookup(tt.register)
			assert.True(t, ok)

			decoded, err := e.Decode(tt.raw)
			assert.NoError(t, err)
			assert.Equal(t, tt.raw, decoded.Raw)
			assert.Equal(t, tt.want, decoded.Rendered.String())
		})
	}
}

func TestDecodeMstatus(t *testing.T) {
	e, ok := Lookup("mstatus")
	assert.True(t, ok)

	// MPP = Machine, MPIE, FS = Dirty, SD
	decoded, err := e.Decode(0x80001880 | 0x6000)
	assert.NoError(t, err)
	assert.Equal(t,
		"mstatus { uie: 0, sie: 0, mie: 0, upie: 0, spie: 0, mpie: 1, spp: User, mpp: Machine, "+
			"fs: Dirty, xs: Off, mprv: 0, sum: 0, mxr: 0, tvm: 0, tw: 0, tsr: 0, sd: 1 }",
		decoded.Rendered.String())
}

func TestDecodeValueTooWide(t *testing.T) {
	e, ok := Lookup("pmpcfg")
	assert.True(t, ok)
	assert.Equal(t, uint(8), e.Width())

	_, err := e.Decode(0x100)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrValueTooWide))

	e, ok = Lookup("mstatus")
	assert.True(t, ok)
	_, err = e.Decode(1 << 32)
	assert.True(t, errors.Is(err, ErrValueTooWide))
}

func TestLayout(t *testing.T) {
	e, ok := Lookup("mtvec")
	assert.True(t, ok)

	layout := e.Layout()
	assert.Len(t, layout.Fields, 2)
	assert.Equal(t, "mode", layout.Fields[0].Name)
	assert.Equal(t, "[1:0]", layout.Fields[0].Bits)
	assert.Len(t, layout.Fields[0].Variants, 2)
	assert.Equal(t, "Direct=0", layout.Fields[0].Variants[0])
	assert.Equal(t, "[31:2]", layout.Fields[1].Bits)
	assert.Len(t, layout.Fields[1].Variants, 0)
}
