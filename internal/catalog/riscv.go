package catalog

import (
	"github.com/retroenv/regdebug/internal/field"
	"github.com/retroenv/regdebug/internal/register"
)

type (
	v8  = field.Variant[uint8]
	v32 = field.Variant[uint32]
	v64 = field.Variant[uint64]
)

func bits32(offset, count uint) field.Field[uint32] { return field.Bits[uint32](offset, count) }
func bit32(offset uint) field.Field[uint32]         { return field.Bits[uint32](offset, 1) }

var privilegeModes = []v32{{Name: "User", Value: 0}, {Name: "Supervisor", Value: 1}, {Name: "Machine", Value: 3}}

var extensionStates = []v32{
	{Name: "Off", Value: 0},
	{Name: "Initial", Value: 1},
	{Name: "Clean", Value: 2},
	{Name: "Dirty", Value: 3},
}

var mstatus = define("mstatus", "Machine status",
	register.Field("uie", bit32(0)),
	register.Field("sie", bit32(1)),
	register.Field("mie", bit32(3)),
	register.Field("upie", bit32(4)),
	register.Field("spie", bit32(5)),
	register.Field("mpie", bit32(7)),
	register.Enum("spp", bit32(8), v32{Name: "User", Value: 0}, v32{Name: "Supervisor", Value: 1}),
	register.Enum("mpp", bits32(11, 2), privilegeModes...),
	register.Enum("fs", bits32(13, 2), extensionStates...),
	register.Enum("xs", bits32(15, 2), extensionStates...),
	register.Field("mprv", bit32(17)),
	register.Field("sum", bit32(18)),
	register.Field("mxr", bit32(19)),
	register.Field("tvm", bit32(20)),
	register.Field("tw", bit32(21)),
	register.Field("tsr", bit32(22)),
	register.Field("sd", bit32(31)),
)

var misa = define("misa", "Machine ISA",
	register.Field("extensions", bits32(0, 26)),
	register.Enum("mxl", bits32(30, 2),
		v32{Name: "RV32", Value: 1},
		v32{Name: "RV64", Value: 2},
		v32{Name: "RV128", Value: 3},
	),
)

var mtvec = define("mtvec", "Machine trap-handler base address",
	register.Enum("mode", bits32(0, 2), v32{Name: "Direct", Value: 0}, v32{Name: "Vectored", Value: 1}),
	register.Field("base", bits32(2, 30)),
)

var mcause = define("mcause", "Machine trap cause",
	register.Field("reason", bits32(0, 31)),
	register.Field("is_interrupt", bit32(31)),
)

func interruptBits(name, description string) *entry[uint32] {
	return define(name, description,
		register.Field("usoft", bit32(0)),
		register.Field("ssoft", bit32(1)),
		register.Field("msoft", bit32(3)),
		register.Field("utimer", bit32(4)),
		register.Field("stimer", bit32(5)),
		register.Field("mtimer", bit32(7)),
		register.Field("uext", bit32(8)),
		register.Field("sext", bit32(9)),
		register.Field("mext", bit32(11)),
	)
}

var (
	mie = interruptBits("mie", "Machine interrupt enable")
	mip = interruptBits("mip", "Machine interrupt pending")
)

// pmpcfg describes a single 8 bit entry of the pmpcfg CSRs.
var pmpcfg = define("pmpcfg", "Physical memory protection entry configuration",
	register.Field("r", field.Bits[uint8](0, 1)),
	register.Field("w", field.Bits[uint8](1, 1)),
	register.Field("x", field.Bits[uint8](2, 1)),
	register.Enum("a", field.Bits[uint8](3, 2),
		v8{Name: "OFF", Value: 0},
		v8{Name: "TOR", Value: 1},
		v8{Name: "NA4", Value: 2},
		v8{Name: "NAPOT", Value: 3},
	),
	register.Field("l", field.Bits[uint8](7, 1)),
)

// satp is the RV64 layout of the supervisor address translation register.
var satp = define("satp", "Supervisor address translation and protection (RV64)",
	register.Field("ppn", field.Bits[uint64](0, 44)),
	register.Field("asid", field.Bits[uint64](44, 16)),
	register.Enum("mode", field.Bits[uint64](60, 4),
		v64{Name: "Bare", Value: 0},
		v64{Name: "Sv39", Value: 8},
		v64{Name: "Sv48", Value: 9},
		v64{Name: "Sv57", Value: 10},
	),
)

func init() {
	add(mstatus)
	add(misa)
	add(mtvec)
	add(mcause)
	add(mie)
	add(mip)
	add(pmpcfg)
	add(satp)
}
