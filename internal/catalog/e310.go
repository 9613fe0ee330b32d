package catalog

import "github.com/retroenv/regdebug/internal/register"

// SiFive E310 power, reset, clock and interrupt (PRCI) block.

var prciHfrosccfg = define("prci_hfrosccfg", "Internal trimmable ring oscillator configuration",
	register.Field("div", bits32(0, 6)),
	register.Field("trim", bits32(16, 5)),
	register.Field("enable", bit32(30)),
	register.Field("ready", bit32(31)),
)

var clockSources = []v32{{Name: "HFROSC", Value: 0}, {Name: "PLL", Value: 1}}

var prciPllcfg = define("prci_pllcfg", "PLL configuration",
	register.Enum("pllr", bits32(0, 3),
		v32{Name: "R1", Value: 0},
		v32{Name: "R2", Value: 1},
		v32{Name: "R3", Value: 2},
		v32{Name: "R4", Value: 3},
	),
	register.Field("pllf", bits32(4, 6)),
	register.Enum("pllq", bits32(10, 2),
		v32{Name: "Q2", Value: 1},
		v32{Name: "Q4", Value: 2},
		v32{Name: "Q8", Value: 3},
	),
	register.Enum("sel", bit32(16), clockSources...),
	register.Enum("refsel", bit32(17), v32{Name: "HFROSC", Value: 0}, v32{Name: "HFXOSC", Value: 1}),
	register.Field("bypass", bit32(18)),
	register.Field("lock", bit32(31)),
)

// SiFive E310 UART.

var uartTxctrl = define("uart_txctrl", "UART transmit control",
	register.Field("txen", bit32(0)),
	register.Enum("nstop", bit32(1), v32{Name: "One", Value: 0}, v32{Name: "Two", Value: 1}),
	register.Field("txcnt", bits32(16, 3)),
)

var uartRxctrl = define("uart_rxctrl", "UART receive control",
	register.Field("enable", bit32(0)),
	register.Field("counter", bits32(16, 3)),
)

func uartInterrupts(name, description string) *entry[uint32] {
	return define(name, description,
		register.Field("txwm", bit32(0)),
		register.Field("rxwm", bit32(1)),
	)
}

var (
	uartIE = uartInterrupts("uart_ie", "UART interrupt enable")
	uartIP = uartInterrupts("uart_ip", "UART interrupt pending")
)

var uartDiv = define("uart_div", "UART baud rate divisor",
	register.Field("div", bits32(0, 16)),
)

func init() {
	add(prciHfrosccfg)
	add(prciPllcfg)
	add(uartTxctrl)
	add(uartRxctrl)
	add(uartIE)
	add(uartIP)
	add(uartDiv)
}
