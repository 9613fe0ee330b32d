// Package writer implements the output formats of decoded register values.
package writer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/retroenv/regdebug/internal/catalog"
)

// Format selects the output representation.
type Format string

// Supported output formats.
const (
	Text    Format = "text"    // one line per register
	Pretty  Format = "pretty"  // one line per field
	Inspect Format = "inspect" // structured dump of the rendered fields
)

// ErrUnsupportedFormat is returned for unknown format names.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Formats returns the names of all supported formats.
func Formats() []string {
	return []string{string(Text), string(Pretty), string(Inspect)}
}

// ParseFormat returns the format for the given name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case Text, Pretty, Inspect:
		return f, nil
	case "":
		return Text, nil
	default:
		return "", fmt.Errorf("%w '%s', valid formats: %s",
			ErrUnsupportedFormat, name, strings.Join(Formats(), ", "))
	}
}

// Options of the writer.
type Options struct {
	Format      Format
	HexComments bool // append the raw register value as comment
	Color       bool // colorize inspect output
}

// Writer writes decoded register values.
type Writer struct {
	options Options
	writer  io.Writer
	printer *pp.PrettyPrinter
	buf     []byte
	written int
}

// New creates a new writer.
func New(writer io.Writer, options Options) *Writer {
	if options.Format == "" {
		options.Format = Text
	}

	printer := pp.New()
	printer.SetColoringEnabled(options.Color)

	return &Writer{
		options: options,
		writer:  writer,
		printer: printer,
	}
}

// Write outputs a decoded register value.
func (w *Writer) Write(decoded catalog.Decoded) error {
	switch w.options.Format {
	case Inspect:
		if _, err := w.printer.Fprintln(w.writer, decoded.Rendered); err != nil {
			return fmt.Errorf("writing register %s: %w", decoded.Rendered.Name, err)
		}

	case Pretty:
		w.buf = w.buf[:0]
		if w.written > 0 {
			w.buf = append(w.buf, '\n')
		}
		w.buf = w.appendComment(w.buf, decoded)
		w.buf = decoded.Rendered.AppendPretty(w.buf)
		w.buf = append(w.buf, '\n')
		if _, err := w.writer.Write(w.buf); err != nil {
			return fmt.Errorf("writing register %s: %w", decoded.Rendered.Name, err)
		}

	default:
		w.buf = decoded.Rendered.AppendText(w.buf[:0])
		if w.options.HexComments {
			w.buf = append(w.buf, "  "...)
			w.buf = w.appendComment(w.buf, decoded)
		} else {
			w.buf = append(w.buf, '\n')
		}
		if _, err := w.writer.Write(w.buf); err != nil {
			return fmt.Errorf("writing register %s: %w", decoded.Rendered.Name, err)
		}
	}

	w.written++
	return nil
}

func (w *Writer) appendComment(dst []byte, decoded catalog.Decoded) []byte {
	if !w.options.HexComments {
		return dst
	}
	digits := int(decoded.Width+3) / 4
	return fmt.Appendf(dst, "# 0x%0*X\n", digits, decoded.Raw)
}

// WriteLayout outputs the field layout of a catalog register.
func (w *Writer) WriteLayout(entry catalog.Entry) error {
	layout := entry.Layout()

	buf := &strings.Builder{}
	fmt.Fprintf(buf, "%s (%d bit) - %s\n", layout.Name, layout.Width, entry.Description())
	for _, f := range layout.Fields {
		line := fmt.Sprintf("    %-8s %-12s %s", f.Bits, f.Name, strings.Join(f.Variants, ", "))
		buf.WriteString(strings.TrimRight(line, " "))
		buf.WriteString("\n")
	}

	if _, err := io.WriteString(w.writer, buf.String()); err != nil {
		return fmt.Errorf("writing layout of %s: %w", layout.Name, err)
	}
	return nil
}
