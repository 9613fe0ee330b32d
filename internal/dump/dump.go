// Package dump parses textual register dumps as written by fault handlers,
// consisting of one "name = value" or "name: value" pair per line.
package dump

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrSyntax is matched by all parse errors.
var ErrSyntax = errors.New("invalid register dump")

// Entry is a single captured register value of a dump.
type Entry struct {
	Line  int
	Name  string
	Value uint64
}

// Parse reads all register entries of a dump.
// Empty lines and comments starting with # or // are ignored.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)

	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := stripComment(scanner.Text())
		if line == "" {
			continue
		}

		entry, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		entry.Line = lineNumber
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dump: %w", err)
	}
	return entries, nil
}

func stripComment(line string) string {
	if i := strings.Index(line, "#"); i >= 0 {
		line = line[:i]
	}
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

func parseLine(line string) (Entry, error) {
	name, value, ok := strings.Cut(line, "=")
	if !ok {
		name, value, ok = strings.Cut(line, ":")
	}
	if !ok {
		return Entry{}, fmt.Errorf("%w: missing '=' or ':' separator in '%s'", ErrSyntax, line)
	}

	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)
	if name == "" {
		return Entry{}, fmt.Errorf("%w: missing register name", ErrSyntax)
	}
	if strings.ContainsAny(name, " \t") {
		return Entry{}, fmt.Errorf("%w: register name '%s' contains whitespace", ErrSyntax, name)
	}

	v, err := ParseValue(value)
	if err != nil {
		return Entry{}, fmt.Errorf("register %s: %w", name, err)
	}
	return Entry{Name: name, Value: v}, nil
}

// ParseValue parses a register value given as 0x hex, 0b binary, 0o octal
// or decimal number. Underscores can be used as digit separators.
func ParseValue(s string) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: missing value", ErrSyntax)
	}

	base := 10
	digits := strings.ReplaceAll(strings.ToLower(s), "_", "")
	switch {
	case strings.HasPrefix(digits, "0x"):
		base, digits = 16, digits[2:]
	case strings.HasPrefix(digits, "0b"):
		base, digits = 2, digits[2:]
	case strings.HasPrefix(digits, "0o"):
		base, digits = 8, digits[2:]
	}

	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: value '%s' is not a valid number", ErrSyntax, s)
	}
	return v, nil
}
