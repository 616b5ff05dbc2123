package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// defaultRanges covers Latin-1, Greek and Coptic, and one emoji.
const defaultRanges = "32-255,913-1023,128513"

type runeRange struct {
	lo, hi rune
}

var errEmptyRanges = errors.New("no ranges given")

// parseRanges parses a comma separated list of code points and inclusive
// lo-hi ranges. Values may be decimal or 0x/U+ prefixed hexadecimal.
func parseRanges(s string) ([]runeRange, error) {
	var out []runeRange
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		loStr, hiStr, isRange := strings.Cut(field, "-")
		lo, err := parseCodePoint(loStr)
		if err != nil {
			return nil, err
		}
		hi := lo
		if isRange {
			if hi, err = parseCodePoint(hiStr); err != nil {
				return nil, err
			}
		}
		if hi < lo {
			return nil, fmt.Errorf("range %q is reversed", field)
		}
		out = append(out, runeRange{lo: lo, hi: hi})
	}
	if len(out) == 0 {
		return nil, errEmptyRanges
	}
	return out, nil
}

func parseCodePoint(s string) (rune, error) {
	s = strings.TrimSpace(s)
	base := 10
	for _, prefix := range []string{"0x", "0X", "U+", "u+"} {
		if rest, ok := strings.CutPrefix(s, prefix); ok {
			s, base = rest, 16
			break
		}
	}
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid code point %q", s)
	}
	if v > 0x10FFFF {
		return 0, fmt.Errorf("code point %q out of range", s)
	}
	return rune(v), nil
}
