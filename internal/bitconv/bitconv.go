// Package bitconv renders bit-streams as '0'/'1' digit strings and parses
// them back, for diagnostics and readable test fixtures.
package bitconv

import "fmt"

func BitsToString(bits []bool) string {
	buf := make([]byte, len(bits))
	for i, b := range bits {
		if b {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

func StringToBits(s string) ([]bool, error) {
	bits := make([]bool, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			bits = append(bits, false)
		case '1':
			bits = append(bits, true)
		case ' ':
			// grouping separator, skipped
		default:
			return nil, fmt.Errorf("invalid bit character %q at %d", s[i], i)
		}
	}
	return bits, nil
}
