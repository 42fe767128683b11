// utils/serials.go
package utils

import "strings"

// ParseSerialNumbers splits the serial textarea into one serial per line.
// Lines are trimmed and blank lines discarded; order is preserved.
func ParseSerialNumbers(block string) []string {
	lines := strings.Split(block, "\n")
	serials := make([]string, 0, len(lines))
	for _, line := range lines {
		sn := strings.TrimSpace(line)
		if sn == "" {
			continue
		}
		serials = append(serials, sn)
	}
	return serials
}
