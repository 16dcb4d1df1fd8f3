// Package strutil provides tolerant conversions from human-written text.
package strutil

import (
	"strings"

	"github.com/spf13/cast"
)

// ParseBool interprets human-written boolean text. It accepts the usual
// machine spellings (true/false, t/f, 1/0 in any case) plus the
// conversational forms yes/no, y/n, and on/off. Surrounding whitespace is
// ignored. Text that matches nothing is false; ParseBool never fails.
func ParseBool(text string) bool {
	s := strings.TrimSpace(text)
	if b, err := cast.ToBoolE(s); err == nil {
		return b
	}
	switch strings.ToLower(s) {
	case "yes", "y", "on":
		return true
	default:
		return false
	}
}
