package command

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// timeExprRE matches one time expression: M:SS / MM:SS minutes:seconds, or a
// bare integer number of seconds. The colon alternative comes first so "1:30"
// is consumed whole rather than as the bare integer "1".
var timeExprRE = regexp.MustCompile(`\b(?:\d{1,2}:[0-5]\d|\d+)\b`)

// NormalizeTime converts a single time expression to zero-padded HH:MM:SS.
// Malformed expressions report ok=false and are treated by callers as absent,
// never as an error.
func NormalizeTime(expr string) (string, bool) {
	sec, ok := parseSeconds(expr)
	if !ok {
		return "", false
	}
	return FormatSeconds(sec), true
}

// FormatSeconds renders a total-seconds count as zero-padded HH:MM:SS.
func FormatSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := total / 60 % 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func parseSeconds(expr string) (int, bool) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0, false
	}

	if i := strings.IndexByte(expr, ':'); i >= 0 {
		m, err := strconv.Atoi(expr[:i])
		if err != nil || m < 0 {
			return 0, false
		}
		s, err := strconv.Atoi(expr[i+1:])
		if err != nil || s < 0 || s > 59 || len(expr[i+1:]) != 2 {
			return 0, false
		}
		return m*60 + s, true
	}

	sec, err := strconv.Atoi(expr)
	if err != nil || sec < 0 {
		return 0, false
	}
	return sec, true
}
