package command

import (
	"regexp"
	"strings"
)

var (
	quotedRE = regexp.MustCompile(`'([^']+)'|"([^"]+)"`)
	// quotedSpanRE also swallows empty quotes so stripped text never leaks
	// stray quote characters into time scanning.
	quotedSpanRE = regexp.MustCompile(`'[^']*'|"[^"]*"`)
)

// ExtractFileName returns the first token that looks like a media filename:
// an alphanumeric/underscore/hyphen stem followed by a recognized extension.
func (p *Parser) ExtractFileName(raw string) (string, bool) {
	m := p.fileRE.FindString(raw)
	return m, m != ""
}

// ExtractTimeRange locates two time expressions for a trim. An explicit
// "from X to Y" wins; otherwise the first two loose time expressions are
// paired. Reports ok=false when fewer than two are found.
func (p *Parser) ExtractTimeRange(raw string) (string, string, bool) {
	sanitized := p.stripNonTime(raw)

	if m := rangeRE.FindStringSubmatch(sanitized); m != nil {
		start, ok1 := NormalizeTime(m[1])
		end, ok2 := NormalizeTime(m[2])
		if ok1 && ok2 {
			return start, end, true
		}
	}

	exprs := timeExprRE.FindAllString(sanitized, -1)
	if len(exprs) < 2 {
		return "", "", false
	}
	start, ok1 := NormalizeTime(exprs[0])
	end, ok2 := NormalizeTime(exprs[1])
	if !ok1 || !ok2 {
		return "", "", false
	}
	return start, end, true
}

// ExtractTime locates a single time expression, normalized to HH:MM:SS.
func (p *Parser) ExtractTime(raw string) (string, bool) {
	expr := timeExprRE.FindString(p.stripNonTime(raw))
	if expr == "" {
		return "", false
	}
	return NormalizeTime(expr)
}

// ExtractQuoted returns the first text enclosed in single or double quotes.
func (p *Parser) ExtractQuoted(raw string) (string, bool) {
	m := quotedRE.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	if m[1] != "" {
		return m[1], true
	}
	return m[2], true
}

// ExtractPosition matches the position vocabulary (center, top, ...) and
// returns the earliest hit, lowercased.
func (p *Parser) ExtractPosition(raw string) (string, bool) {
	m := p.posRE.FindString(raw)
	return strings.ToLower(m), m != ""
}

// ExtractTransitionType matches the transition vocabulary (fade, cut, ...)
// and returns the earliest hit, lowercased.
func (p *Parser) ExtractTransitionType(raw string) (string, bool) {
	m := p.transRE.FindString(raw)
	return strings.ToLower(m), m != ""
}

// stripNonTime blanks quoted segments and filenames so their digits cannot
// masquerade as time expressions.
func (p *Parser) stripNonTime(raw string) string {
	out := quotedSpanRE.ReplaceAllString(raw, " ")
	return p.fileRE.ReplaceAllString(out, " ")
}
