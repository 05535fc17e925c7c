// Package command turns natural-language editing commands into structured
// instructions via ordered keyword rules. Everything here is pure: identical
// input text always yields an identical instruction.
package command

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/forPelevin/vedit/internal/types"
)

// rangeRE matches two time expressions connected by a "from ... to ..."
// range indicator.
var rangeRE = regexp.MustCompile(`(?i)\bfrom\s+(\d{1,2}:[0-5]\d|\d+)\s+to\s+(\d{1,2}:[0-5]\d|\d+)\b`)

// Parser classifies command text against one Vocabulary. It is immutable
// after construction and safe for concurrent use.
type Parser struct {
	vocab   Vocabulary
	fileRE  *regexp.Regexp
	posRE   *regexp.Regexp
	transRE *regexp.Regexp
}

func NewParser(v Vocabulary) (*Parser, error) {
	def := DefaultVocabulary()
	fillVocabulary(&v, def)

	fileRE, err := regexp.Compile(`(?i)\b[\w-]+\.(?:` + joinAlternatives(v.MediaExtensions) + `)\b`)
	if err != nil {
		return nil, fmt.Errorf("compile filename pattern: %w", err)
	}
	posRE, err := regexp.Compile(`(?i)\b(?:` + joinAlternatives(v.Positions) + `)\b`)
	if err != nil {
		return nil, fmt.Errorf("compile position pattern: %w", err)
	}
	transRE, err := regexp.Compile(`(?i)\b(?:` + joinAlternatives(v.TransitionTypes) + `)\b`)
	if err != nil {
		return nil, fmt.Errorf("compile transition pattern: %w", err)
	}

	return &Parser{vocab: v, fileRE: fileRE, posRE: posRE, transRE: transRE}, nil
}

var defaultParser = mustParser(DefaultVocabulary())

func mustParser(v Vocabulary) *Parser {
	p, err := NewParser(v)
	if err != nil {
		panic(err)
	}
	return p
}

// Classify maps one command to an Instruction using the default vocabulary.
func Classify(raw string) types.Instruction {
	return defaultParser.Classify(raw)
}

// Vocab returns the vocabulary the parser was built from.
func (p *Parser) Vocab() Vocabulary { return p.vocab }

// Classify maps raw command text to exactly one Instruction. Rules are
// ordered and first-match wins; a command matching several categories
// resolves to the earliest rule. Missing fields fall back to documented
// defaults, never to an error.
func (p *Parser) Classify(raw string) types.Instruction {
	lower := strings.ToLower(raw)

	switch {
	case p.isTrim(lower):
		start, end, ok := p.ExtractTimeRange(raw)
		if !ok {
			// Known edge case: a trim command without a recoverable time
			// range still emits, with zero times.
			start, end = zeroTime, zeroTime
		}
		return types.NewTrim(p.fileOrDefault(raw), start, end)

	case containsAny(lower, p.vocab.TextKeywords):
		overlay, ok := p.ExtractQuoted(raw)
		if !ok {
			overlay = p.vocab.DefaultText
		}
		pos, ok := p.ExtractPosition(raw)
		if !ok {
			pos = p.vocab.DefaultPosition
		}
		at, ok := p.ExtractTime(raw)
		if !ok {
			at = p.vocab.TextTime
		}
		return types.NewAddText(p.fileOrDefault(raw), overlay, pos, at)

	case containsAny(lower, p.vocab.TransitionKeywords):
		ttype, ok := p.ExtractTransitionType(raw)
		if !ok {
			ttype = p.vocab.DefaultTransition
		}
		at, ok := p.ExtractTime(raw)
		if !ok {
			at = p.vocab.TransitionTime
		}
		return types.NewAddTransition(p.fileOrDefault(raw), ttype, at)

	default:
		return types.NewUnknown(raw)
	}
}

func (p *Parser) isTrim(lower string) bool {
	for _, k := range p.vocab.TrimKeywords {
		if k == "" || !strings.Contains(lower, k) {
			continue
		}
		// A keyword shared with the transition-type vocabulary ("cut") reads
		// as a transition type when the command also names a transition.
		if p.isTransitionType(k) && containsAny(lower, p.vocab.TransitionKeywords) {
			continue
		}
		return true
	}
	// A bare "from X to Y" time range indicates trimming even without an
	// explicit keyword.
	return rangeRE.MatchString(lower)
}

func (p *Parser) isTransitionType(word string) bool {
	for _, t := range p.vocab.TransitionTypes {
		if strings.EqualFold(t, word) {
			return true
		}
	}
	return false
}

func (p *Parser) fileOrDefault(raw string) string {
	if f, ok := p.ExtractFileName(raw); ok {
		return f
	}
	return p.vocab.DefaultFile
}

func containsAny(s string, keys []string) bool {
	for _, k := range keys {
		if k != "" && strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func joinAlternatives(words []string) string {
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(strings.ToLower(w))
		if w == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(w))
	}
	return strings.Join(quoted, "|")
}

// fillVocabulary backfills empty fields from the default set so partial
// configuration overrides cannot produce a parser with no vocabulary.
func fillVocabulary(v *Vocabulary, def Vocabulary) {
	if len(v.TrimKeywords) == 0 {
		v.TrimKeywords = def.TrimKeywords
	}
	if len(v.TextKeywords) == 0 {
		v.TextKeywords = def.TextKeywords
	}
	if len(v.TransitionKeywords) == 0 {
		v.TransitionKeywords = def.TransitionKeywords
	}
	if len(v.Positions) == 0 {
		v.Positions = def.Positions
	}
	if len(v.TransitionTypes) == 0 {
		v.TransitionTypes = def.TransitionTypes
	}
	if len(v.MediaExtensions) == 0 {
		v.MediaExtensions = def.MediaExtensions
	}
	if v.DefaultFile == "" {
		v.DefaultFile = def.DefaultFile
	}
	if v.DefaultText == "" {
		v.DefaultText = def.DefaultText
	}
	if v.DefaultPosition == "" {
		v.DefaultPosition = def.DefaultPosition
	}
	if v.DefaultTransition == "" {
		v.DefaultTransition = def.DefaultTransition
	}
	if v.TextTime == "" {
		v.TextTime = def.TextTime
	}
	if v.TransitionTime == "" {
		v.TransitionTime = def.TransitionTime
	}
}
