package command

// Default field values used when a command omits the corresponding detail.
const (
	DefaultFileName   = "default_video.mp4"
	DefaultText       = "Sample Text"
	DefaultPosition   = "center"
	DefaultTransition = "fade"

	// Transitions default to the beginning of the video; text overlays use
	// the prototype's fifteen-second mark.
	DefaultTransitionTime = "00:00:00"
	DefaultTextTime       = "00:00:15"

	zeroTime = "00:00:00"
)

// Vocabulary is the keyword data the parser matches against. It is plain
// data so deployments can override it from configuration without a rebuild.
type Vocabulary struct {
	// Action-indicating keywords, matched as case-insensitive substrings.
	TrimKeywords       []string
	TextKeywords       []string
	TransitionKeywords []string

	// Fixed word lists for field extraction.
	Positions       []string
	TransitionTypes []string
	MediaExtensions []string

	DefaultFile       string
	DefaultText       string
	DefaultPosition   string
	DefaultTransition string
	TextTime          string
	TransitionTime    string
}

// DefaultVocabulary returns the compiled-in keyword set.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		TrimKeywords:       []string{"trim", "cut"},
		TextKeywords:       []string{"add text", "text saying", "caption"},
		TransitionKeywords: []string{"transition", "fade", "dissolve", "wipe"},

		Positions:       []string{"center", "top", "bottom", "left", "right"},
		TransitionTypes: []string{"fade", "cut", "dissolve", "wipe"},
		MediaExtensions: []string{"mp4", "mov", "avi", "mkv", "webm"},

		DefaultFile:       DefaultFileName,
		DefaultText:       DefaultText,
		DefaultPosition:   DefaultPosition,
		DefaultTransition: DefaultTransition,
		TextTime:          DefaultTextTime,
		TransitionTime:    DefaultTransitionTime,
	}
}
