package types

// Action discriminates which editing instruction variant applies.
type Action string

const (
	ActionTrim          Action = "trim"
	ActionAddText       Action = "add_text"
	ActionAddTransition Action = "add_transition"
	ActionUnknown       Action = "unknown"
)

// Instruction is one structured editing action. Exactly the fields of the
// selected action kind are populated; everything else stays empty and is
// dropped from JSON output.
type Instruction struct {
	Action          Action `json:"action"`
	FileName        string `json:"file_name,omitempty"`
	StartTime       string `json:"start_time,omitempty"`
	EndTime         string `json:"end_time,omitempty"`
	Text            string `json:"text,omitempty"`
	Position        string `json:"position,omitempty"`
	TransitionType  string `json:"transition_type,omitempty"`
	Time            string `json:"time,omitempty"`
	OutputFile      string `json:"output_file,omitempty"`
	OriginalCommand string `json:"original_command,omitempty"`
}

func NewTrim(fileName, startTime, endTime string) Instruction {
	return Instruction{
		Action:     ActionTrim,
		FileName:   fileName,
		StartTime:  startTime,
		EndTime:    endTime,
		OutputFile: OutputFileName(ActionTrim, fileName),
	}
}

func NewAddText(fileName, text, position, at string) Instruction {
	return Instruction{
		Action:     ActionAddText,
		FileName:   fileName,
		Text:       text,
		Position:   position,
		Time:       at,
		OutputFile: OutputFileName(ActionAddText, fileName),
	}
}

func NewAddTransition(fileName, transitionType, at string) Instruction {
	return Instruction{
		Action:         ActionAddTransition,
		FileName:       fileName,
		TransitionType: transitionType,
		Time:           at,
		OutputFile:     OutputFileName(ActionAddTransition, fileName),
	}
}

// NewUnknown carries the unparsed command verbatim for diagnostic display.
// Not an error: it is a valid terminal classification.
func NewUnknown(command string) Instruction {
	return Instruction{
		Action:          ActionUnknown,
		OriginalCommand: command,
	}
}

// OutputFileName derives the output filename from the action kind and the
// input filename. The derivation is deterministic so repeated classification
// of the same command names the same artifact.
func OutputFileName(a Action, fileName string) string {
	if fileName == "" {
		return ""
	}
	switch a {
	case ActionTrim:
		return "trimmed_" + fileName
	case ActionAddText:
		return "text_" + fileName
	case ActionAddTransition:
		return "transition_" + fileName
	default:
		return ""
	}
}

// Retarget returns a copy of the instruction aimed at a different input file,
// with the output filename re-derived. Unknown instructions are returned
// unchanged since they reference no file.
func (in Instruction) Retarget(fileName string) Instruction {
	if in.Action == ActionUnknown || fileName == "" {
		return in
	}
	out := in
	out.FileName = fileName
	out.OutputFile = OutputFileName(in.Action, fileName)
	return out
}
