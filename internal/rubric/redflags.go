package rubric

import (
	"regexp"
	"strings"
)

// RedFlag is a configured negative pattern. A flag fires when any of its
// keywords appears in the answer (case-insensitive substring) or its pattern
// matches; each flag counts at most once per answer.
type RedFlag struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	// Penalty is the (negative) point adjustment, in [-20,-1].
	Penalty  int      `json:"penalty"`
	Keywords []string `json:"keywords,omitempty"`
	// Pattern is an optional regular expression, compiled case-insensitively
	// during config validation.
	Pattern string `json:"pattern,omitempty"`

	re *regexp.Regexp
}

// Matches reports whether the flag fires for the given answer text.
// The caller passes the already-lowercased text so a full catalogue scan
// lowercases the answer once.
func (f *RedFlag) Matches(lowerText string) bool {
	for _, kw := range f.Keywords {
		if kw != "" && strings.Contains(lowerText, strings.ToLower(kw)) {
			return true
		}
	}
	if f.Pattern != "" {
		re := f.re
		if re == nil {
			compiled, err := regexp.Compile("(?i)" + f.Pattern)
			if err != nil {
				// Unvalidated flag with a broken pattern; keyword matching
				// above is the only signal available.
				return false
			}
			re = compiled
		}
		return re.MatchString(lowerText)
	}
	return false
}

// defaultRedFlags returns the built-in red-flag catalogue.
func defaultRedFlags() []RedFlag {
	return []RedFlag{
		{
			Name:        "blame-shifting",
			Description: "Deflects responsibility for failures onto others",
			Penalty:     -12,
			Keywords:    []string{"not my fault", "blame", "they screwed up", "management failed"},
		},
		{
			Name:        "vague-filler",
			Description: "Filler language where concrete detail belongs",
			Penalty:     -6,
			Keywords:    []string{"stuff like that", "things like that", "you know", "kind of just", "sort of just"},
		},
		{
			Name:        "exaggeration",
			Description: "Credibility-straining superlatives",
			Penalty:     -10,
			Keywords:    []string{"single-handedly", "saved the company", "best in the industry", "revolutionary"},
		},
		{
			Name:        "negativity",
			Description: "Hostile framing of former teams or employers",
			Penalty:     -8,
			Keywords:    []string{"toxic", "hated", "terrible team", "awful manager", "incompetent"},
		},
		{
			Name:        "confidentiality-risk",
			Description: "Signals mishandling of confidential information",
			Penalty:     -15,
			Keywords:    []string{"leaked", "under nda but", "confidential but", "shouldn't share this"},
		},
		{
			Name:        "no-ownership",
			Description: "Passive framing that hides the candidate's own contribution",
			Penalty:     -9,
			Pattern:     `\b(we were told|i was just|had no choice|they made us)\b`,
		},
	}
}
