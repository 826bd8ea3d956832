package scoring

import (
	"strings"

	"github.com/jonathan/interview-coach/internal/rubric"
	"github.com/jonathan/interview-coach/internal/types"
)

// DetectRedFlags scans answer text against the configured catalogue and
// returns the flags that fired, in catalogue order. Each flag is counted at
// most once per answer regardless of how many of its keywords matched.
func DetectRedFlags(text string, flags []rubric.RedFlag) []types.RedFlagHit {
	lower := strings.ToLower(text)

	hits := make([]types.RedFlagHit, 0)
	for i := range flags {
		if flags[i].Matches(lower) {
			hits = append(hits, types.RedFlagHit{
				Name:    flags[i].Name,
				Penalty: flags[i].Penalty,
			})
		}
	}
	return hits
}
