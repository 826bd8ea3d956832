package synthesis

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/interview-coach/internal/types"
)

// Version identifies the synthesis pipeline revision carried in every output.
const Version = "synthesis-v2"

// Synthesize deterministically builds core stories from a pool of answers and
// a theme list: per-theme selection, banding to [minStories,maxStories], STAR
// composition, and persona variant rendering. Identical inputs always yield
// identical output; the engine holds no state between calls.
func Synthesize(input types.SynthesisInput) (*types.SynthesisOutput, error) {
	minStories := input.MinStories
	if minStories < 1 {
		minStories = defaultMinStories
	}
	maxStories := input.MaxStories
	if maxStories < 1 {
		maxStories = defaultMaxStories
	}
	if maxStories < minStories {
		maxStories = minStories
	}

	selections, err := SelectAnswers(input.Answers, input.Themes, defaultPerTheme)
	if err != nil {
		return nil, err
	}

	rationale := make([]string, 0, len(selections)+4)
	if input.Persona.IsValid() {
		rationale = append(rationale, fmt.Sprintf("emphasizing the %s viewpoint", input.Persona))
	}
	for _, sel := range selections {
		if len(sel.AnswerIDs) == 0 {
			rationale = append(rationale, fmt.Sprintf("theme %s: no tagged answers, covered by placeholder material", sel.Theme))
			continue
		}
		rationale = append(rationale, fmt.Sprintf(
			"theme %s: selected %s (evidence strength %.1f)",
			sel.Theme, strings.Join(sel.AnswerIDs, ", "), sel.Strength))
	}

	groups, bandRationale := bandSelections(selections, minStories, maxStories)
	rationale = append(rationale, bandRationale...)

	byID := make(map[string]types.AnswerItem, len(input.Answers))
	for _, answer := range input.Answers {
		byID[answer.ID] = answer
	}

	stories := make([]types.CoreStory, 0, len(groups))
	for i, group := range groups {
		title, star := composeDraft(group, byID)
		stories = append(stories, types.CoreStory{
			ID:              storyID(i, group.themes, group.answerIDs),
			Title:           title,
			Coverage:        append([]string{}, group.themes...),
			SourceAnswerIDs: append([]string{}, group.answerIDs...),
			Star:            star,
			Variants:        RenderVariants(star),
		})
	}

	coverage := make(types.CoverageMap, len(input.Themes))
	for _, theme := range input.Themes {
		coverage[theme] = []string{}
	}
	for _, story := range stories {
		for _, theme := range story.Coverage {
			coverage[theme] = append(coverage[theme], story.ID)
		}
	}

	return &types.SynthesisOutput{
		CoreStories: stories,
		CoverageMap: coverage,
		Rationale:   rationale,
		Version:     Version,
	}, nil
}

// storyID derives a stable UUID from the story's position and sources, so
// identical synthesis inputs always produce identical ids.
func storyID(position int, themes, answerIDs []string) string {
	seed := fmt.Sprintf("interview-coach/story/%d/%s/%s",
		position, strings.Join(themes, "+"), strings.Join(answerIDs, ","))
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(seed)).String()
}
