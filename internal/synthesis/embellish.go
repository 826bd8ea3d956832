package synthesis

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/interview-coach/internal/types"
)

// Embellisher post-processes a story's variant text for one persona, e.g. by
// routing it through a generative collaborator for more natural prose. It is
// an enhancement, never a correctness requirement: the templated output is a
// complete, valid result on its own.
type Embellisher interface {
	Embellish(ctx context.Context, story types.CoreStory, persona types.Persona) (types.Variant, error)
}

// NoopEmbellisher returns the templated variant unchanged.
type NoopEmbellisher struct{}

// Embellish implements Embellisher.
func (NoopEmbellisher) Embellish(_ context.Context, story types.CoreStory, persona types.Persona) (types.Variant, error) {
	return story.Variants[persona], nil
}

// EmbellishStories applies the hook to every story/persona pair, fanning out
// per story. Each pair is independent, so completion ordering is irrelevant.
// Any failure, timeout, or malformed result falls back to the already
// complete templated variant; errors never propagate to the caller.
// Selection, coverage, and story ids are untouched.
func EmbellishStories(ctx context.Context, emb Embellisher, stories []types.CoreStory) []types.CoreStory {
	out := make([]types.CoreStory, len(stories))
	copy(out, stories)
	if emb == nil {
		return out
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range out {
		g.Go(func() error {
			story := out[i]
			variants := make(map[types.Persona]types.Variant, len(story.Variants))
			for p, v := range story.Variants {
				variants[p] = v
			}
			for _, persona := range types.AllPersonas() {
				improved, err := emb.Embellish(gctx, story, persona)
				if err != nil {
					continue // keep the templated variant
				}
				if improved.Long == "" || len(improved.Short) < 4 || len(improved.Short) > 6 {
					continue // malformed embellishment, keep the templated variant
				}
				variants[persona] = improved
			}
			out[i].Variants = variants
			return nil
		})
	}
	// Goroutines only ever return nil; Wait is for completion, not errors.
	_ = g.Wait()

	return out
}
