// Package synthesis deterministically builds reusable core stories from a
// pool of practice answers: theme-based selection, STAR composition, and
// persona-specific rendering. All of it is pure; the only asynchronous
// boundary is the optional embellishment hook.
package synthesis

import "errors"

// Caller contract violations. These are raised at call time and are
// distinguishable from rubric configuration errors; they are never silently
// coerced into degenerate output.
var (
	// ErrInsufficientAnswers is returned when fewer than 3 answers are supplied.
	ErrInsufficientAnswers = errors.New("synthesis requires at least 3 answers")
	// ErrInsufficientThemes is returned when fewer than 2 themes are supplied.
	ErrInsufficientThemes = errors.New("synthesis requires at least 2 themes")
)
