package driven

import "context"

// TextFixup corrects one known OCR artefact in a transcript.
// Fix-ups are chained in a pipeline that runs before extraction.
type TextFixup interface {
	// Name returns the fix-up name used in configuration.
	Name() string

	// Apply returns text with the correction applied.
	Apply(text string) string
}

// TextFixupPipeline chains multiple TextFixups.
type TextFixupPipeline interface {
	// Process runs the text through all fix-ups in order.
	Process(ctx context.Context, text string) (string, error)
}
