// Package fixups provides named text corrections for known OCR artefacts.
// Enabled fix-ups run as a pipeline on the transcript before extraction.
package fixups

import (
	"context"
	"fmt"

	"github.com/custodia-labs/registro-ocr/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.TextFixupPipeline = (*Pipeline)(nil)

// Pipeline chains multiple TextFixups and runs them in order.
type Pipeline struct {
	fixups []driven.TextFixup
}

// NewPipeline creates a pipeline with the given fix-ups.
// Fix-ups are applied in the order provided.
func NewPipeline(fixups ...driven.TextFixup) *Pipeline {
	return &Pipeline{fixups: fixups}
}

// Process runs text through all fix-ups in order.
func (p *Pipeline) Process(ctx context.Context, text string) (string, error) {
	for _, f := range p.fixups {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("fixup %s: %w", f.Name(), err)
		}
		text = f.Apply(text)
	}
	return text, nil
}

// Add appends a fix-up to the pipeline.
func (p *Pipeline) Add(f driven.TextFixup) {
	p.fixups = append(p.fixups, f)
}

// Len returns the number of fix-ups in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.fixups)
}

// Names returns the fix-up names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.fixups))
	for i, f := range p.fixups {
		names[i] = f.Name()
	}
	return names
}
