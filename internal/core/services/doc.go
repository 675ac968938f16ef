// Package services implements the driving port interfaces.
// Services orchestrate the driven ports: they normalise transcripts,
// run the field extractor and hand validated records to the store.
package services
