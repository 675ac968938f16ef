package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/custodia-labs/registro-ocr/internal/core/domain"
)

// stdinSource is the source id of transcripts read from standard input.
const stdinSource = "stdin"

var errNoInput = errors.New("no transcript: pass a file or pipe one on stdin")

// decodeText converts data from the named encoding to UTF-8. label is any
// WHATWG encoding label; "" means UTF-8.
func decodeText(data []byte, label string) (string, error) {
	if label == "" {
		return string(data), nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedEncoding, label)
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", label, err)
	}
	return string(out), nil
}

// inputEncoding returns the --encoding flag value, falling back to the
// configured input encoding.
func inputEncoding(flag string) string {
	if flag != "" {
		return flag
	}
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			return settings.Encoding
		}
	}
	return ""
}

// readTranscriptFile reads and decodes one transcript file.
func readTranscriptFile(path, encoding string) (domain.RawDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.RawDocument{}, err
	}
	text, err := decodeText(data, encoding)
	if err != nil {
		return domain.RawDocument{}, fmt.Errorf("%s: %w", path, err)
	}
	return domain.RawDocument{SourceID: path, URI: path, Text: text}, nil
}

// readTranscript reads the transcript named by args, or standard input
// when args is empty or "-". An interactive terminal is not read.
func readTranscript(cmd *cobra.Command, args []string, encoding string) (domain.RawDocument, error) {
	if len(args) > 0 && args[0] != "-" {
		return readTranscriptFile(args[0], encoding)
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return domain.RawDocument{}, errNoInput
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return domain.RawDocument{}, fmt.Errorf("reading stdin: %w", err)
	}
	text, err := decodeText(data, encoding)
	if err != nil {
		return domain.RawDocument{}, err
	}
	return domain.RawDocument{SourceID: stdinSource, Text: text}, nil
}
