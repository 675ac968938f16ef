package domain

// AppSettings holds the user configuration of registro.
type AppSettings struct {
	// Workers bounds how many transcripts a batch extracts at once.
	Workers int

	// Fixups names the text fix-ups applied before extraction, in order.
	Fixups []string

	// DataDir is where the record database lives. Empty means the default
	// location under the user's home directory.
	DataDir string

	// Encoding is the character encoding of input transcripts, as a WHATWG
	// label ("utf-8", "windows-1252", "latin1", ...).
	Encoding string
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Workers:  4,
		Fixups:   []string{"setiembre", "email_spacing"},
		Encoding: "utf-8",
	}
}
