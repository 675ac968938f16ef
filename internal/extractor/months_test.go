package extractor

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var twoDigitMonth = regexp.MustCompile(`^(0[1-9]|1[0-2])$`)

func TestMonthTable_RoundTrip(t *testing.T) {
	tokens := MonthTokens()
	require.NotEmpty(t, tokens)

	for _, tok := range tokens {
		num, ok := Month(tok)
		require.True(t, ok, tok)
		assert.Regexp(t, twoDigitMonth, num, tok)

		for _, variant := range []string{strings.ToUpper(tok), tok + ".", " " + tok + " "} {
			got, ok := Month(variant)
			assert.True(t, ok, variant)
			assert.Equal(t, num, got, variant)
		}
	}
}

func TestMonthTable_CoversEveryMonth(t *testing.T) {
	seen := map[string]bool{}
	for _, tok := range MonthTokens() {
		num, _ := Month(tok)
		seen[num] = true
	}
	for m := 1; m <= 12; m++ {
		key := strconv.Itoa(m)
		if m < 10 {
			key = "0" + key
		}
		assert.True(t, seen[key], "month %s", key)
	}
}

func TestMonth(t *testing.T) {
	tests := []struct {
		token string
		want  string
		ok    bool
	}{
		{"Ene", "01", true},
		{"ENE.", "01", true},
		{"eng", "01", true},
		{"Febrero", "02", true},
		{"Setiembre", "09", true},
		{"Sept.", "09", true},
		{"AGÓSTO", "08", true},
		{"Díc", "12", true},
		{"Xyz", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := Month(tt.token)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
