package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"-", ""},
		{" - ", ""},
		{"=", ""},
		{" = ", ""},
		{":", ""},
		{" :: ", ""},
		{"\t.\n", ""},
		{`"CABO"`, "CABO"},
		{" Regimiento 3. ", "Regimiento 3"},
		{"- x", "- x"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, PostClean(tt.in))
		})
	}
}

func TestIsInvalid(t *testing.T) {
	for _, v := range []string{"", " ", "-", "=", ":", " : "} {
		assert.True(t, IsInvalid(v), "%q", v)
	}
	for _, v := range []string{"a", "--", "0"} {
		assert.False(t, IsInvalid(v), "%q", v)
	}
}

func TestSameLine(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		label string
		want  string
	}{
		{"colon", "Unidad de Baja: Batallón 7", DischargeUnitLabel, "Batallón 7"},
		{"no separator", "Unidad de Baja Batallón 7", DischargeUnitLabel, "Batallón 7"},
		{"case insensitive", "UNIDAD DE BAJA: RI 3", DischargeUnitLabel, "RI 3"},
		{"value stops at line end", "Unidad de Baja: RI 3\nGrado: Cabo", DischargeUnitLabel, "RI 3"},
		{"first line wins", "Unidad de Baja: A1\nUnidad de Baja: B2", DischargeUnitLabel, "A1"},
		{"label mid-line ignored", "x Unidad de Baja: RI 3", DischargeUnitLabel, ""},
		{"empty value", "Unidad de Baja:\nGrado: Cabo", DischargeUnitLabel, ""},
		{"sentinel value", "Unidad de Baja: =", DischargeUnitLabel, ""},
		{"missing label", "Grado: Cabo", DischargeUnitLabel, ""},
		{"bad label pattern", "anything", `(`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SameLine(tt.text, tt.label))
		})
	}
}

func TestBlock(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "cut at next section",
			text: "Unidad de alta: Regimiento 3\nde Infantería\nFecha de Alta: 01-01-1970",
			want: "Regimiento 3\nde Infantería",
		},
		{
			name: "leading separators stripped",
			text: "Unidad de alta :-> Regimiento 3 Unidad de Baja: X",
			want: "Regimiento 3",
		},
		{
			name: "runs to end without stopword",
			text: "Unidad de alta: Regimiento 3",
			want: "Regimiento 3",
		},
		{
			name: "stopword directly after label keeps remainder",
			text: "Unidad de alta: Fecha de Alta: 01-01-2000",
			want: "Fecha de Alta: 01-01-2000",
		},
		{
			name: "stopwords are case insensitive",
			text: "Unidad de alta: RI 3 servicio de la reserva",
			want: "RI 3",
		},
		{
			name: "ocr label variant",
			text: "Unid de alia: RI 3\nCALIFICACION",
			want: "RI 3",
		},
		{
			name: "missing label",
			text: "Grado: Cabo",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Block(tt.text, AdmissionUnitLabel))
		})
	}
}

func TestBlock_BadLabel(t *testing.T) {
	assert.Equal(t, "", Block("Unidad de alta: RI 3", `[`))
}
