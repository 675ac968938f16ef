package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"JUAN | CARLOS", "JUAN"},
		{"juan carlos", "JUAN CARLOS"},
		{`"JUAN" 'CARLOS'`, "JUAN CARLOS"},
		{"PÉREZ—GÓMEZ", "PÉREZ GÓMEZ"},
		{"<JUAN> •CARLOS·", "JUAN CARLOS"},
		{"JUAN 3RO", "JUAN RO"},
		{"MUÑOZ   ibáñez", "MUÑOZ IBÁÑEZ"},
		{"*** ---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.in))
		})
	}
}

func TestGivenNames(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"labelled", "Nombres: JUAN | CARLOS", "JUAN"},
		{"no colon", "Nombres JUAN CARLOS", "JUAN CARLOS"},
		{"noise before label", "1) Nombres: Ana María", "ANA MARÍA"},
		{"first line wins", "Nombres: ANA\nNombres: LUISA", "ANA"},
		{"label alone on line", "Nombres:\nApellidos: PEREZ", ""},
		{"missing", "Apellidos: PEREZ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GivenNames(tt.text))
		})
	}
}

func TestSurnames(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"labelled", "Apellidos: PÉREZ GÓMEZ", "PÉREZ GÓMEZ"},
		{"misread t", "Apeltidos: PEREZ", "PEREZ"},
		{"missing l", "Apelidos: PEREZ", "PEREZ"},
		{"cut at bar", "Apellidos: PEREZ | Nombres: JUAN", "PEREZ"},
		{"missing", "Nombres: JUAN", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Surnames(tt.text))
		})
	}
}
