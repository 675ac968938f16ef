package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/registro-ocr/internal/core/domain"
)

func TestRecoverDigits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"O1234567B", "012345678"},
		{"30.123.456", "30123456"},
		{"2O-I23-456-7", "201234567"},
		{"l2345678", "12345678"},
		{"S1234567", "51234567"},
		{"1234567", ""},
		{"123456789012", ""},
		{"", ""},
		{"sin dato", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, RecoverDigits(tt.in))
		})
	}
}

func TestDNI(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		want     string
		wantProv domain.Provenance
	}{
		{"spaced label", "D N I : O1234567B", "012345678", domain.ProvenanceLabelled},
		{"dotted label", "D.N.I.: 30.123.456", "30123456", domain.ProvenanceLabelled},
		{"equals", "DNI= 30123456", "30123456", domain.ProvenanceLabelled},
		{
			name:     "blood type line ignored",
			text:     "D.N.I: O +\nNombres: JUAN\nDNI: 30123456",
			want:     "30123456",
			wantProv: domain.ProvenanceLabelled,
		},
		{
			name:     "header scan when label unreadable",
			text:     "REGISTRO 20123456\nDNI: ---\nNombres: JUAN",
			want:     "20123456",
			wantProv: domain.ProvenanceHeaderScan,
		},
		{
			name:     "header scan reads lookalikes",
			text:     "Matricula 2OI23456\nNombres: JUAN",
			want:     "20123456",
			wantProv: domain.ProvenanceHeaderScan,
		},
		{
			name:     "header scan limited to first lines",
			text:     "1\n2\n3\n4\n5\n6\n7\n8\n20123456",
			want:     "",
			wantProv: domain.ProvenanceNotFound,
		},
		{"nothing", "Nombres: JUAN", "", domain.ProvenanceNotFound},
		{"empty", "", "", domain.ProvenanceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, prov := DNI(tt.text)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantProv, prov)
		})
	}
}
