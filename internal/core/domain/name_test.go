package domain_test

import (
	"testing"

	"go.trai.ch/repin/internal/core/domain"
)

func TestExtractName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"bare name", "numpy", "numpy"},
		{"conda pin", "numpy=1.2", "numpy"},
		{"conda exact pin with build", "numpy=1.26.4=py311h64a7726_0", "numpy"},
		{"channel qualifier", "conda-forge::numpy=1.2", "numpy"},
		{"channel without version", "bioconda::samtools", "samtools"},
		{"pip exact pin", "pkg==1.2", "pkg"},
		{"pip extras", "pkg[extra]==1.2", "pkg"},
		{"pip range", "pkg>=1.0,<2.0", "pkg"},
		{"direct reference", "pkg @ https://example.com/x", "pkg"},
		{"direct reference no spaces", "pkg@https://example.com/x", "pkg"},
		{"surrounding whitespace", "  pandas=1.0  ", "pandas"},
		{"dotted name", "ruamel.yaml=0.18", "ruamel.yaml"},
		{"underscore name", "typing_extensions", "typing_extensions"},
		{"empty string", "", ""},
		{"whitespace only", "   ", ""},
		{"no name token", "@foo", "@foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ExtractName(tt.raw)
			if got != tt.want {
				t.Errorf("ExtractName(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestExtractName_Idempotent(t *testing.T) {
	inputs := []string{
		"numpy",
		"conda-forge::numpy=1.2",
		"pkg[extra]==1.2",
		"pkg @ https://example.com/x",
		"",
		"   ",
		"@foo",
		"::::numpy",
		"a::b::c",
	}

	for _, raw := range inputs {
		once := domain.ExtractName(raw)
		twice := domain.ExtractName(once)
		if once != twice {
			t.Errorf("ExtractName not idempotent for %q: first %q, second %q", raw, once, twice)
		}
	}
}
