package doctrans

import "testing"

func TestNormalizeLang(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"pt-BR", "pt"},
		{"pt_BR", "pt"},
		{"ru-RU", "ru"},
		{"sr-Latn", "sr"},
		{"  EN  ", "en"},
		{"uk", "uk"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			result := NormalizeLang(tt.code)
			if result != tt.expected {
				t.Errorf("NormalizeLang(%q) = %q, want %q", tt.code, result, tt.expected)
			}
		})
	}
}

func TestNormalizeLang_Idempotent(t *testing.T) {
	inputs := []string{"pt-BR", "RU", "sr-Latn-RS", "", "  de_AT ", "zh"}
	for _, in := range inputs {
		once := NormalizeLang(in)
		twice := NormalizeLang(once)
		if once != twice {
			t.Errorf("NormalizeLang not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestLanguageName(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"ru", "Russian"},
		{"ru-RU", "Russian"},
		{"uk", "Ukrainian"},
		{"sr-Latn", "Serbian"},
		{"xx", "xx"}, // fallback to normalized code
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			result := LanguageName(tt.code)
			if result != tt.expected {
				t.Errorf("LanguageName(%q) = %q, want %q", tt.code, result, tt.expected)
			}
		})
	}
}
