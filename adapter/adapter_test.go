package adapter

import "testing"

func TestEscapeXML(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"a & b", "a &amp; b"},
		{"<tag>", "&lt;tag&gt;"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := escapeXML(tt.in); got != tt.want {
			t.Errorf("escapeXML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnescapeXML(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"a &amp; b", "a & b"},
		{"&lt;tag&gt;", "<tag>"},
		{"&quot;q&quot; &apos;a&apos;", `"q" 'a'`},
		// Double-escaped input stays single-escaped.
		{"&amp;lt;", "&lt;"},
	}
	for _, tt := range tests {
		if got := unescapeXML(tt.in); got != tt.want {
			t.Errorf("unescapeXML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
