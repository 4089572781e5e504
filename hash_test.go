package doctrans

import "testing"

func TestHashSegment(t *testing.T) {
	a := HashSegment("Power")
	b := HashSegment("Power")
	if a != b {
		t.Error("hash must be deterministic")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
	if HashSegment("Power") != HashSegment("  Power  ") {
		t.Error("hash must trim whitespace")
	}
	if HashSegment("Power") == HashSegment("Volume") {
		t.Error("different segments must hash differently")
	}
}
