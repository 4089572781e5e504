package doctrans

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestRealign(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int
		want     []string
	}{
		{
			name:     "exact count",
			raw:      "one\ntwo\nthree",
			expected: 3,
			want:     []string{"one", "two", "three"},
		},
		{
			name:     "short response is padded at the end",
			raw:      "one\ntwo\nthree",
			expected: 5,
			want:     []string{"one", "two", "three", "", ""},
		},
		{
			name:     "long response is truncated from the front",
			raw:      "one\ntwo\nthree\nfour\nfive",
			expected: 3,
			want:     []string{"one", "two", "three"},
		},
		{
			name:     "empty response",
			raw:      "",
			expected: 2,
			want:     []string{"", ""},
		},
		{
			name:     "zero expected",
			raw:      "anything\nat all",
			expected: 0,
			want:     []string{},
		},
		{
			name:     "crlf line endings",
			raw:      "one\r\ntwo",
			expected: 2,
			want:     []string{"one", "two"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Realign(tt.raw, tt.expected)
			if len(got) != len(tt.want) {
				t.Fatalf("Realign() len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Realign()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// The output length is always exactly the expected count, for any combination
// of response line count and expectation.
func TestRealign_Postcondition(t *testing.T) {
	for _, expected := range []int{0, 1, 3, 150} {
		for _, lines := range []int{0, 1, 3, 5, 150, 200} {
			t.Run(fmt.Sprintf("expected=%d_lines=%d", expected, lines), func(t *testing.T) {
				parts := make([]string, lines)
				for i := range parts {
					parts[i] = fmt.Sprintf("line-%d", i)
				}
				got := Realign(strings.Join(parts, "\n"), expected)
				if len(got) != expected {
					t.Fatalf("Realign() len = %d, want %d", len(got), expected)
				}
			})
		}
	}
}

func TestStrictRealign(t *testing.T) {
	got, err := StrictRealign("one\ntwo", 2)
	if err != nil {
		t.Fatalf("unexpected error on exact count: %v", err)
	}
	if got[0] != "one" || got[1] != "two" {
		t.Errorf("StrictRealign() = %v", got)
	}

	got, err = StrictRealign("one", 3)
	if err == nil {
		t.Fatal("expected mismatch error")
	}
	var mismatch *CountMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *CountMismatchError, got %T", err)
	}
	if mismatch.Expected != 3 || mismatch.Got != 1 {
		t.Errorf("mismatch = %+v", mismatch)
	}
	if len(got) != 3 {
		t.Errorf("repaired slice len = %d, want 3", len(got))
	}
}
