package doctrans

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRuleSet_For(t *testing.T) {
	rules := DefaultRules()

	rule, ok := rules.For("uk")
	if !ok {
		t.Fatal("expected rule for uk")
	}
	if rule.Quotes != "«…»" {
		t.Errorf("uk quotes = %q", rule.Quotes)
	}

	// Region subtags normalize away.
	if _, ok := rules.For("sr-Cyrl-RS"); !ok {
		t.Error("expected sr rule for sr-Cyrl-RS")
	}

	if _, ok := rules.For("xx"); ok {
		t.Error("expected no rule for unknown language")
	}
}

func TestLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `
pt-BR:
  quotes: "«…»"
  notes: Prefer Brazilian vocabulary.
ja:
  notes: Use polite form.
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}

	// Keys are normalized on load.
	rule, ok := rules.For("pt")
	if !ok {
		t.Fatal("expected pt rule from pt-BR key")
	}
	if rule.Notes != "Prefer Brazilian vocabulary." {
		t.Errorf("pt notes = %q", rule.Notes)
	}
	if _, ok := rules.For("ja-JP"); !ok {
		t.Error("expected ja rule")
	}
}

func TestLoadRules_Errors(t *testing.T) {
	if _, err := LoadRules(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("{not yaml: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRules(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
