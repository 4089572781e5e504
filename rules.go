package doctrans

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rule holds per-language formatting policy surfaced to the service as
// instructions: national quotation marks, script requirements, and free-form
// style notes. The table is configuration data, not algorithmic core.
type Rule struct {
	Quotes string `yaml:"quotes"` // National quotation marks, e.g. «…» or „…”
	Script string `yaml:"script"` // Script/alphabet requirement for the output
	Notes  string `yaml:"notes"`  // Additional style guidance
}

// RuleSet maps normalized language codes to formatting rules.
type RuleSet map[string]Rule

// DefaultRules returns the built-in formatting rule table for technical
// document translation.
func DefaultRules() RuleSet {
	return RuleSet{
		"ru": {
			Quotes: "«…»",
			Notes:  "Use Russian punctuation conventions.",
		},
		"uk": {
			Quotes: "«…»",
			Script: "Write in Cyrillic, without Russian or English loanwords.",
			Notes:  "Use Ukrainian quotation marks and grammatically correct forms.",
		},
		"be": {Quotes: "«…»"},
		"bg": {Quotes: "«…»"},
		"mk": {Quotes: "«…»"},
		"kk": {
			Quotes: "«…»",
			Script: "Write in Cyrillic; spell measurement units in Cyrillic (Вт, В, Гц).",
		},
		"sr": {
			Quotes: "„…”",
			Script: "Write in Serbian Latin script (sr-Latn), even if sr-Cyrl is requested.",
			Notes:  "Preserve technical terminology.",
		},
		"el": {
			Quotes: "«…»",
			Script: "Write in the Greek alphabet; do not leave Latin text except established terms like USB or BT.",
		},
		"en": {
			Quotes: "“…”",
			Notes:  "Use concise technical style without extra explanations.",
		},
		"de": {
			Quotes: "„…“",
			Notes:  "Mind V2/SOV word order, correct articles and cases.",
		},
		"pl": {Quotes: "„…”"},
		"lt": {Quotes: "„…“"},
		"lv": {Quotes: "„…”"},
		"hu": {Quotes: "„…”"},
		"sk": {Quotes: "„…“"},
		"sl": {Quotes: "„…“"},
		"cs": {Quotes: "„…“"},
		"fr": {Quotes: "«…»"},
		"es": {Quotes: "«…»"},
		"ro": {Quotes: "„…”"},
		"it": {Quotes: "«…»"},
		"pt": {Quotes: "«…»"},
		"nl": {Quotes: "“…”"},
		"da": {Quotes: "“…”"},
		"no": {Quotes: "«…»"},
		"sv": {Quotes: "”…”"},
	}
}

// For returns the rule for a language tag, normalizing region subtags first.
func (r RuleSet) For(lang string) (Rule, bool) {
	rule, ok := r[NormalizeLang(lang)]
	return rule, ok
}

// LoadRules reads a formatting rule table from a YAML file. The file maps
// language codes to rule objects; codes are normalized on load so "pt-BR" and
// "pt" collapse to the same key.
func LoadRules(path string) (RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}

	var raw map[string]Rule
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing rules file: %w", err)
	}

	rules := make(RuleSet, len(raw))
	for code, rule := range raw {
		rules[NormalizeLang(code)] = rule
	}
	return rules, nil
}
