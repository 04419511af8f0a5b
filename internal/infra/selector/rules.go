package selector

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
	"gopkg.in/yaml.v3"
)

// Rule value types.
const (
	TypeText      = "Text"
	TypeAttribute = "Attribute"
)

// Rule locates one field inside a page.
type Rule struct {
	CSS       string `yaml:"css"`
	Type      string `yaml:"type"`
	Attribute string `yaml:"attribute"`
}

// RuleSet maps field names to their rules.
type RuleSet map[string]Rule

// LoadFile reads and validates a YAML rule file.
func LoadFile(path string) (RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read selector file: %w", err)
	}
	rules, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rules, nil
}

// Parse decodes a YAML rule document.
func Parse(data []byte) (RuleSet, error) {
	var rules RuleSet
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parse selector rules: %w", err)
	}
	for name, rule := range rules {
		if strings.TrimSpace(rule.Type) == "" {
			rule.Type = TypeText
			rules[name] = rule
		}
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return rules, nil
}

// Validate ensures every rule has a compilable selector and a known type.
func (rs RuleSet) Validate() error {
	if len(rs) == 0 {
		return errors.New("selector rules cannot be empty")
	}
	for _, name := range rs.Fields() {
		rule := rs[name]
		if strings.TrimSpace(rule.CSS) == "" {
			return fmt.Errorf("rule %q: css cannot be empty", name)
		}
		if _, err := cascadia.Compile(rule.CSS); err != nil {
			return fmt.Errorf("rule %q: invalid css %q: %w", name, rule.CSS, err)
		}
		switch rule.Type {
		case TypeText, "":
		case TypeAttribute:
			if strings.TrimSpace(rule.Attribute) == "" {
				return fmt.Errorf("rule %q: attribute cannot be empty for type %s", name, TypeAttribute)
			}
		default:
			return fmt.Errorf("rule %q: unsupported type %q", name, rule.Type)
		}
	}
	return nil
}

// Require reports an error when any of the named fields has no rule.
func (rs RuleSet) Require(fields ...string) error {
	for _, f := range fields {
		if _, ok := rs[f]; !ok {
			return fmt.Errorf("selector rules must define %q", f)
		}
	}
	return nil
}

// Fields returns the rule names in sorted order.
func (rs RuleSet) Fields() []string {
	names := make([]string, 0, len(rs))
	for name := range rs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
