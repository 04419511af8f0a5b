package selector

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Extractor applies a fixed rule set to markup.
type Extractor struct {
	rules RuleSet
}

// NewExtractor binds a validated rule set.
func NewExtractor(rules RuleSet) *Extractor {
	return &Extractor{rules: rules}
}

// Extract applies the bound rules to markup.
func (e *Extractor) Extract(markup string) (map[string]string, error) {
	return Extract(markup, e.rules)
}

// Extract returns the text selected by each rule. Fields whose selector
// matches nothing, or matches only whitespace, are left out of the result.
func Extract(markup string, rules RuleSet) (map[string]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}

	fields := make(map[string]string, len(rules))
	for name, rule := range rules {
		sel := doc.Find(rule.CSS).First()
		if sel.Length() == 0 {
			continue
		}
		var value string
		if rule.Type == TypeAttribute {
			attr, ok := sel.Attr(rule.Attribute)
			if !ok {
				continue
			}
			value = attr
		} else {
			value = sel.Text()
		}
		value = strings.Join(strings.Fields(value), " ")
		if value == "" {
			continue
		}
		fields[name] = value
	}
	return fields, nil
}
