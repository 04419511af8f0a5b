package selector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const qlookPage = `<html><body>
<div id="qlook" class="bk-focus__qlook">
  <div class="h1">Now</div>
  <img id="cur-weather" title="Sunny." src="/sun.png">
  <div class="h2">14&nbsp;°C</div>
  <p>Passing clouds.</p>
</div>
</body></html>`

func testRules() RuleSet {
	return RuleSet{
		"temperature": {CSS: "#qlook > div.h2", Type: TypeText},
		"conditions":  {CSS: "#qlook > p", Type: TypeText},
		"icon":        {CSS: "#cur-weather", Type: TypeAttribute, Attribute: "title"},
	}
}

func TestExtractMatchedFields(t *testing.T) {
	fields, err := NewExtractor(testRules()).Extract(qlookPage)
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"temperature": "14 °C",
		"conditions":  "Passing clouds.",
		"icon":        "Sunny.",
	}, fields)
}

func TestExtractLeavesUnmatchedFieldsAbsent(t *testing.T) {
	fields, err := Extract(`<html><body><div id="other">5 °C</div></body></html>`, testRules())
	require.NoError(t, err)
	require.Empty(t, fields)

	_, ok := fields["temperature"]
	require.False(t, ok)
}

func TestExtractTreatsBlankMatchAsAbsent(t *testing.T) {
	fields, err := Extract(`<div id="qlook"><div class="h2">   </div></div>`, testRules())
	require.NoError(t, err)
	_, ok := fields["temperature"]
	require.False(t, ok)
}

func TestExtractUsesFirstMatch(t *testing.T) {
	fields, err := Extract(`<div id="qlook"><div class="h2">3 °C</div><div class="h2">9 °C</div></div>`, testRules())
	require.NoError(t, err)
	require.Equal(t, "3 °C", fields["temperature"])
}
