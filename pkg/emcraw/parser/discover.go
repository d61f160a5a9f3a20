package parser

import (
	"regexp"
	"strings"

	"github.com/Elietshi1004/emcraw/pkg/emcraw/models"
	"github.com/Elietshi1004/emcraw/pkg/emcraw/observe"
)

// DefaultSampleIDPrefix is the sample identifier prefix used when none is
// configured.
const DefaultSampleIDPrefix = "CRE2"

// SampleIDGrammar matches sample identifiers: PREFIX-YYYY-TPNNN-NN.
type SampleIDGrammar struct {
	strict *regexp.Regexp
	search *regexp.Regexp
}

// NewSampleIDGrammar builds the grammar for a literal prefix.
func NewSampleIDGrammar(prefix string) SampleIDGrammar {
	if prefix == "" {
		prefix = DefaultSampleIDPrefix
	}
	body := regexp.QuoteMeta(prefix) + `-\d{4}-TP\d{3}-\d{2}`
	return SampleIDGrammar{
		strict: regexp.MustCompile(`^` + body + `$`),
		search: regexp.MustCompile(body),
	}
}

// Match reports whether s is exactly a valid sample identifier.
func (g SampleIDGrammar) Match(s string) bool {
	return g.strict.MatchString(s)
}

// Extract returns the first strict-grammar substring of s, or "" when
// none is present. Used to rescue identifiers embedded in noisy text.
func (g SampleIDGrammar) Extract(s string) string {
	return g.search.FindString(s)
}

// SplitTestName splits a composite "name test" value into its sample
// identifier and configuration name. The identifier is the portion
// before the first underscore and must satisfy the grammar; when it only
// contains a valid identifier as a substring, that substring is
// extracted rather than rejecting the row. The configuration name keeps
// any further underscores.
func SplitTestName(value string, g SampleIDGrammar) (id, name string, ok bool) {
	id, name, found := strings.Cut(value, "_")
	if !found || name == "" {
		return "", "", false
	}
	if g.Match(id) {
		return id, name, true
	}
	if rescued := g.Extract(id); rescued != "" {
		return rescued, name, true
	}
	return "", "", false
}

// Discover scans every block for "name test" key/value rows and returns
// the configurations they declare, in document order. When the same
// (sample, configuration) pair is declared more than once, the first
// declaration wins; later duplicates are skipped. Rows whose identifier
// does not satisfy the grammar even after best-effort extraction are
// skipped, never fatal.
func Discover(doc *models.Document, g SampleIDGrammar, obs observe.Observer) []models.Configuration {
	var configs []models.Configuration
	seen := make(map[string]bool)

	for bi, block := range doc.Blocks {
		for _, row := range block.Rows {
			key := strings.ToLower(CleanText(row.Cell(0)))
			value := CleanText(row.Cell(1))
			if !strings.Contains(key, "name test") || value == "" {
				continue
			}
			id, name, ok := SplitTestName(value, g)
			if !ok {
				obs.RowSkipped(bi, "malformed sample identifier: "+value)
				continue
			}
			dedup := id + "\x00" + name
			if seen[dedup] {
				obs.RowSkipped(bi, "duplicate configuration declaration: "+value)
				continue
			}
			seen[dedup] = true
			cfg := models.Configuration{
				SampleID:   id,
				Name:       name,
				FullName:   value,
				BlockIndex: bi,
			}
			obs.ConfigurationFound(cfg)
			configs = append(configs, cfg)
		}
	}
	return configs
}
