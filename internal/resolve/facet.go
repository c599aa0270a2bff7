package resolve

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/plentyexport/motorradbekleidungnet-export/internal/config"
	"github.com/plentyexport/motorradbekleidungnet-export/internal/model"
)

// Strategy describes how a facet value is located in the variation data.
type Strategy interface {
	isStrategy()
}

// ByID resolves an ordered candidate id list against attribute or property
// values. The first candidate that resolves non-empty wins.
type ByID struct {
	Property     bool
	CandidateIDs []int64
}

func (ByID) isStrategy() {}

// ByNamePattern matches localized attribute names against configured facet
// synonyms (word-boundary, case-insensitive) and resolves the first matching
// attribute's value name.
type ByNamePattern struct {
	re *regexp.Regexp
}

func (ByNamePattern) isStrategy() {}

// NewNamePattern compiles a ByNamePattern from facet-name synonyms.
func NewNamePattern(synonyms []string) (ByNamePattern, error) {
	if len(synonyms) == 0 {
		return ByNamePattern{}, fmt.Errorf("name pattern strategy requires at least one synonym")
	}
	quoted := make([]string, 0, len(synonyms))
	for _, s := range synonyms {
		quoted = append(quoted, regexp.QuoteMeta(s))
	}
	re, err := regexp.Compile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
	if err != nil {
		return ByNamePattern{}, fmt.Errorf("compile name pattern: %w", err)
	}
	return ByNamePattern{re: re}, nil
}

// StrategyFor builds the resolution strategy for a facet configuration.
func StrategyFor(fc config.FacetConfig) (Strategy, error) {
	switch fc.Mode {
	case config.ModeNamePattern:
		return NewNamePattern(fc.Synonyms)
	case config.ModeProperty:
		return ByID{Property: true, CandidateIDs: fc.CandidateIDs}, nil
	default:
		return ByID{CandidateIDs: fc.CandidateIDs}, nil
	}
}

// Engine resolves facet values through the attribute and property resolvers.
type Engine struct {
	attrs  *AttributeResolver
	props  *PropertyResolver
	lookup NameLookup
	lang   string
}

// NewEngine constructs an Engine over the given resolvers.
func NewEngine(attrs *AttributeResolver, props *PropertyResolver, lookup NameLookup, lang string) *Engine {
	return &Engine{attrs: attrs, props: props, lookup: lookup, lang: lang}
}

// ResolveFacet returns the facet value for the variation, or empty when no
// candidate resolves. Callers gate inactive facets and apply defaults.
func (e *Engine) ResolveFacet(v *model.VariationRecord, strategy Strategy) string {
	switch s := strategy.(type) {
	case ByID:
		for _, id := range s.CandidateIDs {
			var value string
			if s.Property {
				value = e.props.Value(v, id)
			} else {
				value = e.attrs.Value(v, id)
			}
			if value != "" {
				return value
			}
		}
	case ByNamePattern:
		for _, entry := range v.Attributes {
			name, ok := e.lookup.AttributeName(entry.AttributeID, e.lang)
			if !ok || !s.re.MatchString(name) {
				continue
			}
			if value, ok := e.lookup.AttributeValueName(entry.ValueID, e.lang); ok && value != "" {
				return value
			}
		}
	}
	return ""
}
