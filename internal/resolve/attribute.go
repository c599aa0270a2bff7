package resolve

import (
	"strings"

	"go.uber.org/zap"

	"github.com/plentyexport/motorradbekleidungnet-export/internal/model"
	"github.com/plentyexport/motorradbekleidungnet-export/internal/obs"
)

// AttributeResolver resolves legacy attribute values for a variation. The
// attribute-id to value-name map is built once per item and reused for every
// variation of that item.
type AttributeResolver struct {
	lookup NameLookup
	lang   string
	cache  map[int64]map[int64]string
}

// NewAttributeResolver constructs an AttributeResolver for the given language.
func NewAttributeResolver(lookup NameLookup, lang string) *AttributeResolver {
	return &AttributeResolver{
		lookup: lookup,
		lang:   lang,
		cache:  make(map[int64]map[int64]string),
	}
}

// Value returns the localized display name of the given attribute for the
// variation, or empty when the attribute is not set or has no display name.
func (r *AttributeResolver) Value(v *model.VariationRecord, attributeID int64) string {
	return r.values(v)[attributeID]
}

// values builds the per-item attribute map lazily. Entries whose value name
// lookup fails have no external display name configured and are skipped.
func (r *AttributeResolver) values(v *model.VariationRecord) map[int64]string {
	if list, ok := r.cache[v.Item.ID]; ok {
		return list
	}

	list := make(map[int64]string)
	for _, entry := range v.Attributes {
		name, ok := r.lookup.AttributeValueName(entry.ValueID, r.lang)
		if !ok || name == "" {
			continue
		}
		list[entry.AttributeID] = name
	}
	r.cache[v.Item.ID] = list

	obs.Logger.Debug("variation attribute list resolved",
		zap.Int64("item_id", v.Item.ID),
		zap.Int64("variation_id", v.ID),
		zap.Int("attributes", len(list)))
	return list
}

// NameValueCombination renders the variation's attributes as
// "Name: Value, Name: Value" pairs. Entries missing either side are skipped.
func (r *AttributeResolver) NameValueCombination(v *model.VariationRecord) string {
	var pairs []string
	for _, entry := range v.Attributes {
		name, ok := r.lookup.AttributeName(entry.AttributeID, r.lang)
		if !ok || name == "" {
			continue
		}
		value, ok := r.lookup.AttributeValueName(entry.ValueID, r.lang)
		if !ok || value == "" {
			continue
		}
		pairs = append(pairs, name+": "+value)
	}
	return strings.Join(pairs, ", ")
}

// ValueCombination renders the variation's attribute value names joined by
// ", ", without the attribute names.
func (r *AttributeResolver) ValueCombination(v *model.VariationRecord) string {
	var values []string
	for _, entry := range v.Attributes {
		value, ok := r.lookup.AttributeValueName(entry.ValueID, r.lang)
		if !ok || value == "" {
			continue
		}
		values = append(values, value)
	}
	return strings.Join(values, ", ")
}
