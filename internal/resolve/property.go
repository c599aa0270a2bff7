package resolve

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/plentyexport/motorradbekleidungnet-export/internal/model"
	"github.com/plentyexport/motorradbekleidungnet-export/internal/obs"
)

// PropertyResolver resolves structured property values for a variation. The
// property-id to display-value map is built once per item and reused for
// every variation of that item.
type PropertyResolver struct {
	lookup   NameLookup
	lang     string
	cache    map[int64]map[int64]string
	freeText map[int64]string
}

// NewPropertyResolver constructs a PropertyResolver for the given language.
func NewPropertyResolver(lookup NameLookup, lang string) *PropertyResolver {
	return &PropertyResolver{
		lookup:   lookup,
		lang:     lang,
		cache:    make(map[int64]map[int64]string),
		freeText: make(map[int64]string),
	}
}

// Value returns the display value of the given property for the variation, or
// empty when the property is not set or has no display name registered.
func (r *PropertyResolver) Value(v *model.VariationRecord, propertyID int64) string {
	return r.values(v)[propertyID]
}

// values builds the per-item property map lazily, dispatching on the declared
// value type. File properties are never exported. Properties whose name
// lookup fails have no external component set up and are skipped entirely.
func (r *PropertyResolver) values(v *model.VariationRecord) map[int64]string {
	if list, ok := r.cache[v.Item.ID]; ok {
		return list
	}

	list := make(map[int64]string)
	for _, entry := range v.Properties {
		if entry.Property.ID == 0 || entry.Property.ValueType == model.PropertyTypeFile {
			continue
		}
		name, ok := r.lookup.PropertyName(entry.Property.ID, r.lang)
		if !ok {
			continue
		}

		switch entry.Property.ValueType {
		case model.PropertyTypeText:
			if entry.Texts != nil {
				list[entry.Property.ID] = entry.Texts.Value
			}
		case model.PropertyTypeSelection:
			if entry.Selection != nil {
				list[entry.Property.ID] = entry.Selection.Name
			}
		case model.PropertyTypeEmpty:
			// Presence marker: the property's own name is the value.
			list[entry.Property.ID] = name
		case model.PropertyTypeInt:
			if entry.ValueInt != nil {
				list[entry.Property.ID] = strconv.FormatInt(*entry.ValueInt, 10)
			}
		case model.PropertyTypeFloat:
			if entry.ValueFloat != nil {
				list[entry.Property.ID] = strconv.FormatFloat(*entry.ValueFloat, 'f', -1, 64)
			}
		}
	}
	r.cache[v.Item.ID] = list

	obs.Logger.Debug("variation property list resolved",
		zap.Int64("item_id", v.Item.ID),
		zap.Int64("variation_id", v.ID),
		zap.Int("properties", len(list)))
	return list
}

// FreeText concatenates, space-separated, every text and selection property
// value of the variation's item. Int, float, empty and file properties are
// ignored. The result is cached per item.
func (r *PropertyResolver) FreeText(v *model.VariationRecord) string {
	if text, ok := r.freeText[v.Item.ID]; ok {
		return text
	}

	var parts []string
	for _, entry := range v.Properties {
		if entry.Property.ID == 0 {
			continue
		}
		switch entry.Property.ValueType {
		case model.PropertyTypeText, model.PropertyTypeSelection:
		default:
			continue
		}
		if _, ok := r.lookup.PropertyName(entry.Property.ID, r.lang); !ok {
			continue
		}
		if entry.Property.ValueType == model.PropertyTypeText && entry.Texts != nil {
			parts = append(parts, entry.Texts.Value)
		}
		if entry.Property.ValueType == model.PropertyTypeSelection && entry.Selection != nil {
			parts = append(parts, entry.Selection.Name)
		}
	}

	text := strings.Join(parts, " ")
	r.freeText[v.Item.ID] = text
	return text
}
