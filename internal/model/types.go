// Package model defines the variation document types consumed by the export.
package model

// Property value types as delivered by the index.
const (
	PropertyTypeText      = "text"
	PropertyTypeSelection = "selection"
	PropertyTypeEmpty     = "empty"
	PropertyTypeInt       = "int"
	PropertyTypeFloat     = "float"
	PropertyTypeFile      = "file"
)

// Manufacturer identifies the producing brand of an item.
type Manufacturer struct {
	ID int64 `json:"id"`
}

// Item carries the parent-item fields of a variation document.
type Item struct {
	ID           int64        `json:"id"`
	Manufacturer Manufacturer `json:"manufacturer"`
}

// Availability references the configured availability status of a variation.
type Availability struct {
	ID int `json:"id"`
}

// Variation carries the variation-level fields of a document.
type Variation struct {
	IsMain         bool         `json:"isMain"`
	Model          string       `json:"model"`
	WeightG        int64        `json:"weightG"`
	Availability   Availability `json:"availability"`
	UpdatedAt      string       `json:"updatedAt"`
	ReleasedAt     string       `json:"releasedAt"`
	AvailableUntil string       `json:"availableUntil"`
}

// SKU is one marketplace SKU assigned to a variation.
type SKU struct {
	SKU string `json:"sku"`
}

// Barcode is one barcode of a variation, typed (EAN, UPC, ...).
type Barcode struct {
	Code string `json:"code"`
	Type string `json:"type"`
}

// CategoryRef references a category by id.
type CategoryRef struct {
	ID int64 `json:"id"`
}

// Text is the localized text set of an item.
type Text struct {
	Lang        string `json:"lang"`
	Name        string `json:"name1"`
	Description string `json:"description"`
}

// AttributeEntry is one legacy attribute assignment of a variation.
type AttributeEntry struct {
	AttributeID int64 `json:"attributeId"`
	ValueID     int64 `json:"valueId"`
}

// PropertyText is the text payload of a text-typed property.
type PropertyText struct {
	Value string `json:"value"`
}

// PropertySelection is the selection payload of a selection-typed property.
type PropertySelection struct {
	Name string `json:"name"`
}

// PropertyRef identifies the property an entry belongs to.
type PropertyRef struct {
	ID        int64  `json:"id"`
	ValueType string `json:"valueType"`
}

// PropertyEntry is one structured property assignment of a variation. Exactly
// one payload is populated, according to the value type.
type PropertyEntry struct {
	Property   PropertyRef        `json:"property"`
	Texts      *PropertyText      `json:"texts"`
	Selection  *PropertySelection `json:"selection"`
	ValueInt   *int64             `json:"valueInt"`
	ValueFloat *float64           `json:"valueFloat"`
}

// VariationRecord is one variation document streamed from the index.
type VariationRecord struct {
	ID                int64            `json:"id"`
	Item              Item             `json:"item"`
	Variation         Variation        `json:"variation"`
	SKUs              []SKU            `json:"skus"`
	Barcodes          []Barcode        `json:"barcodes"`
	DefaultCategories []CategoryRef    `json:"defaultCategories"`
	Texts             []Text           `json:"texts"`
	Attributes        []AttributeEntry `json:"attributes"`
	Properties        []PropertyEntry  `json:"properties"`
}

// FirstSKU returns the first raw SKU string or empty.
func (v *VariationRecord) FirstSKU() string {
	if len(v.SKUs) == 0 {
		return ""
	}
	return v.SKUs[0].SKU
}

// DefaultCategoryID returns the first default category id or zero.
func (v *VariationRecord) DefaultCategoryID() int64 {
	if len(v.DefaultCategories) == 0 {
		return 0
	}
	return v.DefaultCategories[0].ID
}

// TextFor returns the localized text set for lang, falling back to the first
// available text when the language is not present.
func (v *VariationRecord) TextFor(lang string) Text {
	for _, t := range v.Texts {
		if t.Lang == lang {
			return t
		}
	}
	if len(v.Texts) > 0 {
		return v.Texts[0]
	}
	return Text{}
}
