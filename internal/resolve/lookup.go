// Package resolve maps a variation's raw attribute and property data to the
// display values exported for each facet.
package resolve

// NameLookup provides localized display names for attribute and property ids.
// Lookups report ok == false when no external display name is registered;
// such entries are excluded from resolution.
type NameLookup interface {
	// AttributeName returns the localized name of an attribute.
	AttributeName(attributeID int64, lang string) (string, bool)

	// AttributeValueName returns the localized display name of an attribute
	// value.
	AttributeValueName(valueID int64, lang string) (string, bool)

	// PropertyName returns the localized name of a property.
	PropertyName(propertyID int64, lang string) (string, bool)
}
