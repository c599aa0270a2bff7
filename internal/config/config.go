// Package config provides runtime configuration values for the export run.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

const settingsPrefix = "motorradbekleidungnet.settings."

// AvailabilitySlots is the number of configurable availability label slots.
const AvailabilitySlots = 10

// FacetMode selects how a facet value is resolved.
type FacetMode int

const (
	// ModeAttribute resolves candidate ids against legacy attribute values.
	ModeAttribute FacetMode = iota
	// ModeProperty resolves candidate ids against structured properties.
	ModeProperty
	// ModeNamePattern matches attribute names against configured synonyms.
	ModeNamePattern
)

// FacetConfig describes how one logical facet (gender, colour, ...) maps onto
// the variation's attribute or property data.
type FacetConfig struct {
	Active       bool
	Mode         FacetMode
	CandidateIDs []int64
	Synonyms     []string
	Default      string
}

// Config holds all knobs of one export run.
type Config struct {
	LogLevel      string
	Lang          string
	MarketplaceID float64
	BarcodeType   string
	BarcodeOnly   bool
	StockPositive bool
	PageSize      int
	RowLimit      int

	Gender       FacetConfig
	Color        FacetConfig
	Size         FacetConfig
	Material     FacetConfig
	DrivingStyle FacetConfig

	// AvailabilityLabels maps availability status ids 1..10 to their
	// configured label. Slots configured as "0" are empty.
	AvailabilityLabels map[int]string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault(settingsPrefix+"lang", "de")
	v.SetDefault(settingsPrefix+"set_marketid", 0)
	v.SetDefault(settingsPrefix+"barcode", "EAN")
	v.SetDefault(settingsPrefix+"barcode_only", false)
	v.SetDefault(settingsPrefix+"filter_stock_positive", false)
	v.SetDefault(settingsPrefix+"page_size", 250)
	v.SetDefault(settingsPrefix+"row_limit", 0)
	v.SetDefault(settingsPrefix+"gender_standard", "")
	for _, facet := range []string{"gender", "color", "size", "material", "drivingstyle"} {
		v.SetDefault(settingsPrefix+facet+"_active", false)
		v.SetDefault(settingsPrefix+facet+"_aom", "0")
		v.SetDefault(settingsPrefix+facet+"_ids", "")
		v.SetDefault(settingsPrefix+facet+"_pattern", "")
	}
	for i := 1; i <= AvailabilitySlots; i++ {
		v.SetDefault(settingsPrefix+"availability."+strconv.Itoa(i), "0")
	}
}

// splitIDs parses a pipe-delimited candidate id list. Blank and malformed
// entries are dropped.
func splitIDs(s string) []int64 {
	var ids []int64
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func splitSynonyms(s string) []string {
	var out []string
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func facetMode(aom string) FacetMode {
	switch strings.ToLower(strings.TrimSpace(aom)) {
	case "name":
		return ModeNamePattern
	case "0", "":
		return ModeAttribute
	default:
		return ModeProperty
	}
}

func loadFacet(v *viper.Viper, facet string) FacetConfig {
	return FacetConfig{
		Active:       v.GetBool(settingsPrefix + facet + "_active"),
		Mode:         facetMode(v.GetString(settingsPrefix + facet + "_aom")),
		CandidateIDs: splitIDs(v.GetString(settingsPrefix + facet + "_ids")),
		Synonyms:     splitSynonyms(v.GetString(settingsPrefix + facet + "_pattern")),
	}
}

// Load collects configuration from the given YAML file (optional) with
// environment overrides (MOTONET_ prefix) and defaults.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("MOTONET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := Config{
		LogLevel:      v.GetString("log_level"),
		Lang:          v.GetString(settingsPrefix + "lang"),
		MarketplaceID: v.GetFloat64(settingsPrefix + "set_marketid"),
		BarcodeType:   v.GetString(settingsPrefix + "barcode"),
		BarcodeOnly:   v.GetBool(settingsPrefix + "barcode_only"),
		StockPositive: v.GetBool(settingsPrefix + "filter_stock_positive"),
		PageSize:      v.GetInt(settingsPrefix + "page_size"),
		RowLimit:      v.GetInt(settingsPrefix + "row_limit"),
		Gender:        loadFacet(v, "gender"),
		Color:         loadFacet(v, "color"),
		Size:          loadFacet(v, "size"),
		Material:      loadFacet(v, "material"),
		DrivingStyle:  loadFacet(v, "drivingstyle"),
	}
	cfg.Gender.Default = v.GetString(settingsPrefix + "gender_standard")

	cfg.AvailabilityLabels = make(map[int]string, AvailabilitySlots)
	for i := 1; i <= AvailabilitySlots; i++ {
		label := v.GetString(settingsPrefix + "availability." + strconv.Itoa(i))
		if label == "0" {
			label = ""
		}
		cfg.AvailabilityLabels[i] = label
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = 250
	}
	if cfg.RowLimit < 0 {
		cfg.RowLimit = 0
	}
	return cfg, nil
}
