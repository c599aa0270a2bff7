package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Lang != "de" {
		t.Fatalf("Lang default")
	}
	if c.PageSize != 250 {
		t.Fatalf("PageSize default")
	}
	if c.RowLimit != 0 {
		t.Fatalf("RowLimit default")
	}
	if c.BarcodeType != "EAN" {
		t.Fatalf("BarcodeType default")
	}
	if c.BarcodeOnly || c.StockPositive {
		t.Fatalf("filter flags default")
	}
	if c.Gender.Active || c.Color.Active {
		t.Fatalf("facets inactive by default")
	}
	if len(c.AvailabilityLabels) != AvailabilitySlots {
		t.Fatalf("availability slots")
	}
	for i := 1; i <= AvailabilitySlots; i++ {
		if c.AvailabilityLabels[i] != "" {
			t.Fatalf("slot %d not empty for sentinel", i)
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	yaml := `
log_level: debug
motorradbekleidungnet:
  settings:
    lang: de
    set_marketid: 143
    barcode_only: true
    row_limit: 500
    gender_standard: Herren
    gender_active: true
    gender_aom: "1"
    gender_ids: "5288|5289"
    color_active: true
    color_aom: "0"
    color_ids: "1|2|bogus|3"
    size_active: true
    size_aom: name
    size_pattern: "Größe|Size"
    availability:
      "1": sofort lieferbar
      "2": "0"
      "3": 2-3 Tage
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.LogLevel != "debug" {
		t.Fatalf("LogLevel")
	}
	if c.MarketplaceID != 143 {
		t.Fatalf("MarketplaceID")
	}
	if !c.BarcodeOnly {
		t.Fatalf("BarcodeOnly")
	}
	if c.RowLimit != 500 {
		t.Fatalf("RowLimit")
	}
	if !c.Gender.Active || c.Gender.Mode != ModeProperty {
		t.Fatalf("gender facet: %+v", c.Gender)
	}
	if c.Gender.Default != "Herren" {
		t.Fatalf("gender default")
	}
	if len(c.Gender.CandidateIDs) != 2 || c.Gender.CandidateIDs[0] != 5288 {
		t.Fatalf("gender ids: %v", c.Gender.CandidateIDs)
	}
	if c.Color.Mode != ModeAttribute {
		t.Fatalf("color mode")
	}
	if len(c.Color.CandidateIDs) != 3 {
		t.Fatalf("malformed candidate ids must be dropped: %v", c.Color.CandidateIDs)
	}
	if c.Size.Mode != ModeNamePattern || len(c.Size.Synonyms) != 2 {
		t.Fatalf("size facet: %+v", c.Size)
	}
	if c.AvailabilityLabels[1] != "sofort lieferbar" {
		t.Fatalf("availability slot 1")
	}
	if c.AvailabilityLabels[2] != "" {
		t.Fatalf("availability sentinel")
	}
	if c.AvailabilityLabels[3] != "2-3 Tage" {
		t.Fatalf("availability slot 3")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
