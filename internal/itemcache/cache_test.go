package itemcache

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/plentyexport/motorradbekleidungnet-export/internal/model"
)

type fakeServices struct {
	shipping      map[int64]float64
	manufacturers map[int64]string
	images        map[int64][]string

	shippingCalls int
	imageCalls    int
}

func (f *fakeServices) ShippingCost(itemID int64) (decimal.Decimal, bool) {
	f.shippingCalls++
	cost, ok := f.shipping[itemID]
	if !ok {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromFloat(cost), true
}

func (f *fakeServices) ExternalManufacturerName(id int64) string {
	return f.manufacturers[id]
}

func (f *fakeServices) ImageListInOrder(v *model.VariationRecord) []string {
	f.imageCalls++
	return f.images[v.Item.ID]
}

func variation(itemID, manufacturerID int64) *model.VariationRecord {
	return &model.VariationRecord{
		Item: model.Item{ID: itemID, Manufacturer: model.Manufacturer{ID: manufacturerID}},
	}
}

func TestRefreshComputesPerItemFields(t *testing.T) {
	svc := &fakeServices{
		shipping:      map[int64]float64{1: 4.9},
		manufacturers: map[int64]string{7: "Alpinestars"},
	}
	c := New(svc, nil)

	c.Refresh(variation(1, 7))
	assert.Equal(t, "4.90", c.ShippingCost(1))
	assert.Equal(t, "Alpinestars", c.ManufacturerName(7))
	assert.Equal(t, 1, svc.shippingCalls)
}

func TestRefreshReplacesPreviousItem(t *testing.T) {
	svc := &fakeServices{
		shipping:      map[int64]float64{1: 4.9, 2: 5.9},
		manufacturers: map[int64]string{7: "Alpinestars", 8: "Dainese"},
	}
	c := New(svc, nil)

	c.Refresh(variation(1, 7))
	c.Refresh(variation(2, 8))

	assert.Equal(t, "", c.ShippingCost(1), "stale item entries must not survive the boundary")
	assert.Equal(t, "", c.ManufacturerName(7))
	assert.Equal(t, "5.90", c.ShippingCost(2))
	assert.Equal(t, "Dainese", c.ManufacturerName(8))
}

func TestRefreshSkipsZeroManufacturer(t *testing.T) {
	svc := &fakeServices{shipping: map[int64]float64{1: 4.9}}
	c := New(svc, nil)

	c.Refresh(variation(1, 0))
	assert.Equal(t, "", c.ManufacturerName(0))
}

func TestUnknownLookupsAreEmpty(t *testing.T) {
	c := New(&fakeServices{}, nil)
	assert.Equal(t, "", c.ShippingCost(99))
	assert.Equal(t, "", c.ManufacturerName(99))
	assert.Equal(t, "", c.AvailabilityLabel(99))
}

func TestAvailabilityLabels(t *testing.T) {
	labels := map[int]string{1: "sofort lieferbar", 2: "", 3: "2-3 Tage"}
	c := New(&fakeServices{}, labels)

	assert.Equal(t, "sofort lieferbar", c.AvailabilityLabel(1))
	assert.Equal(t, "", c.AvailabilityLabel(2))
	assert.Equal(t, "2-3 Tage", c.AvailabilityLabel(3))
}

func TestImageListComputedOncePerItem(t *testing.T) {
	svc := &fakeServices{images: map[int64][]string{
		1: {"https://cdn.example/a.jpg", "https://cdn.example/b.jpg"},
	}}
	c := New(svc, nil)

	v := variation(1, 0)
	first := c.ImageList(v)
	second := c.ImageList(v)

	assert.Equal(t, []string{"https://cdn.example/a.jpg", "https://cdn.example/b.jpg"}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, svc.imageCalls)

	c.ImageList(variation(2, 0))
	assert.Equal(t, 2, svc.imageCalls)
}
