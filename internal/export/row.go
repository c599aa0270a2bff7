package export

// Row is one finished feed record in marketplace column order.
type Row struct {
	SKU              string
	MasterSKU        string
	GTIN             string
	OEMProductNumber string
	Name             string
	MasterName       string
	VariantName      string
	Manufacturer     string
	Description      string
	ImageURL         string
	Category         string
	Size             string
	Colour           string
	Material         string
	Gender           string
	DrivingStyle     string
	Price            string
	Shipping         string
	SRP              string
	DateChanged      string
	DateValidFrom    string
	DateValidTo      string
	Availability     string
	DeliveryPeriod   string
	OfferedAmount    string
	Weight           string
}

// Header returns the fixed feed column names.
func Header() []string {
	return []string{
		"sku",
		"master_sku",
		"gtin",
		"oem_product_number",
		"name",
		"master_name",
		"variant_name",
		"manufacturer",
		"description",
		"image_url",
		"category",
		"size",
		"colour",
		"material",
		"gender",
		"driving_style",
		"price",
		"shipping",
		"srp",
		"date_changed",
		"date_valid_from",
		"date_valid_to",
		"availability",
		"delivery_period",
		"offered_amount",
		"weight",
	}
}

// Record renders the row in header order.
func (r *Row) Record() []string {
	return []string{
		r.SKU,
		r.MasterSKU,
		r.GTIN,
		r.OEMProductNumber,
		r.Name,
		r.MasterName,
		r.VariantName,
		r.Manufacturer,
		r.Description,
		r.ImageURL,
		r.Category,
		r.Size,
		r.Colour,
		r.Material,
		r.Gender,
		r.DrivingStyle,
		r.Price,
		r.Shipping,
		r.SRP,
		r.DateChanged,
		r.DateValidFrom,
		r.DateValidTo,
		r.Availability,
		r.DeliveryPeriod,
		r.OfferedAmount,
		r.Weight,
	}
}
