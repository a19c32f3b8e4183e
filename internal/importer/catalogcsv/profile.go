package catalogcsv

// Profile describes the column layout of a catalog CSV export. Header names
// are matched case-insensitively. Adding a new sheet layout is just adding a
// new Profile to the profiles slice.
type Profile struct {
	Name        string
	NameCol     string
	PriceCol    string
	CategoryCol string // optional, may be absent from the sheet
}

// requiredCols returns the column names that must be present for this profile to match.
func (p Profile) requiredCols() []string {
	return []string{p.NameCol, p.PriceCol}
}

// profiles is the ordered list of sheet layouts to try during auto-detection.
// More specific profiles should come first to avoid false matches.
var profiles = []Profile{
	{
		Name:        "katalog",
		NameCol:     "nama",
		PriceCol:    "harga",
		CategoryCol: "kategori",
	},
	{
		Name:        "english",
		NameCol:     "name",
		PriceCol:    "price",
		CategoryCol: "category",
	},
}
