package dataset

// SKU is one product column shared by the orders and despatch extracts.
type SKU string

// Category groups SKUs onto dashboard pages.
type Category string

const (
	CategoryBread   Category = "bread"
	CategoryBiscuit Category = "biscuit"
)

// Bread SKUs
const (
	SKUBIWhite      SKU = "BI White"
	SKUBIBrown      SKU = "BI Brown"
	SKUBIWholeWheat SKU = "BI Whole Wheat"
	SKUMrChingwa    SKU = "Mr Chingwa"
	SKUMrsChingwa   SKU = "Mrs Chingwa"
	SKUDrChingwa    SKU = "Dr Chingwa"
)

// Biscuit SKUs
const (
	SKUMunchie150G SKU = "MUNCHIE COOKIES 150G"
	SKUMunchie1KG  SKU = "MUNCHIE COOKIES 1KG"
	SKUMunchie2KG  SKU = "MUNCHIE COOKIES 2KG"
)

// Column names as they appear in the source headers.
const (
	ColumnLink            = "LINK"
	ColumnArea            = "AREA"
	ColumnDate            = "DATE"
	ColumnMonth           = "MONTH"
	ColumnRoute           = "ROUTE"
	ColumnDepartureStatus = "DEPARTURE COMPLIANCE STATUS"
	ColumnLoadingStatus   = "LOADING COMPLIANCE STATUS"
)

// DepartureOnTime is the departure compliance value counted as compliant.
const DepartureOnTime = "On-time"

var (
	breadSKUs   = []SKU{SKUBIWhite, SKUBIBrown, SKUBIWholeWheat, SKUMrChingwa, SKUMrsChingwa, SKUDrChingwa}
	biscuitSKUs = []SKU{SKUMunchie150G, SKUMunchie1KG, SKUMunchie2KG}
)

// BreadSKUs returns the bread SKUs in declared order.
func BreadSKUs() []SKU {
	return append([]SKU(nil), breadSKUs...)
}

// BiscuitSKUs returns the biscuit SKUs in declared order.
func BiscuitSKUs() []SKU {
	return append([]SKU(nil), biscuitSKUs...)
}

// AllSKUs returns bread SKUs followed by biscuit SKUs.
func AllSKUs() []SKU {
	all := make([]SKU, 0, len(breadSKUs)+len(biscuitSKUs))
	all = append(all, breadSKUs...)
	return append(all, biscuitSKUs...)
}

// SKUsFor returns the SKU list for a category, nil for unknown categories.
func SKUsFor(c Category) []SKU {
	switch c {
	case CategoryBread:
		return BreadSKUs()
	case CategoryBiscuit:
		return BiscuitSKUs()
	default:
		return nil
	}
}

// Category reports which page group the SKU belongs to.
func (s SKU) Category() Category {
	for _, b := range breadSKUs {
		if b == s {
			return CategoryBread
		}
	}
	for _, b := range biscuitSKUs {
		if b == s {
			return CategoryBiscuit
		}
	}
	return ""
}

// OrdersColumns lists the columns the orders sheet must carry.
func OrdersColumns() []string {
	cols := []string{ColumnLink, ColumnArea}
	for _, s := range AllSKUs() {
		cols = append(cols, string(s))
	}
	return cols
}

// DespatchColumns lists the columns the despatch sheet must carry.
func DespatchColumns() []string {
	cols := []string{ColumnLink}
	for _, s := range AllSKUs() {
		cols = append(cols, string(s))
	}
	return append(cols, ColumnDepartureStatus, ColumnLoadingStatus)
}

// DateIndexColumns lists the columns the date index sheet must carry.
func DateIndexColumns() []string {
	return []string{ColumnDate, ColumnMonth, ColumnRoute, ColumnLink}
}
