package domain

type BloodType string

const (
	BloodTypeAPositive  BloodType = "A+"
	BloodTypeANegative  BloodType = "A-"
	BloodTypeBPositive  BloodType = "B+"
	BloodTypeBNegative  BloodType = "B-"
	BloodTypeABPositive BloodType = "AB+"
	BloodTypeABNegative BloodType = "AB-"
	BloodTypeOPositive  BloodType = "O+"
	BloodTypeONegative  BloodType = "O-"
)

// AllBloodTypes is the fixed inventory row set. Entries are never created or
// destroyed at runtime, only their quantities change.
var AllBloodTypes = []BloodType{
	BloodTypeAPositive, BloodTypeANegative,
	BloodTypeBPositive, BloodTypeBNegative,
	BloodTypeABPositive, BloodTypeABNegative,
	BloodTypeOPositive, BloodTypeONegative,
}

func (bt BloodType) IsValid() bool {
	for _, t := range AllBloodTypes {
		if bt == t {
			return true
		}
	}
	return false
}

type StockStatus string

const (
	StockStatusAvailable StockStatus = "Available"
	StockStatusLow       StockStatus = "Low"
	StockStatusCritical  StockStatus = "Critical"
)

const (
	criticalStockCeiling = 5
	lowStockCeiling      = 15
)

// DeriveStockStatus classifies a unit count. Critical at 5 or fewer units,
// Low at 6 through 15, Available above 15. Negative quantities (approval
// backlog) are Critical.
func DeriveStockStatus(quantity int32) StockStatus {
	switch {
	case quantity <= criticalStockCeiling:
		return StockStatusCritical
	case quantity <= lowStockCeiling:
		return StockStatusLow
	default:
		return StockStatusAvailable
	}
}

// InventoryEntry is the stock row for one blood type. Status is a projection
// of Quantity and must be recomputed on every quantity write.
type InventoryEntry struct {
	BloodType BloodType   `json:"blood_type"`
	Quantity  int32       `json:"quantity"`
	Status    StockStatus `json:"status"`
	UpdatedOn string      `json:"updated_on"`
}

// Reclassify refreshes the derived status from the current quantity.
func (e *InventoryEntry) Reclassify() {
	e.Status = DeriveStockStatus(e.Quantity)
}
