package models

import "time"

// BillCategory groups household bills.
type BillCategory string

const (
	BillHousing        BillCategory = "housing"
	BillUtilities      BillCategory = "utilities"
	BillInsurance      BillCategory = "insurance"
	BillTransportation BillCategory = "transportation"
	BillFood           BillCategory = "food"
	BillHealthcare     BillCategory = "healthcare"
	BillChildcare      BillCategory = "childcare"
	BillEntertainment  BillCategory = "entertainment"
	BillDebt           BillCategory = "debt"
	BillSavings        BillCategory = "savings"
	BillOther          BillCategory = "other"
)

// Payment methods for bills.
const (
	PaymentAutoPay = "auto-pay"
	PaymentManual  = "manual"
	PaymentOnline  = "online"
	PaymentCheck   = "check"
)

// Bill frequency values (a subset of the card frequencies plus quarterly
// and annually).
const (
	BillFrequencyWeekly    = "weekly"
	BillFrequencyMonthly   = "monthly"
	BillFrequencyQuarterly = "quarterly"
	BillFrequencyAnnually  = "annually"
)

// SplitPercentage records how a shared bill is divided between partners.
// The two fields are percentages and sum to 100.
type SplitPercentage struct {
	Partner1 int `json:"partner1"`
	Partner2 int `json:"partner2"`
}

// Bill represents a recurring household expense.
type Bill struct {
	// ID is the unique identifier for the bill (UUID format).
	ID string `json:"id"`

	// Name is the display name (e.g., "Electricity", "Home Insurance").
	Name string `json:"name"`

	Category BillCategory `json:"category"`

	// Amount is the cost per billing period, in the household currency.
	Amount float64 `json:"amount"`

	// Frequency is one of the BillFrequency* constants.
	Frequency string `json:"frequency"`

	// DueDate is a day of month ("1st", "15th") or a free-form note
	// ("variable", "test due date").
	DueDate string `json:"dueDate"`

	// PaymentMethod is one of the Payment* constants.
	PaymentMethod string `json:"paymentMethod"`

	// ResponsiblePartner is the partner tag of whoever pays this bill,
	// or "" when unassigned or shared.
	ResponsiblePartner string `json:"responsiblePartner,omitempty"`

	// Shared marks bills both partners contribute to.
	Shared bool `json:"isShared,omitempty"`

	// Split records the contribution percentages for shared bills.
	// Nil means an even 50/50 split.
	Split *SplitPercentage `json:"splitPercentage,omitempty"`

	Notes     string    `json:"notes,omitempty"`
	Active    bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// Responsibility computes the effective responsibility label for the bill:
// the assigned partner tag if set, else "shared" if the bill is shared,
// else "unassigned".
func (b Bill) Responsibility() string {
	if b.ResponsiblePartner != "" {
		return b.ResponsiblePartner
	}
	if b.Shared {
		return SharedTag
	}
	return UnassignedTag
}
