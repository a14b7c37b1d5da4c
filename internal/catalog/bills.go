package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/insama/insama/internal/models"
)

func bill(name string, category models.BillCategory, frequency, dueDate, paymentMethod string) models.Bill {
	return models.Bill{
		Name:          name,
		Category:      category,
		Frequency:     frequency,
		DueDate:       dueDate,
		PaymentMethod: paymentMethod,
	}
}

// Bill templates start with a zero amount; the couple fills in their own
// figures. Names follow the Irish household the product was built for.
var billTemplates = []models.Bill{
	bill("Mortgage/Rent", models.BillHousing, models.BillFrequencyMonthly, "1st", models.PaymentAutoPay),
	bill("Local Property Tax (LPT)", models.BillHousing, models.BillFrequencyAnnually, "1st", models.PaymentOnline),
	bill("Home Insurance", models.BillHousing, models.BillFrequencyAnnually, "1st", models.PaymentOnline),
	bill("Management Fees", models.BillHousing, models.BillFrequencyMonthly, "1st", models.PaymentOnline),

	bill("ESB (Electricity)", models.BillUtilities, models.BillFrequencyMonthly, "15th", models.PaymentOnline),
	bill("Gas (Natural Gas)", models.BillUtilities, models.BillFrequencyMonthly, "20th", models.PaymentOnline),
	bill("Waste Collection", models.BillUtilities, models.BillFrequencyMonthly, "1st", models.PaymentOnline),
	bill("Broadband/Internet", models.BillUtilities, models.BillFrequencyMonthly, "5th", models.PaymentOnline),
	bill("TV Licence", models.BillUtilities, models.BillFrequencyAnnually, "1st", models.PaymentOnline),
	bill("Mobile Phone", models.BillUtilities, models.BillFrequencyMonthly, "8th", models.PaymentOnline),

	bill("Motor Tax", models.BillTransportation, models.BillFrequencyAnnually, "1st", models.PaymentOnline),
	bill("Car Insurance", models.BillTransportation, models.BillFrequencyAnnually, "1st", models.PaymentOnline),
	bill("NCT (Vehicle Test)", models.BillTransportation, models.BillFrequencyAnnually, "test due date", models.PaymentOnline),
	bill("Petrol/Diesel", models.BillTransportation, models.BillFrequencyMonthly, "variable", models.PaymentOnline),
	bill("Public Transport (Leap Card)", models.BillTransportation, models.BillFrequencyMonthly, "variable", models.PaymentOnline),

	bill("Health Insurance (VHI/Laya)", models.BillInsurance, models.BillFrequencyMonthly, "1st", models.PaymentAutoPay),
	bill("Life Assurance", models.BillInsurance, models.BillFrequencyMonthly, "1st", models.PaymentAutoPay),

	bill("Groceries", models.BillFood, models.BillFrequencyMonthly, "variable", models.PaymentManual),
	bill("Dining Out", models.BillFood, models.BillFrequencyMonthly, "variable", models.PaymentManual),

	bill("GP Visits", models.BillHealthcare, models.BillFrequencyMonthly, "variable", models.PaymentManual),
	bill("Gym Membership", models.BillHealthcare, models.BillFrequencyMonthly, "1st", models.PaymentAutoPay),

	bill("Childcare/Creche", models.BillChildcare, models.BillFrequencyMonthly, "1st", models.PaymentAutoPay),
	bill("After School Activities", models.BillChildcare, models.BillFrequencyMonthly, "1st", models.PaymentOnline),

	bill("Netflix", models.BillEntertainment, models.BillFrequencyMonthly, "12th", models.PaymentAutoPay),
	bill("Spotify", models.BillEntertainment, models.BillFrequencyMonthly, "8th", models.PaymentAutoPay),

	bill("Credit Card", models.BillDebt, models.BillFrequencyMonthly, "20th", models.PaymentOnline),
	bill("Personal Loan", models.BillDebt, models.BillFrequencyMonthly, "5th", models.PaymentAutoPay),

	bill("Savings Account", models.BillSavings, models.BillFrequencyMonthly, "1st", models.PaymentAutoPay),
	bill("Pension Contribution", models.BillSavings, models.BillFrequencyMonthly, "1st", models.PaymentAutoPay),
	bill("Holiday Fund", models.BillSavings, models.BillFrequencyMonthly, "1st", models.PaymentAutoPay),

	bill("Pet Insurance", models.BillOther, models.BillFrequencyMonthly, "10th", models.PaymentAutoPay),
	bill("Gifts & Occasions", models.BillOther, models.BillFrequencyMonthly, "variable", models.PaymentManual),
}

// Bills returns the bill templates. The slice is a copy; callers may
// modify it freely.
func Bills() []models.Bill {
	out := make([]models.Bill, len(billTemplates))
	copy(out, billTemplates)
	return out
}

// NewBills instantiates the bill list with fresh ids, active status, and
// the given creation time.
func NewBills(now time.Time) []models.Bill {
	bills := Bills()
	for i := range bills {
		bills[i].ID = "bill-" + uuid.New().String()
		bills[i].Active = true
		bills[i].CreatedAt = now
	}
	return bills
}
