package models

import "github.com/shopspring/decimal"

// PaymentStatus is the settlement state of a wage payment.
type PaymentStatus string

const (
	PaymentPaid       PaymentStatus = "Paid"
	PaymentProcessing PaymentStatus = "Processing"
)

// Payment is a single wage transaction for a staff member on an event.
type Payment struct {
	PaymentID string          `json:"id" db:"payment_id"`
	BoyID     string          `json:"boyId" db:"boy_id"`
	EventID   string          `json:"eventId" db:"event_id"`
	Date      string          `json:"date" db:"pay_date"` // YYYY-MM-DD
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Status    PaymentStatus   `json:"status" db:"status"`
}

// MonthlyRevenue is one point of the revenue time series.
type MonthlyRevenue struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
	Expense decimal.Decimal `json:"expense"`
}

// RevenueSummary aggregates the monthly series with running totals.
type RevenueSummary struct {
	Monthly       []MonthlyRevenue `json:"monthly"`
	TotalRevenue  decimal.Decimal  `json:"totalRevenue"`
	TotalExpense  decimal.Decimal  `json:"totalExpense"`
	TotalWagePaid decimal.Decimal  `json:"totalWagePaid"`
}
