package v1

import (
	"time"

	"github.com/familybudget/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QueryMonth anchors the derived figures to a specific month. Without
// it, the current month is used.
type QueryMonth struct {
	Month time.Time `form:"month" time_format:"2006-01" time_utc:"1" example:"2024-03"` // Year and month in YYYY-MM format
}

// referenceTime returns the time the insights are calculated for.
func (q QueryMonth) referenceTime() time.Time {
	if q.Month.IsZero() {
		return time.Now().UTC()
	}

	return q.Month
}

// UnallocatedAccount is a checking account that still has unallocated
// income in the requested month.
type UnallocatedAccount struct {
	AccountID   uuid.UUID       `json:"accountId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"` // ID of the account
	AccountName string          `json:"accountName" example:"Joint Checking"`                     // Name of the account
	Amount      decimal.Decimal `json:"amount" example:"350"`                                     // Unallocated money in the account
}

// Overview is the API v1 representation of the headline figures for the
// requested month.
type Overview struct {
	Month                types.Month          `json:"month" example:"2024-03-01T00:00:00Z"` // The month the figures are calculated for
	TotalBalance         decimal.Decimal      `json:"totalBalance" example:"17324.5"`       // Sum of all account balances
	TotalEnvelopeBalance decimal.Decimal      `json:"totalEnvelopeBalance" example:"1250"`  // Sum of all envelope balances
	MonthlyIncome        decimal.Decimal      `json:"monthlyIncome" example:"4200"`         // Income in the month
	MonthlyExpenses      decimal.Decimal      `json:"monthlyExpenses" example:"2830"`       // Expenses in the month
	MonthlySavings       decimal.Decimal      `json:"monthlySavings" example:"1370"`        // Income minus expenses
	UnallocatedMoney     decimal.Decimal      `json:"unallocatedMoney" example:"350"`       // Total unallocated money across checking accounts
	UnallocatedAccounts  []UnallocatedAccount `json:"unallocatedAccounts"`                  // Checking accounts with unallocated money, in account order
}

type OverviewResponse struct {
	Error *string   `json:"error" example:"there is no account matching your query"` // The error, if any occurred
	Data  *Overview `json:"data"`                                                    // The overview data
}

// CategorySpending is the total spent on one category in the requested
// month.
type CategorySpending struct {
	Name   string          `json:"name" example:"Groceries"` // The category
	Amount decimal.Decimal `json:"amount" example:"314.15"`  // Total spent
	Color  string          `json:"color" example:"#3b82f6"`  // Display color, from the envelope with the same name
}

type SpendingResponse struct {
	Error *string            `json:"error" example:"there is no account matching your query"` // The error, if any occurred
	Data  []CategorySpending `json:"data"`                                                    // Spending by category, in order of first occurrence
}

// MonthSummary aggregates one calendar month of the trend.
type MonthSummary struct {
	Month    types.Month     `json:"month" example:"2024-03-01T00:00:00Z"` // The calendar month
	Income   decimal.Decimal `json:"income" example:"4200"`                // Income in the month
	Expenses decimal.Decimal `json:"expenses" example:"2830"`              // Expenses in the month
	Savings  decimal.Decimal `json:"savings" example:"1370"`               // Income minus expenses
}

type TrendResponse struct {
	Error *string        `json:"error" example:"there is no account matching your query"` // The error, if any occurred
	Data  []MonthSummary `json:"data"`                                                    // Six months, oldest first
}
