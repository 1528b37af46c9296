package ledger

import (
	"time"

	"github.com/familybudget/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// The derived views are pure and recomputed on every call. They take
// the reference time as a parameter so that "the current month" is
// under the caller's control.

// TotalBalance returns the sum of all account balances.
func (s Snapshot) TotalBalance() decimal.Decimal {
	sum := decimal.Zero
	for _, account := range s.Accounts {
		sum = sum.Add(account.Balance)
	}

	return sum
}

// TotalEnvelopeBalance returns the sum of all envelope balances.
func (s Snapshot) TotalEnvelopeBalance() decimal.Decimal {
	sum := decimal.Zero
	for _, envelope := range s.Envelopes {
		sum = sum.Add(envelope.Balance)
	}

	return sum
}

// CurrentMonthTransactions returns the transactions dated in the
// calendar month of now, newest first.
func (s Snapshot) CurrentMonthTransactions(now time.Time) []Transaction {
	month := types.MonthOf(now)

	transactions := make([]Transaction, 0)
	for _, t := range s.Transactions {
		if month.Contains(t.Date) {
			transactions = append(transactions, t)
		}
	}

	return transactions
}

// monthTotals sums income and expense amounts for a calendar month.
// Allocations are neither income nor expenses and are ignored here.
func (s Snapshot) monthTotals(month types.Month) (income, expenses decimal.Decimal) {
	income, expenses = decimal.Zero, decimal.Zero

	for _, t := range s.Transactions {
		if !month.Contains(t.Date) {
			continue
		}

		switch t.Type {
		case TransactionTypeIncome:
			income = income.Add(t.Amount)
		case TransactionTypeExpense:
			expenses = expenses.Add(t.Amount)
		}
	}

	return
}

// MonthlyIncome returns the sum of all income in the calendar month of
// now.
func (s Snapshot) MonthlyIncome(now time.Time) decimal.Decimal {
	income, _ := s.monthTotals(types.MonthOf(now))
	return income
}

// MonthlyExpenses returns the sum of all expenses in the calendar month
// of now.
func (s Snapshot) MonthlyExpenses(now time.Time) decimal.Decimal {
	_, expenses := s.monthTotals(types.MonthOf(now))
	return expenses
}

// UnallocatedByAccount calculates the unallocated money per checking
// account for the calendar month of now: income into the account minus
// allocations out of it. Accounts of other types are fully allocated by
// definition and do not appear in the result.
func (s Snapshot) UnallocatedByAccount(now time.Time) map[uuid.UUID]decimal.Decimal {
	unallocated := make(map[uuid.UUID]decimal.Decimal)

	for _, t := range s.CurrentMonthTransactions(now) {
		account := s.Account(t.AccountID)
		if account == nil || account.Type != AccountTypeChecking {
			continue
		}

		switch t.Type {
		case TransactionTypeIncome:
			unallocated[t.AccountID] = unallocated[t.AccountID].Add(t.Amount)
		case TransactionTypeAllocation:
			unallocated[t.AccountID] = unallocated[t.AccountID].Sub(t.Amount)
		}
	}

	return unallocated
}

// UnallocatedMoney returns the total unallocated money across all
// checking accounts. Only positive per-account figures count towards
// the total: an account that over-allocated does not reduce another
// account's contribution.
func (s Snapshot) UnallocatedMoney(now time.Time) decimal.Decimal {
	sum := decimal.Zero
	for _, amount := range s.UnallocatedByAccount(now) {
		if amount.IsPositive() {
			sum = sum.Add(amount)
		}
	}

	return sum
}

// UnallocatedAccount is an account together with its unallocated money.
type UnallocatedAccount struct {
	Account Account
	Amount  decimal.Decimal
}

// AccountsWithUnallocated returns the checking accounts that currently
// have unallocated money, in account order. Callers use this to
// pre-select the source account for an allocation when there is exactly
// one candidate.
func (s Snapshot) AccountsWithUnallocated(now time.Time) []UnallocatedAccount {
	unallocated := s.UnallocatedByAccount(now)

	accounts := make([]UnallocatedAccount, 0)
	for _, account := range s.Accounts {
		if amount, ok := unallocated[account.ID]; ok && amount.IsPositive() {
			accounts = append(accounts, UnallocatedAccount{Account: account, Amount: amount})
		}
	}

	return accounts
}

// EnvelopeInsight is an envelope together with its derived spending
// figures.
type EnvelopeInsight struct {
	Envelope
	Spent      decimal.Decimal
	Remaining  decimal.Decimal
	Percentage decimal.Decimal
}

// Insight derives the spending figures for an envelope. Spent is the
// budget limit minus the current balance, so overspending shows up as
// spent exceeding the limit. An envelope without a budget limit reports
// 0% used.
func (e Envelope) Insight() EnvelopeInsight {
	spent := e.BudgetLimit.Sub(e.Balance)

	percentage := decimal.Zero
	if !e.BudgetLimit.IsZero() {
		percentage = spent.Div(e.BudgetLimit).Mul(decimal.NewFromInt(100))
	}

	return EnvelopeInsight{
		Envelope:   e,
		Spent:      spent,
		Remaining:  e.Balance,
		Percentage: percentage,
	}
}

// EnvelopeInsights returns the insight for every envelope, in envelope
// order.
func (s Snapshot) EnvelopeInsights() []EnvelopeInsight {
	insights := make([]EnvelopeInsight, 0, len(s.Envelopes))
	for _, envelope := range s.Envelopes {
		insights = append(insights, envelope.Insight())
	}

	return insights
}

// CategorySpend is the total spent in one category in the current
// month.
type CategorySpend struct {
	Name   string
	Amount decimal.Decimal
	Color  string
}

// SpendingByCategory groups the current month's expenses by category.
// The color is resolved by looking up an envelope whose name equals the
// category. The join is best-effort and cosmetic: renaming an envelope
// breaks it and the category falls back to the default color.
func (s Snapshot) SpendingByCategory(now time.Time) []CategorySpend {
	amounts := make(map[string]decimal.Decimal)
	order := make([]string, 0)

	for _, t := range s.CurrentMonthTransactions(now) {
		if t.Type != TransactionTypeExpense {
			continue
		}

		if _, ok := amounts[t.Category]; !ok {
			order = append(order, t.Category)
		}
		amounts[t.Category] = amounts[t.Category].Add(t.Amount)
	}

	spending := make([]CategorySpend, 0, len(order))
	for _, name := range order {
		color := DefaultCategoryColor
		for _, envelope := range s.Envelopes {
			if envelope.Name == name {
				color = envelope.Color
				break
			}
		}

		spending = append(spending, CategorySpend{
			Name:   name,
			Amount: amounts[name],
			Color:  color,
		})
	}

	return spending
}

// MonthSummary aggregates income, expenses and savings for one calendar
// month.
type MonthSummary struct {
	Month    types.Month
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Savings  decimal.Decimal
}

// MonthlyTrend aggregates the six most recent calendar months including
// the month of now, oldest first.
func (s Snapshot) MonthlyTrend(now time.Time) []MonthSummary {
	current := types.MonthOf(now)

	trend := make([]MonthSummary, 0, 6)
	for i := 5; i >= 0; i-- {
		month := current.AddDate(0, -i)
		income, expenses := s.monthTotals(month)

		trend = append(trend, MonthSummary{
			Month:    month,
			Income:   income,
			Expenses: expenses,
			Savings:  income.Sub(expenses),
		})
	}

	return trend
}
