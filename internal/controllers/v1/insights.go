package v1

import (
	"net/http"

	"github.com/familybudget/backend/internal/httputil"
	"github.com/familybudget/backend/internal/models"
	"github.com/familybudget/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterInsightsRoutes registers the routes for the derived figures
// with the RouterGroup that is passed.
func RegisterInsightsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/overview", OptionsInsights)
	r.GET("/overview", GetOverview)

	r.OPTIONS("/spending", OptionsInsights)
	r.GET("/spending", GetSpending)

	r.OPTIONS("/trend", OptionsInsights)
	r.GET("/trend", GetTrend)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Insights
// @Success		204
// @Router			/v1/insights/overview [options]
func OptionsInsights(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get overview
// @Description	Returns the headline figures: total balances, monthly income, expenses and savings, and the unallocated money per checking account
// @Tags			Insights
// @Produce		json
// @Success		200		{object}	OverviewResponse
// @Failure		400		{object}	OverviewResponse
// @Failure		500		{object}	OverviewResponse
// @Param			month	query		string	false	"Month to calculate the figures for in YYYY-MM format. Defaults to the current month."
// @Router			/v1/insights/overview [get]
func GetOverview(c *gin.Context) {
	var query QueryMonth
	if err := c.Bind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, OverviewResponse{Error: &s})
		return
	}
	now := query.referenceTime()

	snapshot, err := models.LoadSnapshot(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OverviewResponse{Error: &e})
		return
	}

	unallocated := make([]UnallocatedAccount, 0)
	for _, u := range snapshot.AccountsWithUnallocated(now) {
		unallocated = append(unallocated, UnallocatedAccount{
			AccountID:   u.Account.ID,
			AccountName: u.Account.Name,
			Amount:      u.Amount,
		})
	}

	income := snapshot.MonthlyIncome(now)
	expenses := snapshot.MonthlyExpenses(now)

	c.JSON(http.StatusOK, OverviewResponse{Data: &Overview{
		Month:                types.MonthOf(now),
		TotalBalance:         snapshot.TotalBalance(),
		TotalEnvelopeBalance: snapshot.TotalEnvelopeBalance(),
		MonthlyIncome:        income,
		MonthlyExpenses:      expenses,
		MonthlySavings:       income.Sub(expenses),
		UnallocatedMoney:     snapshot.UnallocatedMoney(now),
		UnallocatedAccounts:  unallocated,
	}})
}

// @Summary		Get spending by category
// @Description	Returns the month's expenses grouped by category, in order of first occurrence, with the display color of the envelope carrying the category's name
// @Tags			Insights
// @Produce		json
// @Success		200		{object}	SpendingResponse
// @Failure		400		{object}	SpendingResponse
// @Failure		500		{object}	SpendingResponse
// @Param			month	query		string	false	"Month to calculate the figures for in YYYY-MM format. Defaults to the current month."
// @Router			/v1/insights/spending [get]
func GetSpending(c *gin.Context) {
	var query QueryMonth
	if err := c.Bind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SpendingResponse{Error: &s})
		return
	}

	snapshot, err := models.LoadSnapshot(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpendingResponse{Error: &e})
		return
	}

	data := make([]CategorySpending, 0)
	for _, spend := range snapshot.SpendingByCategory(query.referenceTime()) {
		data = append(data, CategorySpending{
			Name:   spend.Name,
			Amount: spend.Amount,
			Color:  spend.Color,
		})
	}

	c.JSON(http.StatusOK, SpendingResponse{Data: data})
}

// @Summary		Get monthly trend
// @Description	Returns income, expenses and savings for the six most recent months including the requested one, oldest first
// @Tags			Insights
// @Produce		json
// @Success		200		{object}	TrendResponse
// @Failure		400		{object}	TrendResponse
// @Failure		500		{object}	TrendResponse
// @Param			month	query		string	false	"Last month of the window in YYYY-MM format. Defaults to the current month."
// @Router			/v1/insights/trend [get]
func GetTrend(c *gin.Context) {
	var query QueryMonth
	if err := c.Bind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TrendResponse{Error: &s})
		return
	}

	snapshot, err := models.LoadSnapshot(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TrendResponse{Error: &e})
		return
	}

	data := make([]MonthSummary, 0, 6)
	for _, summary := range snapshot.MonthlyTrend(query.referenceTime()) {
		data = append(data, MonthSummary{
			Month:    summary.Month,
			Income:   summary.Income,
			Expenses: summary.Expenses,
			Savings:  summary.Savings,
		})
	}

	c.JSON(http.StatusOK, TrendResponse{Data: data})
}
