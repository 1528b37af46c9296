package models_test

import (
	"time"

	"github.com/familybudget/backend/internal/ledger"
	"github.com/familybudget/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestLoadSnapshotOrder() {
	account := suite.createTestAccount(models.Account{})

	first := suite.createTestTransaction(models.Transaction{
		Type:      ledger.TransactionTypeIncome,
		Category:  "Salary",
		Amount:    decimal.NewFromInt(100),
		AccountID: account.ID,
	})

	second := suite.createTestTransaction(models.Transaction{
		Type:      ledger.TransactionTypeIncome,
		Category:  "Salary",
		Amount:    decimal.NewFromInt(200),
		AccountID: account.ID,
		Date:      first.Date.Add(time.Hour),
	})

	snapshot, err := models.LoadSnapshot(models.DB)
	suite.Require().Nil(err)

	suite.Require().Len(snapshot.Transactions, 2)
	suite.Assert().Equal(second.ID, snapshot.Transactions[0].ID, "the log must be newest first")
	suite.Assert().Equal(first.ID, snapshot.Transactions[1].ID)
}

func (suite *TestSuiteStandard) TestAllocatePersists() {
	account := suite.createTestAccount(models.Account{})
	envelope := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})

	suite.createTestTransaction(models.Transaction{
		Type:      ledger.TransactionTypeIncome,
		Category:  "Salary",
		Amount:    decimal.NewFromInt(1000),
		AccountID: account.ID,
	})

	transaction, err := models.Allocate(models.DB, decimal.NewFromInt(150), envelope.ID, account.ID)
	suite.Require().Nil(err)

	suite.Assert().Equal(ledger.TransactionTypeAllocation, transaction.Type)
	suite.Assert().Equal("Groceries", transaction.Category)
	suite.Assert().Equal(ledger.AllocationDescription, transaction.Description)

	suite.Require().Nil(models.DB.First(&account, account.ID).Error)
	suite.Require().Nil(models.DB.First(&envelope, envelope.ID).Error)

	suite.Assert().True(account.Balance.Equal(decimal.NewFromInt(1000)), "allocation must not change the account balance")
	suite.Assert().True(envelope.Balance.Equal(decimal.NewFromInt(150)))

	// The allocation is in the log like any other transaction
	suite.Require().Nil(models.DB.First(&models.Transaction{}, transaction.ID).Error)
}

func (suite *TestSuiteStandard) TestAllocateGuards() {
	account := suite.createTestAccount(models.Account{})
	envelope := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})

	_, err := models.Allocate(models.DB, decimal.NewFromInt(10), envelope.ID, account.ID)
	suite.Assert().ErrorIs(err, ledger.ErrNoUnallocatedFunds)

	savings := suite.createTestAccount(models.Account{Name: "Savings", Type: ledger.AccountTypeSavings})
	_, err = models.Allocate(models.DB, decimal.NewFromInt(10), envelope.ID, savings.ID)
	suite.Assert().ErrorIs(err, ledger.ErrAccountNotAllocatable)
}

func (suite *TestSuiteStandard) TestMoveMoneyPersists() {
	account := suite.createTestAccount(models.Account{})
	groceries := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})
	fun := suite.createTestEnvelope(models.Envelope{Name: "Fun"})

	suite.createTestTransaction(models.Transaction{
		Type:      ledger.TransactionTypeIncome,
		Category:  "Salary",
		Amount:    decimal.NewFromInt(1000),
		AccountID: account.ID,
	})

	_, err := models.Allocate(models.DB, decimal.NewFromInt(150), groceries.ID, account.ID)
	suite.Require().Nil(err)

	suite.Require().Nil(models.MoveMoney(models.DB, decimal.NewFromInt(50), groceries.ID, fun.ID))

	suite.Require().Nil(models.DB.First(&groceries, groceries.ID).Error)
	suite.Require().Nil(models.DB.First(&fun, fun.ID).Error)

	suite.Assert().True(groceries.Balance.Equal(decimal.NewFromInt(100)))
	suite.Assert().True(fun.Balance.Equal(decimal.NewFromInt(50)))

	// Only the allocation is in the log, the move leaves no trace
	var count int64
	suite.Require().Nil(models.DB.Model(&models.Transaction{}).Where("type = ?", ledger.TransactionTypeAllocation).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestMoveMoneyInsufficient() {
	groceries := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})
	fun := suite.createTestEnvelope(models.Envelope{Name: "Fun"})

	err := models.MoveMoney(models.DB, decimal.NewFromInt(50), groceries.ID, fun.ID)
	suite.Assert().ErrorIs(err, ledger.ErrInsufficientFunds)

	suite.Require().Nil(models.DB.First(&groceries, groceries.ID).Error)
	suite.Assert().True(groceries.Balance.IsZero())
}
