package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/taxfolio/backend/internal/apperrors"
	"github.com/taxfolio/backend/internal/model"
	"github.com/taxfolio/backend/internal/repository"
	"github.com/taxfolio/backend/internal/testutil"
)

func TestTransactionRepository(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewTransactionRepository(db)
	ctx := context.Background()

	t.Run("insert and get", func(t *testing.T) {
		tx := model.Transaction{
			ID:               testutil.MakeID(),
			Symbol:           "AAPL",
			OperationType:    model.OperationBuy,
			ExecutedQuantity: 10,
			AveragePrice:     150,
			Currency:         model.CurrencyUSD,
			TransactionFee:   1.5,
			Date:             time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			CreatedAt:        time.Now().UTC(),
		}

		if err := repo.InsertTransaction(ctx, &tx); err != nil {
			t.Fatalf("InsertTransaction failed: %v", err)
		}

		got, err := repo.GetTransaction(ctx, tx.ID)
		if err != nil {
			t.Fatalf("GetTransaction failed: %v", err)
		}
		if got.Symbol != "AAPL" || got.ExecutedQuantity != 10 || got.AveragePrice != 150 {
			t.Errorf("Unexpected transaction: %+v", got)
		}
		if !got.Date.Equal(tx.Date) {
			t.Errorf("Expected date %v, got %v", tx.Date, got.Date)
		}

		testutil.CleanDatabase(t, db)
	})

	t.Run("get all sorted by date", func(t *testing.T) {
		testutil.NewTransaction().WithSymbol("B").OnDate(2024, time.June, 1).Build(t, db)
		testutil.NewTransaction().WithSymbol("A").OnDate(2024, time.January, 1).Build(t, db)
		testutil.NewTransaction().WithSymbol("C").OnDate(2024, time.December, 1).Build(t, db)

		transactions, err := repo.GetAllTransactions(ctx)
		if err != nil {
			t.Fatalf("GetAllTransactions failed: %v", err)
		}
		if len(transactions) != 3 {
			t.Fatalf("Expected 3 transactions, got %d", len(transactions))
		}
		if transactions[0].Symbol != "A" || transactions[2].Symbol != "C" {
			t.Errorf("Transactions not sorted by date: %v, %v, %v",
				transactions[0].Symbol, transactions[1].Symbol, transactions[2].Symbol)
		}

		testutil.CleanDatabase(t, db)
	})

	t.Run("get missing transaction", func(t *testing.T) {
		_, err := repo.GetTransaction(ctx, testutil.MakeID())
		if !errors.Is(err, apperrors.ErrTransactionNotFound) {
			t.Errorf("Expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		tx := testutil.NewTransaction().Build(t, db)

		if err := repo.DeleteTransaction(ctx, tx.ID); err != nil {
			t.Fatalf("DeleteTransaction failed: %v", err)
		}
		testutil.AssertRowCount(t, db, "transactions", 0)

		err := repo.DeleteTransaction(ctx, tx.ID)
		if !errors.Is(err, apperrors.ErrTransactionNotFound) {
			t.Errorf("Expected ErrTransactionNotFound, got %v", err)
		}
	})
}
