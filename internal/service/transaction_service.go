package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taxfolio/backend/internal/model"
	"github.com/taxfolio/backend/internal/repository"
)

// TransactionService handles transaction-related business logic operations.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
	log             zerolog.Logger
}

// NewTransactionService creates a new TransactionService with the provided repository dependencies.
func NewTransactionService(transactionRepo *repository.TransactionRepository, log zerolog.Logger) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		log:             log.With().Str("component", "transaction-service").Logger(),
	}
}

// CreateTransaction stores a new transaction, assigning its ID and
// creation timestamp.
func (s *TransactionService) CreateTransaction(ctx context.Context, t *model.Transaction) error {
	t.ID = uuid.New().String()
	t.CreatedAt = time.Now().UTC()

	if err := s.transactionRepo.InsertTransaction(ctx, t); err != nil {
		return err
	}

	s.log.Info().
		Str("id", t.ID).
		Str("symbol", t.Symbol).
		Str("operation", t.OperationType).
		Msg("transaction created")
	return nil
}

// GetAllTransactions retrieves the complete transaction history sorted by
// date ascending.
func (s *TransactionService) GetAllTransactions(ctx context.Context) ([]model.Transaction, error) {
	return s.transactionRepo.GetAllTransactions(ctx)
}

// GetTransaction retrieves a single transaction by its ID.
func (s *TransactionService) GetTransaction(ctx context.Context, id string) (model.Transaction, error) {
	return s.transactionRepo.GetTransaction(ctx, id)
}

// DeleteTransaction removes a transaction by ID.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id string) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("id", id).Msg("transaction deleted")
	return nil
}
