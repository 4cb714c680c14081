package usecase

import (
	"context"
	"errors"
	"payment_orchestrator/internal/domain/entities"
	"payment_orchestrator/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrOrphanRecordNotFound          = errors.New("orphan record not found")
	ErrInvalidOrphanRecordID         = errors.New("invalid orphan record id")
	ErrInvalidStripeAccount          = errors.New("invalid stripe account")
	ErrOrphanRepositoryNotConfigured = errors.New("orphan record repository not configured")
)

// IOrphanRecordUseCase keeps the reconciliation ledger.
//
// A composite operation that fails after resolving customers leaves those
// customers on the processor. Track records them; nothing is deleted or retried.
type IOrphanRecordUseCase interface {
	Track(ctx context.Context, operation string, stripeAccount string, outcome entities.Outcome) (entities.OrphanRecord, bool, error)
	GetByID(ctx context.Context, id string) (entities.OrphanRecord, error)
	ListByStripeAccount(ctx context.Context, stripeAccount string) ([]entities.OrphanRecord, error)
}

type OrphanRecordUseCase struct {
	repo   interfaces.IOrphanRecordRepository
	logger *zap.Logger
	now    func() time.Time
}

var _ IOrphanRecordUseCase = (*OrphanRecordUseCase)(nil)

func NewOrphanRecordUseCase(repo interfaces.IOrphanRecordRepository, logger *zap.Logger) *OrphanRecordUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrphanRecordUseCase{repo: repo, logger: logger.Named("orphan_records"), now: time.Now}
}

// Track writes a ledger entry when outcome failed and carries correlation ids.
// The boolean reports whether an entry was written.
func (u *OrphanRecordUseCase) Track(ctx context.Context, operation string, stripeAccount string, outcome entities.Outcome) (entities.OrphanRecord, bool, error) {
	if outcome == nil || !outcome.HasError() || outcome.Correlation().Empty() {
		return entities.OrphanRecord{}, false, nil
	}
	if u.repo == nil {
		u.logger.Error("ledger repository not configured", zap.String("operation", operation))
		return entities.OrphanRecord{}, false, ErrOrphanRepositoryNotConfigured
	}

	c := outcome.Correlation()
	rec := entities.OrphanRecord{
		ID:                          uuid.NewString(),
		Operation:                   operation,
		ErrorStep:                   outcome.ErrorStep(),
		Customer:                    c.Customer,
		CustomerForConnectedAccount: c.CustomerForConnectedAccount,
		StripeAccount:               stripeAccount,
		CreatedAt:                   u.now().UTC(),
	}
	if err := outcome.Err(); err != nil {
		rec.ErrorMessage = err.Error()
	}

	created, err := u.repo.Create(ctx, rec)
	if err != nil {
		u.logger.Error("ledger write failed", zap.String("operation", operation), zap.String("record_id", rec.ID), zap.Error(err))
		return entities.OrphanRecord{}, false, err
	}
	u.logger.Info("ledger entry recorded",
		zap.String("record_id", created.ID),
		zap.String("operation", operation),
		zap.String("error_step", string(created.ErrorStep)),
		zap.String("customer", created.Customer),
		zap.String("customer_for_connected_account", created.CustomerForConnectedAccount),
	)
	return created, true, nil
}

func (u *OrphanRecordUseCase) GetByID(ctx context.Context, id string) (entities.OrphanRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.OrphanRecord{}, ErrInvalidOrphanRecordID
	}
	if u.repo == nil {
		return entities.OrphanRecord{}, ErrOrphanRepositoryNotConfigured
	}

	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.OrphanRecord{}, err
	}
	if rec.ID == "" {
		return entities.OrphanRecord{}, ErrOrphanRecordNotFound
	}
	return rec, nil
}

func (u *OrphanRecordUseCase) ListByStripeAccount(ctx context.Context, stripeAccount string) ([]entities.OrphanRecord, error) {
	stripeAccount = strings.TrimSpace(stripeAccount)
	if stripeAccount == "" {
		return nil, ErrInvalidStripeAccount
	}
	if u.repo == nil {
		return nil, ErrOrphanRepositoryNotConfigured
	}
	return u.repo.ListByStripeAccount(ctx, stripeAccount)
}
