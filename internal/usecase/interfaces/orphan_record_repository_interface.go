package interfaces

import (
	"context"
	"payment_orchestrator/internal/domain/entities"
)

// IOrphanRecordRepository abstracts DynamoDB persistence for OrphanRecord.

type IOrphanRecordRepository interface {
	Create(ctx context.Context, r entities.OrphanRecord) (entities.OrphanRecord, error)
	GetByID(ctx context.Context, id string) (entities.OrphanRecord, error)
	ListByStripeAccount(ctx context.Context, stripeAccount string) ([]entities.OrphanRecord, error)
}
