package interfaces

import (
	"context"

	"rentora/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// Payments are single-item writes; cascade deletion rides on the transaction
// together with the parent entity.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id, ownerID string) (entities.Payment, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Payment, error)
	ListByStatus(ctx context.Context, ownerID string, status entities.PaymentStatus) ([]entities.Payment, error)
	ListByTenant(ctx context.Context, tenantID, ownerID string) ([]entities.Payment, error)
	ListByProperty(ctx context.Context, propertyID, ownerID string) ([]entities.Payment, error)
	Save(ctx context.Context, p entities.Payment) (entities.Payment, error)
	Delete(ctx context.Context, id, ownerID string) error
}
