package interfaces

import (
	"context"

	"rentora/internal/domain/entities"
)

// ITenantRepository abstracts DynamoDB persistence for Tenant.
//
// GetByEmail/GetByDocument back the per-owner uniqueness checks; a zero-value
// entity means no match.
type ITenantRepository interface {
	Create(ctx context.Context, t entities.Tenant) (entities.Tenant, error)
	GetByID(ctx context.Context, id, ownerID string) (entities.Tenant, error)
	GetByEmail(ctx context.Context, email, ownerID string) (entities.Tenant, error)
	GetByDocument(ctx context.Context, document, ownerID string) (entities.Tenant, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Tenant, error)
	ListByProperty(ctx context.Context, propertyID, ownerID string) ([]entities.Tenant, error)
	Save(ctx context.Context, t entities.Tenant) (entities.Tenant, error)
}
