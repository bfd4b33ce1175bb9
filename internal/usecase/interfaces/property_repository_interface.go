package interfaces

import (
	"context"

	"rentora/internal/domain/entities"
)

// IPropertyRepository abstracts DynamoDB persistence for Property.
//
// Reads are always owner-scoped; a zero-value entity means not found.
// Save enforces the optimistic version check and returns ErrVersionConflict
// when the stored version moved.
type IPropertyRepository interface {
	Create(ctx context.Context, p entities.Property) (entities.Property, error)
	GetByID(ctx context.Context, id, ownerID string) (entities.Property, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Property, error)
	ListByStatus(ctx context.Context, ownerID string, status entities.PropertyStatus) ([]entities.Property, error)
	Save(ctx context.Context, p entities.Property) (entities.Property, error)
}
