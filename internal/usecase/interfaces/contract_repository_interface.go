package interfaces

import (
	"context"
	"time"

	"rentora/internal/domain/entities"
)

// IContractRepository abstracts DynamoDB persistence for Contract.
//
// Contract writes always ride on a transaction (see ITransactionManager);
// this interface is the read side. FindOverlapping returns every contract on
// the property whose status is not in excludeStatuses and whose inclusive
// [start,end] range intersects the given one.
type IContractRepository interface {
	GetByID(ctx context.Context, id, ownerID string) (entities.Contract, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Contract, error)
	ListByStatus(ctx context.Context, ownerID string, status entities.ContractStatus) ([]entities.Contract, error)
	ListByTenant(ctx context.Context, tenantID, ownerID string) ([]entities.Contract, error)
	ListByProperty(ctx context.Context, propertyID, ownerID string) ([]entities.Contract, error)
	FindOverlapping(ctx context.Context, propertyID, ownerID string, start, end time.Time, excludeStatuses []entities.ContractStatus) ([]entities.Contract, error)
}
