package interfaces

import (
	"context"
	"errors"

	"rentora/internal/domain/entities"
)

// ErrVersionConflict is returned by Commit (and property Save) when a
// condition-checked property version moved underneath the transaction.
var ErrVersionConflict = errors.New("property version conflict")

// ITransactionManager opens atomic multi-entity write batches.
//
// Every lifecycle operation that touches more than one of {contract, tenant,
// property, payment} stages its writes on one ITransaction and commits them
// as a single DynamoDB TransactWriteItems call: either everything lands or
// nothing does.
type ITransactionManager interface {
	Begin() ITransaction
}

// ITransaction accumulates staged writes. PutProperty condition-checks the
// property's current version and bumps it, which serializes concurrent
// contract writes against the same property.
type ITransaction interface {
	PutContract(c entities.Contract)
	DeleteContract(id, ownerID string)
	PutTenant(t entities.Tenant)
	DeleteTenant(id, ownerID string)
	PutProperty(p entities.Property)
	DeleteProperty(id, ownerID string)
	PutPayment(p entities.Payment)
	DeletePayment(id, ownerID string)
	Commit(ctx context.Context) error
}
