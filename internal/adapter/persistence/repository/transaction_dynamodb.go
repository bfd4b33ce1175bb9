package repository

import (
	"context"
	"errors"

	"rentora/internal/domain/entities"
	"rentora/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoTransactionManager commits cross-entity lifecycle writes through a
// single TransactWriteItems call. DynamoDB caps a transaction at 100 items,
// far above what any lifecycle operation stages.

type DynamoTransactionManager struct {
	ddb       *dynamodb.Client
	contracts string
	tenants   string
	props     string
	payments  string
}

var _ interfaces.ITransactionManager = (*DynamoTransactionManager)(nil)

func NewDynamoTransactionManager(ddb *dynamodb.Client) *DynamoTransactionManager {
	return &DynamoTransactionManager{
		ddb:       ddb,
		contracts: getenvDefault("CONTRACTS_TABLE", defaultContractsTableName),
		tenants:   getenvDefault("TENANTS_TABLE", defaultTenantsTableName),
		props:     getenvDefault("PROPERTIES_TABLE", defaultPropertiesTableName),
		payments:  getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (m *DynamoTransactionManager) Begin() interfaces.ITransaction {
	return &dynamoTransaction{mgr: m}
}

type dynamoTransaction struct {
	mgr   *DynamoTransactionManager
	items []types.TransactWriteItem
	errs  []error
}

var _ interfaces.ITransaction = (*dynamoTransaction)(nil)

func (t *dynamoTransaction) PutContract(c entities.Contract) {
	t.stagePut(t.mgr.contracts, toContractItem(c), nil, nil)
}

func (t *dynamoTransaction) DeleteContract(id, ownerID string) {
	t.stageDelete(t.mgr.contracts, id, ownerID)
}

func (t *dynamoTransaction) PutTenant(tn entities.Tenant) {
	t.stagePut(t.mgr.tenants, toTenantItem(tn), nil, nil)
}

func (t *dynamoTransaction) DeleteTenant(id, ownerID string) {
	t.stageDelete(t.mgr.tenants, id, ownerID)
}

// PutProperty stages the write with a version condition: the stored item must
// still carry the version the caller read, and the staged item carries it
// bumped by one. A concurrent writer trips the condition and the whole
// transaction cancels with ErrVersionConflict.
func (t *dynamoTransaction) PutProperty(p entities.Property) {
	expected := p.Version
	p.Version++

	cond := "attribute_not_exists(#version) OR #version = :expected"
	t.stagePut(t.mgr.props, toPropertyItem(p), aws.String(cond), map[string]types.AttributeValue{
		":expected": &types.AttributeValueMemberN{Value: int64ToString(expected)},
	})
}

func (t *dynamoTransaction) DeleteProperty(id, ownerID string) {
	t.stageDelete(t.mgr.props, id, ownerID)
}

func (t *dynamoTransaction) PutPayment(p entities.Payment) {
	t.stagePut(t.mgr.payments, toPaymentItem(p), nil, nil)
}

func (t *dynamoTransaction) DeletePayment(id, ownerID string) {
	t.stageDelete(t.mgr.payments, id, ownerID)
}

func (t *dynamoTransaction) Commit(ctx context.Context) error {
	if len(t.errs) > 0 {
		return t.errs[0]
	}
	if len(t.items) == 0 {
		return nil
	}

	_, err := t.mgr.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: t.items,
	})
	if err == nil {
		return nil
	}

	var canceled *types.TransactionCanceledException
	if errors.As(err, &canceled) {
		for _, reason := range canceled.CancellationReasons {
			if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
				return interfaces.ErrVersionConflict
			}
		}
	}
	return err
}

func (t *dynamoTransaction) stagePut(table string, item any, condition *string, values map[string]types.AttributeValue) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		t.errs = append(t.errs, err)
		return
	}

	put := &types.Put{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: condition,
	}
	if condition != nil {
		put.ExpressionAttributeNames = map[string]string{"#version": "version"}
		put.ExpressionAttributeValues = values
	}
	t.items = append(t.items, types.TransactWriteItem{Put: put})
}

func (t *dynamoTransaction) stageDelete(table, id, ownerID string) {
	t.items = append(t.items, types.TransactWriteItem{
		Delete: &types.Delete{
			TableName: aws.String(table),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
			// Missing items delete as a no-op; foreign items never do.
			ConditionExpression: aws.String("attribute_not_exists(#id) OR owner_id = :owner"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":owner": &types.AttributeValueMemberS{Value: ownerID},
			},
		},
	})
}
