package repository

import (
	"context"
	"time"

	"rentora/internal/domain/entities"
	"rentora/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentsTableName = "payments"

type paymentItem struct {
	ID         string `dynamodbav:"id"`
	OwnerID    string `dynamodbav:"owner_id"`
	TenantID   string `dynamodbav:"tenant_id"`
	PropertyID string `dynamodbav:"property_id"`
	Amount     string `dynamodbav:"amount"`
	DueDate    string `dynamodbav:"due_date"`
	PaidDate   string `dynamodbav:"paid_date,omitempty"`
	Status     string `dynamodbav:"status"`
	ReceiptURL string `dynamodbav:"receipt_url,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id)

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id, ownerID string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	if it.OwnerID != ownerID {
		return entities.Payment{}, nil
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Payment, error) {
	return r.query(ctx, ownerID, "", "")
}

func (r *PaymentDynamoRepository) ListByStatus(ctx context.Context, ownerID string, status entities.PaymentStatus) ([]entities.Payment, error) {
	return r.query(ctx, ownerID, "status", string(status))
}

func (r *PaymentDynamoRepository) ListByTenant(ctx context.Context, tenantID, ownerID string) ([]entities.Payment, error) {
	return r.query(ctx, ownerID, "tenant_id", tenantID)
}

func (r *PaymentDynamoRepository) ListByProperty(ctx context.Context, propertyID, ownerID string) ([]entities.Payment, error) {
	return r.query(ctx, ownerID, "property_id", propertyID)
}

func (r *PaymentDynamoRepository) Save(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) Delete(ctx context.Context, id, ownerID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
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
	})
	return err
}

func (r *PaymentDynamoRepository) query(ctx context.Context, ownerID, filterField, filterValue string) ([]entities.Payment, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ownerIDIndex),
		KeyConditionExpression: aws.String("owner_id = :owner"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: ownerID},
		},
	}
	if filterField != "" {
		in.FilterExpression = aws.String("#f = :fv")
		in.ExpressionAttributeNames = map[string]string{"#f": filterField}
		in.ExpressionAttributeValues[":fv"] = &types.AttributeValueMemberS{Value: filterValue}
	}

	var items []entities.Payment
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it paymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromPaymentItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}

	newestFirst(items, func(p entities.Payment) time.Time { return p.CreatedAt })
	return items, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:         p.ID,
		OwnerID:    p.OwnerID,
		TenantID:   p.TenantID,
		PropertyID: p.PropertyID,
		Amount:     floatToString(p.Amount),
		DueDate:    formatDate(p.DueDate),
		PaidDate:   formatDatePtr(p.PaidDate),
		Status:     string(p.Status),
		ReceiptURL: p.ReceiptURL,
		CreatedAt:  formatTimestamp(p.CreatedAt),
		UpdatedAt:  formatTimestamp(p.UpdatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:         it.ID,
		OwnerID:    it.OwnerID,
		TenantID:   it.TenantID,
		PropertyID: it.PropertyID,
		Amount:     stringToFloat(it.Amount),
		DueDate:    parseDate(it.DueDate),
		PaidDate:   parseDatePtr(it.PaidDate),
		Status:     entities.PaymentStatus(it.Status),
		ReceiptURL: it.ReceiptURL,
		CreatedAt:  parseTimestamp(it.CreatedAt),
		UpdatedAt:  parseTimestamp(it.UpdatedAt),
	}
}
