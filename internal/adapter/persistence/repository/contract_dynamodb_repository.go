package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rentora/internal/domain/entities"
	"rentora/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultContractsTableName = "contracts"
	propertyIDIndex           = "property_id-index"
)

type contractItem struct {
	ID          string `dynamodbav:"id"`
	OwnerID     string `dynamodbav:"owner_id"`
	TenantID    string `dynamodbav:"tenant_id"`
	PropertyID  string `dynamodbav:"property_id"`
	StartDate   string `dynamodbav:"start_date"`
	EndDate     string `dynamodbav:"end_date"`
	MonthlyRent string `dynamodbav:"monthly_rent"`
	Status      string `dynamodbav:"status"`
	DocumentURL string `dynamodbav:"document_url,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// ContractDynamoRepository is the read side of contract persistence; all
// writes go through the transaction manager so the tenant and property rows
// move in the same commit.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id)
//   - GSI: property_id-index (PK: property_id), used by FindOverlapping.
//
// Dates are stored as yyyy-mm-dd strings, so range comparisons in filter
// expressions work lexicographically.

type ContractDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb *dynamodb.Client) *ContractDynamoRepository {
	return &ContractDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTRACTS_TABLE", defaultContractsTableName),
	}
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id, ownerID string) (entities.Contract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contract{}, err
	}
	if it.OwnerID != ownerID {
		return entities.Contract{}, nil
	}
	return fromContractItem(it), nil
}

func (r *ContractDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Contract, error) {
	return r.queryOwner(ctx, ownerID, "", "")
}

func (r *ContractDynamoRepository) ListByStatus(ctx context.Context, ownerID string, status entities.ContractStatus) ([]entities.Contract, error) {
	return r.queryOwner(ctx, ownerID, "status", string(status))
}

func (r *ContractDynamoRepository) ListByTenant(ctx context.Context, tenantID, ownerID string) ([]entities.Contract, error) {
	return r.queryOwner(ctx, ownerID, "tenant_id", tenantID)
}

func (r *ContractDynamoRepository) ListByProperty(ctx context.Context, propertyID, ownerID string) ([]entities.Contract, error) {
	return r.queryOwner(ctx, ownerID, "property_id", propertyID)
}

// FindOverlapping returns contracts on the property whose inclusive
// [start,end] range intersects the given one, skipping excludeStatuses.
// The candidate set for a single property is small, so the date filter
// runs DynamoDB-side on the property index and the caller only excludes
// its own contract ID.
func (r *ContractDynamoRepository) FindOverlapping(ctx context.Context, propertyID, ownerID string, start, end time.Time, excludeStatuses []entities.ContractStatus) ([]entities.Contract, error) {
	names := map[string]string{"#status": "status"}
	values := map[string]types.AttributeValue{
		":property": &types.AttributeValueMemberS{Value: propertyID},
		":owner":    &types.AttributeValueMemberS{Value: ownerID},
		":start":    &types.AttributeValueMemberS{Value: formatDate(start)},
		":end":      &types.AttributeValueMemberS{Value: formatDate(end)},
	}

	filter := "owner_id = :owner AND start_date <= :end AND end_date >= :start"
	for i, st := range excludeStatuses {
		ph := fmt.Sprintf(":ex%d", i)
		filter += fmt.Sprintf(" AND #status <> %s", ph)
		values[ph] = &types.AttributeValueMemberS{Value: string(st)}
	}

	in := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(propertyIDIndex),
		KeyConditionExpression:    aws.String("property_id = :property"),
		FilterExpression:          aws.String(filter),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}
	return r.queryAll(ctx, in)
}

func (r *ContractDynamoRepository) queryOwner(ctx context.Context, ownerID, filterField, filterValue string) ([]entities.Contract, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ownerIDIndex),
		KeyConditionExpression: aws.String("owner_id = :owner"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: ownerID},
		},
	}
	if filterField != "" {
		ph := "#f"
		if strings.EqualFold(filterField, "status") {
			ph = "#status"
		}
		in.FilterExpression = aws.String(ph + " = :fv")
		in.ExpressionAttributeNames = map[string]string{ph: filterField}
		in.ExpressionAttributeValues[":fv"] = &types.AttributeValueMemberS{Value: filterValue}
	}
	return r.queryAll(ctx, in)
}

func (r *ContractDynamoRepository) queryAll(ctx context.Context, in *dynamodb.QueryInput) ([]entities.Contract, error) {
	var items []entities.Contract
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it contractItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromContractItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}

	newestFirst(items, func(c entities.Contract) time.Time { return c.CreatedAt })
	return items, nil
}

func toContractItem(c entities.Contract) contractItem {
	return contractItem{
		ID:          c.ID,
		OwnerID:     c.OwnerID,
		TenantID:    c.TenantID,
		PropertyID:  c.PropertyID,
		StartDate:   formatDate(c.StartDate),
		EndDate:     formatDate(c.EndDate),
		MonthlyRent: floatToString(c.MonthlyRent),
		Status:      string(c.Status),
		DocumentURL: c.DocumentURL,
		CreatedAt:   formatTimestamp(c.CreatedAt),
		UpdatedAt:   formatTimestamp(c.UpdatedAt),
	}
}

func fromContractItem(it contractItem) entities.Contract {
	return entities.Contract{
		ID:          it.ID,
		OwnerID:     it.OwnerID,
		TenantID:    it.TenantID,
		PropertyID:  it.PropertyID,
		StartDate:   parseDate(it.StartDate),
		EndDate:     parseDate(it.EndDate),
		MonthlyRent: stringToFloat(it.MonthlyRent),
		Status:      entities.ContractStatus(it.Status),
		DocumentURL: it.DocumentURL,
		CreatedAt:   parseTimestamp(it.CreatedAt),
		UpdatedAt:   parseTimestamp(it.UpdatedAt),
	}
}
