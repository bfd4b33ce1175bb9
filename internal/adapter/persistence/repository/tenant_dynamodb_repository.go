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

const defaultTenantsTableName = "tenants"

type tenantItem struct {
	ID             string `dynamodbav:"id"`
	OwnerID        string `dynamodbav:"owner_id"`
	FirstName      string `dynamodbav:"first_name"`
	LastName       string `dynamodbav:"last_name,omitempty"`
	Email          string `dynamodbav:"email"`
	Phone          string `dynamodbav:"phone,omitempty"`
	Document       string `dynamodbav:"document"`
	AvatarURL      string `dynamodbav:"avatar_url,omitempty"`
	PropertyID     string `dynamodbav:"property_id,omitempty"`
	ContractStatus string `dynamodbav:"contract_status"`
	ContractEnd    string `dynamodbav:"contract_end,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// TenantDynamoRepository persists Tenant entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id)
//
// Email/document lookups ride the owner index with a filter; the per-owner
// data sets are small enough that this stays cheap.

type TenantDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITenantRepository = (*TenantDynamoRepository)(nil)

func NewTenantDynamoRepository(ddb *dynamodb.Client) *TenantDynamoRepository {
	return &TenantDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TENANTS_TABLE", defaultTenantsTableName),
	}
}

func (r *TenantDynamoRepository) Create(ctx context.Context, t entities.Tenant) (entities.Tenant, error) {
	av, err := attributevalue.MarshalMap(toTenantItem(t))
	if err != nil {
		return entities.Tenant{}, err
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
		return entities.Tenant{}, err
	}
	return t, nil
}

func (r *TenantDynamoRepository) GetByID(ctx context.Context, id, ownerID string) (entities.Tenant, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Tenant{}, err
	}
	if len(out.Item) == 0 {
		return entities.Tenant{}, nil
	}

	var it tenantItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Tenant{}, err
	}
	if it.OwnerID != ownerID {
		return entities.Tenant{}, nil
	}
	return fromTenantItem(it), nil
}

func (r *TenantDynamoRepository) GetByEmail(ctx context.Context, email, ownerID string) (entities.Tenant, error) {
	return r.getByField(ctx, ownerID, "email", email)
}

func (r *TenantDynamoRepository) GetByDocument(ctx context.Context, document, ownerID string) (entities.Tenant, error) {
	return r.getByField(ctx, ownerID, "document", document)
}

func (r *TenantDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Tenant, error) {
	return r.query(ctx, ownerID, "", "")
}

func (r *TenantDynamoRepository) ListByProperty(ctx context.Context, propertyID, ownerID string) ([]entities.Tenant, error) {
	return r.query(ctx, ownerID, "property_id", propertyID)
}

func (r *TenantDynamoRepository) Save(ctx context.Context, t entities.Tenant) (entities.Tenant, error) {
	av, err := attributevalue.MarshalMap(toTenantItem(t))
	if err != nil {
		return entities.Tenant{}, err
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
		return entities.Tenant{}, err
	}
	return t, nil
}

func (r *TenantDynamoRepository) getByField(ctx context.Context, ownerID, field, value string) (entities.Tenant, error) {
	matches, err := r.query(ctx, ownerID, field, value)
	if err != nil {
		return entities.Tenant{}, err
	}
	if len(matches) == 0 {
		return entities.Tenant{}, nil
	}
	return matches[0], nil
}

func (r *TenantDynamoRepository) query(ctx context.Context, ownerID, filterField, filterValue string) ([]entities.Tenant, error) {
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

	var items []entities.Tenant
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it tenantItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromTenantItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}

	newestFirst(items, func(t entities.Tenant) time.Time { return t.CreatedAt })
	return items, nil
}

func toTenantItem(t entities.Tenant) tenantItem {
	return tenantItem{
		ID:             t.ID,
		OwnerID:        t.OwnerID,
		FirstName:      t.FirstName,
		LastName:       t.LastName,
		Email:          t.Email,
		Phone:          t.Phone,
		Document:       t.Document,
		AvatarURL:      t.AvatarURL,
		PropertyID:     t.PropertyID,
		ContractStatus: string(t.ContractStatus),
		ContractEnd:    formatDatePtr(t.ContractEnd),
		CreatedAt:      formatTimestamp(t.CreatedAt),
		UpdatedAt:      formatTimestamp(t.UpdatedAt),
	}
}

func fromTenantItem(it tenantItem) entities.Tenant {
	return entities.Tenant{
		ID:             it.ID,
		OwnerID:        it.OwnerID,
		FirstName:      it.FirstName,
		LastName:       it.LastName,
		Email:          it.Email,
		Phone:          it.Phone,
		Document:       it.Document,
		AvatarURL:      it.AvatarURL,
		PropertyID:     it.PropertyID,
		ContractStatus: entities.TenantContractStatus(it.ContractStatus),
		ContractEnd:    parseDatePtr(it.ContractEnd),
		CreatedAt:      parseTimestamp(it.CreatedAt),
		UpdatedAt:      parseTimestamp(it.UpdatedAt),
	}
}
