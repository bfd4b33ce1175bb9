package repository

import (
	"context"
	"errors"
	"time"

	"rentora/internal/domain/entities"
	"rentora/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPropertiesTableName = "properties"

type propertyItem struct {
	ID          string `dynamodbav:"id"`
	OwnerID     string `dynamodbav:"owner_id"`
	Name        string `dynamodbav:"name"`
	Address     string `dynamodbav:"address"`
	City        string `dynamodbav:"city,omitempty"`
	Country     string `dynamodbav:"country,omitempty"`
	Type        string `dynamodbav:"type,omitempty"`
	MonthlyRent string `dynamodbav:"monthly_rent"`
	Status      string `dynamodbav:"status"`
	ImageURL    string `dynamodbav:"image_url,omitempty"`
	Version     int64  `dynamodbav:"version"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// PropertyDynamoRepository persists Property entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id)
//
// Every write condition-checks the version attribute; a stale version means
// another request touched the unit and the caller gets ErrVersionConflict.

type PropertyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPropertyRepository = (*PropertyDynamoRepository)(nil)

func NewPropertyDynamoRepository(ddb *dynamodb.Client) *PropertyDynamoRepository {
	return &PropertyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPERTIES_TABLE", defaultPropertiesTableName),
	}
}

func (r *PropertyDynamoRepository) Create(ctx context.Context, p entities.Property) (entities.Property, error) {
	p.Version = 0
	av, err := attributevalue.MarshalMap(toPropertyItem(p))
	if err != nil {
		return entities.Property{}, err
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
		return entities.Property{}, err
	}
	return p, nil
}

func (r *PropertyDynamoRepository) GetByID(ctx context.Context, id, ownerID string) (entities.Property, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Property{}, err
	}
	if len(out.Item) == 0 {
		return entities.Property{}, nil
	}

	var it propertyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Property{}, err
	}
	if it.OwnerID != ownerID {
		// Cross-owner access reads as absent.
		return entities.Property{}, nil
	}
	return fromPropertyItem(it), nil
}

func (r *PropertyDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Property, error) {
	return r.query(ctx, ownerID, "")
}

func (r *PropertyDynamoRepository) ListByStatus(ctx context.Context, ownerID string, status entities.PropertyStatus) ([]entities.Property, error) {
	return r.query(ctx, ownerID, string(status))
}

// Save writes the property back, bumping the version and failing with
// ErrVersionConflict when the stored version moved underneath us.
func (r *PropertyDynamoRepository) Save(ctx context.Context, p entities.Property) (entities.Property, error) {
	expected := p.Version
	p.Version++
	av, err := attributevalue.MarshalMap(toPropertyItem(p))
	if err != nil {
		return entities.Property{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("#version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: int64ToString(expected)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Property{}, interfaces.ErrVersionConflict
		}
		return entities.Property{}, err
	}
	return p, nil
}

func (r *PropertyDynamoRepository) query(ctx context.Context, ownerID, status string) ([]entities.Property, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ownerIDIndex),
		KeyConditionExpression: aws.String("owner_id = :owner"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: ownerID},
		},
	}
	if status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: status}
	}

	var items []entities.Property
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it propertyItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromPropertyItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}

	newestFirst(items, func(p entities.Property) time.Time { return p.CreatedAt })
	return items, nil
}

func toPropertyItem(p entities.Property) propertyItem {
	return propertyItem{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		Address:     p.Address,
		City:        p.City,
		Country:     p.Country,
		Type:        string(p.Type),
		MonthlyRent: floatToString(p.MonthlyRent),
		Status:      string(p.Status),
		ImageURL:    p.ImageURL,
		Version:     p.Version,
		CreatedAt:   formatTimestamp(p.CreatedAt),
		UpdatedAt:   formatTimestamp(p.UpdatedAt),
	}
}

func fromPropertyItem(it propertyItem) entities.Property {
	return entities.Property{
		ID:          it.ID,
		OwnerID:     it.OwnerID,
		Name:        it.Name,
		Address:     it.Address,
		City:        it.City,
		Country:     it.Country,
		Type:        entities.PropertyType(it.Type),
		MonthlyRent: stringToFloat(it.MonthlyRent),
		Status:      entities.PropertyStatus(it.Status),
		ImageURL:    it.ImageURL,
		Version:     it.Version,
		CreatedAt:   parseTimestamp(it.CreatedAt),
		UpdatedAt:   parseTimestamp(it.UpdatedAt),
	}
}
