package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"paneltec_cotizador/internal/domain/entities"
	"paneltec_cotizador/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotationsTableName = "quotations"

type quotationItem struct {
	ID          string `dynamodbav:"id"`
	Status      string `dynamodbav:"status"`
	Family      string `dynamodbav:"family"`
	ThicknessMm int    `dynamodbav:"thickness_mm"`
	GrandTotal  string `dynamodbav:"grand_total"`
	Verified    bool   `dynamodbav:"verified"`
	// Result is the full QuotationResult as a JSON document; the scalar
	// columns above exist for listing and conditional updates. Decimals
	// survive the round trip as strings.
	Result    string `dynamodbav:"result"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// QuotationDynamoRepository persists Quotation aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type QuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	it, err := toQuotationItem(q)
	if err != nil {
		return entities.Quotation{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quotation{}, err
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
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it)
}

func (r *QuotationDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.QuotationStatus) (entities.Quotation, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quotation{}, nil
		}
		return entities.Quotation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quotation{}, nil
	}
	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it)
}

func toQuotationItem(q entities.Quotation) (quotationItem, error) {
	result, err := json.Marshal(q.Result)
	if err != nil {
		return quotationItem{}, err
	}
	return quotationItem{
		ID:          q.ID,
		Status:      string(q.Status),
		Family:      q.Result.Product.Family,
		ThicknessMm: q.Result.Product.ThicknessMm,
		GrandTotal:  q.Result.GrandTotal.StringFixed(2),
		Verified:    q.Result.Verified,
		Result:      string(result),
		CreatedAt:   q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromQuotationItem(it quotationItem) (entities.Quotation, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	var result entities.QuotationResult
	if err := json.Unmarshal([]byte(it.Result), &result); err != nil {
		return entities.Quotation{}, err
	}
	return entities.Quotation{
		ID:        it.ID,
		Status:    entities.QuotationStatus(it.Status),
		Result:    result,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
