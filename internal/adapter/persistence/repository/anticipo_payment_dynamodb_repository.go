package repository

import (
	"context"
	"time"

	"paneltec_cotizador/internal/domain/entities"
	"paneltec_cotizador/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "anticipo_payments"
	paymentsQuotationIDIndex = "quotation_id-index"
)

type anticipoPaymentItem struct {
	ID           string                 `dynamodbav:"id"`
	QuotationID  string                 `dynamodbav:"quotation_id"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// AnticipoPaymentDynamoRepository persists AnticipoPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quotation_id-index (PK: quotation_id)

type AnticipoPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAnticipoPaymentRepository = (*AnticipoPaymentDynamoRepository)(nil)

func NewAnticipoPaymentDynamoRepository(ddb *dynamodb.Client) *AnticipoPaymentDynamoRepository {
	return &AnticipoPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *AnticipoPaymentDynamoRepository) Create(ctx context.Context, p entities.AnticipoPayment) (entities.AnticipoPayment, error) {
	it := toAnticipoPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.AnticipoPayment{}, err
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
		return entities.AnticipoPayment{}, err
	}
	return p, nil
}

func (r *AnticipoPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.AnticipoPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AnticipoPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.AnticipoPayment{}, nil
	}

	var it anticipoPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AnticipoPayment{}, err
	}
	return fromAnticipoPaymentItem(it), nil
}

func (r *AnticipoPaymentDynamoRepository) ListByQuotationID(ctx context.Context, quotationID string) ([]entities.AnticipoPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsQuotationIDIndex),
		KeyConditionExpression: aws.String("quotation_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quotationID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.AnticipoPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it anticipoPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromAnticipoPaymentItem(it))
	}
	return items, nil
}

func toAnticipoPaymentItem(p entities.AnticipoPayment) anticipoPaymentItem {
	return anticipoPaymentItem{
		ID:           p.ID,
		QuotationID:  p.QuotationID,
		Date:         p.Date.UTC().Format(time.RFC3339Nano),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromAnticipoPaymentItem(it anticipoPaymentItem) entities.AnticipoPayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.AnticipoPayment{
		ID:           it.ID,
		QuotationID:  it.QuotationID,
		Date:         dt,
		Status:       entities.PaymentStatus(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}
}
