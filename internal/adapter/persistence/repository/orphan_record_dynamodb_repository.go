package repository

import (
	"context"
	"time"

	"payment_orchestrator/internal/domain/entities"
	"payment_orchestrator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const stripeAccountIndex = "stripe_account-index"

// DynamoAPI is the subset of *dynamodb.Client the repository calls.
type DynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type orphanRecordItem struct {
	ID                          string `dynamodbav:"id"`
	Operation                   string `dynamodbav:"operation"`
	ErrorStep                   string `dynamodbav:"error_step"`
	ErrorMessage                string `dynamodbav:"error_message,omitempty"`
	Customer                    string `dynamodbav:"customer,omitempty"`
	CustomerForConnectedAccount string `dynamodbav:"customer_for_connected_account,omitempty"`
	StripeAccount               string `dynamodbav:"stripe_account,omitempty"`
	CreatedAt                   string `dynamodbav:"created_at"`
}

// OrphanRecordDynamoRepository persists reconciliation ledger entries.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: stripe_account-index (PK: stripe_account, SK: created_at)

type OrphanRecordDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IOrphanRecordRepository = (*OrphanRecordDynamoRepository)(nil)

func NewOrphanRecordDynamoRepository(ddb DynamoAPI, tableName string) *OrphanRecordDynamoRepository {
	return &OrphanRecordDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OrphanRecordDynamoRepository) Create(ctx context.Context, rec entities.OrphanRecord) (entities.OrphanRecord, error) {
	av, err := attributevalue.MarshalMap(toOrphanRecordItem(rec))
	if err != nil {
		return entities.OrphanRecord{}, err
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
		return entities.OrphanRecord{}, err
	}
	return rec, nil
}

// GetByID returns a zero record when the id is unknown.
func (r *OrphanRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.OrphanRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OrphanRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.OrphanRecord{}, nil
	}

	var it orphanRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OrphanRecord{}, err
	}
	return fromOrphanRecordItem(it), nil
}

// ListByStripeAccount returns every entry for the account, newest first.
func (r *OrphanRecordDynamoRepository) ListByStripeAccount(ctx context.Context, stripeAccount string) ([]entities.OrphanRecord, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(stripeAccountIndex),
		KeyConditionExpression: aws.String("stripe_account = :acct"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":acct": &types.AttributeValueMemberS{Value: stripeAccount},
		},
		ScanIndexForward: aws.Bool(false),
	})

	records := make([]entities.OrphanRecord, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var page []orphanRecordItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		for _, it := range page {
			records = append(records, fromOrphanRecordItem(it))
		}
	}
	return records, nil
}

func toOrphanRecordItem(rec entities.OrphanRecord) orphanRecordItem {
	return orphanRecordItem{
		ID:                          rec.ID,
		Operation:                   rec.Operation,
		ErrorStep:                   string(rec.ErrorStep),
		ErrorMessage:                rec.ErrorMessage,
		Customer:                    rec.Customer,
		CustomerForConnectedAccount: rec.CustomerForConnectedAccount,
		StripeAccount:               rec.StripeAccount,
		CreatedAt:                   rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrphanRecordItem(it orphanRecordItem) entities.OrphanRecord {
	created, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.OrphanRecord{
		ID:                          it.ID,
		Operation:                   it.Operation,
		ErrorStep:                   entities.Step(it.ErrorStep),
		ErrorMessage:                it.ErrorMessage,
		Customer:                    it.Customer,
		CustomerForConnectedAccount: it.CustomerForConnectedAccount,
		StripeAccount:               it.StripeAccount,
		CreatedAt:                   created,
	}
}
