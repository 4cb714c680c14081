package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"payment_orchestrator/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	put     *dynamodb.PutItemInput
	putErr  error
	item    map[string]types.AttributeValue
	getErr  error
	pages   [][]map[string]types.AttributeValue
	queries []*dynamodb.QueryInput
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.put = in
	return &dynamodb.PutItemOutput{}, f.putErr
}

func (f *fakeDynamo) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &dynamodb.GetItemOutput{Item: f.item}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	page := len(f.queries) - 1
	out := &dynamodb.QueryOutput{}
	if page < len(f.pages) {
		out.Items = f.pages[page]
	}
	if page < len(f.pages)-1 {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: "cursor"},
		}
	}
	return out, nil
}

func sampleRecord(id string) entities.OrphanRecord {
	return entities.OrphanRecord{
		ID:                          id,
		Operation:                   "payOrder",
		ErrorStep:                   entities.StepPaymentIntentsCreate,
		ErrorMessage:                "card declined",
		Customer:                    "cus_1",
		CustomerForConnectedAccount: "cus_c1",
		StripeAccount:               "acct_1",
		CreatedAt:                   time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC),
	}
}

func marshalItem(t *testing.T, rec entities.OrphanRecord) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toOrphanRecordItem(rec))
	require.NoError(t, err)
	return av
}

func TestOrphanRecordDynamoRepository_Create(t *testing.T) {
	t.Run("writes conditional put", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewOrphanRecordDynamoRepository(ddb, "ledger")

		rec, err := repo.Create(context.Background(), sampleRecord("rec-1"))
		require.NoError(t, err)
		assert.Equal(t, "rec-1", rec.ID)

		require.NotNil(t, ddb.put)
		assert.Equal(t, "ledger", aws.ToString(ddb.put.TableName))
		assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(ddb.put.ConditionExpression))
		assert.Equal(t, &types.AttributeValueMemberS{Value: "acct_1"}, ddb.put.Item["stripe_account"])
		assert.Equal(t, &types.AttributeValueMemberS{Value: "paymentIntents.create"}, ddb.put.Item["error_step"])
	})

	t.Run("propagates put error", func(t *testing.T) {
		ddb := &fakeDynamo{putErr: errors.New("conditional check failed")}
		repo := NewOrphanRecordDynamoRepository(ddb, "ledger")

		_, err := repo.Create(context.Background(), sampleRecord("rec-1"))
		assert.EqualError(t, err, "conditional check failed")
	})
}

func TestOrphanRecordDynamoRepository_GetByID(t *testing.T) {
	t.Run("round trips stored item", func(t *testing.T) {
		want := sampleRecord("rec-1")
		repo := NewOrphanRecordDynamoRepository(&fakeDynamo{item: marshalItem(t, want)}, "ledger")

		got, err := repo.GetByID(context.Background(), "rec-1")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("missing item yields zero record", func(t *testing.T) {
		repo := NewOrphanRecordDynamoRepository(&fakeDynamo{}, "ledger")

		got, err := repo.GetByID(context.Background(), "nope")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("propagates get error", func(t *testing.T) {
		repo := NewOrphanRecordDynamoRepository(&fakeDynamo{getErr: errors.New("throttled")}, "ledger")

		_, err := repo.GetByID(context.Background(), "rec-1")
		assert.EqualError(t, err, "throttled")
	})
}

func TestOrphanRecordDynamoRepository_ListByStripeAccount(t *testing.T) {
	ddb := &fakeDynamo{pages: [][]map[string]types.AttributeValue{
		{marshalItem(t, sampleRecord("rec-2"))},
		{marshalItem(t, sampleRecord("rec-1"))},
	}}
	repo := NewOrphanRecordDynamoRepository(ddb, "ledger")

	got, err := repo.ListByStripeAccount(context.Background(), "acct_1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "rec-2", got[0].ID)
	assert.Equal(t, "rec-1", got[1].ID)

	require.Len(t, ddb.queries, 2)
	first := ddb.queries[0]
	assert.Equal(t, stripeAccountIndex, aws.ToString(first.IndexName))
	assert.False(t, aws.ToBool(first.ScanIndexForward))
	assert.Equal(t, &types.AttributeValueMemberS{Value: "acct_1"}, first.ExpressionAttributeValues[":acct"])
	assert.NotNil(t, ddb.queries[1].ExclusiveStartKey)
}
