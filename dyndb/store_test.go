// dyndb/store_test.go
package dyndb_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/users-quick-service/dyndb"
)

type testItem struct {
	ID    string `dynamodbav:"userId"`
	Name  string `dynamodbav:"name"`
	Email string `dynamodbav:"email"`
}

func createTestStore(client dyndb.DynamoDBClient) dyndb.Store[testItem] {
	return dyndb.New(client, dyndb.TableConfig[testItem]{
		TableName: "test-table",
		HashKey:   "userId",
	})
}

func TestStore_Get_Success(t *testing.T) {
	t.Parallel()

	mockClient := &dyndb.MockDynamoClient{
		GetItemFn: func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			assert.Equal(t, "test-table", *params.TableName)
			assert.True(t, *params.ConsistentRead)

			key, ok := params.Key["userId"].(*types.AttributeValueMemberS)
			require.True(t, ok)
			assert.Equal(t, "u1", key.Value)

			return &dynamodb.GetItemOutput{
				Item: map[string]types.AttributeValue{
					"userId": &types.AttributeValueMemberS{Value: "u1"},
					"name":   &types.AttributeValueMemberS{Value: "Ana"},
					"email":  &types.AttributeValueMemberS{Value: "ana@ex.com"},
				},
			}, nil
		},
	}

	store := createTestStore(mockClient)
	item, err := store.Get(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "u1", item.ID)
	assert.Equal(t, "Ana", item.Name)
}

func TestStore_Get_NotFound(t *testing.T) {
	t.Parallel()

	mockClient := &dyndb.MockDynamoClient{
		GetItemFn: func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: nil}, nil
		},
	}

	store := createTestStore(mockClient)
	item, err := store.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, dyndb.ErrNotFound)
	assert.Nil(t, item)
}

func TestStore_Put(t *testing.T) {
	t.Parallel()

	mockClient := &dyndb.MockDynamoClient{
		PutItemFn: func(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			assert.Equal(t, "test-table", *params.TableName)

			name, ok := params.Item["name"].(*types.AttributeValueMemberS)
			require.True(t, ok)
			assert.Equal(t, "Ana", name.Value)

			return &dynamodb.PutItemOutput{}, nil
		},
	}

	store := createTestStore(mockClient)
	err := store.Put(context.Background(), testItem{ID: "u1", Name: "Ana", Email: "ana@ex.com"})

	assert.NoError(t, err)
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	called := false
	mockClient := &dyndb.MockDynamoClient{
		DeleteItemFn: func(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
			called = true
			key, ok := params.Key["userId"].(*types.AttributeValueMemberS)
			require.True(t, ok)
			assert.Equal(t, "u1", key.Value)
			return &dynamodb.DeleteItemOutput{}, nil
		},
	}

	store := createTestStore(mockClient)
	require.NoError(t, store.Delete(context.Background(), "u1"))
	assert.True(t, called)
}

func TestStore_Update_AliasesReservedNames(t *testing.T) {
	t.Parallel()

	mockClient := &dyndb.MockDynamoClient{
		UpdateItemFn: func(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
			assert.Equal(t, types.ReturnValueAllNew, params.ReturnValues)
			require.NotNil(t, params.UpdateExpression)
			assert.Contains(t, *params.UpdateExpression, "SET")

			// o nome literal nunca entra cru na expressão: aparece só na
			// tabela de aliases
			assert.NotContains(t, *params.UpdateExpression, " name ")
			literals := make([]string, 0, len(params.ExpressionAttributeNames))
			for _, real := range params.ExpressionAttributeNames {
				literals = append(literals, real)
			}
			assert.Contains(t, literals, "name")
			assert.Contains(t, literals, "updatedAt")

			return &dynamodb.UpdateItemOutput{
				Attributes: map[string]types.AttributeValue{
					"userId": &types.AttributeValueMemberS{Value: "u1"},
					"name":   &types.AttributeValueMemberS{Value: "Bob"},
					"email":  &types.AttributeValueMemberS{Value: "ana@ex.com"},
				},
			}, nil
		},
	}

	store := createTestStore(mockClient)
	fields := dyndb.FieldSet{}.
		Set("updatedAt", "2025-01-02T03:04:05.000000Z").
		Set("name", "Bob")

	updated, err := store.Update(context.Background(), "u1", fields)

	require.NoError(t, err)
	assert.Equal(t, "Bob", updated.Name)
	assert.Equal(t, "ana@ex.com", updated.Email)
}

func TestStore_Update_EmptyFieldSet(t *testing.T) {
	t.Parallel()

	store := createTestStore(&dyndb.MockDynamoClient{})
	updated, err := store.Update(context.Background(), "u1", dyndb.FieldSet{})

	assert.ErrorIs(t, err, dyndb.ErrEmptyUpdate)
	assert.Nil(t, updated)
}

func TestStore_Scan_TokenRoundTrip(t *testing.T) {
	t.Parallel()

	lastKey := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: "u2"},
	}

	mockClient := &dyndb.MockDynamoClient{
		ScanFn: func(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
			assert.Equal(t, int32(10), *params.Limit)
			return &dynamodb.ScanOutput{
				Items: []map[string]types.AttributeValue{
					{"userId": &types.AttributeValueMemberS{Value: "u1"}},
					{"userId": &types.AttributeValueMemberS{Value: "u2"}},
				},
				LastEvaluatedKey: lastKey,
			}, nil
		},
	}

	store := createTestStore(mockClient)
	items, token, err := store.Scan(context.Background(), 10, "")

	require.NoError(t, err)
	require.Len(t, items, 2)
	require.NotEmpty(t, token)

	// segunda página: o token volta como ExclusiveStartKey equivalente
	mockClient.ScanFn = func(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
		require.NotNil(t, params.ExclusiveStartKey)
		start, ok := params.ExclusiveStartKey["userId"].(*types.AttributeValueMemberS)
		require.True(t, ok)
		assert.Equal(t, "u2", start.Value)
		return &dynamodb.ScanOutput{}, nil
	}

	_, token, err = store.Scan(context.Background(), 10, token)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestStore_Scan_CorruptTokenIgnored(t *testing.T) {
	t.Parallel()

	mockClient := &dyndb.MockDynamoClient{
		ScanFn: func(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
			// token inválido → varredura recomeça do início
			assert.Nil(t, params.ExclusiveStartKey)
			return &dynamodb.ScanOutput{}, nil
		},
	}

	store := createTestStore(mockClient)
	items, token, err := store.Scan(context.Background(), 10, "%%%not-a-token%%%")

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Empty(t, token)
}

func TestStore_Scan_Error(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("scan error")
	mockClient := &dyndb.MockDynamoClient{
		ScanFn: func(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
			return nil, expectedErr
		},
	}

	store := createTestStore(mockClient)
	items, token, err := store.Scan(context.Background(), 10, "")

	assert.ErrorIs(t, err, expectedErr)
	assert.Nil(t, items)
	assert.Empty(t, token)
}
