package kvstore

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	apperrors "travelbook/pkg/errors"
)

// kvRecord is how entries are laid out in the table. Value carries the
// caller's serialized bytes untouched.
type kvRecord struct {
	Key   string `dynamodbav:"PK"`
	Value []byte `dynamodbav:"Value"`
}

// DynamoStore is a Store backed by a DynamoDB table keyed on PK
type DynamoStore struct {
	client    *dynamodb.Client
	tableName string
}

// NewDynamoStore creates a store on an existing table
func NewDynamoStore(client *dynamodb.Client, tableName string) *DynamoStore {
	return &DynamoStore{client: client, tableName: tableName}
}

// Get implements Store
func (s *DynamoStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	keyAttrs, err := attributevalue.MarshalMap(struct {
		Key string `dynamodbav:"PK"`
	}{Key: key})
	if err != nil {
		return nil, false, apperrors.NewStorageError("marshal key", err)
	}

	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.tableName,
		Key:       keyAttrs,
	})
	if err != nil {
		return nil, false, apperrors.NewStorageError("get item", err)
	}
	if out.Item == nil {
		return nil, false, nil
	}

	var record kvRecord
	if err := attributevalue.UnmarshalMap(out.Item, &record); err != nil {
		return nil, false, apperrors.NewStorageError("unmarshal item", err)
	}
	return record.Value, true, nil
}

// Set implements Store
func (s *DynamoStore) Set(ctx context.Context, key string, value []byte) error {
	item, err := attributevalue.MarshalMap(kvRecord{Key: key, Value: value})
	if err != nil {
		return apperrors.NewStorageError("marshal item", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return apperrors.NewStorageError("put item", err)
	}
	return nil
}

// Delete implements Store
func (s *DynamoStore) Delete(ctx context.Context, key string) error {
	keyAttrs, err := attributevalue.MarshalMap(struct {
		Key string `dynamodbav:"PK"`
	}{Key: key})
	if err != nil {
		return apperrors.NewStorageError("marshal key", err)
	}

	_, err = s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.tableName,
		Key:       keyAttrs,
	})
	if err != nil {
		return apperrors.NewStorageError("delete item", err)
	}
	return nil
}
