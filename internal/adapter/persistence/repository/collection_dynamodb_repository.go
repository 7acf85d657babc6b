package repository

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"gestao_projetos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCollectionsTableName = "collections"

type collectionItem struct {
	Key       string `dynamodbav:"collection_key"`
	Payload   string `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CollectionDynamoRepository persists serialized collections in DynamoDB,
// one item per fixed collection key.
//
// Table requirements:
//   - PK: collection_key (string)
//
// The payload is an opaque JSON dump of the whole collection. Writes are
// unconditional: last writer wins, matching the best-effort save contract.

type CollectionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICollectionStore = (*CollectionDynamoRepository)(nil)

func NewCollectionDynamoRepository(ddb *dynamodb.Client) *CollectionDynamoRepository {
	return &CollectionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COLLECTIONS_TABLE", defaultCollectionsTableName),
	}
}

// Load returns the stored dump for a key, or nil when the key was never
// saved. The caller treats a nil payload as an empty collection.
func (r *CollectionDynamoRepository) Load(ctx context.Context, key string) (json.RawMessage, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"collection_key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it collectionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return json.RawMessage(it.Payload), nil
}

func (r *CollectionDynamoRepository) Save(ctx context.Context, key string, collection json.RawMessage) error {
	av, err := attributevalue.MarshalMap(collectionItem{
		Key:       key,
		Payload:   string(collection),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
