// dyndb/types.go
package dyndb

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ErrNotFound – erro padrão quando o item não existe
var ErrNotFound = errors.New("dyndb: item not found")

// ErrEmptyUpdate – erro retornado quando um Update é chamado sem campos
var ErrEmptyUpdate = errors.New("dyndb: update requires at least one field")

// DynamoDBClient interface para abstrair o cliente DynamoDB
type DynamoDBClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Store — interface principal (genérica)
type Store[T any] interface {
	Get(ctx context.Context, hashKey any) (*T, error)
	Put(ctx context.Context, item T) error
	Delete(ctx context.Context, hashKey any) error

	// Update aplica um SET parcial sobre o item e retorna o registro
	// completo pós-atualização (ALL_NEW).
	Update(ctx context.Context, hashKey any, fields FieldSet) (*T, error)

	// Scan varre a tabela de forma limitada; o token retornado continua
	// a varredura em uma chamada subsequente.
	Scan(ctx context.Context, limit int32, startToken string) ([]T, string, error)
}

// TableConfig — configuração da tabela
type TableConfig[T any] struct {
	TableName string `env:"USERS_TABLE" envDefault:"Users"`
	HashKey   string `env:"DYNAMODB_HASH_KEY" envDefault:"userId"`
}

// Field é um par atributo/valor de uma atualização parcial.
type Field struct {
	Name  string
	Value any
}

// FieldSet é o conjunto ordenado de atributos a gravar em um Update.
// Os nomes nunca são concatenados na expressão: cada um vira um alias
// (#n) ligado ao nome literal via ExpressionAttributeNames, o que cobre
// atributos reservados do DynamoDB como "name".
type FieldSet []Field

// Set acrescenta um atributo ao conjunto, preservando a ordem de inserção.
func (fs FieldSet) Set(name string, value any) FieldSet {
	return append(fs, Field{Name: name, Value: value})
}
