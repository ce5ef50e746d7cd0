// dyndb/scan.go
package dyndb

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Scan varre a tabela respeitando o limite informado. O token de
// continuação é a LastEvaluatedKey serializada (JSON em Base64), devolvida
// como valor opaco; um token inválido é ignorado e a varredura recomeça do
// início em vez de falhar.
func (s *dynamoStore[T]) Scan(ctx context.Context, limit int32, startToken string) ([]T, string, error) {
	input := &dynamodb.ScanInput{
		TableName:         aws.String(s.cfg.TableName),
		Limit:             aws.Int32(limit),
		ExclusiveStartKey: decodeStartKey(startToken),
	}

	out, err := s.client.Scan(ctx, input)
	if err != nil {
		return nil, "", fmt.Errorf("dynamostore: scan failed: %w", err)
	}

	result := make([]T, 0, len(out.Items))
	for _, item := range out.Items {
		var t T
		if err := attributevalue.UnmarshalMap(item, &t); err != nil {
			return nil, "", fmt.Errorf("dynamostore: unmarshal failed: %w", err)
		}
		result = append(result, t)
	}

	return result, encodeLastKey(out.LastEvaluatedKey), nil
}

// encodeLastKey serializa a LastEvaluatedKey como token opaco.
func encodeLastKey(lastKey map[string]types.AttributeValue) string {
	if len(lastKey) == 0 {
		return ""
	}

	var plain map[string]any
	if err := attributevalue.UnmarshalMap(lastKey, &plain); err != nil {
		return ""
	}
	b, err := json.Marshal(plain)
	if err != nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(b)
}

// decodeStartKey reconstrói a ExclusiveStartKey a partir do token.
// Qualquer falha de decodificação resulta em nil (scan do início).
func decodeStartKey(token string) map[string]types.AttributeValue {
	if token == "" {
		return nil
	}

	data, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil
	}

	var plain map[string]any
	if err := json.Unmarshal(data, &plain); err != nil {
		return nil
	}

	key, err := attributevalue.MarshalMap(plain)
	if err != nil || len(key) == 0 {
		return nil
	}
	return key
}
