// Package dyndb fornece uma abstração genérica e fortemente tipada sobre o
// AWS DynamoDB Go SDK (v2).
//
// Visão Geral:
// O pacote `dyndb` oferece a interface `Store[T]`, que simplifica as operações
// de ponto (Get, Put, Delete, Update) e a varredura paginada, eliminando a
// necessidade de lidar diretamente com os tipos de baixo nível do SDK do
// DynamoDB (AttributeValue, etc.).
//
// Funcionalidades Principais:
//   - CRUD Tipado: operações `Get`, `Put`, `Delete` usando tipos Go nativos.
//   - Update Parcial: `Update` recebe um `FieldSet` ordenado, monta a expressão
//     SET via expression builder do SDK e devolve o registro pós-atualização
//     (ALL_NEW). Cada atributo entra na expressão por alias (#n) ligado ao
//     nome literal em ExpressionAttributeNames, o que cobre palavras
//     reservadas como "name".
//   - Paginação Opaca: `Scan` converte a `LastEvaluatedKey` em token Base64;
//     um token corrompido é ignorado e a varredura recomeça do início.
//   - Mocks Integrados: `MockStore` e `MockDynamoClient` para testes unitários
//     fáceis.
//
// Exemplo Básico de Store e CRUD:
//
//	type User struct {
//		ID    string `dynamodbav:"userId"`
//		Email string `dynamodbav:"email"`
//	}
//
//	cfg := dyndb.TableConfig[User]{TableName: "Users", HashKey: "userId"}
//	client := dynamodb.NewFromConfig(awsCfg)
//
//	userStore := dyndb.New(client, cfg)
//
//	// Operação Put
//	userStore.Put(context.Background(), User{ID: "u1", Email: "a@b.com"})
//
//	// Operação Get
//	user, err := userStore.Get(context.Background(), "u1")
//	if err == dyndb.ErrNotFound { /* ... */ }
//
// Exemplo de Update Parcial:
//
//	fields := dyndb.FieldSet{}.
//		Set("updatedAt", now).
//		Set("name", "Ana")
//
//	updated, err := userStore.Update(context.Background(), "u1", fields)
//
// Configuração:
// O Store é configurado via `TableConfig[T]` ou, quando TableName está vazio,
// pelas variáveis de ambiente (USERS_TABLE, DYNAMODB_HASH_KEY).
package dyndb
