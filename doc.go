// Package usersquickservice implementa um serviço CRUD de usuários invocado
// por requisição (AWS Lambda atrás do API Gateway) com persistência em
// DynamoDB.
//
// Visão Geral:
// O serviço não possui processo de longa duração nem socket próprio: cada
// invocação recebe o evento proxy do API Gateway, executa uma das cinco
// operações (create, get, list, update, delete) e devolve o envelope
// uniforme {statusCode, headers, body} com JSON e CORS permissivo.
//
// Sub-Pacotes Principais:
//
// 1. dyndb:
//   - Camada genérica e tipada sobre o DynamoDB: Get/Put/Delete/Update/Scan,
//     update parcial com alias de atributos reservados e paginação opaca.
//
// 2. pkg/handlers:
//   - Os cinco handlers de operação, compondo validação, sanitização,
//     repositório e o builder de resposta.
//
// 3. pkg/validation:
//   - Regras de validação fail-fast e sanitização canônica dos campos
//     name, email e age.
//
// 4. pkg/transport:
//   - Adaptador Lambda com correlation id, log estruturado e métricas,
//     roteando por método HTTP.
//
// 5. envloader:
//   - Carregamento de configurações via tags "env" e "envDefault".
//
// Entradas:
//   - cmd/users: binário Lambda de produção.
//   - cmd/local: servidor HTTP local emulando o API Gateway.
package usersquickservice
