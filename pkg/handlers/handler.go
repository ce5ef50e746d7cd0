// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package handlers

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"

	"github.com/raywall/users-quick-service/pkg/responder"
	"github.com/raywall/users-quick-service/repository"
)

// timestampLayout — ISO-8601 UTC com sufixo 'Z' e precisão de microssegundos.
const timestampLayout = "2006-01-02T15:04:05.000000Z"

// UserHandler agrupa os cinco handlers de operação do recurso de usuário.
// Cada invocação é independente: nenhum estado é compartilhado entre
// requisições além do cliente de storage injetado.
type UserHandler struct {
	repo *repository.UserRepository

	// injetáveis para testes determinísticos
	now   func() string
	newID func() string
}

// NewUserHandler cria os handlers sobre o repositório injetado.
func NewUserHandler(repo *repository.UserRepository) *UserHandler {
	return &UserHandler{
		repo:  repo,
		now:   func() string { return time.Now().UTC().Format(timestampLayout) },
		newID: uuid.NewString,
	}
}

// userIDFromPath extrai e valida o userId dos path parameters.
// Retorna o id ou a resposta de erro pronta.
func userIDFromPath(req events.APIGatewayProxyRequest) (string, *events.APIGatewayProxyResponse) {
	userID, ok := req.PathParameters["userId"]
	if !ok {
		resp := responder.BadRequest("Missing userId in path")
		return "", &resp
	}
	if strings.TrimSpace(userID) == "" {
		resp := responder.BadRequest("Invalid userId")
		return "", &resp
	}
	return userID, nil
}

// parseBody decodifica o body JSON da requisição.
// Retorna o mapeamento ou a resposta de erro pronta.
func parseBody(req events.APIGatewayProxyRequest) (map[string]any, *events.APIGatewayProxyResponse) {
	if req.Body == "" {
		resp := responder.BadRequest("Request body is required")
		return nil, &resp
	}

	var body map[string]any
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		resp := responder.BadRequest("Invalid JSON in request body")
		return nil, &resp
	}
	return body, nil
}

// storageFailure converte falhas vindas do storage para o envelope de erro:
// erros do DynamoDB expõem código e mensagem do backend, qualquer outra
// falha vira erro interno genérico. Nenhuma exceção escapa sem conversão.
func storageFailure(err error) events.APIGatewayProxyResponse {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return responder.DatabaseError(err)
	}
	return responder.InternalError(err)
}
