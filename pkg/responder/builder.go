package responder

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/smithy-go"
)

// Headers padrão de todas as respostas: JSON + CORS permissivo.
const (
	corsAllowOrigin  = "*"
	corsAllowHeaders = "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token"
	corsAllowMethods = "GET,POST,PUT,DELETE,OPTIONS"
)

func defaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  corsAllowOrigin,
		"Access-Control-Allow-Headers": corsAllowHeaders,
		"Access-Control-Allow-Methods": corsAllowMethods,
	}
}

// Build monta o envelope uniforme do API Gateway proxy. Um body que não
// serializa para JSON é convertido para string antes do marshal.
func Build(statusCode int, body any) events.APIGatewayProxyResponse {
	payload, err := json.Marshal(body)
	if err != nil {
		payload, _ = json.Marshal(fmt.Sprint(body))
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    defaultHeaders(),
		Body:       string(payload),
	}
}

// Success retorna 200 com o body informado.
func Success(body any) events.APIGatewayProxyResponse {
	return Build(200, body)
}

// Created retorna 201 com o body informado.
func Created(body any) events.APIGatewayProxyResponse {
	return Build(201, body)
}

// BadRequest retorna 400 com a mensagem no envelope de erro.
func BadRequest(message string) events.APIGatewayProxyResponse {
	return Build(400, map[string]string{"error": message})
}

// NotFound retorna 404 com a mensagem no envelope de erro.
func NotFound(message string) events.APIGatewayProxyResponse {
	return Build(404, map[string]string{"error": message})
}

// ServerError retorna 500 com a mensagem no envelope de erro.
func ServerError(message string) events.APIGatewayProxyResponse {
	return Build(500, map[string]string{"error": message})
}

// DatabaseError traduz um erro do DynamoDB para 500, expondo o código e a
// mensagem do backend para facilitar a operação.
func DatabaseError(err error) events.APIGatewayProxyResponse {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return ServerError(fmt.Sprintf("Database error: %s - %s", apiErr.ErrorCode(), apiErr.ErrorMessage()))
	}
	return ServerError(fmt.Sprintf("Database error: %s - %s", "Unknown", err.Error()))
}

// InternalError converte qualquer falha inesperada para 500.
func InternalError(err error) events.APIGatewayProxyResponse {
	return ServerError(fmt.Sprintf("Internal server error: %s", err.Error()))
}
