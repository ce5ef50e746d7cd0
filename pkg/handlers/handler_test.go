package handlers

import (
	"github.com/aws/aws-lambda-go/events"

	"github.com/raywall/users-quick-service/dyndb"
	"github.com/raywall/users-quick-service/models"
	"github.com/raywall/users-quick-service/repository"
)

const (
	testNow = "2025-01-02T03:04:05.000000Z"
	testID  = "11111111-2222-3333-4444-555555555555"
)

// newTestHandler cria um UserHandler com relógio e gerador de id fixos.
func newTestHandler(store *dyndb.MockStore[models.User]) *UserHandler {
	h := NewUserHandler(repository.NewUserRepository(store))
	h.now = func() string { return testNow }
	h.newID = func() string { return testID }
	return h
}

func postRequest(body string) events.APIGatewayProxyRequest {
	return events.APIGatewayProxyRequest{
		HTTPMethod: "POST",
		Path:       "/users",
		Body:       body,
	}
}

func pathRequest(method, userID string) events.APIGatewayProxyRequest {
	return events.APIGatewayProxyRequest{
		HTTPMethod:     method,
		Path:           "/users/" + userID,
		PathParameters: map[string]string{"userId": userID},
	}
}
