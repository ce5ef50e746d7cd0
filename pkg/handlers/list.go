package handlers

import (
	"context"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"

	"github.com/raywall/users-quick-service/models"
	"github.com/raywall/users-quick-service/pkg/responder"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

type listResponse struct {
	Users   []models.User `json:"users"`
	Count   int           `json:"count"`
	HasMore bool          `json:"hasMore"`
	LastKey string        `json:"lastKey,omitempty"`
}

// List trata GET /users: varredura limitada com token de continuação
// opaco. Um lastKey corrompido é ignorado e a varredura recomeça do
// início; a ordem dos itens é a devolvida pelo storage.
func (h *UserHandler) List(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	limit := defaultListLimit
	if raw, ok := req.QueryStringParameters["limit"]; ok {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return responder.InternalError(err), nil
		}
		limit = parsed
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	lastKey := req.QueryStringParameters["lastKey"]

	users, nextToken, err := h.repo.List(ctx, int32(limit), lastKey)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("list users failed")
		return storageFailure(err), nil
	}
	if users == nil {
		users = []models.User{}
	}

	result := listResponse{
		Users:   users,
		Count:   len(users),
		HasMore: nextToken != "",
		LastKey: nextToken,
	}

	log.Ctx(ctx).Info().Int("count", result.Count).Bool("has_more", result.HasMore).Msg("users listed")

	return responder.Success(result), nil
}
