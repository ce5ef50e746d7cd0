package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"

	"github.com/raywall/users-quick-service/dyndb"
	"github.com/raywall/users-quick-service/pkg/responder"
)

// Get trata GET /users/{userId}: leitura de ponto pelo identificador.
func (h *UserHandler) Get(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	userID, errResp := userIDFromPath(req)
	if errResp != nil {
		return *errResp, nil
	}

	user, err := h.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, dyndb.ErrNotFound) {
			return responder.NotFound(fmt.Sprintf("User with ID %s not found", userID)), nil
		}
		log.Ctx(ctx).Error().Err(err).Str("user_id", userID).Msg("get user failed")
		return storageFailure(err), nil
	}

	log.Ctx(ctx).Info().Str("user_id", userID).Msg("user retrieved")

	return responder.Success(user), nil
}
