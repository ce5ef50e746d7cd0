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

// Delete trata DELETE /users/{userId}: checa a existência com uma leitura
// de ponto e então remove incondicionalmente. As duas chamadas não são
// atômicas entre si; um delete concorrente entre elas produz um delete
// vazio, sem erro.
func (h *UserHandler) Delete(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	userID, errResp := userIDFromPath(req)
	if errResp != nil {
		return *errResp, nil
	}

	if _, err := h.repo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, dyndb.ErrNotFound) {
			return responder.NotFound(fmt.Sprintf("User with ID %s not found", userID)), nil
		}
		log.Ctx(ctx).Error().Err(err).Str("user_id", userID).Msg("delete existence check failed")
		return storageFailure(err), nil
	}

	if err := h.repo.Delete(ctx, userID); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("user_id", userID).Msg("delete user failed")
		return storageFailure(err), nil
	}

	log.Ctx(ctx).Info().Str("user_id", userID).Msg("user deleted")

	return responder.Success(map[string]string{
		"message": fmt.Sprintf("User %s deleted successfully", userID),
		"userId":  userID,
	}), nil
}
