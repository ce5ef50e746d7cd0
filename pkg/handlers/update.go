package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"

	"github.com/raywall/users-quick-service/dyndb"
	"github.com/raywall/users-quick-service/pkg/responder"
	"github.com/raywall/users-quick-service/pkg/validation"
)

// Update trata PUT /users/{userId}: atualização parcial. Apenas os campos
// presentes no body sanitizado são sobrescritos; updatedAt é sempre
// renovado. A checagem de existência e a gravação não são atômicas entre
// si (a consistência fica por conta da atomicidade por chave do storage).
func (h *UserHandler) Update(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	userID, errResp := userIDFromPath(req)
	if errResp != nil {
		return *errResp, nil
	}

	body, errResp := parseBody(req)
	if errResp != nil {
		return *errResp, nil
	}

	// Sem campos obrigatórios no update: só checagens de formato.
	if err := validation.ValidateUserData(body, nil); err != nil {
		return responder.BadRequest(err.Error()), nil
	}

	if _, err := h.repo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, dyndb.ErrNotFound) {
			return responder.NotFound(fmt.Sprintf("User with ID %s not found", userID)), nil
		}
		log.Ctx(ctx).Error().Err(err).Str("user_id", userID).Msg("update existence check failed")
		return storageFailure(err), nil
	}

	sanitized := validation.SanitizeUserData(body)
	if sanitized.Empty() {
		return responder.BadRequest("No valid fields to update"), nil
	}

	updated, err := h.repo.UpdateFields(ctx, userID, sanitized, h.now())
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("user_id", userID).Msg("update user failed")
		return storageFailure(err), nil
	}

	log.Ctx(ctx).Info().Str("user_id", userID).Msg("user updated")

	return responder.Success(updated), nil
}
