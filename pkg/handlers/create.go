package handlers

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"

	"github.com/raywall/users-quick-service/models"
	"github.com/raywall/users-quick-service/pkg/responder"
	"github.com/raywall/users-quick-service/pkg/validation"
)

// Create trata POST /users: valida, sanitiza, materializa o registro
// completo em uma única gravação e retorna 201 com o registro criado.
func (h *UserHandler) Create(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	body, errResp := parseBody(req)
	if errResp != nil {
		return *errResp, nil
	}

	if err := validation.ValidateUserData(body, []string{"name", "email"}); err != nil {
		return responder.BadRequest(err.Error()), nil
	}

	sanitized := validation.SanitizeUserData(body)

	// Identificador fresco por chamada; a gravação é incondicional, então a
	// unicidade depende da probabilidade de colisão do UUID v4 ser desprezível.
	userID := h.newID()
	timestamp := h.now()

	user := models.User{
		UserID:    userID,
		Name:      *sanitized.Name,
		Email:     *sanitized.Email,
		CreatedAt: timestamp,
		UpdatedAt: timestamp,
	}
	if sanitized.Age != nil {
		user.Age = sanitized.Age
	}

	if err := h.repo.Save(ctx, &user); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("create user failed")
		return storageFailure(err), nil
	}

	log.Ctx(ctx).Info().Str("user_id", userID).Msg("user created")

	return responder.Created(user), nil
}
