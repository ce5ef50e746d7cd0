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
package repository

import (
	"context"

	"github.com/raywall/users-quick-service/dyndb"
	"github.com/raywall/users-quick-service/models"
	"github.com/raywall/users-quick-service/pkg/validation"
)

// UserRepository expõe as operações de armazenamento do registro de usuário.
type UserRepository struct {
	store dyndb.Store[models.User]
}

// NewUserRepository cria o repositório sobre um Store já construído
// (em testes, um dyndb.MockStore).
func NewUserRepository(store dyndb.Store[models.User]) *UserRepository {
	return &UserRepository{store: store}
}

// NewDynamoUserRepository cria o repositório direto sobre o cliente DynamoDB.
func NewDynamoUserRepository(client dyndb.DynamoDBClient, tableName string) *UserRepository {
	return NewUserRepository(dyndb.New(client, dyndb.TableConfig[models.User]{
		TableName: tableName,
		HashKey:   "userId",
	}))
}

// Save grava o registro completo (insert incondicional).
func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	return r.store.Put(ctx, *user)
}

// GetByID busca o registro pela chave primária.
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	return r.store.Get(ctx, userID)
}

// Delete remove o registro pela chave primária (incondicional).
func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	return r.store.Delete(ctx, userID)
}

// UpdateFields aplica uma atualização parcial: updatedAt sempre entra no
// conjunto, seguido apenas dos campos presentes na entrada sanitizada.
// Campos não informados permanecem intocados no registro.
func (r *UserRepository) UpdateFields(ctx context.Context, userID string, in validation.SanitizedInput, updatedAt string) (*models.User, error) {
	fields := dyndb.FieldSet{}.Set("updatedAt", updatedAt)

	if in.Name != nil {
		fields = fields.Set("name", *in.Name)
	}
	if in.Email != nil {
		fields = fields.Set("email", *in.Email)
	}
	if in.Age != nil {
		fields = fields.Set("age", *in.Age)
	}

	return r.store.Update(ctx, userID, fields)
}

// List varre a tabela com paginação; a ordem dos itens é a devolvida pelo
// storage, sem ordenação adicional.
func (r *UserRepository) List(ctx context.Context, limit int32, token string) ([]models.User, string, error) {
	return r.store.Scan(ctx, limit, token)
}
