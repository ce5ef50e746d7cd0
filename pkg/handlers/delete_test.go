package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/users-quick-service/dyndb"
	"github.com/raywall/users-quick-service/models"
)

func TestDelete_InvalidUserID(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&dyndb.MockStore[models.User]{})
	resp, err := h.Delete(context.Background(), pathRequest("DELETE", ""))

	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	assert.JSONEq(t, `{"error": "Invalid userId"}`, resp.Body)
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&dyndb.MockStore[models.User]{})
	resp, err := h.Delete(context.Background(), pathRequest("DELETE", "ghost"))

	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	assert.JSONEq(t, `{"error": "User with ID ghost not found"}`, resp.Body)
}

func TestDelete_Success(t *testing.T) {
	t.Parallel()

	deleted := false
	mockStore := &dyndb.MockStore[models.User]{
		GetFn: func(ctx context.Context, hashKey any) (*models.User, error) {
			return &models.User{UserID: "u1"}, nil
		},
		DeleteFn: func(ctx context.Context, hashKey any) error {
			deleted = true
			assert.Equal(t, "u1", hashKey)
			return nil
		},
	}

	h := newTestHandler(mockStore)
	resp, err := h.Delete(context.Background(), pathRequest("DELETE", "u1"))

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.True(t, deleted)
	assert.JSONEq(t, `{"message": "User u1 deleted successfully", "userId": "u1"}`, resp.Body)
}

func TestDelete_SecondDeleteReturnsNotFound(t *testing.T) {
	t.Parallel()

	// simula delete-then-delete: após a primeira remoção o registro some
	existing := true
	mockStore := &dyndb.MockStore[models.User]{
		GetFn: func(ctx context.Context, hashKey any) (*models.User, error) {
			if existing {
				return &models.User{UserID: "u1"}, nil
			}
			return nil, dyndb.ErrNotFound
		},
		DeleteFn: func(ctx context.Context, hashKey any) error {
			existing = false
			return nil
		},
	}

	h := newTestHandler(mockStore)

	resp, err := h.Delete(context.Background(), pathRequest("DELETE", "u1"))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = h.Delete(context.Background(), pathRequest("DELETE", "u1"))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	// get após delete também é not found
	resp, err = h.Get(context.Background(), pathRequest("GET", "u1"))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestDelete_StorageError(t *testing.T) {
	t.Parallel()

	mockStore := &dyndb.MockStore[models.User]{
		GetFn: func(ctx context.Context, hashKey any) (*models.User, error) {
			return &models.User{UserID: "u1"}, nil
		},
		DeleteFn: func(ctx context.Context, hashKey any) error {
			return errors.New("socket closed")
		},
	}

	h := newTestHandler(mockStore)
	resp, err := h.Delete(context.Background(), pathRequest("DELETE", "u1"))

	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	assert.JSONEq(t, `{"error": "Internal server error: socket closed"}`, resp.Body)
}
