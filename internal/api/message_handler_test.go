package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blurtlabs/blurt-api/internal/api"
	"github.com/blurtlabs/blurt-api/internal/domain"
	"github.com/blurtlabs/blurt-api/internal/mocks"
	"github.com/blurtlabs/blurt-api/internal/service"
	"github.com/blurtlabs/blurt-api/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// messageRouter mounts the handler on the real routes so path parameters
// resolve the same way they do in production.
func messageRouter(svc service.MessageService) http.Handler {
	handler := api.NewMessageHandler(svc, testLogger())

	r := chi.NewRouter()
	r.Post("/messages", handler.Create)
	r.Get("/messages", handler.GetAll)
	r.Get("/messages/{message_id}", handler.GetByID)
	r.Delete("/messages/{message_id}", handler.Delete)
	r.Patch("/messages/{message_id}", handler.Update)
	r.Get("/accounts/{account_id}/messages", handler.ListByAccount)
	return r
}

func serve(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestMessageHandler_Create(t *testing.T) {
	t.Run("success returns the stored message", func(t *testing.T) {
		svc := &mocks.MockMessageService{
			CreateFn: func(ctx context.Context, postedBy int64, text string, postedAt int64) (*domain.Message, error) {
				return &domain.Message{ID: 1, PostedBy: postedBy, Text: text, PostedAt: postedAt}, nil
			},
		}

		rr := serve(t, messageRouter(svc), http.MethodPost, "/messages",
			`{"posted_by":1,"message_text":"hello","time_posted_epoch":1000}`)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp api.MessageResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "hello", resp.Text)
		assert.Equal(t, int64(1000), resp.PostedAt)
	})

	t.Run("unknown author returns 400", func(t *testing.T) {
		svc := &mocks.MockMessageService{
			CreateFn: func(ctx context.Context, postedBy int64, text string, postedAt int64) (*domain.Message, error) {
				return nil, service.ErrUnknownAuthor
			},
		}

		rr := serve(t, messageRouter(svc), http.MethodPost, "/messages",
			`{"posted_by":99,"message_text":"x","time_posted_epoch":1000}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid text returns 400", func(t *testing.T) {
		svc := &mocks.MockMessageService{
			CreateFn: func(ctx context.Context, postedBy int64, text string, postedAt int64) (*domain.Message, error) {
				return nil, domain.ErrBlankMessageText
			},
		}

		rr := serve(t, messageRouter(svc), http.MethodPost, "/messages",
			`{"posted_by":1,"message_text":"","time_posted_epoch":1000}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestMessageHandler_GetAll(t *testing.T) {
	svc := &mocks.MockMessageService{
		GetAllFn: func(ctx context.Context) ([]domain.Message, error) {
			return []domain.Message{
				{ID: 1, PostedBy: 1, Text: "first", PostedAt: 1000},
				{ID: 2, PostedBy: 2, Text: "second", PostedAt: 2000},
			}, nil
		},
	}

	rr := serve(t, messageRouter(svc), http.MethodGet, "/messages", "")

	require.Equal(t, http.StatusOK, rr.Code)

	var resp []api.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "first", resp[0].Text)

	t.Run("empty store yields empty array", func(t *testing.T) {
		svc := &mocks.MockMessageService{
			GetAllFn: func(ctx context.Context) ([]domain.Message, error) {
				return []domain.Message{}, nil
			},
		}

		rr := serve(t, messageRouter(svc), http.MethodGet, "/messages", "")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})
}

func TestMessageHandler_GetByID(t *testing.T) {
	t.Run("existing message", func(t *testing.T) {
		svc := &mocks.MockMessageService{
			GetByIDFn: func(ctx context.Context, id int64) (*domain.Message, error) {
				return &domain.Message{ID: id, PostedBy: 1, Text: "hello", PostedAt: 1000}, nil
			},
		}

		rr := serve(t, messageRouter(svc), http.MethodGet, "/messages/1", "")

		require.Equal(t, http.StatusOK, rr.Code)

		var resp api.MessageResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.ID)
	})

	t.Run("absent message yields 200 with empty body", func(t *testing.T) {
		svc := &mocks.MockMessageService{
			GetByIDFn: func(ctx context.Context, id int64) (*domain.Message, error) {
				return nil, store.ErrMessageNotFound
			},
		}

		rr := serve(t, messageRouter(svc), http.MethodGet, "/messages/99", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("non-integer id returns 400", func(t *testing.T) {
		svc := &mocks.MockMessageService{}

		rr := serve(t, messageRouter(svc), http.MethodGet, "/messages/abc", "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("storage failure returns 500, not an empty body", func(t *testing.T) {
		svc := &mocks.MockMessageService{
			GetByIDFn: func(ctx context.Context, id int64) (*domain.Message, error) {
				return nil, store.NewStoreError("message", "get", "query failed", errors.New("down"))
			},
		}

		rr := serve(t, messageRouter(svc), http.MethodGet, "/messages/1", "")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestMessageHandler_Delete(t *testing.T) {
	t.Run("existing message returns its pre-deletion value", func(t *testing.T) {
		svc := &mocks.MockMessageService{
			DeleteByIDFn: func(ctx context.Context, id int64) (*domain.Message, error) {
				return &domain.Message{ID: id, PostedBy: 1, Text: "hello", PostedAt: 1000}, nil
			},
		}

		rr := serve(t, messageRouter(svc), http.MethodDelete, "/messages/1", "")

		require.Equal(t, http.StatusOK, rr.Code)

		var resp api.MessageResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "hello", resp.Text)
	})

	t.Run("absent message yields 200 with empty body", func(t *testing.T) {
		svc := &mocks.MockMessageService{
			DeleteByIDFn: func(ctx context.Context, id int64) (*domain.Message, error) {
				return nil, store.ErrMessageNotFound
			},
		}

		rr := serve(t, messageRouter(svc), http.MethodDelete, "/messages/99", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Body.String())
	})
}

func TestMessageHandler_Update(t *testing.T) {
	t.Run("success returns the updated message", func(t *testing.T) {
		svc := &mocks.MockMessageService{
			UpdateFn: func(ctx context.Context, id int64, text string) (*domain.Message, error) {
				return &domain.Message{ID: id, PostedBy: 1, Text: text, PostedAt: 1000}, nil
			},
		}

		rr := serve(t, messageRouter(svc), http.MethodPatch, "/messages/1",
			`{"message_text":"revised"}`)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp api.MessageResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "revised", resp.Text)
	})

	t.Run("invalid text returns 400", func(t *testing.T) {
		svc := &mocks.MockMessageService{
			UpdateFn: func(ctx context.Context, id int64, text string) (*domain.Message, error) {
				return nil, domain.ErrBlankMessageText
			},
		}

		rr := serve(t, messageRouter(svc), http.MethodPatch, "/messages/1",
			`{"message_text":""}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown id also returns 400", func(t *testing.T) {
		svc := &mocks.MockMessageService{
			UpdateFn: func(ctx context.Context, id int64, text string) (*domain.Message, error) {
				return nil, store.ErrMessageNotFound
			},
		}

		rr := serve(t, messageRouter(svc), http.MethodPatch, "/messages/99",
			`{"message_text":"valid"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Message not found")
	})
}

func TestMessageHandler_ListByAccount(t *testing.T) {
	t.Run("returns the author's messages", func(t *testing.T) {
		svc := &mocks.MockMessageService{
			ListByAccountFn: func(ctx context.Context, accountID int64) ([]domain.Message, error) {
				return []domain.Message{{ID: 1, PostedBy: accountID, Text: "hello", PostedAt: 1000}}, nil
			},
		}

		rr := serve(t, messageRouter(svc), http.MethodGet, "/accounts/1/messages", "")

		require.Equal(t, http.StatusOK, rr.Code)

		var resp []api.MessageResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, int64(1), resp[0].PostedBy)
	})

	t.Run("unknown account yields empty array", func(t *testing.T) {
		svc := &mocks.MockMessageService{
			ListByAccountFn: func(ctx context.Context, accountID int64) ([]domain.Message, error) {
				return []domain.Message{}, nil
			},
		}

		rr := serve(t, messageRouter(svc), http.MethodGet, "/accounts/99/messages", "")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})
}
