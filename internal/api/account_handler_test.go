package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blurtlabs/blurt-api/internal/api"
	"github.com/blurtlabs/blurt-api/internal/domain"
	"github.com/blurtlabs/blurt-api/internal/mocks"
	"github.com/blurtlabs/blurt-api/internal/service"
	"github.com/blurtlabs/blurt-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func postJSON(t *testing.T, handler http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestAccountHandler_Register(t *testing.T) {
	t.Run("success returns the stored account", func(t *testing.T) {
		svc := &mocks.MockAccountService{
			RegisterFn: func(ctx context.Context, username, password string) (*domain.Account, error) {
				return &domain.Account{ID: 1, Username: username, Password: password}, nil
			},
		}
		handler := api.NewAccountHandler(svc, testLogger())

		rr := postJSON(t, handler.Register, "/register", `{"username":"alice","password":"pass1"}`)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp api.AccountResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "alice", resp.Username)
		assert.Equal(t, "pass1", resp.Password)
	})

	t.Run("validation rejection returns 400", func(t *testing.T) {
		svc := &mocks.MockAccountService{
			RegisterFn: func(ctx context.Context, username, password string) (*domain.Account, error) {
				return nil, domain.ErrBlankUsername
			},
		}
		handler := api.NewAccountHandler(svc, testLogger())

		rr := postJSON(t, handler.Register, "/register", `{"username":"","password":"pass1"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("duplicate username returns 400", func(t *testing.T) {
		svc := &mocks.MockAccountService{
			RegisterFn: func(ctx context.Context, username, password string) (*domain.Account, error) {
				return nil, store.ErrUsernameExists
			},
		}
		handler := api.NewAccountHandler(svc, testLogger())

		rr := postJSON(t, handler.Register, "/register", `{"username":"alice","password":"pass1"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Username already exists")
	})

	t.Run("storage failure returns 500, never an empty success", func(t *testing.T) {
		svc := &mocks.MockAccountService{
			RegisterFn: func(ctx context.Context, username, password string) (*domain.Account, error) {
				return nil, store.NewStoreError("account", "create", "insert failed", errors.New("down"))
			},
		}
		handler := api.NewAccountHandler(svc, testLogger())

		rr := postJSON(t, handler.Register, "/register", `{"username":"alice","password":"pass1"}`)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "down")
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		svc := &mocks.MockAccountService{}
		handler := api.NewAccountHandler(svc, testLogger())

		rr := postJSON(t, handler.Register, "/register", `{not json`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAccountHandler_Login(t *testing.T) {
	t.Run("success returns the matched account", func(t *testing.T) {
		svc := &mocks.MockAccountService{
			LoginFn: func(ctx context.Context, username, password string) (*domain.Account, error) {
				return &domain.Account{ID: 1, Username: username, Password: password}, nil
			},
		}
		handler := api.NewAccountHandler(svc, testLogger())

		rr := postJSON(t, handler.Login, "/login", `{"username":"alice","password":"pass1"}`)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp api.AccountResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.ID)
	})

	t.Run("invalid credentials return 401", func(t *testing.T) {
		svc := &mocks.MockAccountService{
			LoginFn: func(ctx context.Context, username, password string) (*domain.Account, error) {
				return nil, service.ErrInvalidCredentials
			},
		}
		handler := api.NewAccountHandler(svc, testLogger())

		rr := postJSON(t, handler.Login, "/login", `{"username":"alice","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid credentials")
	})

	t.Run("storage failure returns 500", func(t *testing.T) {
		svc := &mocks.MockAccountService{
			LoginFn: func(ctx context.Context, username, password string) (*domain.Account, error) {
				return nil, store.NewStoreError("account", "get", "query failed", errors.New("down"))
			},
		}
		handler := api.NewAccountHandler(svc, testLogger())

		rr := postJSON(t, handler.Login, "/login", `{"username":"alice","password":"pass1"}`)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
