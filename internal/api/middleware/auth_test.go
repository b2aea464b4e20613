package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Agora/internal/core/users"
)

type stubUserService struct {
	users map[int64]*users.User
}

func (s *stubUserService) CreateUser(ctx context.Context, req users.CreateUserRequest) (*users.User, error) {
	return nil, nil
}

func (s *stubUserService) GetUser(ctx context.Context, id int64) (*users.User, error) {
	if user, ok := s.users[id]; ok {
		return user, nil
	}
	return nil, users.ErrUserNotFound
}

func (s *stubUserService) GetUserByEmail(ctx context.Context, email string) (*users.User, error) {
	return nil, users.ErrUserNotFound
}

var testSecret = []byte("test-secret")

func newTestAuth() *AuthMiddleware {
	return NewAuthMiddleware(&stubUserService{
		users: map[int64]*users.User{
			42: {ID: 42, Email: "member@example.com", Role: users.RoleMember},
		},
	}, testSecret)
}

func TestRequireAuth_InjectsUser(t *testing.T) {
	auth := newTestAuth()

	var got *users.User
	handler := auth.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = AuthenticatedUser(r)
		w.WriteHeader(http.StatusOK)
	}))

	token, err := IssueToken(testSecret, 42)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, int64(42), got.ID)
	assert.Equal(t, users.RoleMember, got.Role)
}

func TestRequireAuth_Rejections(t *testing.T) {
	auth := newTestAuth()
	handler := auth.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	unknownUserToken, err := IssueToken(testSecret, 7)
	require.NoError(t, err)
	wrongKeyToken, err := IssueToken([]byte("some-other-secret"), 42)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not-a-jwt"},
		{"wrong signing key", "Bearer " + wrongKeyToken},
		{"unknown user", "Bearer " + unknownUserToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthenticatedUser_NilWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, AuthenticatedUser(req))
}
