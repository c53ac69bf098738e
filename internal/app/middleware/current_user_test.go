package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"cafe_backend/internal/feature/auth/domain/entity"
)

// mockParser is a mock implementation of the TokenParser interface.
type mockParser struct {
	ParseFunc func(tokenStr string) (string, error)
}

func (m *mockParser) Parse(tokenStr string) (string, error) {
	if m.ParseFunc != nil {
		return m.ParseFunc(tokenStr)
	}
	return "", errors.New("invalid token") // Default: failure
}

// mockResolver is a mock implementation of the SessionResolver interface.
type mockResolver struct {
	ResolveFunc func(ctx context.Context, sessionID string) (*entity.User, error)
}

func (m *mockResolver) Resolve(ctx context.Context, sessionID string) (*entity.User, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, sessionID)
	}
	return nil, errors.New("session not found") // Default: failure
}

func runCurrentUser(t *testing.T, cookie string, parser *mockParser, resolver *mockResolver) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != "" {
		c.Request.AddCookie(&http.Cookie{Name: SessionCookie, Value: cookie})
	}

	CurrentUser(parser, resolver)(c)
	return c
}

func TestCurrentUser_Authenticated(t *testing.T) {
	parser := &mockParser{
		ParseFunc: func(tokenStr string) (string, error) { return "sid-1", nil },
	}
	resolver := &mockResolver{
		ResolveFunc: func(ctx context.Context, sessionID string) (*entity.User, error) {
			assert.Equal(t, "sid-1", sessionID)
			return &entity.User{ID: 7, Name: "Ann", Role: entity.RoleAdmin}, nil
		},
	}

	c := runCurrentUser(t, "signed-token", parser, resolver)

	p := PrincipalFrom(c)
	assert.True(t, p.Authenticated)
	assert.Equal(t, uint(7), p.UserID)
	assert.Equal(t, "Ann", p.Name)
	assert.Equal(t, entity.RoleAdmin, p.Role)
	assert.Equal(t, "sid-1", SessionIDFrom(c))
}

func TestCurrentUser_SoftFailures(t *testing.T) {
	tests := []struct {
		name     string
		cookie   string
		parser   *mockParser
		resolver *mockResolver
	}{
		{
			name:     "no cookie",
			cookie:   "",
			parser:   &mockParser{},
			resolver: &mockResolver{},
		},
		{
			name:     "bad signature",
			cookie:   "tampered",
			parser:   &mockParser{},
			resolver: &mockResolver{},
		},
		{
			name:   "session gone",
			cookie: "valid-token",
			parser: &mockParser{
				ParseFunc: func(string) (string, error) { return "sid-dead", nil },
			},
			resolver: &mockResolver{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := runCurrentUser(t, tt.cookie, tt.parser, tt.resolver)

			// Every failure resolves to anonymous, never an error response.
			p := PrincipalFrom(c)
			assert.False(t, p.Authenticated)
			assert.Equal(t, entity.Anonymous(), p)
			assert.Empty(t, SessionIDFrom(c))
			assert.False(t, c.IsAborted())
		})
	}
}

func TestPrincipalFrom_WithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	assert.Equal(t, entity.Anonymous(), PrincipalFrom(c))
}
