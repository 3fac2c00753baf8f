package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abezemskiy/authforms/internal/common/identity/tools/header"
	"github.com/abezemskiy/authforms/internal/common/identity/tools/token"
	"github.com/abezemskiy/authforms/internal/server/apierror"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	testHandler := func(res http.ResponseWriter, req *http.Request) {
		id, ok := AccountID(req.Context())
		require.True(t, ok)
		res.Write([]byte(id))
	}

	successKey := "success secret key"
	token.SetSecretKey(successKey)
	token.SetExpireHour(1)
	tokenSuccess, err := token.BuildJWT("success id")
	require.NoError(t, err)

	token.SetExpireHour(-1)
	tokenExpired, err := token.BuildJWT("expired id")
	require.NoError(t, err)

	type request struct {
		token     string
		key       string
		setheader bool
	}
	type want struct {
		id     string
		status int
	}
	tests := []struct {
		name string
		req  request
		want want
	}{
		{
			name: "successful authentication",
			req:  request{token: tokenSuccess, key: successKey, setheader: true},
			want: want{id: "success id", status: http.StatusOK},
		},
		{
			name: "header is not set",
			req:  request{key: successKey, setheader: false},
			want: want{status: http.StatusUnauthorized},
		},
		{
			name: "token is expired",
			req:  request{token: tokenExpired, key: successKey, setheader: true},
			want: want{status: http.StatusUnauthorized},
		},
		{
			name: "wrong key",
			req:  request{token: tokenSuccess, key: "wrong key", setheader: true},
			want: want{status: http.StatusUnauthorized},
		},
		{
			name: "wrong token",
			req:  request{token: "wrong token", key: successKey, setheader: true},
			want: want{status: http.StatusUnauthorized},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token.SetSecretKey(tt.req.key)

			r := chi.NewRouter()
			r.Get("/auth/session", Middleware(http.HandlerFunc(testHandler)))

			request := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
			if tt.req.setheader {
				request.Header.Set(header.Authorization, "Bearer "+tt.req.token)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, request)

			result := w.Result()
			defer result.Body.Close()
			assert.Equal(t, tt.want.status, result.StatusCode)

			if tt.want.status == http.StatusOK {
				assert.Equal(t, tt.want.id, w.Body.String())
				return
			}
			var body apierror.ApiError
			require.NoError(t, json.NewDecoder(result.Body).Decode(&body))
			assert.Equal(t, *apierror.ErrUnauthorized, body)
		})
	}
}

func TestAccountID(t *testing.T) {
	_, ok := AccountID(context.Background())
	assert.False(t, ok)

	_, ok = AccountID(context.WithValue(context.Background(), UserIDKey, ""))
	assert.False(t, ok)

	id, ok := AccountID(context.WithValue(context.Background(), UserIDKey, "id"))
	assert.True(t, ok)
	assert.Equal(t, "id", id)
}
