package hasher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testParams - облегченные параметры, чтобы тесты не тратили время на scrypt.
var testParams = Params{N: 1024, R: 8, P: 1}

func TestGenerate(t *testing.T) {
	hash, err := Generate([]byte("pw1"), testParams)
	require.NoError(t, err)

	parts := strings.Split(hash, "&")
	require.Len(t, parts, 5)
	assert.Equal(t, []string{"1024", "8", "1"}, parts[:3])

	// соль случайная, поэтому хэши одного пароля не совпадают
	hash2, err := Generate([]byte("pw1"), testParams)
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)

	_, err = Generate([]byte("pw1"), Params{N: 3, R: 8, P: 1})
	require.Error(t, err)
}

func TestCompare(t *testing.T) {
	hash, err := Generate([]byte("pw1"), testParams)
	require.NoError(t, err)

	type request struct {
		hash     string
		password string
	}
	type want struct {
		err error
	}
	tests := []struct {
		name string
		req  request
		want want
	}{
		{
			name: "successful compare",
			req:  request{hash: hash, password: "pw1"},
			want: want{err: nil},
		},
		{
			name: "wrong password",
			req:  request{hash: hash, password: "pw2"},
			want: want{err: ErrMismatchedHash},
		},
		{
			name: "empty hash",
			req:  request{hash: "", password: "pw1"},
			want: want{err: ErrInvalidHash},
		},
		{
			name: "bad params",
			req:  request{hash: "x&8&1&c2FsdA==&a2V5", password: "pw1"},
			want: want{err: ErrInvalidHash},
		},
		{
			name: "bad salt",
			req:  request{hash: "1024&8&1&!!!&a2V5", password: "pw1"},
			want: want{err: ErrInvalidHash},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Compare(tt.req.hash, []byte(tt.req.password))
			if tt.want.err == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want.err)
		})
	}
}
