package authdata

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/abezemskiy/authforms/internal/repositories/identity"
	"github.com/abezemskiy/authforms/internal/server/apierror"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestParse(t *testing.T) {
	now := time.Unix(1700000000, 0)

	type want struct {
		creds Credentials
		err   error
	}
	tests := []struct {
		name string
		data identity.AuthenticationData
		want want
	}{
		{
			name: "successful request",
			data: identity.AuthenticationData{AuthString: encode("a@b.com&pw1"), Date: now.Unix(), Nonce: "n"},
			want: want{creds: Credentials{Email: "a@b.com", Local: "a", Domain: "b.com", Password: "pw1", Nonce: "n"}},
		},
		{
			name: "request 30 seconds old",
			data: identity.AuthenticationData{AuthString: encode("a@b.com&pw1"), Date: now.Unix() - 30, Nonce: "n"},
			want: want{creds: Credentials{Email: "a@b.com", Local: "a", Domain: "b.com", Password: "pw1", Nonce: "n"}},
		},
		{
			name: "stale request",
			data: identity.AuthenticationData{AuthString: encode("a@b.com&pw1"), Date: now.Unix() - 31, Nonce: "n"},
			want: want{err: apierror.ErrRequestDate},
		},
		{
			name: "request from the future",
			data: identity.AuthenticationData{AuthString: encode("a@b.com&pw1"), Date: now.Unix() + 1, Nonce: "n"},
			want: want{err: apierror.ErrRequestDate},
		},
		{
			name: "empty auth string",
			data: identity.AuthenticationData{Date: now.Unix(), Nonce: "n"},
			want: want{err: apierror.ErrEmptyAuthData},
		},
		{
			name: "empty nonce",
			data: identity.AuthenticationData{AuthString: encode("a@b.com&pw1"), Date: now.Unix()},
			want: want{err: apierror.ErrEmptyAuthData},
		},
		{
			name: "bad base64",
			data: identity.AuthenticationData{AuthString: "%%%", Date: now.Unix(), Nonce: "n"},
			want: want{err: apierror.ErrInvalidAuthData},
		},
		{
			name: "no separator",
			data: identity.AuthenticationData{AuthString: encode("a@b.com"), Date: now.Unix(), Nonce: "n"},
			want: want{err: apierror.ErrInvalidAuthData},
		},
		{
			name: "separator in password",
			data: identity.AuthenticationData{AuthString: encode("a@b.com&p&w"), Date: now.Unix(), Nonce: "n"},
			want: want{err: apierror.ErrInvalidAuthData},
		},
		{
			name: "empty password",
			data: identity.AuthenticationData{AuthString: encode("a@b.com&"), Date: now.Unix(), Nonce: "n"},
			want: want{err: apierror.ErrEmptyAuthValues},
		},
		{
			name: "bad email",
			data: identity.AuthenticationData{AuthString: encode("a@b@c&pw1"), Date: now.Unix(), Nonce: "n"},
			want: want{err: apierror.ErrInvalidEmail},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds, err := Parse(tt.data, now)
			if tt.want.err != nil {
				assert.ErrorIs(t, err, tt.want.err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want.creds, creds); diff != "" {
				t.Errorf("credentials mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	now := time.Unix(1700000000, 0)

	creds, err := Decode(strings.NewReader(`{"authString":"`+encode("a@b.com&pw1")+`","date":1700000000,"nonce":"n"}`), now)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", creds.Email)

	_, err = Decode(strings.NewReader(`{"authString":`), now)
	assert.ErrorIs(t, err, apierror.ErrMalformedJSON)

	_, err = Decode(nil, now)
	assert.ErrorIs(t, err, apierror.ErrMalformedJSON)
}
