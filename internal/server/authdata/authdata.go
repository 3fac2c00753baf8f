// authdata - разбор тела запроса аутентификации.
// Запрос содержит base64 от строки "<email>&<пароль>", время формирования и nonce клиента.
package authdata

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/abezemskiy/authforms/internal/common/identity/tools/checker"
	"github.com/abezemskiy/authforms/internal/repositories/identity"
	"github.com/abezemskiy/authforms/internal/server/apierror"
)

// MaxTimeDiff - максимальный возраст запроса.
const MaxTimeDiff = 30 * time.Second

// Credentials - учетные данные из запроса.
type Credentials struct {
	Email    string
	Local    string
	Domain   string
	Password string
	Nonce    string
}

// Decode - читает и проверяет запрос из тела body относительно момента now.
// Все ошибки имеют тип *apierror.ApiError.
func Decode(body io.Reader, now time.Time) (Credentials, error) {
	var data identity.AuthenticationData
	if body == nil {
		return Credentials{}, apierror.ErrMalformedJSON
	}
	if err := json.NewDecoder(body).Decode(&data); err != nil {
		return Credentials{}, apierror.ErrMalformedJSON
	}
	return Parse(data, now)
}

// Parse - проверяет разобранный запрос.
func Parse(data identity.AuthenticationData, now time.Time) (Credentials, error) {
	if data.AuthString == "" || data.Nonce == "" {
		return Credentials{}, apierror.ErrEmptyAuthData
	}

	// запрос должен быть сформирован не позже MaxTimeDiff назад и не в будущем
	diff := now.Unix() - data.Date
	if diff > int64(MaxTimeDiff/time.Second) || diff < 0 {
		return Credentials{}, apierror.ErrRequestDate
	}

	decoded, err := base64.StdEncoding.DecodeString(data.AuthString)
	if err != nil {
		return Credentials{}, apierror.ErrInvalidAuthData
	}

	values := strings.Split(string(decoded), "&")
	if len(values) != 2 {
		return Credentials{}, apierror.ErrInvalidAuthData
	}
	if values[0] == "" || !checker.CheckPassword(values[1]) {
		return Credentials{}, apierror.ErrEmptyAuthValues
	}

	local, domain, ok := checker.SplitEmail(values[0])
	if !ok {
		return Credentials{}, apierror.ErrInvalidEmail
	}

	return Credentials{
		Email:    values[0],
		Local:    local,
		Domain:   domain,
		Password: values[1],
		Nonce:    data.Nonce,
	}, nil
}
