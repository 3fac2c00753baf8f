package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/abezemskiy/authforms/internal/common/identity/tools/hasher"
	"github.com/abezemskiy/authforms/internal/common/identity/tools/header"
	"github.com/abezemskiy/authforms/internal/common/identity/tools/id"
	"github.com/abezemskiy/authforms/internal/common/identity/tools/token"
	"github.com/abezemskiy/authforms/internal/repositories/identity"
	"github.com/abezemskiy/authforms/internal/server/apierror"
	"github.com/abezemskiy/authforms/internal/server/authdata"
	"github.com/abezemskiy/authforms/internal/server/identity/auth"
	"github.com/abezemskiy/authforms/internal/server/logger"

	"go.uber.org/zap"
)

// now - текущее время, относительно которого проверяется дата запроса.
var now = time.Now

// hashParams - параметры хэширования паролей новых аккаунтов.
var hashParams = hasher.DefaultParams

// SetHashParams - функция для установки параметров хэширования паролей.
func SetHashParams(params hasher.Params) {
	hashParams = params
}

// SessionResponse - тело ответа на запрос текущей сессии.
type SessionResponse struct {
	ID string `json:"id"`
}

// Signup - хэндлер регистрации аккаунта. В ответе возвращаются id аккаунта и nonce запроса.
func Signup(res http.ResponseWriter, req *http.Request, ident identity.Identifier) {
	defer req.Body.Close()

	creds, err := authdata.Decode(req.Body, now())
	if err != nil {
		fail(res, req, err)
		return
	}

	hash, err := hasher.Generate([]byte(creds.Password), hashParams)
	if err != nil {
		fail(res, req, err)
		return
	}

	accountID, err := id.GenerateID()
	if err != nil {
		fail(res, req, err)
		return
	}

	ok, err := ident.Register(req.Context(), identity.Account{
		ID:            accountID,
		EmailLocal:    creds.Local,
		EmailDomain:   creds.Domain,
		PasswordHash:  hash,
		EmailVerified: false,
	})
	if err != nil {
		fail(res, req, err)
		return
	}
	if !ok {
		// аккаунт с таким email уже зарегистрирован
		fail(res, req, apierror.ErrAccountExists)
		return
	}

	logger.ServerLog.Info("account registered", zap.String("id", accountID))
	writeJSON(res, req, identity.AuthResponse{ID: accountID, Nonce: creds.Nonce})
}

func SignupHandler(ident identity.Identifier) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		Signup(res, req, ident)
	}
	return fn
}

// Signin - хэндлер входа в аккаунт. При успешном входе в заголовок ответа устанавливается токен аккаунта.
func Signin(res http.ResponseWriter, req *http.Request, ident identity.Identifier) {
	defer req.Body.Close()

	creds, err := authdata.Decode(req.Body, now())
	if err != nil {
		fail(res, req, err)
		return
	}

	account, ok, err := ident.Authorize(req.Context(), creds.Email)
	if err != nil {
		fail(res, req, err)
		return
	}
	if !ok {
		// неизвестный аккаунт не отличается для клиента от неверного пароля
		fail(res, req, apierror.ErrMismatchedHash)
		return
	}

	if err := hasher.Compare(account.PasswordHash, []byte(creds.Password)); err != nil {
		if errors.Is(err, hasher.ErrMismatchedHash) {
			fail(res, req, apierror.ErrMismatchedHash)
			return
		}
		fail(res, req, err)
		return
	}

	jwt, err := token.BuildJWT(account.ID)
	if err != nil {
		fail(res, req, err)
		return
	}
	header.SetToken(res, jwt)

	writeJSON(res, req, identity.AuthResponse{ID: account.ID, Nonce: creds.Nonce})
}

func SigninHandler(ident identity.Identifier) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		Signin(res, req, ident)
	}
	return fn
}

// Session - хэндлер текущей сессии, доступен только через auth.Middleware.
func Session(res http.ResponseWriter, req *http.Request) {
	accountID, ok := auth.AccountID(req.Context())
	if !ok {
		fail(res, req, apierror.ErrUnauthorized)
		return
	}
	writeJSON(res, req, SessionResponse{ID: accountID})
}

func SessionHandler() http.Handler {
	return http.HandlerFunc(Session)
}

// HandleOtherRequest - обработка нераспознанных http запросов к сервису.
func HandleOtherRequest() http.HandlerFunc {
	return func(res http.ResponseWriter, _ *http.Request) {
		apierror.ErrNotFound.Handle(res)
	}
}

// fail - отправляет клиенту ошибку. Ошибки, не являющиеся ApiError, скрываются за ошибкой сервера.
func fail(res http.ResponseWriter, req *http.Request, err error) {
	var apiErr *apierror.ApiError
	if !errors.As(err, &apiErr) {
		logger.ServerLog.Error("internal server error", zap.String("address", req.URL.String()), zap.Error(err))
		apierror.ErrServer.Handle(res)
		return
	}
	logger.ServerLog.Error("request rejected", zap.String("address", req.URL.String()),
		zap.Int("code", apiErr.Code), zap.String("message", apiErr.Message))
	apiErr.Handle(res)
}

func writeJSON(res http.ResponseWriter, req *http.Request, body any) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(res).Encode(body); err != nil {
		logger.ServerLog.Error("failed to encode response", zap.String("address", req.URL.String()), zap.Error(err))
	}
}
