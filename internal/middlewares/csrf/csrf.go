package csrf

import (
	"crypto/rand"
	"encoding/gob"
	"encoding/hex"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/khanghh/odin-signup/internal/middlewares/sessions"
	"github.com/khanghh/odin-signup/params"
)

const (
	CSRFTokenSessionKey = "_csrf"
	CSRFTokenFormField  = "_csrf"
	CSRFTokenHeader     = "X-CSRF-Token"
)

var (
	ErrInvalidToken = errors.New("invalid CSRF token")
)

type CSRF struct {
	Token     string
	ExpiresAt time.Time
}

func init() {
	gob.Register(CSRF{})
}

// Get returns the session's token, issuing a new one when missing or expired.
func Get(session *sessions.Session) CSRF {
	csrf, ok := session.Get(CSRFTokenSessionKey).(CSRF)
	if !ok || time.Now().After(csrf.ExpiresAt) {
		csrf = generateCSRF()
		session.Set(CSRFTokenSessionKey, csrf)
	}
	return csrf
}

func Verify(ctx *fiber.Ctx) error {
	token := ctx.Get(CSRFTokenHeader)
	if token == "" && ctx.Method() == fiber.MethodPost {
		token = ctx.FormValue(CSRFTokenFormField)
	}

	session := sessions.Get(ctx)
	if session == nil {
		return ErrInvalidToken
	}
	csrf, ok := session.Get(CSRFTokenSessionKey).(CSRF)
	if !ok || token == "" || time.Now().After(csrf.ExpiresAt) || csrf.Token != token {
		return ErrInvalidToken
	}
	return nil
}

func randomToken() string {
	const tokenLength = 32
	b := make([]byte, tokenLength)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate CSRF token: " + err.Error())
	}
	return hex.EncodeToString(b)
}

func generateCSRF() CSRF {
	return CSRF{
		Token:     randomToken(),
		ExpiresAt: time.Now().Add(params.CSRFTokenExpiration),
	}
}

// New rejects unsafe requests whose token does not match the session.
func New() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		switch ctx.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return ctx.Next()
		}
		if err := Verify(ctx); err != nil {
			return fiber.NewError(fiber.StatusForbidden, err.Error())
		}
		return ctx.Next()
	}
}
