package csrf

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/memory/v2"
	"github.com/khanghh/odin-signup/internal/middlewares/sessions"
)

// newTestApp seeds the session token through GET /seed and guards POST /submit with the middleware.
func newTestApp(seed CSRF) *fiber.App {
	store := session.New(session.Config{Storage: memory.New(), KeyLookup: "cookie:sid"})
	app := fiber.New()
	app.Use(sessions.New(store))
	app.Use(New())
	app.Get("/seed", func(ctx *fiber.Ctx) error {
		sessions.Get(ctx).Set(CSRFTokenSessionKey, seed)
		return ctx.SendStatus(fiber.StatusNoContent)
	})
	app.Post("/submit", func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestVerifyTokenExpiry(t *testing.T) {
	tests := []struct {
		name       string
		seed       CSRF
		token      string
		wantStatus int
	}{
		{"valid", CSRF{Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}, "tok", fiber.StatusOK},
		{"expired", CSRF{Token: "tok", ExpiresAt: time.Now().Add(-time.Minute)}, "tok", fiber.StatusForbidden},
		{"mismatch", CSRF{Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}, "other", fiber.StatusForbidden},
		{"empty session token", CSRF{ExpiresAt: time.Now().Add(time.Hour)}, "", fiber.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(tt.seed)
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/seed", nil), -1)
			if err != nil {
				t.Fatal(err)
			}
			var cookie *http.Cookie
			for _, c := range resp.Cookies() {
				if c.Name == "sid" {
					cookie = c
				}
			}
			if cookie == nil {
				t.Fatal("session cookie not set")
			}

			req := httptest.NewRequest(http.MethodPost, "/submit", nil)
			req.Header.Set(CSRFTokenHeader, tt.token)
			req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
			resp, err = app.Test(req, -1)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestGetRenewsExpiredToken(t *testing.T) {
	store := session.New(session.Config{Storage: memory.New()})
	app := fiber.New()
	app.Use(sessions.New(store))
	app.Get("/", func(ctx *fiber.Ctx) error {
		session := sessions.Get(ctx)
		session.Set(CSRFTokenSessionKey, CSRF{Token: "old", ExpiresAt: time.Now().Add(-time.Second)})
		csrf := Get(session)
		if csrf.Token == "old" || !csrf.ExpiresAt.After(time.Now()) {
			return ctx.SendStatus(fiber.StatusConflict)
		}
		return ctx.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expired token was not renewed, status = %d", resp.StatusCode)
	}
}
