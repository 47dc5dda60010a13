package sessions

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	sessionContextKey = "session"
)

// Get returns the session injected by the middleware, or nil when the middleware is not mounted.
func Get(ctx *fiber.Ctx) *Session {
	session, ok := ctx.Locals(sessionContextKey).(*Session)
	if ok {
		return session
	}
	return nil
}

func getFromStore(store *session.Store, ctx *fiber.Ctx) (*Session, error) {
	sess, err := store.Get(ctx)
	if err != nil {
		return nil, err
	}
	sessionInfo, ok := sess.Get(sessionInfoKey).(SessionInfo)
	if ok {
		return &Session{
			Session:     sess,
			SessionInfo: sessionInfo,
		}, nil
	}
	return &Session{
		Session: sess,
		SessionInfo: SessionInfo{
			IP:        ctx.IP(),
			FirstSeen: time.Now(),
		},
	}, nil
}

// New loads the session before the handler runs and saves it afterwards.
func New(store *session.Store) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		session, err := getFromStore(store, ctx)
		if err != nil {
			return err
		}

		ctx.Locals(sessionContextKey, session)
		if err := ctx.Next(); err != nil {
			return err
		}

		session.LastSeen = time.Now()
		return session.Save()
	}
}
