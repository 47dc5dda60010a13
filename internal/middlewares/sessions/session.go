package sessions

import (
	"encoding/gob"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	sessionInfoKey = "info"
)

type SessionInfo struct {
	IP        string
	FirstSeen time.Time
	LastSeen  time.Time
}

func init() {
	gob.Register(SessionInfo{})
}

type Session struct {
	*session.Session
	SessionInfo
}

func (s *Session) Save() error {
	s.Set(sessionInfoKey, s.SessionInfo)
	return s.Session.Save()
}
