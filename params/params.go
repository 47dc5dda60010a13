package params

import "time"

const (
	ServerBodyLimit    = 1048576
	ServerIdleTimeout  = 30 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 10 * time.Second

	ShutdownTimeout = 5 * time.Second

	CSRFTokenExpiration = 1 * time.Hour
	SessionKeyPrefix    = "odin:session:"
	StorageGCInterval   = 10 * time.Second
)
