package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/soaringjerry/bemestar/internal/config"
	"github.com/soaringjerry/bemestar/internal/db"
	"github.com/soaringjerry/bemestar/internal/session"
)

// openSessions builds the session store selected by cfg. The returned
// close func releases the backend.
func openSessions(cfg config.Config, logger *slog.Logger) (*session.Store, func() error, error) {
	var codec session.Codec = session.JSONCodec{}
	if cfg.SessionSecret != "" {
		tc, err := session.NewTokenCodec(cfg.SessionSecret)
		if err != nil {
			return nil, nil, err
		}
		codec = tc
	}

	noop := func() error { return nil }
	switch cfg.SessionBackend {
	case config.BackendMemory:
		return session.New(session.NewMemoryBackend(), codec, logger), noop, nil
	case config.BackendFile:
		b, err := session.NewFileBackend(cfg.SessionPath)
		if err != nil {
			return nil, nil, err
		}
		return session.New(b, codec, logger), noop, nil
	case config.BackendSQLite:
		sqlDB, err := db.Open(filepath.Join(cfg.SessionPath, "session.db"))
		if err != nil {
			return nil, nil, err
		}
		b, err := session.NewSQLiteBackend(sqlDB)
		if err != nil {
			_ = sqlDB.Close()
			return nil, nil, err
		}
		return session.New(b, codec, logger), sqlDB.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
}
