package commands

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"tableflip.dev/moodmap/pkg/journal"
	"tableflip.dev/moodmap/pkg/store"
)

// session is the config and storage a single command runs against.
type session struct {
	Config  store.Config
	Blob    store.Blob
	Disk    *store.Disk
	Journal *journal.Store
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}

	if so.Verbose || cfg.Verbose() {
		log.SetLevel(log.DebugLevel)
	}

	s := &session{Config: cfg}
	if so.Ephemeral {
		log.Debug("using an in-memory store")
		s.Blob = store.NewMemory()
	} else {
		d, err := store.Load(cfg)
		if err != nil {
			return nil, err
		}
		s.Disk = d
		s.Blob = d
	}
	s.Journal = journal.Open(ctx, s.Blob, journal.WithKey(cfg.Key()))
	log.WithField("key", cfg.Key()).WithField("entries", s.Journal.Len()).Debug("journal loaded")
	return s, nil
}

func (s *session) disk() (*store.Disk, error) {
	if s.Disk == nil {
		return nil, errors.New("no store on disk, drop --ephemeral")
	}
	return s.Disk, nil
}
