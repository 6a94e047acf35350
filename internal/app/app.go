// Package app holds the application object that owns the contact store and
// task board, and the handlers that turn user actions into status messages.
package app

import (
	"github.com/google/uuid"

	"github.com/jask/tablekeep/internal/config"
	"github.com/jask/tablekeep/internal/logging"
	"github.com/jask/tablekeep/internal/store"
)

// App is constructed once at startup and closed on exit.
type App struct {
	Contacts  *store.ContactStore
	Tasks     *store.TaskBoard
	SessionID string

	cfg config.Config
	log *logging.Logger
}

func New(cfg config.Config, log *logging.Logger) *App {
	if log == nil {
		log = logging.NopLogger()
	}
	id := uuid.NewString()
	return &App{
		Contacts:  store.NewContactStore(),
		Tasks:     store.NewTaskBoard(),
		SessionID: id,
		cfg:       cfg,
		log:       log.WithSession(id),
	}
}

func (a *App) Config() config.Config { return a.cfg }

// Logger returns the session-scoped logger.
func (a *App) Logger() *logging.Logger { return a.log }

// SeedContacts appends contacts.seed through the normal add path. Invalid
// entries are logged and skipped.
func (a *App) SeedContacts() int {
	added := 0
	for i, s := range a.cfg.Contacts.Seed {
		if _, err := a.Contacts.Add(s.Name, s.Phone); err != nil {
			a.log.Warn("skip contact seed", "index", i, "error", err)
			continue
		}
		added++
	}
	if added > 0 {
		a.log.Info("seeded contacts", "count", added)
	}
	return added
}

// SeedTasks appends tasks.seed. An empty status uses tasks.default_status.
func (a *App) SeedTasks() int {
	added := 0
	for i, s := range a.cfg.Tasks.Seed {
		status := a.cfg.DefaultStatus()
		if s.Status != "" {
			parsed, err := store.ParseStatus(s.Status)
			if err != nil {
				a.log.Warn("skip task seed", "index", i, "error", err)
				continue
			}
			status = parsed
		}
		if _, err := a.Tasks.Add(s.Description, status); err != nil {
			a.log.Warn("skip task seed", "index", i, "error", err)
			continue
		}
		added++
	}
	if added > 0 {
		a.log.Info("seeded tasks", "count", added)
	}
	return added
}

// Close flushes the logger.
func (a *App) Close() error {
	a.log.Info("session closed")
	return a.log.Close()
}
