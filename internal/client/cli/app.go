// Package cli implements the interactive terminal client: a REPL over the
// platform API with one command flow per page of the original web UI.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/abylaikhan/uniadvisor/internal/client/api"
	"github.com/abylaikhan/uniadvisor/internal/client/config"
	"github.com/abylaikhan/uniadvisor/internal/client/models"
	"github.com/abylaikhan/uniadvisor/internal/client/session"
	"github.com/abylaikhan/uniadvisor/internal/logging"
)

// platformAPI is the command surface the CLI needs from the API client.
// *api.Client satisfies it; tests provide a lightweight fake.
type platformAPI interface {
	IsAuthenticated(ctx context.Context) bool
	Logout(ctx context.Context) error

	Login(ctx context.Context, email, password string) (api.TokenPair, error)
	Register(ctx context.Context, email, password, fullName string) (api.TokenPair, error)
	SendOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, phone, code string) (api.TokenPair, error)
	Me(ctx context.Context) (models.Account, error)
	SaveProfile(ctx context.Context, p models.Profile) error

	ListUniversities(ctx context.Context) ([]models.University, error)
	ListMajors(ctx context.Context, universityID int) ([]models.Major, error)
	Recommend(ctx context.Context, userID, maxResults int) ([]models.University, error)

	CreateApplication(ctx context.Context, userID, universityID, majorID int, notes string) (string, error)
	GetApplication(ctx context.Context, id string) (models.Application, error)
	UploadDocument(ctx context.Context, appID, filename string, file io.Reader, documentType string) (models.Document, error)
	SubmitApplication(ctx context.Context, id string) error
	ListUserApplications(ctx context.Context, userID int, status string) (api.ApplicationsPage, error)
	ListNotifications(ctx context.Context, userID int, unreadOnly bool) (api.NotificationsPage, error)
	MarkNotificationRead(ctx context.Context, notificationID string, userID int) error

	GenerateQuestions(ctx context.Context, categories []string) ([]models.Question, error)
	Evaluate(ctx context.Context, answers []models.Answer) ([]models.Recommendation, error)
	MyResults(ctx context.Context) ([]models.AssessmentResult, error)

	CreateChatSession(ctx context.Context) (string, error)
	ChatFilterOptions(ctx context.Context) (models.FilterOptions, error)
	Chat(ctx context.Context, message, sessionID string, filters models.ChatFilters) (models.ChatReply, error)
	Query(ctx context.Context, message, sessionID string, filters models.ChatFilters) (models.ChatReply, error)
	CompareUniversities(ctx context.Context, ids []int) ([]models.University, error)
}

// userStore is the slice of the session store the CLI uses directly.
type userStore interface {
	AccessToken(ctx context.Context) (string, error)
	SetUserID(ctx context.Context, id int) error
	UserID(ctx context.Context) (int, error)
}

// App wires the REPL, the API client and the session store together.
type App struct {
	config *config.Config
	api    platformAPI
	store  userStore
	log    logging.Logger

	reader *bufio.Reader
	out    io.Writer
	notify *Notifier

	userName string

	// currentApplicationID is the application the tracker commands operate
	// on; it survives command failures so the user can retry.
	currentApplicationID string
	uploadedDocuments    []models.Document

	closeFn func() error
}

// NewApp builds the application from config: opens the session store,
// constructs the API client and the logger.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := session.Open(ctx, cfg.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("initializing session store: %w", err)
	}

	log := buildLogger(cfg)
	out := io.Writer(os.Stdout)

	return &App{
		config:  cfg,
		api:     api.NewClient(cfg.ServerURL, store, log),
		store:   store,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     out,
		notify:  NewNotifier(out),
		closeFn: store.Close,
	}, nil
}

func buildLogger(cfg *config.Config) logging.Logger {
	if cfg.LogPath == "" {
		return logging.NopLogger{}
	}
	f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return logging.NopLogger{}
	}
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	return logging.NewTextLogger(f, level)
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.closeFn != nil {
			_ = a.closeFn()
		}
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.api.IsAuthenticated(ctx)
}

// notificationPollInterval matches the web dashboard's 30s badge refresh.
const notificationPollInterval = 30 * time.Second

// StartNotificationWatcher polls the unread-notification count until ctx is
// cancelled and announces increases between polls. Poll failures are
// silent; the next tick retries.
func (a *App) StartNotificationWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastUnread := -1
	for {
		select {
		case <-ticker.C:
			if !a.isLoggedIn(ctx) {
				lastUnread = -1
				continue
			}

			pollCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			unread, err := a.pollUnread(pollCtx)
			cancel()
			if err != nil {
				continue
			}

			if lastUnread >= 0 && unread > lastUnread {
				a.notify.Info(fmt.Sprintf("You have %d unread notifications (run 'notifications')", unread))
			}
			lastUnread = unread

		case <-ctx.Done():
			return
		}
	}
}

func (a *App) pollUnread(ctx context.Context) (int, error) {
	userID, err := a.userID(ctx)
	if err != nil {
		return 0, err
	}
	page, err := a.api.ListNotifications(ctx, userID, true)
	if err != nil {
		return 0, err
	}
	return page.UnreadCount, nil
}

// userID returns the cached user id, refreshing it from /auth/me when the
// cache is empty.
func (a *App) userID(ctx context.Context) (int, error) {
	id, err := a.store.UserID(ctx)
	if err != nil {
		return 0, err
	}
	if id != 0 {
		return id, nil
	}

	acc, err := a.api.Me(ctx)
	if err != nil {
		return 0, err
	}
	if err := a.store.SetUserID(ctx, acc.User.ID); err != nil {
		return 0, err
	}
	return acc.User.ID, nil
}
