package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dentinhoapp/dentinho/internal/client/config"
	"github.com/dentinhoapp/dentinho/internal/client/remote"
	"github.com/dentinhoapp/dentinho/internal/client/services"
	"github.com/dentinhoapp/dentinho/internal/client/storage"
	"github.com/dentinhoapp/dentinho/internal/filex"
	"github.com/dentinhoapp/dentinho/internal/logging"

	_ "modernc.org/sqlite"
)

// dataDirName is the subdirectory (next to the executable) that holds the
// local database.
const dataDirName = "dentinho"

// App wires the local account and alarm services and the remote clients
// behind the REPL. One instance lives for the whole process.
type App struct {
	config   *config.Config
	db       *sql.DB
	accounts *services.Accounts
	alarms   *services.Alarms
	advice   *remote.AdviceClient
	quiz     *remote.QuizClient
	timeapi  *remote.TimeClient
	images   *remote.ImagesClient

	session *services.Session
	reader  *bufio.Reader
	out     io.Writer
	confirm Confirmer
	log     logging.Logger
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	dir, err := filex.EnsureSubDir(dataDirName)
	if err != nil {
		return nil, err
	}

	db, err := storage.InitDatabase(ctx, filepath.Join(dir, c.DatabaseDSN))
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	reader := bufio.NewReader(os.Stdin)

	return &App{
		config:   c,
		db:       db,
		accounts: services.NewAccounts(db, logger),
		alarms:   services.NewAlarms(storage.NewSQLiteStore(db), logger),
		advice:   remote.NewAdviceClient(c.AdviceBaseURL, c.RequestTimeout),
		quiz:     remote.NewQuizClient(c.QuizBaseURL, c.RequestTimeout),
		timeapi:  remote.NewTimeClient(c.TimeBaseURL, c.RequestTimeout),
		images:   remote.NewImagesClient(c.AdviceBaseURL, c.RequestTimeout),
		reader:   reader,
		out:      os.Stdout,
		confirm:  NewTerminalConfirmer(reader, os.Stdout),
		log:      logger,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	name := a.session.Username
	if name == "" {
		name = a.session.Email
	}
	return fmt.Sprintf("(%s)", name)
}

// printf writes a user-facing line to the App output.
func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format+"\n", args...)
}
