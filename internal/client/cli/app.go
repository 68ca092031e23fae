// Package cli implements the interactive client: a small REPL over the
// auth API with a durable local session.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/mpetrashin/tokengate/internal/client/api"
	"github.com/mpetrashin/tokengate/internal/client/config"
	"github.com/mpetrashin/tokengate/internal/client/session"
	"github.com/mpetrashin/tokengate/internal/client/storage"
)

type App struct {
	config  *config.Config
	client  api.Client
	session *session.Store
	reader  *bufio.Reader
	out     io.Writer
	closeDB func() error
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, err
	}

	repo := storage.NewSQLiteRepository(db)
	store, err := session.NewStore(ctx, repo)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &App{
		config:  c,
		client:  api.NewHTTPClient(c.ServerURL),
		session: store,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		closeDB: db.Close,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.closeDB()
	a.Root(ctx)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	u, _ := a.session.CurrentUser(ctx)
	return u != nil
}
