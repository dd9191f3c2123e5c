package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/fieldassets/fieldassets/internal/client/api"
	"github.com/fieldassets/fieldassets/internal/client/config"
	"github.com/fieldassets/fieldassets/internal/client/models"
	"github.com/fieldassets/fieldassets/internal/client/services"
	"github.com/fieldassets/fieldassets/internal/client/storage"
	"github.com/fieldassets/fieldassets/internal/logging"
)

// App wires the configuration, the API client, the local store and the
// application services behind the interactive commands. One logged-in user
// at a time; their username scopes every local read and write.
type App struct {
	config   *config.Config
	log      logging.Logger
	client   api.Client
	store    *storage.Store
	auth     services.AuthService
	catalog  *services.CatalogService
	syncSvc  *services.SyncService
	requests *services.RequestService
	user     *models.User
	reader   *bufio.Reader
}

// NewApp opens the local store, runs pending migrations and constructs the
// services over one shared API client.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	store, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "opening local store", "error", err)
		return nil, err
	}

	client := api.NewHTTPClient(c.ServerBaseURL, c.HTTPTimeout)

	return &App{
		config:   c,
		log:      log,
		client:   client,
		store:    store,
		auth:     services.NewAuthService(client, log),
		catalog:  services.NewCatalogService(store, log),
		syncSvc:  services.NewSyncService(client, store, c.FetchPacing, log),
		requests: services.NewRequestService(client, log),
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Run drives the interactive loop until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}
