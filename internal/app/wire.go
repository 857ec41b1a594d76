package app

import (
	"io"
	"log"
	"os"

	"swiftdrop/internal/api"
	"swiftdrop/internal/chat"
	"swiftdrop/internal/push"
	"swiftdrop/internal/repo"
	"swiftdrop/internal/store"
	"swiftdrop/internal/tracking"
)

// Wire bundles the store, pipeline clients, repositories, chat relay and
// push bridge for one app process.
type Wire struct {
	Config Config
	Store  *store.FileStore

	Auth     *repo.AuthRepo
	Catalog  *repo.CatalogRepo
	Orders   *repo.OrderRepo
	Delivery *repo.DeliveryRepo
	Admin    *repo.AdminRepo

	Tracker *tracking.Coordinator
	Chat    *chat.Relay
	Bridge  *push.Bridge
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	st, err := store.NewFileStore(cfg.StoreDir())
	if err != nil {
		return nil, err
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.Verbose {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	clients := api.NewClientSet(cfg.BaseURL, st, logger)
	public, authed := clients.Public(), clients.Authed()

	auth := repo.NewAuthRepo(public, authed)
	orders := repo.NewOrderRepo(authed)
	relay := chat.NewRelay(chat.DefaultBuffer, chat.DropOldest)
	notifier := push.NewConsoleNotifier(log.New(os.Stderr, "", log.LstdFlags))

	return &Wire{
		Config:   cfg,
		Store:    st,
		Auth:     auth,
		Catalog:  repo.NewCatalogRepo(authed),
		Orders:   orders,
		Delivery: repo.NewDeliveryRepo(authed),
		Admin:    repo.NewAdminRepo(public, authed),
		Tracker: tracking.New(orders,
			tracking.WithRouteProvider(tracking.StraightLineRoutes{}),
			tracking.WithPollInterval(cfg.PollInterval),
			tracking.WithLogger(logger),
		),
		Chat:   relay,
		Bridge: push.NewBridge(notifier, auth, st, relay, logger),
	}, nil
}
