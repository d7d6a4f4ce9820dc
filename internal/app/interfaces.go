package app

import (
	"github.com/asaskevich/EventBus"
	"github.com/talkincode/grocerstore/config"
	"github.com/talkincode/grocerstore/internal/storage"
	"github.com/talkincode/grocerstore/internal/store"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// StoreProvider provides access to the store facade
type StoreProvider interface {
	Store() *store.Store
}

// RepositoryProvider provides access to snapshot persistence
type RepositoryProvider interface {
	Repository() *storage.Repository
}

// BusProvider provides the process event bus
type BusProvider interface {
	Bus() EventBus.Bus
}

// AppContext combines all provider interfaces for full application context.
// Collaborators should depend on specific providers or this combined
// interface.
type AppContext interface {
	ConfigProvider
	StoreProvider
	RepositoryProvider
	BusProvider

	// Save persists the current store state to the data file.
	Save() error
}
