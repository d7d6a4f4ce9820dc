package app

import (
	"os"
	"time"
	_ "time/tzdata"

	"github.com/asaskevich/EventBus"
	"github.com/talkincode/grocerstore/config"
	"github.com/talkincode/grocerstore/internal/audit"
	"github.com/talkincode/grocerstore/internal/storage"
	"github.com/talkincode/grocerstore/internal/store"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Application owns the process-wide singletons: configuration, the event
// bus, the snapshot repository and the one Store instance. It is constructed
// once in main and passed by reference to collaborators.
type Application struct {
	appConfig *config.AppConfig
	repo      *storage.Repository
	bus       EventBus.Bus
	store     *store.Store
	audit     *audit.Recorder
}

// Ensure Application implements all interfaces
var (
	_ ConfigProvider     = (*Application)(nil)
	_ StoreProvider      = (*Application)(nil)
	_ RepositoryProvider = (*Application)(nil)
	_ BusProvider        = (*Application)(nil)
	_ AppContext         = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Store() *store.Store {
	return a.store
}

func (a *Application) Repository() *storage.Repository {
	return a.repo
}

func (a *Application) Bus() EventBus.Bus {
	return a.bus
}

func (a *Application) Init() error {
	cfg := a.appConfig

	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	// Initialize zap logger
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	// Build logger with file rotation if enabled
	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stderr),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)

	a.bus = EventBus.New()
	a.audit, err = audit.Attach(a.bus)
	if err != nil {
		return err
	}

	a.repo = storage.NewRepository(cfg.StorePath())
	a.store = store.NewWithBus(a.bus)

	// Load the saved store if one exists. A load failure is reported and
	// the in-memory store stays empty; the saved file is left untouched.
	snap, found, err := a.repo.Load()
	if err != nil {
		zap.S().Errorf("failed to load store data: %v", err)
		return nil
	}
	if found {
		if err := a.store.Restore(snap); err != nil {
			zap.S().Errorf("failed to restore store data: %v", err)
			return nil
		}
		zap.S().Infof("store data loaded from %s", a.repo.Path())
	} else {
		zap.S().Infof("no store data at %s, starting empty", a.repo.Path())
	}
	return nil
}

// Save persists the current store state.
func (a *Application) Save() error {
	return a.repo.Save(a.store.Snapshot())
}

// Release releases application resources
func (a *Application) Release() {
	_ = zap.L().Sync()
}
