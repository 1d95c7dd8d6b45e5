// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"fmt"

	"github.com/amanKp27/toDoList/internal/domain"
	"github.com/amanKp27/toDoList/internal/infra/config"
	"github.com/amanKp27/toDoList/internal/infra/crypto"
	"github.com/amanKp27/toDoList/internal/infra/filestore"
	"github.com/amanKp27/toDoList/internal/infra/gitstore"
	"github.com/amanKp27/toDoList/internal/infra/logging"
	"github.com/amanKp27/toDoList/internal/infra/memstore"
	"github.com/amanKp27/toDoList/internal/usecase"
)

// Options controls how New wires the container.
type Options struct {
	ConfigPath string // --config file merged over the global config
	Ephemeral  bool   // Use the in-memory slot regardless of config
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Slot          domain.Slot
	Clock         domain.Clock
	Logger        domain.Logger
	ConfigManager domain.ConfigManager

	// Pointer fields
	Config *domain.Config
	Store  *usecase.TaskStore

	closer func() error
}

// New loads configuration and builds the container.
func New(opts Options) (*Container, error) {
	loader := config.NewLoader(opts.ConfigPath)
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.Ephemeral {
		cfg.Storage.Backend = domain.BackendMemory
	}

	slot, err := NewSlot(cfg)
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.Storage.Dir, logging.ParseLevel(cfg.Log.Level))
	for _, w := range cfg.Warnings {
		logger.Warn("config", w)
	}

	c := NewWithDeps(cfg, slot, domain.RealClock{}, logger, config.NewManager(opts.ConfigPath, loader.DataDir()))
	c.closer = logger.Close
	return c, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, slot domain.Slot, clock domain.Clock, logger domain.Logger, configManager domain.ConfigManager) *Container {
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		Slot:          slot,
		Clock:         clock,
		Logger:        logger,
		ConfigManager: configManager,
		Config:        cfg,
		Store:         usecase.NewTaskStore(slot, cfg.Storage.Key, clock, logger),
	}
}

// NewSlot returns the storage slot selected by cfg.Storage.Backend,
// wrapped with encryption when an encryption key is configured.
func NewSlot(cfg *domain.Config) (domain.Slot, error) {
	slot, err := newBackendSlot(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Storage.EncryptionKey == "" {
		return slot, nil
	}
	sealed, err := crypto.NewSlot(slot, cfg.Storage.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("storage encryption: %w", err)
	}
	return sealed, nil
}

func newBackendSlot(cfg *domain.Config) (domain.Slot, error) {
	switch cfg.Storage.Backend {
	case domain.BackendFile:
		if cfg.Storage.Dir == "" {
			return nil, errors.New("file backend: data directory unknown, set [storage] dir")
		}
		return filestore.New(cfg.Storage.Dir), nil
	case domain.BackendGit:
		if cfg.Storage.GitRepo == "" {
			return nil, errors.New("git backend: repository unknown, set [storage] git_repo")
		}
		store, err := gitstore.New(cfg.Storage.GitRepo, cfg.Storage.GitNamespace)
		if err != nil {
			return nil, fmt.Errorf("git backend: %w", err)
		}
		return store, nil
	case domain.BackendMemory:
		return memstore.New(), nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownBackend, cfg.Storage.Backend)
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Store)
}

// ToggleTaskUseCase returns a new ToggleTask use case.
func (c *Container) ToggleTaskUseCase() *usecase.ToggleTask {
	return usecase.NewToggleTask(c.Store)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Store)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Store)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.Config)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
