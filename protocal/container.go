package protocal

import (
	"fmt"
	"strings"

	"ai-anywhere/configs"
	"ai-anywhere/internal/adapters/output/gormstore"
	"ai-anywhere/internal/adapters/output/media"
	"ai-anywhere/internal/adapters/output/memory"
	"ai-anywhere/internal/adapters/output/openai"
	"ai-anywhere/internal/adapters/output/settings"
	"ai-anywhere/internal/application"
	"ai-anywhere/internal/ports/output"
	gormdriver "ai-anywhere/pkg/database_driver/gorm"

	"github.com/sirupsen/logrus"
	gormio "gorm.io/gorm"
)

const driverMemory = "memory"

// container holds the wired application services
type container struct {
	db         *gormdriver.DB
	operations *application.OperationService
	tasks      *application.CustomTaskService
	history    *application.HistoryService
}

// gorm returns the open connection, nil for the memory driver
func (c *container) gorm() *gormio.DB {
	if c.db == nil {
		return nil
	}
	return c.db.Conn
}

func (c *container) close() {
	if c.db != nil {
		gormdriver.Disconnect(c.db.Conn)
	}
}

func setupLogging(app configs.App) {
	if app.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if app.Env == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

func openDatabase(cfg configs.Database) (*gormdriver.DB, error) {
	switch strings.ToLower(cfg.Driver) {
	case gormdriver.DriverPostgres:
		return gormdriver.ConnectToPostgreSQL(cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.DbName, cfg.SSLMode)
	case gormdriver.DriverSQLite, "":
		return gormdriver.ConnectToSQLite(cfg.Path)
	case driverMemory:
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// bootstrap loads the configuration and wires the hexagonal layers
func bootstrap(env string) (*container, error) {
	configs.InitViper("./configs", env)
	cfg := configs.GetViper()
	setupLogging(cfg.App)
	logrus.Info(cfg.App.Env)

	db, err := openDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	// Output adapters (repositories)
	var (
		taskRepo    output.CustomTaskRepository
		historyRepo output.HistoryRepository
	)
	if db == nil {
		logrus.Warn("Database driver is memory, custom tasks and history are not persisted")
		taskRepo = memory.NewCustomTaskStore()
		historyRepo = memory.NewHistoryStore()
	} else {
		taskRepo = gormstore.NewCustomTaskRepository(db.Conn)
		historyRepo = gormstore.NewHistoryRepository(db.Conn)
	}

	files, err := media.NewFileStore(cfg.History.MediaDir)
	if err != nil {
		if db != nil {
			gormdriver.Disconnect(db.Conn)
		}
		return nil, err
	}
	provider := openai.NewClientAdapter(cfg.Provider)
	viperSettings := settings.NewViperSettings()

	// Application services (use cases)
	return &container{
		db:         db,
		operations: application.NewOperationService(provider, viperSettings, viperSettings, taskRepo, files),
		tasks:      application.NewCustomTaskService(taskRepo),
		history:    application.NewHistoryService(historyRepo, files, cfg.History.Limit, cfg.History.MediaRetentionDays),
	}, nil
}
