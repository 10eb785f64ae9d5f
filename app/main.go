package main

import (
	"log/slog"
	"os"

	"github.com/sushihentaime/bloglist/internal/blogservice"
	"github.com/sushihentaime/bloglist/internal/userservice"
)

type application struct {
	config      *Config
	logger      *slog.Logger
	blogService *blogservice.BlogService
	userService *userservice.UserService // no routes yet, shares the blogs backend
	metrics     *metrics
}

func main() {
	// Initialize the logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load the configuration
	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = ".env"
	}

	cfg, err := loadConfig(path)
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Open the blog and user stores
	stores, closeStores, err := openStores(cfg)
	if err != nil {
		logger.Error("failed to open the stores", slog.String("driver", cfg.StoreDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := closeStores(); err != nil {
			logger.Error("failed to close the stores", slog.String("error", err.Error()))
		}
	}()

	logger.Info("connected to stores", slog.String("driver", cfg.StoreDriver))

	app := &application{
		config:      cfg,
		logger:      logger,
		blogService: blogservice.NewBlogService(stores.blogs),
		userService: userservice.NewUserService(stores.users),
		metrics:     newMetrics(),
	}

	// Start the HTTP server
	err = app.serve(cfg.Port)
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
