package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/miskazdrowia/shop-backend/internal/apilo"
	"github.com/miskazdrowia/shop-backend/internal/catalog"
	"github.com/miskazdrowia/shop-backend/internal/config"
	"github.com/miskazdrowia/shop-backend/internal/feed"
)

// main wires the configured feed source into the catalog service and starts
// the HTTP server.
func main() {
	_ = godotenv.Load()
	setupLogging()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	source, err := buildSource(cfg)
	if err != nil {
		log.Fatalf("Failed to configure feed source: %v", err)
	}

	handler := catalog.NewHandler(catalog.NewService(source))

	app := fiber.New()
	setupCORS(app)
	handler.RegisterPublicRoutes(app)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Infof("starting catalog server on %s (feed mode %q)", addr, cfg.Feed.Mode)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func buildSource(cfg *config.Config) (feed.Source, error) {
	timeout := time.Duration(cfg.Feed.Timeout) * time.Second

	switch cfg.Feed.Mode {
	case "apilo":
		if cfg.Apilo.BaseURL == "" {
			return nil, fmt.Errorf("apilo.base_url is required in apilo mode")
		}
		return apilo.New(apilo.Config{
			BaseURL:      cfg.Apilo.BaseURL,
			ClientID:     cfg.Apilo.ClientID,
			ClientSecret: cfg.Apilo.ClientSecret,
			AuthCode:     cfg.Apilo.AuthCode,
			RefreshToken: cfg.Apilo.RefreshToken,
			PageLimit:    cfg.Apilo.PageLimit,
		}, timeout), nil
	case "dual":
		if cfg.Feed.CatalogURL == "" || cfg.Feed.StockURL == "" {
			return nil, fmt.Errorf("feed.catalog_url and feed.stock_url are required in dual mode")
		}
		return feed.NewDualSource(feed.NewClient(timeout), cfg.Feed.CatalogURL, cfg.Feed.StockURL), nil
	case "xml", "":
		if cfg.Feed.CatalogURL == "" {
			return nil, fmt.Errorf("feed.catalog_url is required in xml mode")
		}
		return feed.NewXMLSource(feed.NewClient(timeout), cfg.Feed.CatalogURL), nil
	default:
		return nil, fmt.Errorf("unknown feed mode %q", cfg.Feed.Mode)
	}
}

func setupLogging() {
	if lvl, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}
