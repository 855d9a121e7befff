package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"nearest-route-service/internal/adapters/importer"
	"nearest-route-service/internal/adapters/repositories"
	"nearest-route-service/internal/adapters/searchlog"
	"nearest-route-service/internal/api"
	"nearest-route-service/internal/config"
	"nearest-route-service/internal/platform/db"
	"nearest-route-service/internal/ports"
	"nearest-route-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires a storage backend behind the repository ports, optionally imports
// the route dataset on startup, and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	seedPath := config.Get("SEED_PATH", "")
	seedSheet := config.Get("SEED_SHEET", "")

	defaultK, err := strconv.Atoi(config.Get("DEFAULT_K", "5"))
	if err != nil || defaultK < 1 {
		log.Fatal("DEFAULT_K must be a positive integer")
	}

	var (
		conn     *sql.DB
		repo     ports.RouteRepository
		searches ports.SearchLogger
	)

	// Postgres when DATABASE_URL is set, local SQLite otherwise.
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		conn, err = db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		if err := repositories.InitSchemaSQL(conn); err != nil {
			log.Fatal(err)
		}
		repo = repositories.NewSQLRouteRepository(conn)
		searches = searchlog.NewSQLSearchLog(conn)
	} else {
		dbPath := config.Get("DB_PATH", "data/app.db")
		conn, err = openSqlite(dbPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := repositories.InitSchema(conn); err != nil {
			log.Fatal(err)
		}
		repo = repositories.NewSqliteRouteRepository(conn)
		searches = searchlog.NewSqliteSearchLog(conn)
	}
	defer conn.Close()

	// Refresh the dataset on startup when a seed is configured; rows with an
	// unparseable GEO field are dropped and recorded, never fatal.
	if seedPath != "" {
		if err := importDataset(repo, seedPath, seedSheet); err != nil {
			log.Fatal(err)
		}
	}

	router := api.NewRouter(repo, searches, defaultK)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openSqlite(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func importDataset(repo ports.RouteRepository, seedPath, sheet string) error {
	var (
		rows []services.RawRouteRow
		err  error
	)

	switch strings.ToLower(filepath.Ext(seedPath)) {
	case ".xlsx", ".xlsm":
		rows, err = importer.ReadWorkbook(seedPath, sheet)
	case ".json":
		rows, err = importer.ReadSeed(seedPath)
	default:
		return fmt.Errorf("import dataset: unsupported seed format %q", seedPath)
	}
	if err != nil {
		return fmt.Errorf("import dataset: %w", err)
	}

	routes, dropped := services.BuildRoutes(rows)
	if err := repo.ReplaceRoutes(context.Background(), routes, dropped); err != nil {
		return fmt.Errorf("import dataset: %w", err)
	}

	log.Printf("dataset imported rows=%d routes=%d dropped=%d", len(rows), len(routes), len(dropped))
	return nil
}
