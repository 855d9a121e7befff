package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"nearest-route-service/internal/adapters/importer"
	"nearest-route-service/internal/adapters/repositories"
	"nearest-route-service/internal/config"
	"nearest-route-service/internal/platform/db"
	"nearest-route-service/internal/ports"
	"nearest-route-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// dbtool initializes the schema and imports a route dataset offline, then
// prints the import report: every dropped row with its raw GEO field and
// the reason it failed to parse.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	seedPath := config.Get("SEED_PATH", "")
	if len(os.Args) > 1 {
		seedPath = os.Args[1]
	}
	if strings.TrimSpace(seedPath) == "" {
		log.Fatal("SEED_PATH (or a path argument) is required")
	}

	var (
		conn *sql.DB
		repo ports.RouteRepository
		err  error
	)

	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		conn, err = db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		log.Println("Initializing postgres schema...")
		if err := repositories.InitSchemaSQL(conn); err != nil {
			log.Fatalf("schema initialization failed: %v", err)
		}
		repo = repositories.NewSQLRouteRepository(conn)
	} else {
		dbPath := config.Get("DB_PATH", "data/app.db")
		conn, err = openSqlite(dbPath)
		if err != nil {
			log.Fatal(err)
		}
		log.Println("Initializing sqlite schema...")
		if err := repositories.InitSchema(conn); err != nil {
			log.Fatalf("schema initialization failed: %v", err)
		}
		repo = repositories.NewSqliteRouteRepository(conn)
	}
	defer conn.Close()
	log.Println("Schema ready.")

	var rows []services.RawRouteRow
	switch strings.ToLower(filepath.Ext(seedPath)) {
	case ".xlsx", ".xlsm":
		rows, err = importer.ReadWorkbook(seedPath, config.Get("SEED_SHEET", ""))
	case ".json":
		rows, err = importer.ReadSeed(seedPath)
	default:
		log.Fatalf("unsupported seed format %q", seedPath)
	}
	if err != nil {
		log.Fatalf("reading seed failed: %v", err)
	}

	routes, dropped := services.BuildRoutes(rows)
	if err := repo.ReplaceRoutes(context.Background(), routes, dropped); err != nil {
		log.Fatalf("import failed: %v", err)
	}

	log.Printf("Import complete. rows=%d routes=%d dropped=%d", len(rows), len(routes), len(dropped))
	for _, d := range dropped {
		log.Printf("dropped geo=%q reason=%q", d.Raw, d.Reason)
	}
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
