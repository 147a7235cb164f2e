package connection

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"taskapi/store"
)

const defaultDatabasePath = "./data/taskapi.db"

// DBConnection opens the SQLite store at DATABASE_PATH, creating the
// parent directory when needed.
func DBConnection() (*store.Store, error) {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: No .env file found or failed to load") // Use only in dev
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = defaultDatabasePath
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	s, err := store.NewStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	return s, nil
}
