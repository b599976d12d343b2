package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"

	"utr/internal/config"
)

// DatabaseManager manages the run history database
type DatabaseManager struct {
	config *config.Config
}

// NewDatabaseManager creates a new DatabaseManager
func NewDatabaseManager(cfg *config.Config) *DatabaseManager {
	return &DatabaseManager{config: cfg}
}

// Open connects to the MySQL server and ensures the history database and
// table exist. The returned handle is scoped to the history database.
func (dm *DatabaseManager) Open() (*sql.DB, error) {
	// Load .env file from project directory
	envPath := filepath.Join(dm.config.ProjectPath, ".env")
	if err := godotenv.Load(envPath); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "127.0.0.1"
	}
	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "3306"
	}
	dbUser := os.Getenv("DB_USERNAME")
	if dbUser == "" {
		dbUser = "root"
	}
	dbPassword := os.Getenv("DB_PASSWORD")

	dbName := dm.DatabaseName()
	if !isValidDatabaseName(dbName) {
		return nil, fmt.Errorf("invalid history database name: %s", dbName)
	}

	// Connect to MySQL server (without specifying database)
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/", dbUser, dbPassword, dbHost, dbPort)
	server, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database server: %w", err)
	}
	defer server.Close()

	if err := server.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database server: %w", err)
	}

	if _, err := server.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", dbName)); err != nil {
		return nil, fmt.Errorf("failed to create history database %s: %w", dbName, err)
	}

	db, err := sql.Open("mysql", dsn+dbName)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database %s: %w", dbName, err)
	}
	if err := dm.ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// DatabaseName returns the history database name, from the environment or
// the default.
func (dm *DatabaseManager) DatabaseName() string {
	name := os.Getenv("HISTORY_DATABASE")
	if name == "" {
		name = "utr_history"
	}
	return name
}

// ensureSchema creates the runs table if it does not exist.
func (dm *DatabaseManager) ensureSchema(db *sql.DB) error {
	const schema = `CREATE TABLE IF NOT EXISTS runs (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		recorded_at VARCHAR(64) NOT NULL,
		total_cases INT NOT NULL,
		passed_cases INT NOT NULL,
		failed_cases INT NOT NULL,
		duration_seconds DOUBLE NOT NULL,
		workers INT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create runs table: %w", err)
	}
	return nil
}

// isValidDatabaseName validates database name (basic check)
func isValidDatabaseName(name string) bool {
	if len(name) == 0 || len(name) > 64 {
		return false
	}
	// Check for SQL injection patterns
	invalidChars := []string{"'", "\"", ";", "--", "/*", "*/", "DROP", "DELETE", "TRUNCATE", "`"}
	upperName := strings.ToUpper(name)
	for _, char := range invalidChars {
		if strings.Contains(upperName, char) {
			return false
		}
	}
	return true
}
