package app

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"

	"github.com/andy/clienthub/internal/config"
	"github.com/andy/clienthub/internal/crypto"
	"github.com/andy/clienthub/internal/db"
	"github.com/andy/clienthub/internal/registry"
	"github.com/andy/clienthub/internal/storage"
)

// App is the dependency injection container for all application components
type App struct {
	Config *config.Config
	DB     *db.DB // nil when the JSON backend is active

	Store    storage.Store
	Registry *registry.Registry
	View     *registry.View

	// LoadWarning is set when the data file existed but could not be read;
	// the app starts with an empty registry and surfaces this to the user.
	LoadWarning string
}

// New creates a new App instance, initializing all dependencies
// It handles:
// 1. Loading config
// 2. Opening the configured storage backend
// 3. Loading clients into the registry
func New(ctx context.Context) (*App, error) {
	// Load config from default path
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// First run: write the defaults out so users have a file to edit
	if err := writeConfigIfMissing(cfg, config.DefaultConfigPath()); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not write default config: %v\n", err)
	}

	return NewWithConfig(ctx, cfg)
}

// writeConfigIfMissing persists cfg to path when no config file exists yet.
func writeConfigIfMissing(cfg *config.Config, path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return cfg.Save(path)
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(ctx context.Context, cfg *config.Config) (*App, error) {
	// Ensure all necessary directories exist
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	a := &App{Config: cfg}

	switch cfg.Storage.Backend {
	case config.BackendEncrypted:
		database, err := openEncrypted(cfg)
		if err != nil {
			return nil, err
		}
		a.DB = database
		a.Store = storage.NewSQLiteStore(database)
	default:
		a.Store = storage.NewJSONStore(cfg.Storage.DataPath)
	}

	a.Registry = registry.New()
	a.View = registry.NewView(a.Registry)

	// Load existing clients. Unreadable or invalid data is not fatal: the
	// app starts with an empty registry and reports the problem once.
	clients, err := a.Store.Load(ctx)
	if err != nil {
		a.LoadWarning = fmt.Sprintf("Could not load saved clients, starting empty: %v", err)
	} else if err := a.Registry.ReplaceAll(clients); err != nil {
		a.LoadWarning = fmt.Sprintf("Saved data contains duplicate clients, starting empty: %v", err)
	}

	return a, nil
}

// Save persists the current registry contents through the active backend.
func (a *App) Save(ctx context.Context) error {
	return a.Store.Save(ctx, a.Registry.Clients())
}

// Close cleanly shuts down the application
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

// openEncrypted gets the encryption key from the keyring (prompting on first
// run), opens the database, and brings the schema up to date.
func openEncrypted(cfg *config.Config) (*db.DB, error) {
	keyring := crypto.NewKeyring()
	if !keyring.IsAvailable() {
		fmt.Println("Warning: no usable keyring found; the encryption key cannot be stored securely.")
	}

	password, err := keyring.GetKey()
	if err != nil {
		// No key exists, prompt user to set one
		fmt.Println("Setting up database encryption for the first time...")
		password, err = promptForPassword()
		if err != nil {
			return nil, fmt.Errorf("failed to set password: %w", err)
		}

		if err := keyring.SetKey(password); err != nil {
			return nil, fmt.Errorf("failed to store encryption key: %w", err)
		}
	}

	database, err := db.Open(cfg.Storage.DBPath, password)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := database.RunMigrations(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return database, nil
}

// promptForPassword prompts user for a new database password (first run)
// This should be called when keyring has no stored key
func promptForPassword() (string, error) {
	fmt.Println()
	fmt.Println("Your client data will be encrypted with a password.")
	fmt.Println("This password will be stored securely in your system keyring.")
	fmt.Println()
	fmt.Print("Enter a password for database encryption: ")

	// Read password securely (no echo)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // New line after password input
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if len(password) == 0 {
		return "", fmt.Errorf("password cannot be empty")
	}

	// Confirm password
	fmt.Print("Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // New line after confirmation
	if err != nil {
		return "", fmt.Errorf("failed to read confirmation: %w", err)
	}

	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}

	fmt.Println()
	fmt.Println("✓ Database encryption configured successfully")
	fmt.Println()

	return string(password), nil
}
