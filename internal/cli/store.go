package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/tranquil/internal/keyring"
	"github.com/julianstephens/tranquil/internal/storage"
	"github.com/julianstephens/tranquil/internal/storage/postgres"
	"github.com/julianstephens/tranquil/internal/storage/sqlite"
)

// KeyringConfig selects the connection string stored in the environment or OS keyring.
const KeyringConfig = "keyring"

var userHomeDirFunc = os.UserHomeDir

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := userHomeDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// OpenStore picks a storage backend for config:
//
//	keyring              connection string from TRANQUIL_DB_CONNECTION or the OS keyring
//	postgres://...       PostgreSQL (no embedded password)
//	*.json               single JSON file
//	anything else        SQLite database file
func OpenStore(config string) (storage.Provider, error) {
	if config == KeyringConfig {
		connStr, err := keyring.ResolveConnectionString()
		if err != nil {
			return nil, fmt.Errorf("no connection string available: %w (use 'tranquil keyring set')", err)
		}
		if _, err := postgres.ValidateConnString(connStr); err != nil && !errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return nil, err
		}
		return postgres.New(connStr), nil
	}

	if postgres.IsURL(config) || strings.Contains(config, "host=") {
		if _, err := postgres.ValidateConnString(config); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("%w: store it with 'tranquil keyring set' or use .pgpass", err)
			}
			return nil, err
		}
		return postgres.New(config), nil
	}

	path, err := ExpandHome(config)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return storage.NewJSONStore(path), nil
	}
	return sqlite.NewStore(path), nil
}
