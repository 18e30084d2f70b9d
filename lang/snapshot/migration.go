// File: snapshot/migration.go
package snapshot

import (
	"bytes"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/leolimasa/leolang/internal/serializer"
	"github.com/leolimasa/leolang/lang/lexer"
	"github.com/lib/pq"
	"golang.org/x/crypto/blake2b"
)

// SkippedMessage is returned by ApplySnapshot when the stream is unchanged.
const SkippedMessage = "No changes detected. Snapshot skipped."

// Migrator stores versioned token snapshots of named sources
type Migrator struct {
	DB *sql.DB
}

// NewMigrator creates a new migrator
func NewMigrator(db *sql.DB) *Migrator {
	return &Migrator{DB: db}
}

// Digest returns the hex BLAKE2b-256 digest of data.
func Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// InitializeSchema initializes the database schema
func (m *Migrator) InitializeSchema() error {
	_, err := m.DB.Exec(`
	CREATE TABLE IF NOT EXISTS token_snapshots (
		id SERIAL PRIMARY KEY,
		source TEXT NOT NULL,
		version INT NOT NULL,
		digest TEXT NOT NULL,
		token_kinds TEXT[] NOT NULL,
		tokens JSONB NOT NULL,
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE(source, version)
	);

	CREATE TABLE IF NOT EXISTS snapshot_history (
		id SERIAL PRIMARY KEY,
		source TEXT NOT NULL,
		version INT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		success BOOLEAN NOT NULL,
		errors TEXT,
		diff TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_token_snapshots_source ON token_snapshots(source);
	`)

	return err
}

// GetCurrentVersion gets the latest snapshot version of a source
func (m *Migrator) GetCurrentVersion(source string) (int, error) {
	var version int
	err := m.DB.QueryRow(`
		SELECT COALESCE(MAX(version), 0) FROM token_snapshots WHERE source = $1
	`, source).Scan(&version)
	return version, err
}

// LoadLatest loads the newest token stream stored for a source. It returns
// nil tokens when the source has no snapshot yet.
func (m *Migrator) LoadLatest(source string) ([]lexer.Token, error) {
	var raw []byte
	err := m.DB.QueryRow(`
		SELECT tokens FROM token_snapshots
		WHERE source = $1
		ORDER BY version DESC
		LIMIT 1
	`, source).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return serializer.Decode("json", raw)
}

// ApplySnapshot stores tokens as the next version of source unless they
// match the latest stored version. It returns the rendered diff.
func (m *Migrator) ApplySnapshot(source string, tokens []lexer.Token, description string) (string, error) {
	currentVersion, err := m.GetCurrentVersion(source)
	if err != nil {
		return "", fmt.Errorf("failed to get current version: %w", err)
	}

	current, err := m.LoadLatest(source)
	if err != nil {
		return "", fmt.Errorf("failed to load current snapshot: %w", err)
	}

	diff := Diff(current, tokens)
	diffText := diff.String()

	if currentVersion > 0 && diff.IsEmpty() {
		return SkippedMessage, nil
	}

	newVersion := currentVersion + 1

	var encoded bytes.Buffer
	if err := serializer.Encode("json", tokens, &encoded); err != nil {
		return "", fmt.Errorf("failed to encode tokens: %w", err)
	}

	tx, err := m.DB.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	_, err = tx.Exec(`
		INSERT INTO token_snapshots (source, version, digest, token_kinds, tokens, description)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, source, newVersion, Digest(encoded.Bytes()), pq.Array(TokenKinds(tokens)), encoded.Bytes(), description)
	if err != nil {
		tx.Rollback()
		m.recordHistory(source, newVersion, false, err.Error(), diffText)
		return "", fmt.Errorf("failed to record snapshot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	m.recordHistory(source, newVersion, true, "", diffText)

	return diffText, nil
}

// TokenKinds lists the type name of every token, in order
func TokenKinds(tokens []lexer.Token) []string {
	kinds := make([]string, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Type.String()
	}
	return kinds
}

// recordHistory records snapshot history
func (m *Migrator) recordHistory(source string, version int, success bool, errorMsg string, diff string) {
	_, err := m.DB.Exec(`
		INSERT INTO snapshot_history (source, version, success, errors, diff)
		VALUES ($1, $2, $3, $4, $5)
	`, source, version, success, errorMsg, diff)
	if err != nil {
		slog.Warn("Failed to record snapshot history", "source", source, "version", version, "error", err)
	}
}
