package party

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/KirkDiggler/partyline/internal/models"
	"github.com/KirkDiggler/partyline/internal/repositories/party/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// SQLiteConfig holds configuration for the SQLite party repository
type SQLiteConfig struct {
	// Path of the database file
	Path string
}

// sqliteRepository implements the Repository interface on an embedded SQLite database
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLite opens the database at cfg.Path and applies the embedded schema
func NewSQLite(cfg *SQLiteConfig) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, errors.New("sqlite path cannot be empty")
	}

	dsn := filepath.Clean(cfg.Path) + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	// one writer keeps SQLITE_BUSY away
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}
	if err := applySchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &sqliteRepository{db: db}, nil
}

// Close closes the database handle
func (r *sqliteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func applySchema(db *sql.DB) error {
	files, err := fs.Glob(migrations.FS, "*.sql")
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := fs.ReadFile(migrations.FS, file)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file, err)
		}
		for _, stmt := range strings.Split(string(content), ";") {
			if strings.TrimSpace(stmt) == "" {
				continue
			}
			if _, err := db.Exec(stmt); err != nil {
				return fmt.Errorf("failed to apply migration %s: %w", file, err)
			}
		}
	}
	return nil
}

func (r *sqliteRepository) SaveParty(ctx context.Context, input *SavePartyInput) error {
	if input == nil || input.Party == nil {
		return errors.New("input and party cannot be nil")
	}
	p := input.Party
	if p.ID == "" {
		return errors.New("party ID cannot be empty")
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO parties (id, name, game_kind, status, language, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   name = excluded.name,
		   game_kind = excluded.game_kind,
		   status = excluded.status,
		   language = excluded.language,
		   updated_at = excluded.updated_at`,
		p.ID, p.Name, string(p.GameKind), string(p.Status), p.Language,
		toNanos(p.CreatedAt), toNanos(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to save party: %w", err)
	}
	return nil
}

func (r *sqliteRepository) GetParty(ctx context.Context, input *GetPartyInput) (*models.Party, error) {
	if input == nil || input.PartyID == "" {
		return nil, errors.New("input and party ID cannot be empty")
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, game_kind, status, language, created_at, updated_at
		 FROM parties WHERE id = ?`, input.PartyID)
	party, err := scanParty(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPartyNotFound
		}
		return nil, fmt.Errorf("failed to get party: %w", err)
	}
	return party, nil
}

func (r *sqliteRepository) DeleteParty(ctx context.Context, input *DeletePartyInput) error {
	if input == nil || input.PartyID == "" {
		return errors.New("input and party ID cannot be empty")
	}

	return r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM party_players WHERE party_id = ?`, input.PartyID); err != nil {
			return fmt.Errorf("failed to delete party players: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM parties WHERE id = ?`, input.PartyID); err != nil {
			return fmt.Errorf("failed to delete party: %w", err)
		}
		return nil
	})
}

func (r *sqliteRepository) GetAvailableParties(ctx context.Context, input *GetAvailablePartiesInput) (*GetAvailablePartiesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	query := `SELECT id, name, game_kind, status, language, created_at, updated_at
		 FROM parties WHERE status = ?`
	args := []any{string(models.PartyStatusWaiting)}
	if input.GameKind != "" {
		query += ` AND game_kind = ?`
		args = append(args, string(input.GameKind))
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query available parties: %w", err)
	}
	defer rows.Close()

	parties := []*models.Party{}
	for rows.Next() {
		party, err := scanParty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan party: %w", err)
		}
		parties = append(parties, party)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate parties: %w", err)
	}

	return &GetAvailablePartiesOutput{Parties: parties}, nil
}

func (r *sqliteRepository) AddPlayer(ctx context.Context, input *AddPlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}
	p := input.Player
	if p.PartyID == "" || p.UserID == "" {
		return errors.New("party ID and user ID cannot be empty")
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO party_players (party_id, user_id, role, joined_at) VALUES (?, ?, ?, ?)`,
		p.PartyID, p.UserID, string(p.Role), toNanos(p.JoinedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrPlayerExists
		}
		return fmt.Errorf("failed to add party player: %w", err)
	}
	return nil
}

func (r *sqliteRepository) TransferManager(ctx context.Context, input *TransferManagerInput) error {
	if input == nil || input.PartyID == "" || input.FromUserID == "" || input.ToUserID == "" {
		return errors.New("input, party ID and both user IDs cannot be empty")
	}

	return r.inTx(ctx, func(tx *sql.Tx) error {
		if err := setRole(ctx, tx, input.PartyID, input.FromUserID, models.PartyRolePlayer); err != nil {
			return err
		}
		return setRole(ctx, tx, input.PartyID, input.ToUserID, models.PartyRoleManager)
	})
}

func (r *sqliteRepository) RemovePlayer(ctx context.Context, input *RemovePlayerInput) error {
	if input == nil || input.PartyID == "" || input.UserID == "" {
		return errors.New("input, party ID and user ID cannot be empty")
	}

	return r.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`DELETE FROM party_players WHERE party_id = ? AND user_id = ?`,
			input.PartyID, input.UserID,
		)
		if err != nil {
			return fmt.Errorf("failed to remove party player: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return ErrPlayerNotFound
		}

		if input.Successor == "" {
			return nil
		}
		return setRole(ctx, tx, input.PartyID, input.Successor, models.PartyRoleManager)
	})
}

// inTx runs fn in a transaction, committing only when fn succeeds
func (r *sqliteRepository) inTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func setRole(ctx context.Context, tx *sql.Tx, partyID, userID string, role models.PartyRole) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE party_players SET role = ? WHERE party_id = ? AND user_id = ?`,
		string(role), partyID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update party player: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

func (r *sqliteRepository) GetPlayersByParty(ctx context.Context, input *GetPlayersByPartyInput) (*GetPlayersByPartyOutput, error) {
	if input == nil || input.PartyID == "" {
		return nil, errors.New("input and party ID cannot be empty")
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT party_id, user_id, role, joined_at FROM party_players
		 WHERE party_id = ? ORDER BY joined_at, user_id`, input.PartyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query party players: %w", err)
	}
	defer rows.Close()

	players := []*models.PartyPlayer{}
	for rows.Next() {
		var (
			p        models.PartyPlayer
			role     string
			joinedAt int64
		)
		if err := rows.Scan(&p.PartyID, &p.UserID, &role, &joinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan party player: %w", err)
		}
		p.Role = models.PartyRole(role)
		p.JoinedAt = fromNanos(joinedAt)
		players = append(players, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate party players: %w", err)
	}

	return &GetPlayersByPartyOutput{Players: players}, nil
}

func (r *sqliteRepository) GetActivePartyForUser(ctx context.Context, input *GetActivePartyForUserInput) (*models.Party, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT p.id, p.name, p.game_kind, p.status, p.language, p.created_at, p.updated_at
		 FROM parties p JOIN party_players pp ON pp.party_id = p.id
		 WHERE pp.user_id = ? AND p.status != ?
		 ORDER BY p.id LIMIT 1`,
		input.UserID, string(models.PartyStatusFinished))
	party, err := scanParty(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPartyNotFound
		}
		return nil, fmt.Errorf("failed to get active party: %w", err)
	}
	return party, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanParty(s scanner) (*models.Party, error) {
	var (
		p                    models.Party
		kind, status         string
		createdAt, updatedAt int64
	)
	if err := s.Scan(&p.ID, &p.Name, &kind, &status, &p.Language, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	p.GameKind = models.GameKind(kind)
	p.Status = models.PartyStatus(status)
	p.CreatedAt = fromNanos(createdAt)
	p.UpdatedAt = fromNanos(updatedAt)
	return &p, nil
}

func toNanos(t time.Time) int64 {
	return t.UTC().UnixNano()
}

func fromNanos(n int64) time.Time {
	return time.Unix(0, n).UTC()
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
