package postgres

import (
	"context"
	"fmt"
)

// schemaStatements bootstraps the wagering tables. Idempotent, run at
// startup; production migrations would replace this, but the schema is
// small enough that CREATE IF NOT EXISTS keeps dev and CI simple.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS players (
		id UUID PRIMARY KEY,
		balance BIGINT NOT NULL DEFAULT 0,
		points BIGINT NOT NULL DEFAULT 0,
		tickets BIGINT NOT NULL DEFAULT 0,
		last_free_spin TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bankroll (
		id SMALLINT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
		available_liquidity BIGINT NOT NULL,
		payout_enabled BOOLEAN NOT NULL DEFAULT TRUE,
		max_single_payout BIGINT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS rounds (
		id UUID PRIMARY KEY,
		player_id UUID NOT NULL REFERENCES players(id),
		game TEXT NOT NULL,
		state TEXT NOT NULL,
		stake BIGINT NOT NULL,
		reference_id TEXT NOT NULL,
		server_seed TEXT NOT NULL,
		server_seed_hash TEXT NOT NULL,
		client_seed TEXT NOT NULL,
		mine_count INT NOT NULL DEFAULT 0,
		mine_positions INT[] NOT NULL DEFAULT '{}',
		revealed INT[] NOT NULL DEFAULT '{}',
		multiplier DOUBLE PRECISION NOT NULL DEFAULT 0,
		potential_win BIGINT NOT NULL DEFAULT 0,
		grid TEXT[] NOT NULL DEFAULT '{}',
		catalog JSONB,
		payout BIGINT NOT NULL DEFAULT 0,
		forced BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL,
		settled_at TIMESTAMPTZ
	)`,
	// At most one live round per player per game.
	`CREATE UNIQUE INDEX IF NOT EXISTS rounds_active_per_player
		ON rounds (player_id, game) WHERE state = 'PLAYING'`,
	`CREATE TABLE IF NOT EXISTS slot_symbols (
		id TEXT PRIMARY KEY,
		icon TEXT NOT NULL DEFAULT '',
		label TEXT NOT NULL DEFAULT '',
		multiplier DOUBLE PRECISION NOT NULL,
		frequency INT NOT NULL,
		position INT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS wheel_segments (
		id INT PRIMARY KEY,
		label TEXT NOT NULL DEFAULT '',
		prize_type TEXT NOT NULL,
		value BIGINT NOT NULL DEFAULT 0,
		daily_limit INT NOT NULL DEFAULT 0,
		remaining INT NOT NULL DEFAULT 0,
		position INT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bet_logs (
		key TEXT PRIMARY KEY,
		round_id UUID NOT NULL,
		response_json JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bankroll_ledger (
		id UUID PRIMARY KEY,
		round_id UUID,
		game TEXT NOT NULL DEFAULT '',
		direction TEXT NOT NULL,
		amount BIGINT NOT NULL,
		liquidity_after BIGINT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS bankroll_ledger_created_at
		ON bankroll_ledger (created_at DESC)`,
}

// InitSchema creates the wagering tables if they do not exist.
func InitSchema(ctx context.Context, pool Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}
