package postgres

import "context"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS conversions (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL DEFAULT '',
    nfa        JSONB NOT NULL,
    alphabet   TEXT[] NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS dfa_states (
    conversion_id TEXT NOT NULL REFERENCES conversions(id) ON DELETE CASCADE,
    key           TEXT NOT NULL,
    ordinal       INT NOT NULL,
    members       TEXT[] NOT NULL,
    accepting     BOOLEAN NOT NULL DEFAULT FALSE,
    PRIMARY KEY (conversion_id, key)
);

CREATE TABLE IF NOT EXISTS dfa_transitions (
    conversion_id TEXT NOT NULL,
    from_key      TEXT NOT NULL,
    symbol        TEXT NOT NULL,
    to_key        TEXT NOT NULL,
    ordinal       INT NOT NULL,
    PRIMARY KEY (conversion_id, from_key, symbol),
    FOREIGN KEY (conversion_id, from_key) REFERENCES dfa_states(conversion_id, key) ON DELETE CASCADE,
    FOREIGN KEY (conversion_id, to_key)   REFERENCES dfa_states(conversion_id, key) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_dfa_states_conversion      ON dfa_states(conversion_id, ordinal);
CREATE INDEX IF NOT EXISTS idx_dfa_transitions_conversion ON dfa_transitions(conversion_id, ordinal);
`

// CreateSchema creates the conversion tables if they don't exist.
func (s *PGStore) CreateSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, schemaSQL)
	return err
}

// DropSchema drops all conversion tables.
func (s *PGStore) DropSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `DROP TABLE IF EXISTS dfa_transitions, dfa_states, conversions CASCADE;`)
	return err
}
