package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/meikuraledutech/automata"
)

// SaveConversion saves a conversion (NFA, DFA states and transitions) in one
// transaction. An empty ID gets an auto-generated UUID, an existing ID is
// replaced. Returns the conversion ID.
func (s *PGStore) SaveConversion(ctx context.Context, c *automata.Conversion) (string, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	nfa, err := json.Marshal(c.NFA)
	if err != nil {
		return "", fmt.Errorf("automata: encode nfa: %w", err)
	}

	alphabet := c.DFA.Alphabet
	if alphabet == nil {
		alphabet = []string{}
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("automata: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// Replace semantics: states and transitions cascade.
	if _, err := tx.Exec(ctx, `DELETE FROM conversions WHERE id = $1`, c.ID); err != nil {
		return "", fmt.Errorf("automata: delete conversion: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO conversions (id, name, nfa, alphabet, created_at) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Name, nfa, alphabet, c.CreatedAt,
	); err != nil {
		return "", fmt.Errorf("automata: insert conversion: %w", err)
	}

	states := c.DFA.StateList()
	stateRows := make([][]any, len(states))
	for i, st := range states {
		stateRows[i] = []any{c.ID, st.Key, i, st.Members, st.Accepting}
	}
	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"dfa_states"},
		[]string{"conversion_id", "key", "ordinal", "members", "accepting"},
		pgx.CopyFromRows(stateRows),
	); err != nil {
		return "", fmt.Errorf("automata: insert states: %w", err)
	}

	edges := c.DFA.Edges()
	edgeRows := make([][]any, len(edges))
	for i, e := range edges {
		edgeRows[i] = []any{c.ID, e.From, e.Symbol, e.To, i}
	}
	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"dfa_transitions"},
		[]string{"conversion_id", "from_key", "symbol", "to_key", "ordinal"},
		pgx.CopyFromRows(edgeRows),
	); err != nil {
		return "", fmt.Errorf("automata: insert transitions: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("automata: commit: %w", err)
	}
	return c.ID, nil
}

// GetConversion retrieves a conversion with its full DFA.
// Returns nil, nil if not found.
func (s *PGStore) GetConversion(ctx context.Context, id string) (*automata.Conversion, error) {
	c := &automata.Conversion{ID: id}
	var (
		nfa      []byte
		alphabet []string
	)
	err := s.db.QueryRow(ctx,
		`SELECT name, nfa, alphabet, created_at FROM conversions WHERE id = $1`, id,
	).Scan(&c.Name, &nfa, &alphabet, &c.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("automata: get conversion: %w", err)
	}
	if err := json.Unmarshal(nfa, &c.NFA); err != nil {
		return nil, fmt.Errorf("automata: decode nfa: %w", err)
	}

	states, err := s.ListStates(ctx, id)
	if err != nil {
		return nil, err
	}
	edges, err := s.ListTransitions(ctx, id)
	if err != nil {
		return nil, err
	}
	c.DFA = *automata.BuildDFA(alphabet, states, edges)
	return c, nil
}

// ListConversions returns every conversion, oldest first. The DFA field is
// left empty; use GetConversion for the full automaton.
func (s *PGStore) ListConversions(ctx context.Context) ([]automata.Conversion, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, nfa, created_at FROM conversions ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("automata: list conversions: %w", err)
	}
	defer rows.Close()

	out := []automata.Conversion{}
	for rows.Next() {
		var (
			c   automata.Conversion
			nfa []byte
		)
		if err := rows.Scan(&c.ID, &c.Name, &nfa, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("automata: scan conversion: %w", err)
		}
		if err := json.Unmarshal(nfa, &c.NFA); err != nil {
			return nil, fmt.Errorf("automata: decode nfa %s: %w", c.ID, err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("automata: rows conversions: %w", err)
	}
	return out, nil
}

// DeleteConversion removes a conversion and its DFA.
// No error if the ID doesn't exist.
func (s *PGStore) DeleteConversion(ctx context.Context, id string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM conversions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("automata: delete conversion: %w", err)
	}
	return nil
}
