package postgres

import (
	"context"
	"fmt"

	"github.com/meikuraledutech/automata"
)

// ListTransitions returns the DFA transitions of a conversion, ordered by
// source discovery order and then alphabet order.
// Returns an empty slice (not nil) if none found.
func (s *PGStore) ListTransitions(ctx context.Context, id string) ([]automata.Edge, error) {
	rows, err := s.db.Query(ctx,
		`SELECT from_key, symbol, to_key FROM dfa_transitions WHERE conversion_id = $1 ORDER BY ordinal`, id)
	if err != nil {
		return nil, fmt.Errorf("automata: list transitions: %w", err)
	}
	defer rows.Close()

	edges := []automata.Edge{}
	for rows.Next() {
		var e automata.Edge
		if err := rows.Scan(&e.From, &e.Symbol, &e.To); err != nil {
			return nil, fmt.Errorf("automata: scan transition: %w", err)
		}
		edges = append(edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("automata: rows transitions: %w", err)
	}
	return edges, nil
}
