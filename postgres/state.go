package postgres

import (
	"context"
	"fmt"

	"github.com/meikuraledutech/automata"
)

// ListStates returns the DFA states of a conversion in discovery order.
// Returns an empty slice (not nil) if none found.
func (s *PGStore) ListStates(ctx context.Context, id string) ([]automata.State, error) {
	rows, err := s.db.Query(ctx,
		`SELECT key, members, accepting FROM dfa_states WHERE conversion_id = $1 ORDER BY ordinal`, id)
	if err != nil {
		return nil, fmt.Errorf("automata: list states: %w", err)
	}
	defer rows.Close()

	states := []automata.State{}
	for rows.Next() {
		var st automata.State
		if err := rows.Scan(&st.Key, &st.Members, &st.Accepting); err != nil {
			return nil, fmt.Errorf("automata: scan state: %w", err)
		}
		states = append(states, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("automata: rows states: %w", err)
	}
	return states, nil
}
