package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meikuraledutech/automata"
	"github.com/meikuraledutech/automata/graph"
	"github.com/meikuraledutech/automata/memory"
	"github.com/meikuraledutech/automata/postgres"
)

func main() {
	ctx := context.Background()

	// Wire up postgres when available, memory otherwise.
	var store automata.Store = memory.New()
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		pool, err := pgxpool.New(ctx, dbURL)
		if err != nil {
			log.Fatalf("connect: %v", err)
		}
		defer pool.Close()
		store = postgres.New(pool)
	}

	if err := store.CreateSchema(ctx); err != nil {
		log.Fatalf("schema: %v", err)
	}

	// ── Parse the NFA from form text ─────────────────────────────────
	nfa, err := automata.ParseNFA(automata.FormInput{
		States:   "q0, q1, q2",
		Alphabet: "a, b",
		Transitions: `
			q0 a -> q0, q1
			q0 b -> q0
			q1 a -> q2
		`,
		Start:  "q0",
		Accept: "q2",
	})
	if err != nil {
		log.Fatalf("parse: %v", err)
	}

	// ── Convert ──────────────────────────────────────────────────────
	dfa, err := automata.Convert(nfa)
	if err != nil {
		log.Fatalf("convert: %v", err)
	}
	fmt.Println("dfa:")
	printJSON(dfa)

	// ── Persist and read back ────────────────────────────────────────
	id, err := store.SaveConversion(ctx, &automata.Conversion{Name: "ends-in-aa", NFA: *nfa, DFA: *dfa})
	if err != nil {
		log.Fatalf("save: %v", err)
	}
	edges, err := store.ListTransitions(ctx, id)
	if err != nil {
		log.Fatalf("transitions: %v", err)
	}
	fmt.Printf("\ntransitions (%d):\n", len(edges))
	for _, e := range edges {
		fmt.Printf("  %s -%s-> %s\n", e.From, e.Symbol, e.To)
	}

	// ── Run some words ───────────────────────────────────────────────
	for _, w := range [][]string{{"a", "a"}, {"b", "a", "a", "b"}, {"b", "a", "a"}} {
		fmt.Printf("%v accepted: %t\n", w, dfa.Accepts(w))
	}

	fmt.Println("\ndot:")
	fmt.Println(graph.DOT(graph.FromDFA(dfa)))

	if err := store.DeleteConversion(ctx, id); err != nil {
		log.Fatalf("delete: %v", err)
	}
}

func printJSON(v any) {
	out, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(out))
}
