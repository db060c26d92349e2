package automata

import (
	"context"
	"errors"
	"time"
)

var ErrConversionNotFound = errors.New("automata: conversion not found")

// Conversion is a stored NFA together with the DFA built from it.
type Conversion struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	NFA       NFA       `json:"nfa"`
	DFA       DFA       `json:"dfa"`
	CreatedAt time.Time `json:"created_at"`
}

// Store defines the contract for persisting and retrieving conversions.
type Store interface {
	// Schema
	CreateSchema(ctx context.Context) error
	DropSchema(ctx context.Context) error

	// Conversions
	SaveConversion(ctx context.Context, c *Conversion) (string, error)
	GetConversion(ctx context.Context, id string) (*Conversion, error)
	ListConversions(ctx context.Context) ([]Conversion, error)
	DeleteConversion(ctx context.Context, id string) error

	// DFA parts
	ListStates(ctx context.Context, id string) ([]State, error)
	ListTransitions(ctx context.Context, id string) ([]Edge, error)
}
