// Package uuidgen provides random booking identifiers. It exists as its own
// type so the workflow can swap in a deterministic generator in tests.
package uuidgen

import "github.com/google/uuid"

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

func (g *Generator) NewID() string {
	return uuid.NewString()
}
