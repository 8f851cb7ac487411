// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

package runner

import (
	"github.com/pkg/errors"

	"github.com/pulumi/qwest/pkg/envmap"
	"github.com/pulumi/qwest/pkg/spellbook"
	"github.com/pulumi/qwest/pkg/store"
)

// ErrUnknownSpell indicates that the named request does not exist in the spell-book.
var ErrUnknownSpell = errors.New("no such spell")

// IsUnknownSpell returns true if err indicates a spell name that the book does not contain.
func IsUnknownSpell(err error) bool {
	return errors.Cause(err) == ErrUnknownSpell
}

// HandleRun is the top-level "run spell" operation: it seeds the variable map, loads the spell-book, finds the
// named request and executes it.  The project partition of the variable store is the book name.
func HandleRun(bookName, spellName, envName string) error {
	vars, err := store.Open()
	if err != nil {
		return err
	}
	seed, err := SeedVars(vars, bookName, envName)
	if err != nil {
		return err
	}

	book, err := spellbook.LoadBook(bookName, seed)
	if err != nil {
		return err
	}
	req := book.FindRequest(spellName)
	if req == nil {
		return errors.Wrapf(ErrUnknownSpell, "'%v' in spell-book '%v'", spellName, bookName)
	}

	r, err := New(book.Api, bookName, envName, vars)
	if err != nil {
		return err
	}
	return r.RunSingleRequest(req, seed)
}

// SeedVars builds the seed variable map for one invocation: the store snapshot for (project, env), overlaid by
// the environment loader map.  The environment loader wins on key collisions.
func SeedVars(vars *store.Store, project, env string) (map[string]string, error) {
	seed, err := vars.Load(project, env)
	if err != nil {
		return nil, err
	}
	loaded, err := envmap.Load()
	if err != nil {
		return nil, err
	}
	for k, v := range loaded {
		seed[k] = v
	}
	return seed, nil
}
