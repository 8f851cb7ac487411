// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

package spellbook

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/pulumi/qwest/pkg/expand"
	"github.com/pulumi/qwest/pkg/workspace"
)

// ErrNotFound indicates a missing spell-book file.
var ErrNotFound = errors.New("no such spell-book")

// IsNotFound returns true if err indicates a missing spell-book file.
func IsNotFound(err error) bool {
	return errors.Cause(err) == ErrNotFound
}

// bookFile is the on-disk shape of a spell-book.  [[request]] and [[requests]] are accepted as aliases.
type bookFile struct {
	Api      Api       `toml:"api"`
	Request  []Request `toml:"request"`
	Requests []Request `toml:"requests"`
}

// Load reads the spell-book at path, expands ${NAME} placeholders using vars, and parses the result.
func Load(path string, vars map[string]string) (*Book, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNotFound, "%v", path)
		}
		return nil, errors.Wrapf(err, "reading spell-book %v", path)
	}

	expanded := expand.Expand(string(raw), vars)
	glog.V(5).Infof("spellbook.Load: expanded %v with %d variables", path, len(vars))

	var file bookFile
	if _, err := toml.Decode(expanded, &file); err != nil {
		return nil, errors.Wrapf(err, "parsing spell-book %v", path)
	}

	book := &Book{
		Api:      file.Api,
		Requests: append(file.Request, file.Requests...),
	}

	seen := make(map[string]bool)
	for _, req := range book.Requests {
		if seen[req.Name] {
			return nil, errors.Errorf("parsing spell-book %v: duplicate request name '%v'", path, req.Name)
		}
		seen[req.Name] = true
	}

	return book, nil
}

// LoadBook loads the named spell-book from the configuration directory.
func LoadBook(name string, vars map[string]string) (*Book, error) {
	path, err := workspace.BookPath(name)
	if err != nil {
		return nil, err
	}
	return Load(path, vars)
}
