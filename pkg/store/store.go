// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

// Package store persists per-(project, environment) variables in an embedded sqlite database.
package store

import (
	"database/sql"

	"github.com/golang/glog"
	_ "github.com/mattn/go-sqlite3" // sqlite driver
	"github.com/pkg/errors"

	"github.com/pulumi/qwest/pkg/util/contract"
	"github.com/pulumi/qwest/pkg/workspace"
)

const schema = `
PRAGMA journal_mode=WAL;
CREATE TABLE IF NOT EXISTS variables (
    name TEXT NOT NULL,
    env TEXT NOT NULL,
    value TEXT NOT NULL,
    project_name TEXT NOT NULL,
    PRIMARY KEY (project_name, env, name)
);
CREATE INDEX IF NOT EXISTS ix_vars_proj_env ON variables(project_name, env);
`

// Store is a durable map with compound key (project, environment, name).  Each operation opens a fresh
// connection so that concurrent invocations against the same database file do not serialize behind one another;
// WAL mode takes care of write-ahead concurrency.
type Store struct {
	path string
}

// New returns a store backed by the database file at path.  The file is created lazily on first use.
func New(path string) *Store {
	contract.Require(path != "", "path")
	return &Store{path: path}
}

// Open returns a store backed by the default workspace database.
func Open() (*Store, error) {
	path, err := workspace.DatabasePath()
	if err != nil {
		return nil, err
	}
	return New(path), nil
}

func (s *Store) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening variable store %v", s.path)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "initializing variable store %v", s.path)
	}
	return db, nil
}

// Load returns the full variable snapshot for (project, env).  A missing project or environment yields an empty
// map, not an error.
func (s *Store) Load(project, env string) (map[string]string, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(
		"SELECT name, value FROM variables WHERE project_name=? AND env=?", project, env)
	if err != nil {
		return nil, errors.Wrap(err, "loading variables")
	}
	defer rows.Close()

	vars := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, errors.Wrap(err, "loading variables")
		}
		vars[name] = value
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "loading variables")
	}
	glog.V(5).Infof("store.Load(%v, %v): %d variables", project, env, len(vars))
	return vars, nil
}

const upsertStmt = `
INSERT INTO variables (project_name, env, name, value)
VALUES (?, ?, ?, ?)
ON CONFLICT(project_name, env, name)
DO UPDATE SET value=excluded.value
`

// UpsertOne inserts or replaces a single variable; last writer wins on value.
func (s *Store) UpsertOne(project, env, name, value string) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(upsertStmt, project, env, name, value); err != nil {
		return errors.Wrapf(err, "upserting variable %v", name)
	}
	return nil
}

// UpsertMany inserts or replaces every variable in vars inside one transaction: either all rows become visible
// or none does.
func (s *Store) UpsertMany(project, env string, vars map[string]string) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return errors.Wrap(err, "beginning variable commit")
	}
	stmt, err := tx.Prepare(upsertStmt)
	if err != nil {
		tx.Rollback()
		return errors.Wrap(err, "preparing variable commit")
	}
	defer stmt.Close()
	for name, value := range vars {
		if _, err := stmt.Exec(project, env, name, value); err != nil {
			tx.Rollback()
			return errors.Wrapf(err, "upserting variable %v", name)
		}
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "committing variables")
	}
	glog.V(3).Infof("store.UpsertMany(%v, %v): committed %d variables", project, env, len(vars))
	return nil
}

// Delete removes a single variable.  Deleting a nonexistent key is a success.
func (s *Store) Delete(project, env, name string) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(
		"DELETE FROM variables WHERE project_name=? AND env=? AND name=?", project, env, name); err != nil {
		return errors.Wrapf(err, "deleting variable %v", name)
	}
	return nil
}

// Projects returns the distinct project names present in the store, in sorted order.
func (s *Store) Projects() ([]string, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT DISTINCT project_name FROM variables ORDER BY project_name")
	if err != nil {
		return nil, errors.Wrap(err, "listing projects")
	}
	defer rows.Close()

	var projects []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrap(err, "listing projects")
		}
		projects = append(projects, name)
	}
	return projects, rows.Err()
}
