// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulumi/qwest/pkg/store"
)

func newTestServer(t *testing.T) (*httptest.Server, *store.Store) {
	st := store.New(filepath.Join(t.TempDir(), "qwest.sqlite"))
	srv := httptest.NewServer(New(st).Handler())
	t.Cleanup(srv.Close)
	return srv, st
}

func getJSON(t *testing.T, url string, out interface{}) {
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestGetProjects(t *testing.T) {
	srv, st := newTestServer(t)
	require.NoError(t, st.UpsertOne("beta", "default", "X", "1"))
	require.NoError(t, st.UpsertOne("alpha", "default", "Y", "2"))

	var projects []string
	getJSON(t, srv.URL+"/projects", &projects)
	assert.Equal(t, []string{"alpha", "beta"}, projects)
}

func TestGetProjectsEmpty(t *testing.T) {
	srv, _ := newTestServer(t)
	var projects []string
	getJSON(t, srv.URL+"/projects", &projects)
	assert.Empty(t, projects)
}

func TestGetVariables(t *testing.T) {
	srv, st := newTestServer(t)
	require.NoError(t, st.UpsertOne("proj", "default", "TOKEN", "T123"))
	require.NoError(t, st.UpsertOne("proj", "prod", "TOKEN", "P999"))

	var vars []variable
	getJSON(t, srv.URL+"/projects/proj/variables", &vars)
	require.Len(t, vars, 1)
	assert.Equal(t, variable{Name: "TOKEN", Value: "T123", Env: "default"}, vars[0])

	getJSON(t, srv.URL+"/projects/proj/variables?env=prod", &vars)
	require.Len(t, vars, 1)
	assert.Equal(t, "P999", vars[0].Value)
}
