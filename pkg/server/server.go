// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

// Package server exposes a small read-only HTTP API over the variable store, mirroring the companion service
// the share feature talks to.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/golang/glog"
	"github.com/gorilla/mux"

	"github.com/pulumi/qwest/pkg/store"
)

// Server serves the variable store over HTTP.
type Server struct {
	vars *store.Store
}

// New creates a server over the given store.
func New(vars *store.Store) *Server {
	return &Server{vars: vars}
}

// Handler returns the routing handler for the API.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/projects", s.getProjects).Methods(http.MethodGet)
	r.HandleFunc("/projects/{project}/variables", s.getVariables).Methods(http.MethodGet)
	return r
}

// ListenAndServe blocks, serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	glog.Infof("server: listening on %v", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// variable is the wire shape of one stored variable.
type variable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Env   string `json:"env"`
}

func (s *Server) getProjects(w http.ResponseWriter, req *http.Request) {
	projects, err := s.vars.Projects()
	if err != nil {
		serveError(w, err)
		return
	}
	if projects == nil {
		projects = []string{}
	}
	serveJSON(w, projects)
}

func (s *Server) getVariables(w http.ResponseWriter, req *http.Request) {
	project := mux.Vars(req)["project"]
	env := req.URL.Query().Get("env")
	if env == "" {
		env = "default"
	}
	vars, err := s.vars.Load(project, env)
	if err != nil {
		serveError(w, err)
		return
	}
	out := make([]variable, 0, len(vars))
	for name, value := range vars {
		out = append(out, variable{Name: name, Value: value, Env: env})
	}
	serveJSON(w, out)
}

func serveJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		glog.Errorf("server: encoding response: %v", err)
	}
}

func serveError(w http.ResponseWriter, err error) {
	glog.Errorf("server: %v", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
