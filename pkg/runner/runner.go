// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

// Package runner executes one spell at a time: pre-script, request build, send, render, post-script, and the
// final atomic variable commit.
package runner

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	neturl "net/url"
	"os"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/pulumi/qwest/pkg/script"
	"github.com/pulumi/qwest/pkg/spellbook"
	"github.com/pulumi/qwest/pkg/store"
	"github.com/pulumi/qwest/pkg/util/contract"
	"github.com/pulumi/qwest/pkg/version"
)

const formContentType = "application/x-www-form-urlencoded"
const maxRedirects = 10

// Runner executes requests against one API with a single HTTP client, sharing a cookie jar across the
// invocation.
type Runner struct {
	client  *http.Client
	vars    *store.Store
	stdout  io.Writer
	project string
	env     string
	baseURL string
}

// New creates a runner for the given API, (project, environment) pair and variable store.
func New(api spellbook.Api, project, env string, vars *store.Store) (*Runner, error) {
	contract.Require(vars != nil, "vars")

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating cookie jar")
	}
	follow := api.FollowRedirects == nil || *api.FollowRedirects
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if !follow {
				return http.ErrUseLastResponse
			}
			if len(via) >= maxRedirects {
				return errors.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}
	if api.TimeoutMS > 0 {
		client.Timeout = time.Duration(api.TimeoutMS) * time.Millisecond
	}

	return &Runner{
		client:  client,
		vars:    vars,
		stdout:  os.Stdout,
		project: project,
		env:     env,
		baseURL: api.BaseURL,
	}, nil
}

// RunSingleRequest drives one request through the full pipeline.  vars is the seed variable map; both scripts
// mutate it in place, and it is committed to the store only when the entire pipeline succeeds.
func (r *Runner) RunSingleRequest(req *spellbook.Request, vars map[string]string) error {
	contract.Require(req != nil, "req")

	senv := &script.Env{Vars: vars, Project: r.project, Env: r.env}

	if req.PreScript != "" {
		if err := script.Run(req.PreScript, senv); err != nil {
			return errors.Wrapf(err, "pre-script for '%v'", req.Name)
		}
	}

	httpReq, err := r.build(req)
	if err != nil {
		return err
	}

	glog.V(3).Infof("runner: sending %v %v", httpReq.Method, httpReq.URL)
	resp, err := r.client.Do(httpReq)
	if err != nil {
		return errors.Wrapf(err, "sending %v %v", httpReq.Method, httpReq.URL)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "reading response body")
	}

	r.render(httpReq, resp, body)

	if code := req.Script(); code != "" {
		senv.Status = &resp.StatusCode
		senv.Headers = flattenHeaders(resp.Header)
		var data interface{}
		if err := json.Unmarshal(body, &data); err == nil {
			senv.Data = data
		}
		if err := script.Run(code, senv); err != nil {
			return errors.Wrapf(err, "post-script for '%v'", req.Name)
		}
	}

	return r.vars.UpsertMany(r.project, r.env, senv.Vars)
}

// build constructs the outgoing HTTP request: URL by plain concatenation, method validated as a token, headers
// in declaration order, and the body branched on the declared content type.
func (r *Runner) build(req *spellbook.Request) (*http.Request, error) {
	if !validMethod(req.Method) {
		return nil, errors.Errorf("invalid HTTP method '%v' in request '%v'", req.Method, req.Name)
	}

	isForm := false
	for _, h := range req.Headers {
		if strings.EqualFold(h.Key, "Content-Type") && strings.EqualFold(strings.TrimSpace(h.Value), formContentType) {
			isForm = true
		}
	}

	var body io.Reader
	jsonBody := false
	if req.Body != nil {
		if isForm {
			obj, ok := req.Body.Object()
			if !ok {
				return nil, errors.Errorf("form-encoded body of request '%v' must be a JSON object", req.Name)
			}
			form := neturl.Values{}
			for k, v := range obj {
				s, _ := v.(string) // non-string values become the empty string
				form.Set(k, s)
			}
			body = strings.NewReader(form.Encode())
		} else {
			b, err := json.Marshal(req.Body.Value)
			if err != nil {
				return nil, errors.Wrapf(err, "serializing body of request '%v'", req.Name)
			}
			body = bytes.NewReader(b)
			jsonBody = true
		}
	}

	url := r.baseURL + req.Path
	if req.Params != nil {
		// Non-object params are ignored; object params are appended blindly, even when the path already
		// carries a query string.
		if obj, ok := req.Params.Object(); ok {
			q := neturl.Values{}
			for k, v := range obj {
				q.Set(k, cast.ToString(v))
			}
			sep := "?"
			if strings.Contains(url, "?") {
				sep = "&"
			}
			url += sep + q.Encode()
		}
	}

	httpReq, err := http.NewRequest(req.Method, url, body)
	if err != nil {
		return nil, errors.Wrapf(err, "building request '%v'", req.Name)
	}
	for _, h := range req.Headers {
		httpReq.Header.Add(h.Key, h.Value)
	}
	if jsonBody && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("User-Agent", "qwest/"+version.Version)
	return httpReq, nil
}

// validMethod reports whether m is a legal HTTP method token per RFC 7230.
func validMethod(m string) bool {
	if m == "" {
		return false
	}
	for _, c := range m {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.ContainsRune("!#$%&'*+-.^_`|~", c):
		default:
			return false
		}
	}
	return true
}

func flattenHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, vs := range h {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}
