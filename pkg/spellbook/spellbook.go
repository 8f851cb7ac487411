// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

// Package spellbook loads and models spell-book files: TOML documents describing one API and its named requests.
package spellbook

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Book is a parsed spell-book: API metadata plus an ordered list of requests.  It is immutable once loaded.
type Book struct {
	Api      Api
	Requests []Request
}

// Api carries the book-level metadata.
type Api struct {
	Name            string `toml:"name"`
	Description     string `toml:"description"`
	BaseURL         string `toml:"base_url"`
	TimeoutMS       int64  `toml:"timeout_ms"`
	FollowRedirects *bool  `toml:"follow_redirects"`
}

// Header is a single HTTP header pair; declaration order in the book is preserved.
type Header struct {
	Key   string `toml:"key"`
	Value string `toml:"value"`
}

// Request is one named HTTP operation inside a book.
type Request struct {
	Name       string     `toml:"name"`
	Method     string     `toml:"method"`
	Path       string     `toml:"path"`
	Headers    []Header   `toml:"header"`
	Body       *JSONValue `toml:"body"`
	Params     *JSONValue `toml:"params"`
	PreScript  string     `toml:"pre_script"`
	TestScript string     `toml:"test_script"`
	Spell      string     `toml:"spell"`
}

// Script returns the post-script source for the request.  test_script and spell are aliases; test_script wins
// when both are present.
func (r *Request) Script() string {
	if r.TestScript != "" {
		return r.TestScript
	}
	return r.Spell
}

// JSONValue is a structured JSON value that the spell-book encodes as a string containing JSON text.
type JSONValue struct {
	Value interface{}
}

// UnmarshalTOML decodes the source-level string into a structured JSON value.  Malformed JSON is a load-time
// error.
func (v *JSONValue) UnmarshalTOML(data interface{}) error {
	s, ok := data.(string)
	if !ok {
		return errors.Errorf("expected a string containing JSON, got %T", data)
	}
	if err := json.Unmarshal([]byte(s), &v.Value); err != nil {
		return errors.Wrap(err, "embedded JSON is malformed")
	}
	return nil
}

// Object returns the value as a JSON object, or nil and false when the value has any other shape.
func (v *JSONValue) Object() (map[string]interface{}, bool) {
	if v == nil {
		return nil, false
	}
	obj, ok := v.Value.(map[string]interface{})
	return obj, ok
}

// FindRequest returns the request with the given name, or nil if the book has none.  Lookup is case-sensitive.
func (b *Book) FindRequest(name string) *Request {
	for i := range b.Requests {
		if b.Requests[i].Name == name {
			return &b.Requests[i]
		}
	}
	return nil
}
