// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

package script

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonData(t *testing.T, text string) interface{} {
	var v interface{}
	require.NoError(t, json.Unmarshal([]byte(text), &v))
	return v
}

func intp(i int) *int { return &i }

func TestRunCapturesToken(t *testing.T) {
	senv := &Env{
		Vars:   map[string]string{},
		Status: intp(200),
		Data:   jsonData(t, `{"access_token":"T123"}`),
	}
	err := Run(`env.TOKEN = data.access_token;`, senv)
	require.NoError(t, err)
	assert.Equal(t, "T123", senv.Vars["TOKEN"])
}

func TestRunAssertionFailure(t *testing.T) {
	senv := &Env{
		Vars:   map[string]string{"X": "a"},
		Status: intp(500),
	}
	err := Run(`expect_toEqual(status, 200);`, senv)
	require.Error(t, err)
	assert.True(t, IsAssertion(err))
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "200")
}

func TestRunAssertionSuccess(t *testing.T) {
	senv := &Env{
		Vars:   map[string]string{},
		Status: intp(200),
	}
	require.NoError(t, Run(`expect_toEqual(status, 200);`, senv))
}

func TestRunExpectToEqualStructural(t *testing.T) {
	senv := &Env{
		Vars: map[string]string{},
		Data: jsonData(t, `{"a":[1,2],"b":{"c":"d"}}`),
	}
	require.NoError(t, Run(`expect_toEqual(data, {a:[1,2], b:{c:"d"}});`, senv))

	err := Run(`expect_toEqual(data, {a:[1,2], b:{c:"x"}});`, senv)
	require.Error(t, err)
	assert.True(t, IsAssertion(err))
}

func TestRunExpectToContainString(t *testing.T) {
	senv := &Env{Vars: map[string]string{}}
	require.NoError(t, Run(`expect_toContain("hello world", "lo wo");`, senv))

	err := Run(`expect_toContain("hello world", "mars");`, senv)
	require.Error(t, err)
	assert.True(t, IsAssertion(err))
}

func TestRunExpectToContainSerializesNonStrings(t *testing.T) {
	senv := &Env{
		Vars: map[string]string{},
		Data: jsonData(t, `{"items":[{"id":1}]}`),
	}
	require.NoError(t, Run(`expect_toContain(data, "\"id\":1");`, senv))
}

func TestRunJSONPathFirstMatch(t *testing.T) {
	senv := &Env{
		Vars: map[string]string{},
		Data: jsonData(t, `{"items":[{"id":1},{"id":2}]}`),
	}
	err := Run(`env.FIRST = jsonPath(data, "$.items[0].id").to_string();`, senv)
	require.NoError(t, err)
	assert.Equal(t, "1", senv.Vars["FIRST"])
}

func TestRunJSONPathNoMatch(t *testing.T) {
	senv := &Env{
		Vars: map[string]string{},
		Data: jsonData(t, `{"items":[]}`),
	}
	err := Run(`env.GOT = jsonPath(data, "$.items[0].id") === undefined ? "missing" : "found";`, senv)
	require.NoError(t, err)
	assert.Equal(t, "missing", senv.Vars["GOT"])
}

func TestRunNonStringEnvValuesStringified(t *testing.T) {
	senv := &Env{Vars: map[string]string{}}
	err := Run(`env.N = 7; env.B = true; env.OBJ = {a: 1};`, senv)
	require.NoError(t, err)
	assert.Equal(t, "7", senv.Vars["N"])
	assert.Equal(t, "true", senv.Vars["B"])
	assert.JSONEq(t, `{"a":1}`, senv.Vars["OBJ"])
}

func TestRunEnvDeletionsNotPropagated(t *testing.T) {
	senv := &Env{Vars: map[string]string{"KEEP": "yes", "DROP": "no"}}
	err := Run(`delete env.DROP;`, senv)
	require.NoError(t, err)
	assert.Equal(t, "yes", senv.Vars["KEEP"])
	// The key is gone from the working map; whether it is deleted downstream is the store's concern, and the
	// commit path never issues deletes.
	_, has := senv.Vars["DROP"]
	assert.False(t, has)
}

func TestRunSharedVarsAcrossRuns(t *testing.T) {
	vars := map[string]string{}
	senv := &Env{Vars: vars}
	require.NoError(t, Run(`env.X = "pre";`, senv))

	post := &Env{Vars: vars, Status: intp(200)}
	require.NoError(t, Run(`env.Y = env.X + "-post";`, post))
	assert.Equal(t, "pre", vars["X"])
	assert.Equal(t, "pre-post", vars["Y"])
}

func TestRunSyntaxErrorIsNotAssertion(t *testing.T) {
	senv := &Env{Vars: map[string]string{}}
	err := Run(`this is not javascript`, senv)
	require.Error(t, err)
	assert.False(t, IsAssertion(err))
}

func TestRunStatusAbsentForPreScripts(t *testing.T) {
	senv := &Env{Vars: map[string]string{}}
	err := Run(`env.HAS_STATUS = typeof status === "undefined" ? "no" : "yes";`, senv)
	require.NoError(t, err)
	assert.Equal(t, "no", senv.Vars["HAS_STATUS"])
}

func TestRunHeadersBinding(t *testing.T) {
	senv := &Env{
		Vars:    map[string]string{},
		Status:  intp(200),
		Headers: map[string]string{"Content-Type": "application/json"},
	}
	err := Run(`env.CT = headers["Content-Type"];`, senv)
	require.NoError(t, err)
	assert.Equal(t, "application/json", senv.Vars["CT"])
}
