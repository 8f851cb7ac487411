// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

// Package script embeds the JavaScript runtime that pre- and post-scripts execute in.  The host exposes the
// mutable variable map as `env`, the response as `status`/`headers`/`data`, and a small set of assertion and
// query functions.
package script

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/dop251/goja"
	"github.com/golang/glog"
	"github.com/ohler55/ojg/jp"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// Env is the evaluation context for one script run.  Vars is shared by reference between the pre- and
// post-script of a request; Status, Headers and Data are populated for post-scripts only.
type Env struct {
	Vars    map[string]string
	Status  *int
	Headers map[string]string
	Data    interface{}
	Project string
	Env     string
}

// AssertionError indicates that an expect_* host function failed.  It is distinguished from other script
// errors so that callers (and tests) can match on it.
type AssertionError struct {
	msg string
}

func (e *AssertionError) Error() string { return e.msg }

// IsAssertion returns true if err was caused by a failed expect_* assertion.
func IsAssertion(err error) bool {
	_, ok := errors.Cause(err).(*AssertionError)
	return ok
}

// prelude gives script values a to_string() method, mirroring the ergonomics scripts expect when stringifying
// jsonPath results before storing them in env.
const prelude = `
Object.defineProperty(Object.prototype, "to_string", {
	value: function() {
		if (this instanceof Number || this instanceof String || this instanceof Boolean) {
			return String(this);
		}
		if (this !== null && typeof this === "object") {
			return JSON.stringify(this);
		}
		return String(this);
	},
	writable: true,
	configurable: true,
});
`

type runtime struct {
	vm        *goja.Runtime
	assertion *AssertionError
}

// Run evaluates code against senv.  On success the env binding is read back: every key present becomes the new
// contents of senv.Vars, with non-string values converted to their textual form.  Keys the script removed are
// simply absent afterwards; they are never propagated as deletions.  On any error senv.Vars is left as the
// script last saw it, but callers must not commit it.
func Run(code string, senv *Env) error {
	vm := goja.New()
	r := &runtime{vm: vm}

	vm.Set("expect_toEqual", r.expectToEqual)
	vm.Set("expect_toContain", r.expectToContain)
	vm.Set("jsonPath", r.jsonPath)

	// goja wraps Go maps as live objects, so script-side writes land directly in this map.
	envObj := make(map[string]interface{}, len(senv.Vars))
	for k, v := range senv.Vars {
		envObj[k] = v
	}
	vm.Set("env", envObj)
	if senv.Status != nil {
		vm.Set("status", *senv.Status)
	}
	if senv.Headers != nil {
		vm.Set("headers", senv.Headers)
	}
	if senv.Data != nil {
		vm.Set("data", senv.Data)
	}

	if _, err := vm.RunString(prelude); err != nil {
		return errors.Wrap(err, "initializing script runtime")
	}
	if _, err := vm.RunString(code); err != nil {
		if r.assertion != nil {
			return r.assertion
		}
		return errors.Wrap(err, "script error")
	}

	// Read the env binding back, honoring a wholesale reassignment of the global.
	updated, ok := vm.Get("env").Export().(map[string]interface{})
	if !ok {
		glog.V(3).Infof("script.Run: env binding is no longer an object; keeping prior variables")
		return nil
	}
	for k := range senv.Vars {
		delete(senv.Vars, k)
	}
	for k, v := range updated {
		senv.Vars[k] = stringify(v)
	}
	return nil
}

func (r *runtime) fail(format string, args ...interface{}) error {
	e := &AssertionError{msg: fmt.Sprintf(format, args...)}
	r.assertion = e
	return e
}

// expectToEqual performs structural equality on JSON-like values.
func (r *runtime) expectToEqual(a, b goja.Value) error {
	va, err := normalize(a.Export())
	if err != nil {
		return errors.Wrap(err, "expect_toEqual: cannot convert lhs")
	}
	vb, err := normalize(b.Export())
	if err != nil {
		return errors.Wrap(err, "expect_toEqual: cannot convert rhs")
	}
	if !reflect.DeepEqual(va, vb) {
		return r.fail("Assertion failed: %v != %v", jsonText(va), jsonText(vb))
	}
	return nil
}

// expectToContain performs a substring test, serializing non-string haystacks to their JSON text form first.
func (r *runtime) expectToContain(haystack goja.Value, needle string) error {
	var text string
	if s, ok := haystack.Export().(string); ok {
		text = s
	} else {
		v, err := normalize(haystack.Export())
		if err != nil {
			return errors.Wrap(err, "expect_toContain: cannot convert value")
		}
		text = jsonText(v)
	}
	if !strings.Contains(text, needle) {
		return r.fail("Assertion failed: '%v' does not contain '%v'", text, needle)
	}
	return nil
}

// jsonPath evaluates a JSONPath expression and returns the first match, or undefined when there is none.
func (r *runtime) jsonPath(value goja.Value, expr string) (interface{}, error) {
	x, err := jp.ParseString(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "jsonPath: invalid expression '%v'", expr)
	}
	data, err := normalize(value.Export())
	if err != nil {
		return nil, errors.Wrap(err, "jsonPath: cannot convert value")
	}
	results := x.Get(data)
	if len(results) == 0 {
		return goja.Undefined(), nil
	}
	return results[0], nil
}

// normalize round-trips a value through JSON so that script-native values and materialized response bodies
// compare under the same number and map representations.
func normalize(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func jsonText(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// stringify converts a script value to the textual form stored in the variable store.
func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	case map[string]interface{}, []interface{}:
		return jsonText(t)
	default:
		return cast.ToString(t)
	}
}
