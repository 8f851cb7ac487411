// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

package expand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	vars := map[string]string{
		"USER_ID":  "42",
		"USERNAME": "alice",
	}

	out := Expand("/u/${USER_ID}?q=${MISSING}&u=${USERNAME}", vars)
	assert.Equal(t, "/u/42?q=${MISSING}&u=alice", out)
}

func TestExpandNoPlaceholders(t *testing.T) {
	assert.Equal(t, "/plain/path", Expand("/plain/path", map[string]string{"A": "b"}))
}

func TestExpandEmptyMap(t *testing.T) {
	assert.Equal(t, "x=${A}&y=${B}", Expand("x=${A}&y=${B}", nil))
}

func TestExpandAdjacent(t *testing.T) {
	vars := map[string]string{"A": "1", "B": "2"}
	assert.Equal(t, "12", Expand("${A}${B}", vars))
}

func TestExpandMalformedTokensLeftAlone(t *testing.T) {
	vars := map[string]string{"A": "1"}
	// Names outside [A-Za-z0-9_]+ are not placeholders at all.
	assert.Equal(t, "${A-B} $A ${} $", Expand("${A-B} $A ${} $", vars))
}

func TestExpandIdempotent(t *testing.T) {
	vars := map[string]string{"USER_ID": "42"}
	src := "/u/${USER_ID}?q=${MISSING}"
	once := Expand(src, vars)
	assert.Equal(t, once, Expand(once, vars))
}

func TestExpandPassThroughUnknownOnly(t *testing.T) {
	vars := map[string]string{"KNOWN": "v"}
	out := Expand("${KNOWN} ${UNKNOWN_1} ${UNKNOWN_2}", vars)
	assert.Equal(t, "v ${UNKNOWN_1} ${UNKNOWN_2}", out)
	assert.NotContains(t, out, "${KNOWN}")
}

func TestExpandValueContainingPlaceholder(t *testing.T) {
	// A substituted value that itself looks like a placeholder is emitted verbatim; expansion is one pass.
	vars := map[string]string{"A": "${B}", "B": "nope"}
	assert.Equal(t, "${B}", Expand("${A}", vars))
}
