// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

// Package expand performs ${NAME} placeholder substitution over spell-book source text.
package expand

import (
	"regexp"
	"strings"
)

var placeholder = regexp.MustCompile(`\$\{([A-Za-z0-9_]+)\}`)

// Expand replaces every ${NAME} placeholder whose name exists in vars with the mapped value.  Placeholders whose
// name is unknown are left intact so that downstream consumers can still see the literal token.  The transform is
// deterministic and idempotent over unknown keys.
func Expand(src string, vars map[string]string) string {
	matches := placeholder.FindAllStringSubmatchIndex(src, -1)
	if len(matches) == 0 {
		return src
	}

	var out strings.Builder
	out.Grow(len(src))
	last := 0
	for _, m := range matches {
		name := src[m[2]:m[3]]
		if val, has := vars[name]; has {
			out.WriteString(src[last:m[0]])
			out.WriteString(val)
			last = m[1]
		}
	}
	out.WriteString(src[last:])
	return out.String()
}
