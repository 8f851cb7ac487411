// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

// Package envmap builds the seed variable map for a request invocation by merging the JSON memory file with the
// process environment.  The process environment always wins on key collisions.
package envmap

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/pulumi/qwest/pkg/workspace"
)

// Load returns the merged environment map: the contents of the JSON memory file, overlaid by the process
// environment.  A missing memory file is equivalent to an empty one; a malformed one is a fatal error.
func Load() (map[string]string, error) {
	path, err := workspace.MemFilePath()
	if err != nil {
		return nil, err
	}
	vars, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	for _, kv := range os.Environ() {
		if eq := strings.Index(kv, "="); eq != -1 {
			vars[kv[:eq]] = kv[eq+1:]
		}
	}
	glog.V(5).Infof("envmap.Load: %d variables in seed environment", len(vars))
	return vars, nil
}

// LoadFile reads a JSON file expected to contain an object of string values and returns it as a map.  Values of
// any other type are skipped.  A missing file yields an empty map.
func LoadFile(path string) (map[string]string, error) {
	vars := make(map[string]string)
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return vars, nil
		}
		return nil, errors.Wrapf(err, "reading environment file %v", path)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, errors.Wrapf(err, "environment file %v is not a JSON object", path)
	}
	for k, v := range raw {
		if s, ok := v.(string); ok {
			vars[k] = s
		} else {
			glog.V(3).Infof("envmap.LoadFile: skipping non-string value for %v", k)
		}
	}
	return vars, nil
}
