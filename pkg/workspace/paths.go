// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

package workspace

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const ConfigDirEnvvar = "QWEST_HOME"   // the envvar overriding the config directory location.
const BookExt = ".toml"                // the extension of spell-book files.
const MemFile = "mem.json"             // the base name of the JSON environment file.
const DatabaseFile = "qwest.sqlite"    // the base name of the variable store database.

// ConfigDir returns the qwest configuration directory, honoring the QWEST_HOME override.  The directory is
// not created; use EnsureConfigDir for that.
func ConfigDir() (string, error) {
	if dir := os.Getenv(ConfigDirEnvvar); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "cannot determine home directory")
	}
	return filepath.Join(home, ".config", "qwest"), nil
}

// EnsureConfigDir returns the configuration directory, creating it if it does not yet exist.
func EnsureConfigDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", errors.Wrapf(err, "creating config directory %v", dir)
	}
	return dir, nil
}

// BookPath returns the path of the named spell-book file inside the configuration directory.
func BookPath(name string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name+BookExt), nil
}

// MemFilePath returns the path of the JSON environment file.
func MemFilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, MemFile), nil
}

// DatabasePath returns the path of the variable store database, creating the containing directory if needed.
func DatabasePath() (string, error) {
	dir, err := EnsureConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DatabaseFile), nil
}

// ListBooks enumerates the spell-book names present in the configuration directory, sorted alphabetically.
// A missing configuration directory yields an empty list, not an error.
func ListBooks() ([]string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	files, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "reading config directory %v", dir)
	}
	var names []string
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), BookExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(f.Name(), BookExt))
	}
	sort.Strings(names)
	return names, nil
}
