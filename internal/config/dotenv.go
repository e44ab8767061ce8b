package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EnvFileVars is the merged content of the env files that were found.
type EnvFileVars struct {
	Vars   map[string]string
	Loaded []string // absolute paths, in read order
}

// ReadEnvFiles parses key=value env files relative to root. Missing files are
// skipped. When a key appears in several files the first file wins, matching
// godotenv.Load.
func ReadEnvFiles(root string, files []string) (*EnvFileVars, error) {
	out := &EnvFileVars{Vars: make(map[string]string)}
	for _, file := range files {
		path := file
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}

		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}

		vars, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		for k, v := range vars {
			if _, seen := out.Vars[k]; !seen {
				out.Vars[k] = v
			}
		}
		out.Loaded = append(out.Loaded, path)
	}
	return out, nil
}

// WithEnvFiles layers env file values under the process environment: a
// variable set in the environment always beats the file.
func WithEnvFiles(base LookupFunc, files *EnvFileVars) LookupFunc {
	if files == nil || len(files.Vars) == 0 {
		return base
	}
	return Layered(base, MapLookup(files.Vars))
}
