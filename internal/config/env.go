package config

import (
	"os"
)

// LookupFunc resolves an environment variable. It has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// OSLookup reads the process environment.
var OSLookup LookupFunc = os.LookupEnv

// MapLookup returns a LookupFunc backed by a fixed map.
func MapLookup(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

// Layered returns a LookupFunc that consults each source in order and
// returns the first non-empty value.
func Layered(sources ...LookupFunc) LookupFunc {
	return func(key string) (string, bool) {
		for _, src := range sources {
			if src == nil {
				continue
			}
			if v, ok := src(key); ok && v != "" {
				return v, true
			}
		}
		return "", false
	}
}

// GetEnvOr returns the value of name, or fallback when it is unset or empty.
func GetEnvOr(lookup LookupFunc, name, fallback string) string {
	if lookup == nil {
		return fallback
	}
	if v, ok := lookup(name); ok && v != "" {
		return v
	}
	return fallback
}

// accountsFromEnv wraps a private key variable into a credentials list.
// An unset variable yields an empty, non-nil list.
func accountsFromEnv(lookup LookupFunc, name string) []string {
	key := GetEnvOr(lookup, name, "")
	if key == "" {
		return []string{}
	}
	return []string{accountPrefix + key}
}
