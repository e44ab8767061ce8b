package config

import (
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/chainconf/internal/domain/config"
)

const maxSuggestions = 3

// SuggestNetworks returns configured network names that fuzzily match name.
func SuggestNetworks(name string, cfg config.Config) []string {
	names := cfg.NetworkNames()
	matches := fuzzy.Find(name, names)
	suggestions := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, m.Str)
	}
	return suggestions
}

// ResolveNetwork returns a copy of the named profile or an *UnknownNetworkError.
func ResolveNetwork(cfg config.Config, name string) (config.NetworkProfile, error) {
	p, ok := cfg.Network(name)
	if !ok {
		return config.NetworkProfile{}, &UnknownNetworkError{
			Name:        name,
			Suggestions: SuggestNetworks(name, cfg),
		}
	}
	return p, nil
}
