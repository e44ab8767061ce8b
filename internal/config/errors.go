package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyRPCURL       = errors.New("rpc url is not set")
	ErrInvalidRPCURL     = errors.New("invalid rpc url")
	ErrInvalidCredential = errors.New("invalid private key")
	ErrUnknownNetwork    = errors.New("unknown network")
)

// Issue is a single problem found in a network profile.
type Issue struct {
	Network string
	Field   string
	Err     error
}

func (i Issue) Error() string {
	return fmt.Sprintf("%s.%s: %v", i.Network, i.Field, i.Err)
}

func (i Issue) Unwrap() error {
	return i.Err
}

// ValidationError collects every issue found by Validate.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, issue.Error())
	}
	return fmt.Sprintf("%d configuration issue(s): %s", len(e.Issues), strings.Join(msgs, "; "))
}

// Unwrap lets errors.Is match any of the collected issues.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Issues))
	for _, issue := range e.Issues {
		errs = append(errs, issue)
	}
	return errs
}

// UnknownNetworkError reports a network name with no profile, plus close matches.
type UnknownNetworkError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownNetworkError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("network '%s' not found", e.Name)
	}
	return fmt.Sprintf("network '%s' not found (did you mean %s?)", e.Name, strings.Join(e.Suggestions, ", "))
}

func (e *UnknownNetworkError) Unwrap() error {
	return ErrUnknownNetwork
}
