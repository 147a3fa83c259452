package resolver

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTemplate indicates the template failed structural validation.
var ErrInvalidTemplate = errors.New("template validation failed")

// MissingCredentialsError reports every placeholder in a server config that
// has no matching entry in the server's credential file.
type MissingCredentialsError struct {
	Server  string
	Missing []string
}

func (e *MissingCredentialsError) Error() string {
	tokens := make([]string, len(e.Missing))
	for i, name := range e.Missing {
		tokens[i] = "%" + name + "%"
	}
	return fmt.Sprintf("missing credentials for %s: %s", e.Server, strings.Join(tokens, ", "))
}

// MissingCredentialError reports a placeholder occurrence with no credential
// mapping during substitution. Reconciliation runs before substitution, so
// hitting this means an internal invariant was violated, not bad user input.
type MissingCredentialError struct {
	Name string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("missing credential for placeholder: %%%s%%", e.Name)
}
