// ABOUTME: Typed error taxonomy for the tracker
// ABOUTME: Callers branch with errors.As on error kind, never on message text
package models

import (
	"fmt"
	"strings"
)

// ParseError means the sentence matched no known pattern, or its date
// portion was malformed. The user must rephrase.
type ParseError struct {
	Sentence string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("no se pudo interpretar la frase: %q. Usá el formato sugerido", e.Sentence)
}

// NotFoundError means no roster entry matched the input name. Suggestions,
// when present, come from a similarity sweep over the roster.
type NotFoundError struct {
	Name        string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("no se encontró al cliente: %s", e.Name)
	}
	return fmt.Sprintf("no se encontró al cliente: %s. ¿Quisiste decir: %s?",
		e.Name, strings.Join(e.Suggestions, ", "))
}

// AmbiguousMatchError carries the candidate names the user must pick from.
type AmbiguousMatchError struct {
	Name       string
	Candidates []string
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("se encontraron múltiples coincidencias para %q: %s",
		e.Name, strings.Join(e.Candidates, ", "))
}

// PersistenceError wraps a failure of the external tabular store. Transient;
// the user may retry manually. Never retried automatically.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("error de acceso a la planilla (%s): %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// ConfigurationError means an advisor code has no mapped destination sheet.
// Administrative, not correctable in-session.
type ConfigurationError struct {
	Owner string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("el código de asesor %q no tiene hoja asignada", e.Owner)
}
