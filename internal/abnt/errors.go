package abnt

import (
	"errors"
	"fmt"
	"strings"
)

// Errors reported when a record cannot be formatted. Each structured error
// below unwraps to one of these.
var (
	// ErrMissingFields indicates required fields are absent from a record.
	ErrMissingFields = errors.New("missing required fields")

	// ErrEditorRole indicates an editor whose type is not "organizer".
	ErrEditorRole = errors.New("invalid editor type: expecting organizer")

	// ErrUnknownEntryType indicates an entry type with no formatter.
	ErrUnknownEntryType = errors.New("unexpected entry type")
)

// MissingFieldsError lists every required field missing from one record.
type MissingFieldsError struct {
	Key       string
	EntryType string
	Fields    []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%s (@%s): missing required fields: %s",
		e.Key, e.EntryType, strings.Join(e.Fields, ", "))
}

func (e *MissingFieldsError) Unwrap() error { return ErrMissingFields }

// EditorRoleError is returned when an editor field is not marked with
// editortype = organizer and no organizer field was given.
type EditorRoleError struct {
	Key string
}

func (e *EditorRoleError) Error() string {
	return fmt.Sprintf("%v, citation_key: %s", ErrEditorRole, e.Key)
}

func (e *EditorRoleError) Unwrap() error { return ErrEditorRole }

// UnknownEntryTypeError is returned by the dispatcher for unsupported types.
type UnknownEntryTypeError struct {
	Key       string
	EntryType string
}

func (e *UnknownEntryTypeError) Error() string {
	return fmt.Sprintf("%v: %s, citation_key: %s", ErrUnknownEntryType, e.EntryType, e.Key)
}

func (e *UnknownEntryTypeError) Unwrap() error { return ErrUnknownEntryType }
