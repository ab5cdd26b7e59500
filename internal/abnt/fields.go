package abnt

import (
	"errors"
	"strings"

	"github.com/matsen/abnt/internal/reference"
)

// Tag names with special meaning during extraction.
const (
	tagOrganizer  = "organizer"
	tagEditorType = "editortype"
	slotEditor    = "editor"
	roleOrganizer = "organizer"
)

// fields holds the values extracted from one record, keyed by logical slot.
//
// Extraction is a single pass over the tags. The first non-empty value of a
// slot wins, whichever synonym carried it. The only override is the
// "organizer" tag, which replaces an editor value and marks the organizer
// role.
type fields struct {
	key       string
	entryType string
	values    map[string]string

	editorSeen    bool
	organizerRole bool

	missing []string
}

// collect scans rec once. synonyms maps tag names to slot names; tags not in
// the table are ignored.
func collect(rec reference.Record, synonyms map[string]string) *fields {
	f := &fields{
		key:       rec.Key,
		entryType: rec.Type,
		values:    make(map[string]string, len(synonyms)),
	}

	for _, tag := range rec.Tags {
		value := strings.TrimSpace(tag.Value)

		switch tag.Name {
		case tagOrganizer:
			f.editorSeen = true
			f.organizerRole = true
			if value != "" {
				f.values[slotEditor] = value
			}
			continue
		case tagEditorType:
			if value == roleOrganizer {
				f.organizerRole = true
			}
			continue
		}

		slot, ok := synonyms[tag.Name]
		if !ok {
			continue
		}
		if slot == slotEditor {
			f.editorSeen = true
		}
		if _, set := f.values[slot]; !set && value != "" {
			f.values[slot] = value
		}
	}

	return f
}

func (f *fields) get(slot string) string {
	return f.values[slot]
}

// require records every listed slot that has no value.
func (f *fields) require(slots ...string) {
	for _, s := range slots {
		if f.values[s] == "" {
			f.missing = append(f.missing, s)
		}
	}
}

// requireOneOf records name as missing when none of the slots has a value.
func (f *fields) requireOneOf(name string, slots ...string) {
	for _, s := range slots {
		if f.values[s] != "" {
			return
		}
	}
	f.missing = append(f.missing, name)
}

// err reports all problems found so far. An editor without the organizer
// role is only an error when checkRole is set.
func (f *fields) err(checkRole bool) error {
	var errs []error
	if len(f.missing) > 0 {
		errs = append(errs, &MissingFieldsError{Key: f.key, EntryType: f.entryType, Fields: f.missing})
	}
	if checkRole && f.editorSeen && !f.organizerRole {
		errs = append(errs, &EditorRoleError{Key: f.key})
	}
	return errors.Join(errs...)
}
