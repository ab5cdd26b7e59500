package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/matsen/abnt/internal/abnt"
	"github.com/matsen/abnt/internal/bibtex"
	"github.com/matsen/abnt/internal/reference"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [file.bib...]",
	Short: "Report records that cannot be formatted",
	Long: `Check that every record of a BibTeX database can be formatted.

Reports missing required fields, editors not marked as organizers, entry
types with no ABNT formatter, and citation keys or DOIs used by more than
one record. Skipped records (see skip-prefix) are not checked.

Exits with status 3 when any issue is found.`,
	RunE: runCheck,
}

// CheckResult is the response for the check command.
type CheckResult struct {
	Status  string       `json:"status"`
	Records int          `json:"records"`
	Issues  []CheckIssue `json:"issues"`
}

// CheckIssue represents a single issue found during check.
type CheckIssue struct {
	Type    string   `json:"type"`
	Key     string   `json:"key,omitempty"`
	Keys    []string `json:"keys,omitempty"`
	Fields  []string `json:"fields,omitempty"`
	Value   string   `json:"value,omitempty"`
	Message string   `json:"message"`
}

// Issue types
const (
	IssueMissingFields = "missing_fields"
	IssueEditorRole    = "editor_role"
	IssueUnknownType   = "unknown_type"
	IssueDuplicateKey  = "duplicate_key"
	IssueDuplicateDOI  = "duplicate_doi"
)

func runCheck(cmd *cobra.Command, args []string) error {
	records := withoutSkipped(mustReadRecords(args), appConfig.SkipPrefix)
	issues := checkRecords(records)

	status := "ok"
	if len(issues) > 0 {
		status = "issues"
	}

	if humanOutput {
		if len(issues) == 0 {
			outputHuman("Reference check: OK\n\n%d records checked\n", len(records))
		} else {
			outputHuman("Reference check: %d issues found\n\n", len(issues))
			for _, issue := range issues {
				outputHuman("  [%s] %s\n", issue.Type, issue.Message)
			}
			outputHuman("\n%d records checked\n", len(records))
		}
	} else {
		outputJSON(CheckResult{
			Status:  status,
			Records: len(records),
			Issues:  issues,
		})
	}

	if len(issues) > 0 {
		os.Exit(ExitDataError)
	}
	return nil
}

// checkRecords formats every record and collects all problems found,
// followed by duplicate keys and DOIs. Never returns nil.
func checkRecords(records []reference.Record) []CheckIssue {
	issues := []CheckIssue{}
	idx := bibtex.NewIndex()

	for _, rec := range records {
		idx.Add(rec)
		if _, err := abnt.Format(rec); err != nil {
			issues = append(issues, formatIssues(err)...)
		}
	}

	for _, dup := range idx.Duplicates() {
		issue := CheckIssue{Keys: dup.Keys, Value: dup.Value}
		switch dup.Kind {
		case "key":
			issue.Type = IssueDuplicateKey
			issue.Message = fmt.Sprintf("citation key %s used by %d records", dup.Value, len(dup.Keys))
		default:
			issue.Type = IssueDuplicateDOI
			issue.Message = fmt.Sprintf("DOI %s found in: %s", dup.Value, strings.Join(dup.Keys, ", "))
		}
		issues = append(issues, issue)
	}
	return issues
}

// formatIssues converts a formatting error into issues, one per problem.
func formatIssues(err error) []CheckIssue {
	var issues []CheckIssue

	var missing *abnt.MissingFieldsError
	if errors.As(err, &missing) {
		issues = append(issues, CheckIssue{
			Type:    IssueMissingFields,
			Key:     missing.Key,
			Fields:  missing.Fields,
			Message: missing.Error(),
		})
	}

	var role *abnt.EditorRoleError
	if errors.As(err, &role) {
		issues = append(issues, CheckIssue{
			Type:    IssueEditorRole,
			Key:     role.Key,
			Message: role.Error(),
		})
	}

	var unknown *abnt.UnknownEntryTypeError
	if errors.As(err, &unknown) {
		issues = append(issues, CheckIssue{
			Type:    IssueUnknownType,
			Key:     unknown.Key,
			Value:   unknown.EntryType,
			Message: unknown.Error(),
		})
	}

	if len(issues) == 0 {
		issues = append(issues, CheckIssue{Type: "error", Message: err.Error()})
	}
	return issues
}
