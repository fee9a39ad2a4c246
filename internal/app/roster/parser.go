// internal/app/roster/parser.go
package roster

// The roster CSV's header row is misaligned with its data:
//
//	Header:  Student Name | LoginID      | SIS ID  | Section      | Role
//	Data:    Name         | Display Name | LoginID | SIS ID (uid) | Section (INST346-XXXX)
//
// Fields are therefore extracted by position, never by header name.

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/VivekChaurasia03/attendance-app/internal/app/system/normalize"
	"github.com/VivekChaurasia03/attendance-app/internal/domain/models"
)

// minRosterColumns is the shortest row that can carry all used positions.
const minRosterColumns = 5

// Positions of the semantically used cells. Columns 1 and 2 hold values the
// header claims for other columns; they are ignored on purpose.
const (
	colName    = 0
	colUID     = 3
	colSection = 4
)

// sectionSeparator splits the course prefix from the section code in the raw
// section cell ("INST346-0201" -> "0201").
const sectionSeparator = "-"

// ValidSections is the enumerated set of section codes accepted after the
// course prefix is stripped.
var ValidSections = map[string]bool{
	"0201": true,
	"0202": true,
	"0203": true,
}

// RowError classifies one roster row as unusable. Errors are accumulated,
// never raised mid-scan, so a single run reports every problem in the input.
type RowError struct {
	Line   int
	Reason string
	Raw    []string
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// MissingEmail flags an otherwise valid row with no email directory match.
// Non-fatal: the student is still produced, with an empty email.
type MissingEmail struct {
	Line int
	Name string
}

// ParseResult holds everything one pass over the roster produced, in source
// row order.
type ParseResult struct {
	Students      []models.Student
	Errors        []RowError
	MissingEmails []MissingEmail
}

// HasErrors reports whether any row failed validation.
func (r *ParseResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// ParseRoster reads the comma-delimited roster, skips the header line, and
// validates each data row against dir. Line numbers in errors and notices are
// physical file lines, starting at 2 because line 1 is always the skipped
// header. A blank line is a row with zero columns and fails the column-count
// check like any other short row. A row that fails validation contributes
// exactly one RowError and no Student.
func ParseRoster(r io.Reader, dir Directory) (ParseResult, error) {
	var result ParseResult

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		if line == 1 {
			continue // header positions are untrustworthy; never consulted
		}
		rec, err := splitLine(sc.Text())
		if err != nil {
			return result, fmt.Errorf("roster line %d: %w", line, err)
		}

		student, rowErr := validateRow(rec, line)
		if rowErr != nil {
			result.Errors = append(result.Errors, *rowErr)
			continue
		}

		if key := normalize.NameKey(student.Name); key != "" {
			student.Email = dir[key]
		}
		if student.Email == "" {
			result.MissingEmails = append(result.MissingEmails, MissingEmail{Line: line, Name: student.Name})
		}
		result.Students = append(result.Students, *student)
	}
	if err := sc.Err(); err != nil {
		return result, fmt.Errorf("reading roster: %w", err)
	}

	return result, nil
}

// splitLine parses one physical file line as a CSV record. Feeding the CSV
// reader whole files instead would silently drop blank lines, hiding them
// from validation and shifting every later record's reported line number.
// A blank line yields a zero-column record.
func splitLine(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	cr := csv.NewReader(strings.NewReader(text))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return cr.Read()
}

// validateRow runs the per-row checks in order, short-circuiting on the first
// failure. The UID is treated purely as an opaque ID string; there are no
// range or magnitude constraints.
func validateRow(rec []string, line int) (*models.Student, *RowError) {
	if len(rec) < minRosterColumns {
		return nil, &RowError{
			Line:   line,
			Reason: fmt.Sprintf("expected %d columns, got %d", minRosterColumns, len(rec)),
			Raw:    rec,
		}
	}

	name := normalize.Name(rec[colName])

	uid := strings.TrimSpace(rec[colUID])
	if uid == "" || !allDigits(uid) {
		return nil, &RowError{
			Line:   line,
			Reason: fmt.Sprintf("invalid uid %q for %q", uid, name),
			Raw:    rec,
		}
	}

	rawSection := strings.TrimSpace(rec[colSection])
	sep := strings.Index(rawSection, sectionSeparator)
	if sep < 0 {
		return nil, &RowError{
			Line:   line,
			Reason: fmt.Sprintf("unexpected section format %q for %q", rawSection, name),
			Raw:    rec,
		}
	}

	section := rawSection[sep+len(sectionSeparator):]
	if !ValidSections[section] {
		return nil, &RowError{
			Line:   line,
			Reason: fmt.Sprintf("invalid section %q for %q", section, name),
			Raw:    rec,
		}
	}

	return &models.Student{UID: uid, Name: name, Section: section}, nil
}

func allDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
