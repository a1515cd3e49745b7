package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"meetinghours/internal/models"
)

// Load reads a person,role CSV file.
func Load(path string) ([]models.RosterEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening roster: %w", err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing roster %s: %w", path, err)
	}
	return entries, nil
}

// Parse reads person,role rows. The role column is optional, a leading
// "person,role" header is skipped, and # starts a comment line.
func Parse(r io.Reader) ([]models.RosterEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	var entries []models.RosterEntry
	first := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		person := strings.TrimSpace(record[0])
		role := ""
		if len(record) > 1 {
			role = strings.TrimSpace(record[1])
		}

		if first {
			first = false
			if strings.EqualFold(person, "person") || strings.EqualFold(person, "email") {
				continue
			}
		}

		if person == "" {
			if role == "" {
				continue
			}
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("line %d: missing person for role %q", line, role)
		}

		entries = append(entries, models.RosterEntry{Person: person, Role: role})
	}

	return entries, nil
}
