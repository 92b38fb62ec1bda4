package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

var andrewEmailPattern = regexp.MustCompile(`^([^@]+)@andrew\.cmu\.edu`)

// NameResolver maps raw roster identifiers to "First Last" display names.
// It is built once from the roster CSV and is read-only afterwards; the
// core never re-resolves a user.
type NameResolver struct {
	names         map[string]string
	rosterEntries int
}

// NewNameResolver loads a roster CSV with Email, Andrew ID and
// Preferred/First Name + Last Name columns. A malformed roster row is
// skipped with a warning and loading continues; a roster that cannot be
// read at all is reported to the caller, who degrades to raw identifiers.
func NewNameResolver(rosterPath string, logger zerolog.Logger) (*NameResolver, error) {
	f, err := os.Open(rosterPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read roster header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	field := func(row []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	resolver := &NameResolver{names: make(map[string]string)}
	for rowNum := 2; ; rowNum++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			logger.Warn().Int("row", rowNum).Err(err).Msg("skipping roster row")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read roster file: %w", err)
		}
		resolver.rosterEntries++

		m := andrewEmailPattern.FindStringSubmatch(field(row, "Email"))
		if m == nil {
			continue
		}
		andrewID := strings.ToLower(m[1])

		first := field(row, "Preferred/First Name")
		last := field(row, "Last Name")
		if first == "" || last == "" {
			continue
		}

		formatted := first + " " + last
		resolver.names[andrewID] = formatted
		if id := strings.ToLower(field(row, "Andrew ID")); id != "" {
			resolver.names[id] = formatted
		}
	}

	return resolver, nil
}

// Resolve returns the formatted name for a user field, trying in order: an
// exact match against an already-resolved full name, the user field as an
// Andrew ID, and the ID portion of the email field. Falls back to the raw
// user field.
func (nr *NameResolver) Resolve(userField, emailField string) string {
	user := strings.TrimSpace(userField)
	if len(nr.names) == 0 {
		return user
	}

	if strings.Contains(user, " ") && len(strings.Fields(user)) >= 2 {
		for _, formatted := range nr.names {
			if strings.EqualFold(formatted, user) {
				return formatted
			}
		}
		return user
	}

	if name, ok := nr.names[strings.ToLower(user)]; ok {
		return name
	}

	if m := andrewEmailPattern.FindStringSubmatch(emailField); m != nil {
		if name, ok := nr.names[strings.ToLower(m[1])]; ok {
			return name
		}
	}

	return user
}

// Stats reports how many names were resolved from how many roster rows,
// used for verbose startup logging.
func (nr *NameResolver) Stats() (names, rosterEntries int) {
	return len(nr.names), nr.rosterEntries
}
