package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/edu-tools/mentor-dashboard/pkg/models/domain"
	"github.com/rs/zerolog"
)

var requiredColumns = []string{
	"Project", "User", "Group", "Start Date", "End Date", "Duration (decimal)", "Tags",
}

var (
	activityPattern = regexp.MustCompile(`(?i)ACTIVITY:\s*([^,\n]+)`)
	categoryPattern = regexp.MustCompile(`(?i)CATEGORY:\s*([^,\n]+)`)
)

// Day-first layouts, tried in order. ISO dates are unambiguous and accepted
// as-is; for slashed dates the day-before-month reading wins.
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"2/1/2006 15:04",
	"2/1/2006",
	"02-01-2006",
	"02.01.2006",
}

// ParseCSV reads a time-tracking export into TimeEntry values. Missing
// required columns or a file with zero valid rows abort the run; a single
// malformed row is skipped with a warning and the run continues. Rows with
// zero or negative duration are dropped.
func ParseCSV(path string, resolver *NameResolver, logger zerolog.Logger) ([]domain.TimeEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	field := func(row []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var entries []domain.TimeEntry
	for rowNum := 2; ; rowNum++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			// The reader recovers on the next line; only this row is lost.
			logger.Warn().Int("row", rowNum).Err(err).Msg("skipping row")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV file: %w", err)
		}

		entry, err := parseRow(row, field, resolver)
		if err != nil {
			logger.Warn().Int("row", rowNum).Err(err).Msg("skipping row")
			continue
		}
		if entry == nil {
			// Zero-duration rows are silently dropped.
			continue
		}
		entries = append(entries, *entry)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no valid time entries found in %s", path)
	}

	return entries, nil
}

func parseRow(row []string, field func([]string, string) string, resolver *NameResolver) (*domain.TimeEntry, error) {
	startDate, err := parseDayFirst(field(row, "Start Date"))
	if err != nil {
		return nil, fmt.Errorf("bad start date: %w", err)
	}
	endDate, err := parseDayFirst(field(row, "End Date"))
	if err != nil {
		return nil, fmt.Errorf("bad end date: %w", err)
	}

	duration, err := strconv.ParseFloat(field(row, "Duration (decimal)"), 64)
	if err != nil {
		return nil, fmt.Errorf("bad duration: %w", err)
	}
	if duration <= 0 {
		return nil, nil
	}

	activity, category := ExtractActivityCategory(field(row, "Tags"))

	project := field(row, "Project")
	if project == "" {
		project = "Unknown"
	}
	group := field(row, "Group")
	if group == "" || strings.EqualFold(group, "nan") {
		group = "Unknown"
	}

	user := field(row, "User")
	if user == "" {
		user = "Unknown"
	}
	if resolver != nil {
		user = resolver.Resolve(user, field(row, "Email"))
	}

	return &domain.TimeEntry{
		Project:       project,
		User:          user,
		Group:         group,
		StartDate:     startDate,
		EndDate:       endDate,
		DurationHours: duration,
		Activity:      activity,
		Category:      category,
		Description:   field(row, "Description"),
	}, nil
}

// ExtractActivityCategory pulls the activity and category out of a tag
// string like "ACTIVITY: Learning, CATEGORY: Academic". Either defaults to
// "Uncategorized" when not present.
func ExtractActivityCategory(tags string) (activity, category string) {
	activity, category = "Uncategorized", "Uncategorized"
	if strings.TrimSpace(tags) == "" {
		return activity, category
	}

	if m := activityPattern.FindStringSubmatch(tags); m != nil {
		activity = strings.TrimSpace(m[1])
	}
	if m := categoryPattern.FindStringSubmatch(tags); m != nil {
		category = strings.TrimSpace(m[1])
	}
	return activity, category
}

func parseDayFirst(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
