package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettings_ValidYAML_PopulatesAllFields(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	content := `expected_hours: 12.5
output: "weekly.pdf"
roster: "roster.csv"
split_by_team: true`
	err := os.WriteFile(path, []byte(content), 0o644)
	if err != nil {
		t.Fatalf("failed to write test settings: %v", err)
	}

	// When
	s, err := LoadSettings(path)

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if s.ExpectedHours != 12.5 {
		t.Errorf("expected ExpectedHours=12.5, got %v", s.ExpectedHours)
	}
	if s.Output != "weekly.pdf" {
		t.Errorf("expected Output=weekly.pdf, got %s", s.Output)
	}
	if s.Roster != "roster.csv" {
		t.Errorf("expected Roster=roster.csv, got %s", s.Roster)
	}
	if !s.SplitByTeam {
		t.Error("expected SplitByTeam=true")
	}
}

func TestLoadSettings_MissingFile_ReturnsError(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing settings file, got nil")
	}
}
