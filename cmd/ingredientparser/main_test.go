package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/mealcraft/ingredientparser/pkg/ingredient"
)

func TestFormatPrettyAlignment(t *testing.T) {
	color.NoColor = true

	results := []ingredient.Parsed{
		ingredient.Parse("2 1/2 cups of sugar"),
		ingredient.Parse("a pinch of salt"),
	}

	out := formatPretty(results)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	first := strings.Index(lines[0], "sugar")
	second := strings.Index(lines[1], "salt")
	if first < 0 || second < 0 {
		t.Fatalf("foods missing from output: %q", out)
	}
	if first != second {
		t.Errorf("food columns misaligned: %d vs %d\n%s", first, second, out)
	}
}

func TestFormatPrettyMarksOptional(t *testing.T) {
	color.NoColor = true

	out := formatPretty([]ingredient.Parsed{ingredient.Parse("1 egg (optional)")})
	if !strings.Contains(out, "optional") {
		t.Errorf("output %q does not flag the optional ingredient", out)
	}
}

func TestFormatJSON(t *testing.T) {
	out, err := formatJSON([]ingredient.Parsed{ingredient.Parse("2 cups flour")})
	if err != nil {
		t.Fatal(err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("got %d records, want 1", len(decoded))
	}
	if decoded[0]["food"] != "flour" || decoded[0]["quantity"] != "2" {
		t.Errorf("record = %v, want flour with quantity 2", decoded[0])
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfigFromFile("/nonexistent/config.toml")
	if err != nil {
		t.Fatalf("missing config file should fall back to defaults, got %v", err)
	}
	if config.Core.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", config.Core.LogLevel)
	}
}
