package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseKind(t *testing.T) {
	cases := []struct {
		raw  string
		want BlockKind
	}{
		{"question", KindQuestion},
		{" Option ", KindOption},
		{"TABLE", KindTable},
		{"general", KindGeneral},
		{"", KindGeneral},
		{"unknown", KindGeneral},
	}
	for _, tc := range cases {
		if got := ParseKind(tc.raw); got != tc.want {
			t.Fatalf("ParseKind(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte("title: Quiz Review\ncustom_css: \"body { color: red; }\"\ncustom_js: \"console.log(1);\"\n"))
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}

	want := Config{
		Title:     "Quiz Review",
		CustomCSS: "body { color: red; }",
		CustomJS:  "console.log(1);",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfig_DefaultTitle(t *testing.T) {
	cfg, err := ParseConfig([]byte("custom_css: \"\"\n"))
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Title != DefaultTitle {
		t.Fatalf("expected default title, got %q", cfg.Title)
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	if _, err := ParseConfig([]byte("title: [unclosed")); err == nil {
		t.Fatalf("expected error for malformed YAML")
	}
}

func TestTable_NormalizedPadsShortRows(t *testing.T) {
	table := Table{
		Headers: []string{"ID", "Val", "Note"},
		Rows: [][]any{
			{1, "x"},
			{2, "y", "ok"},
		},
	}

	normalized := table.Normalized()
	if got := table.Width(); got != 3 {
		t.Fatalf("expected width 3, got %d", got)
	}
	for i, row := range normalized.Rows {
		if len(row) != 3 {
			t.Fatalf("row %d not padded: %v", i, row)
		}
	}
	if normalized.Rows[0][2] != "" {
		t.Fatalf("expected empty pad cell, got %v", normalized.Rows[0][2])
	}
	if normalized.Rows[1][2] != "ok" {
		t.Fatalf("existing cell lost: %v", normalized.Rows[1])
	}
}

func TestTable_NormalizedWideRowExtendsHeaders(t *testing.T) {
	table := Table{
		Headers: []string{"ID"},
		Rows:    [][]any{{1, "x", "y"}},
	}

	normalized := table.Normalized()
	if len(normalized.Headers) != 3 {
		t.Fatalf("expected headers padded to 3, got %v", normalized.Headers)
	}
	if normalized.Headers[0] != "ID" || normalized.Headers[1] != "" {
		t.Fatalf("unexpected headers: %v", normalized.Headers)
	}
}

func TestTable_NormalizedNoHeaders(t *testing.T) {
	normalized := Table{Rows: [][]any{{1}, {2, 3}}}.Normalized()
	if normalized.Headers != nil {
		t.Fatalf("expected no headers, got %v", normalized.Headers)
	}
	if len(normalized.Rows[0]) != 2 {
		t.Fatalf("short row not padded: %v", normalized.Rows[0])
	}
}
