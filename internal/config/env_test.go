package config

import "testing"

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true}, // falls back to default on unknown
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestListEnvOrDefault(t *testing.T) {
	def := []string{"a", "b"}

	t.Setenv("LIST_TEST", "")
	if got := listEnvOrDefault("LIST_TEST", def); len(got) != 2 || got[0] != "a" {
		t.Fatalf("expected default list when unset, got %v", got)
	}

	t.Setenv("LIST_TEST", " , ,")
	if got := listEnvOrDefault("LIST_TEST", def); len(got) != 2 {
		t.Fatalf("expected default list for blank entries, got %v", got)
	}

	t.Setenv("LIST_TEST", "x, y")
	got := listEnvOrDefault("LIST_TEST", def)
	if len(got) != 2 || got[0] != "x" || got[1] != "y" {
		t.Fatalf("expected trimmed override, got %v", got)
	}

	t.Setenv("LIST_TEST", "")
	fallback := listEnvOrDefault("LIST_TEST", def)
	fallback[0] = "mutated"
	if def[0] != "a" {
		t.Fatalf("expected default slice to be untouched")
	}
}
