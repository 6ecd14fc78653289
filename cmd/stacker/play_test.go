package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckGameFlags(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("gameplay:\n  lives: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("gameplay: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		configPath string
		difficulty string
		wantErr    string
	}{
		{"no flags", "", "", ""},
		{"valid config", good, "", ""},
		{"known difficulty", "", "hard", ""},
		{"missing config", filepath.Join(dir, "typo.yaml"), "", "typo.yaml"},
		{"broken config", bad, "", "failed to parse"},
		{"unknown difficulty", "", "insane", `unknown difficulty "insane"`},
		{"wrong case", "", "Hard", "unknown difficulty"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := checkGameFlags(tc.configPath, tc.difficulty)
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("checkGameFlags() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("checkGameFlags() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"localhost:2222": "2222",
		"noport":         "noport",
	}
	for addr, want := range tests {
		if got := portOf(addr); got != want {
			t.Errorf("portOf(%q) = %q, expected %q", addr, got, want)
		}
	}
}
