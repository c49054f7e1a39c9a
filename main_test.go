package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunFlushesCPUProfile(t *testing.T) {
	dir := t.TempDir()

	if err := run([]string{"-profile", "cpu", "-output-dir", dir, "-max-ticks", "5", "-seed", "1"}); err != nil {
		t.Fatalf("run: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "cpu.pprof"))
	if err != nil {
		t.Fatalf("cpu profile not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("cpu profile is empty")
	}
	if _, err := os.Stat(filepath.Join(dir, "telemetry.csv")); err != nil {
		t.Errorf("telemetry output missing: %v", err)
	}
}

func TestRunReturnsErrors(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
	}{
		{"output dir is a file", []string{"-output-dir", file, "-max-ticks", "1", "-seed", "1"}},
		{"missing config", []string{"-config", filepath.Join(t.TempDir(), "nope.yaml")}},
		{"unknown flag", []string{"-no-such-flag"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(tt.args); err == nil {
				t.Error("run succeeded, want error")
			}
		})
	}
}
