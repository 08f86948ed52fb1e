package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"conway-stats/internal/report"
)

var plotFiles = []string{
	report.HeatmapFile,
	report.MeanLineFile,
	report.HistogramFile,
	report.BoxplotFile,
}

func smallArgs(out string) []string {
	return []string{"-rows", "8", "-cols", "8", "-steps", "6", "-trials", "3", "-seed", "7", "-out", out}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	var stdout bytes.Buffer
	out := t.TempDir()
	if code := run(context.Background(), append(smallArgs(out), "-rows", "0"), &stdout); code != exitConfig {
		t.Fatalf("exit code %d, expected %d\n%s", code, exitConfig, stdout.String())
	}
	if strings.Contains(stdout.String(), "Running simulation") {
		t.Fatal("no trial should start with an invalid config")
	}
	if code := run(context.Background(), []string{"-p", "1.5"}, &stdout); code != exitConfig {
		t.Fatalf("exit code %d for p=1.5, expected %d", code, exitConfig)
	}
	if code := run(context.Background(), []string{"-no-such-flag"}, &stdout); code != exitConfig {
		t.Fatalf("exit code %d for unknown flag, expected %d", code, exitConfig)
	}
}

func TestRunAbortedWritesNoPlots(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := t.TempDir()
	var stdout bytes.Buffer
	if code := run(ctx, smallArgs(out), &stdout); code != exitAborted {
		t.Fatalf("exit code %d, expected %d\n%s", code, exitAborted, stdout.String())
	}
	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatalf("read out dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("aborted run wrote %d files", len(entries))
	}
	if strings.Contains(stdout.String(), "All plots saved.") {
		t.Fatal("aborted run should not report saved plots")
	}
}

func TestRunWritesSummaryAndPlots(t *testing.T) {
	out := t.TempDir()
	var stdout bytes.Buffer
	if code := run(context.Background(), smallArgs(out), &stdout); code != exitOK {
		t.Fatalf("exit code %d, expected %d\n%s", code, exitOK, stdout.String())
	}
	text := stdout.String()
	for _, want := range []string{
		"Running simulation 1 / 3",
		"Running simulation 3 / 3",
		"3 trials x 6 steps",
		"All plots saved.",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
	for _, name := range plotFiles {
		info, err := os.Stat(filepath.Join(out, name))
		if err != nil {
			t.Fatalf("stat %s: %v", name, err)
		}
		if info.Size() == 0 {
			t.Fatalf("%s is empty", name)
		}
	}
}

func TestRunSkipsPlotsWhenDisabled(t *testing.T) {
	out := t.TempDir()
	var stdout bytes.Buffer
	if code := run(context.Background(), append(smallArgs(out), "-plots=false"), &stdout); code != exitOK {
		t.Fatalf("exit code %d, expected %d\n%s", code, exitOK, stdout.String())
	}
	entries, _ := os.ReadDir(out)
	if len(entries) != 0 {
		t.Fatalf("wrote %d files with plots disabled", len(entries))
	}
}

func TestRunReportsWriteFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	var stdout bytes.Buffer
	// The output path sits under a regular file, so the directory cannot be created.
	if code := run(context.Background(), smallArgs(filepath.Join(blocker, "plots")), &stdout); code != exitFailure {
		t.Fatalf("exit code %d, expected %d\n%s", code, exitFailure, stdout.String())
	}
}
