package experiment

import (
	"errors"
	"slices"
	"testing"
)

func TestNewResultsRequiresRectangle(t *testing.T) {
	if _, err := NewResults([]Trial{{1, 2}, {3}}); err == nil {
		t.Fatal("ragged trials should be rejected")
	}
	if _, err := NewResults(nil); err == nil {
		t.Fatal("empty results should be rejected")
	}
}

func TestResultsAccessors(t *testing.T) {
	src := []Trial{{1, 2, 3}, {4, 5, 6}}
	res, err := NewResults(src)
	if err != nil {
		t.Fatalf("new results: %v", err)
	}
	src[0][0] = 99
	if res.At(0, 0) != 1 {
		t.Fatal("results must not alias the input slices")
	}
	if got := res.Column(1); !slices.Equal(got, []int{2, 5}) {
		t.Fatalf("column 1 = %v", got)
	}
	if got := res.Final(); !slices.Equal(got, []int{3, 6}) {
		t.Fatalf("final = %v", got)
	}
	row := res.Trial(1)
	row[0] = 0
	if res.At(1, 0) != 4 {
		t.Fatal("Trial must return a copy")
	}
}

func TestConfigDefaultsValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	cfg := DefaultConfig()
	cfg.Probability = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("p=0 should be accepted: %v", err)
	}
	cfg.Probability = 1
	if err := cfg.Validate(); err != nil {
		t.Fatalf("p=1 should be accepted: %v", err)
	}
	cfg.Probability = -0.1
	if err := cfg.Validate(); err == nil {
		t.Fatal("negative probability should be rejected")
	}
}

func TestConfigRejectsOversizedRuns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 1_000_000_000
	cfg.Cols = 1_000_000_000
	err := cfg.Validate()
	var cerr *ConfigError
	if !errors.As(err, &cerr) || cerr.Field != "size" {
		t.Fatalf("expected size ConfigError, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Trials = MaxRecords
	cfg.Steps = 2
	if err := cfg.Validate(); !errors.As(err, &cerr) || cerr.Field != "trials" {
		t.Fatalf("expected trials ConfigError, got %v", err)
	}
}
