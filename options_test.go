package rtscene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.Granularity != GranularityFine {
		t.Errorf("DefaultOptions().Granularity = %v, want fine", opts.Granularity)
	}
}

func TestParseGranularity(t *testing.T) {
	tests := []struct {
		in      string
		want    Granularity
		wantErr bool
	}{
		{"fine", GranularityFine, false},
		{"coarse", GranularityCoarse, false},
		{"FINE", GranularityFine, false},
		{" coarse ", GranularityCoarse, false},
		{"medium", GranularityFine, true},
		{"", GranularityFine, true},
	}
	for _, tt := range tests {
		got, err := ParseGranularity(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrBadGranularity) {
				t.Errorf("ParseGranularity(%q) error = %v, want ErrBadGranularity", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseGranularity(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseGranularity(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGranularityString(t *testing.T) {
	if got := GranularityFine.String(); got != "fine" {
		t.Errorf("GranularityFine.String() = %q, want %q", got, "fine")
	}
	if got := GranularityCoarse.String(); got != "coarse" {
		t.Errorf("GranularityCoarse.String() = %q, want %q", got, "coarse")
	}
}

func TestGranularityYAMLRoundTrip(t *testing.T) {
	data, err := yaml.Marshal(Options{Granularity: GranularityCoarse})
	if err != nil {
		t.Fatalf("Marshal() = %v", err)
	}

	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		t.Fatalf("Unmarshal() = %v", err)
	}
	if opts.Granularity != GranularityCoarse {
		t.Errorf("round-tripped granularity = %v, want coarse", opts.Granularity)
	}
}

func TestGranularityUnmarshalRejectsUnknown(t *testing.T) {
	var opts Options
	err := yaml.Unmarshal([]byte("granularity: chunky\n"), &opts)
	if !errors.Is(err, ErrBadGranularity) {
		t.Errorf("Unmarshal error = %v, want ErrBadGranularity", err)
	}
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	if err := os.WriteFile(path, []byte("granularity: coarse\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions() = %v", err)
	}
	if opts.Granularity != GranularityCoarse {
		t.Errorf("Granularity = %v, want coarse", opts.Granularity)
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	opts, err := LoadOptions(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadOptions() on missing file should fail")
	}
	// Failure falls back to defaults.
	if opts.Granularity != GranularityFine {
		t.Errorf("Granularity after error = %v, want fine", opts.Granularity)
	}
}

func TestLoadOptionsRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	if err := os.WriteFile(path, []byte("granularity: fine\nresolution: 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadOptions(path); err == nil {
		t.Error("LoadOptions() should reject unknown keys")
	}
}
