package rtscene

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Granularity selects how object-instance proxies split.
type Granularity uint8

const (
	// GranularityFine splits an instance into one proxy per shape,
	// regardless of homogeneity. Combined geometry is never built
	// under fine granularity.
	GranularityFine Granularity = iota
	// GranularityCoarse keeps an instance whole while its shapes
	// agree in primitive kind and material signature, issuing one
	// combined build; heterogeneous instances split per signature.
	GranularityCoarse
)

func (g Granularity) String() string {
	switch g {
	case GranularityFine:
		return "fine"
	case GranularityCoarse:
		return "coarse"
	}
	return "unknown"
}

// ParseGranularity parses "fine" or "coarse" (case-insensitive).
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fine":
		return GranularityFine, nil
	case "coarse":
		return GranularityCoarse, nil
	}
	return GranularityFine, fmt.Errorf("%w: %q", ErrBadGranularity, s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (g *Granularity) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseGranularity(s)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (g Granularity) MarshalYAML() (any, error) {
	return g.String(), nil
}

// Options configures a proxy factory. Granularity is fixed for the
// lifetime of the factory.
type Options struct {
	Granularity Granularity `yaml:"granularity"`
}

// DefaultOptions returns the default configuration: fine granularity.
func DefaultOptions() Options {
	return Options{Granularity: GranularityFine}
}

// LoadOptions reads Options from a YAML file. Unknown keys are
// rejected.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("rtscene: read options: %w", err)
	}
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil {
		return DefaultOptions(), fmt.Errorf("rtscene: parse options: %w", err)
	}
	return opts, nil
}
