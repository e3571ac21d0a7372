package bench

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/argmatch/match"
)

// Output formats accepted by Report.Write.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// Config defines one benchmark invocation. The sizes come from the command
// line arguments; everything else can be set by flag or YAML file.
type Config struct {
	Query     int `yaml:"-"` // number of query keys (N)
	Reference int `yaml:"-"` // size of the reference universe (M)

	Seed         int64  `yaml:"seed"`
	Sorted       bool   `yaml:"sorted"`
	VerifySorted bool   `yaml:"verify-sorted"`
	TieBreak     string `yaml:"tie-break"`
	Workers      int    `yaml:"workers"`
	Threshold    int    `yaml:"threshold"`
	Repeat       int    `yaml:"repeat"`
	Verify       bool   `yaml:"verify"` // check every result index and require 100% matches
	Quiet        bool   `yaml:"quiet"`  // suppress the report, keep the exit status
	CPUProfile   string `yaml:"cpuprofile"`
	MemProfile   string `yaml:"memprofile"`
	Format       string `yaml:"format"`
}

// DefaultConfig returns a single sequential run against a shuffled reference.
func DefaultConfig() Config {
	return Config{
		Seed:      42,
		TieBreak:  match.FirstOccurrence.String(),
		Threshold: match.DefaultParallelThreshold,
		Repeat:    1,
		Verify:    true,
		Format:    FormatTable,
	}
}

// Flags registers the configuration flags, bound to the fields of c and
// defaulting to their current values.
func (c *Config) Flags(flags *pflag.FlagSet) {
	flags.Int64Var(&c.Seed, "seed", c.Seed, "Seed for workload generation (0 picks the fixed default)")
	flags.BoolVar(&c.Sorted, "sorted", c.Sorted, "Generate a sorted reference and take the pre-sorted fast path")
	flags.BoolVar(&c.VerifySorted, "verify-sorted", c.VerifySorted, "Check the sorted reference before matching")
	flags.StringVar(&c.TieBreak, "tie-break", c.TieBreak, "Duplicate policy: first or any")
	flags.IntVar(&c.Workers, "workers", c.Workers, "Search goroutines (0 or 1 sequential, -1 GOMAXPROCS)")
	flags.IntVar(&c.Threshold, "threshold", c.Threshold, "Minimum query length for parallel search")
	flags.IntVar(&c.Repeat, "repeat", c.Repeat, "Number of timed runs")
	flags.BoolVar(&c.Verify, "verify", c.Verify, "Verify the last result and fail unless every key matched")
	flags.BoolVar(&c.Quiet, "quiet", c.Quiet, "quiet output for CI: do not print the report")
	flags.StringVar(&c.CPUProfile, "cpuprofile", c.CPUProfile, "write cpu profile to `file`")
	flags.StringVar(&c.MemProfile, "memprofile", c.MemProfile, "write memory profile to `file`")
	flags.StringVar(&c.Format, "format", c.Format, "Report format: table or yaml")
}

// Validate reports the first invalid field, wrapped in ErrBadConfig.
func (c Config) Validate() error {
	switch {
	case c.Query < 0 || c.Reference < 0:
		return fmt.Errorf("%w: sizes must be non-negative (N=%d, M=%d)", ErrBadConfig, c.Query, c.Reference)
	case c.Query > c.Reference:
		return fmt.Errorf("%w: N=%d exceeds M=%d, keys are sampled without replacement", ErrBadConfig, c.Query, c.Reference)
	case c.Repeat < 1:
		return fmt.Errorf("%w: repeat must be at least 1", ErrBadConfig)
	case c.Format != FormatTable && c.Format != FormatYAML:
		return fmt.Errorf("%w: unknown format %q", ErrBadConfig, c.Format)
	}
	if _, err := c.MatchOptions(); err != nil {
		return fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	return nil
}

// MatchOptions converts the configuration to matcher options.
func (c Config) MatchOptions() (match.Options, error) {
	opts := match.DefaultOptions()
	opts.ReferenceSorted = c.Sorted
	opts.VerifySorted = c.VerifySorted
	opts.Workers = c.Workers
	opts.ParallelThreshold = c.Threshold

	switch c.TieBreak {
	case match.FirstOccurrence.String():
		opts.TieBreak = match.FirstOccurrence
	case match.AnyOccurrence.String():
		opts.TieBreak = match.AnyOccurrence
	default:
		return opts, fmt.Errorf("unknown tie-break %q", c.TieBreak)
	}

	if c.Workers < -1 {
		return opts, match.ErrBadWorkers
	}
	if c.Threshold < 0 {
		return opts, match.ErrBadThreshold
	}
	return opts, nil
}

// LoadFile overlays the YAML file at path onto c. Unknown keys are an
// error; an empty file leaves c unchanged.
func LoadFile(path string, c *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ApplyFile loads path into c while keeping the values of flags that were
// set explicitly on the command line: flags win over the file.
func ApplyFile(flags *pflag.FlagSet, path string, c *Config) error {
	explicit := map[string]string{}
	flags.Visit(func(f *pflag.Flag) {
		explicit[f.Name] = f.Value.String()
	})

	if err := LoadFile(path, c); err != nil {
		return err
	}

	for name, value := range explicit {
		if err := flags.Set(name, value); err != nil {
			return fmt.Errorf("restore flag --%s: %w", name, err)
		}
	}
	return nil
}
