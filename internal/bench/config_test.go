package bench_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/argmatch/internal/bench"
	"github.com/katalvlaran/argmatch/match"
)

func validConfig() bench.Config {
	cfg := bench.DefaultConfig()
	cfg.Query, cfg.Reference = 10, 100
	return cfg
}

// TestConfig_Validate covers every rejected field.
func TestConfig_Validate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	cases := []struct {
		name   string
		mutate func(*bench.Config)
	}{
		{"negative query", func(c *bench.Config) { c.Query = -1 }},
		{"query above universe", func(c *bench.Config) { c.Query = 101 }},
		{"zero repeat", func(c *bench.Config) { c.Repeat = 0 }},
		{"format", func(c *bench.Config) { c.Format = "json" }},
		{"tie-break", func(c *bench.Config) { c.TieBreak = "last" }},
		{"workers", func(c *bench.Config) { c.Workers = -5 }},
		{"threshold", func(c *bench.Config) { c.Threshold = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), bench.ErrBadConfig)
		})
	}
}

// TestConfig_MatchOptions maps flags onto matcher options.
func TestConfig_MatchOptions(t *testing.T) {
	cfg := validConfig()
	cfg.Sorted = true
	cfg.VerifySorted = true
	cfg.TieBreak = "any"
	cfg.Workers = -1
	cfg.Threshold = 7

	opts, err := cfg.MatchOptions()
	require.NoError(t, err)
	assert.Equal(t, match.Options{
		ReferenceSorted:   true,
		VerifySorted:      true,
		TieBreak:          match.AnyOccurrence,
		Workers:           -1,
		ParallelThreshold: 7,
	}, opts)

	cfg.Workers = -2
	_, err = cfg.MatchOptions()
	assert.ErrorIs(t, err, match.ErrBadWorkers)
}

// TestConfig_Flags parses a command line into the bound fields.
func TestConfig_Flags(t *testing.T) {
	cfg := bench.DefaultConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.Flags(fs)

	require.NoError(t, fs.Parse([]string{"--sorted", "--workers=4", "--repeat", "3", "--format=yaml", "--tie-break=any"}))
	assert.True(t, cfg.Sorted)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 3, cfg.Repeat)
	assert.Equal(t, bench.FormatYAML, cfg.Format)
	assert.Equal(t, "any", cfg.TieBreak)
	assert.Equal(t, int64(42), cfg.Seed, "untouched flags keep defaults")
	assert.True(t, cfg.Verify, "verification is on by default")
	assert.False(t, cfg.Quiet)

	require.NoError(t, fs.Parse([]string{"--verify=false", "--quiet"}))
	assert.False(t, cfg.Verify)
	assert.True(t, cfg.Quiet)
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// TestLoadFile overlays YAML values and rejects unknown keys.
func TestLoadFile(t *testing.T) {
	cfg := bench.DefaultConfig()
	require.NoError(t, bench.LoadFile(writeFile(t, "seed: 7\nrepeat: 5\nworkers: -1\n"), &cfg))
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 5, cfg.Repeat)
	assert.Equal(t, -1, cfg.Workers)
	assert.Equal(t, bench.FormatTable, cfg.Format, "absent keys keep their value")

	require.NoError(t, bench.LoadFile(writeFile(t, ""), &cfg), "empty file is fine")
	assert.Equal(t, 5, cfg.Repeat)

	assert.Error(t, bench.LoadFile(writeFile(t, "bogus: 1\n"), &cfg))
	assert.Error(t, bench.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), &cfg))
}

// TestApplyFile keeps explicit flags over file values.
func TestApplyFile(t *testing.T) {
	cfg := bench.DefaultConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.Flags(fs)
	require.NoError(t, fs.Parse([]string{"--repeat=9"}))

	require.NoError(t, bench.ApplyFile(fs, writeFile(t, "repeat: 2\nseed: 11\n"), &cfg))
	assert.Equal(t, 9, cfg.Repeat, "flag wins over file")
	assert.Equal(t, int64(11), cfg.Seed, "file wins over default")
}
