package bench

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/liggitt/tabwriter"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/argmatch/internal/workload"
)

// Report is the outcome of one harness invocation.
type Report struct {
	Query     int    `yaml:"query"`
	Reference int    `yaml:"reference"`
	Sorted    bool   `yaml:"sorted"`
	TieBreak  string `yaml:"tie-break"`
	Workers   int    `yaml:"workers"`

	Runs       []time.Duration `yaml:"runs"`
	Best       time.Duration   `yaml:"best"`
	Mean       time.Duration   `yaml:"mean"`
	Throughput float64         `yaml:"keys-per-second"`

	Verified bool `yaml:"verified"`

	workload.Summary `yaml:",inline"`

	AllocBytes uint64 `yaml:"alloc-bytes"`
	Allocs     uint64 `yaml:"allocs"`
}

// finish derives Best, Mean and Throughput from Runs.
func (r *Report) finish() {
	if len(r.Runs) == 0 {
		return
	}
	var total time.Duration
	r.Best = r.Runs[0]
	for _, d := range r.Runs {
		total += d
		r.Best = min(r.Best, d)
	}
	r.Mean = total / time.Duration(len(r.Runs))
	if r.Best > 0 {
		r.Throughput = float64(r.Query) / r.Best.Seconds()
	}
}

// Write renders the report in the given format (FormatTable or FormatYAML).
func (r *Report) Write(w io.Writer, format string) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	case FormatTable:
		return r.writeTable(w)
	default:
		return fmt.Errorf("%w: unknown format %q", ErrBadConfig, format)
	}
}

func (r *Report) writeTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 5, 4, 3, ' ', 0)
	rows := [][2]string{
		{"Query keys", strconv.Itoa(r.Query)},
		{"Reference keys", strconv.Itoa(r.Reference)},
		{"Sorted reference", strconv.FormatBool(r.Sorted)},
		{"Tie-break", r.TieBreak},
		{"Workers", strconv.Itoa(r.Workers)},
		{"Runs", strconv.Itoa(len(r.Runs))},
		{"Best", r.Best.String()},
		{"Mean", r.Mean.String()},
		{"Throughput", fmt.Sprintf("%.2f keys/s", r.Throughput)},
	}
	if r.Verified {
		rows = append(rows,
			[2]string{"Matched", fmt.Sprintf("%d (%.2f%%)", r.Matched, 100*r.Rate())},
			[2]string{"Missed", strconv.Itoa(r.Missed)})
	} else {
		rows = append(rows, [2]string{"Verified", "false"})
	}
	rows = append(rows, [2]string{"Allocated", fmt.Sprintf("%dkB in %d objects", r.AllocBytes/1024, r.Allocs)})

	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return tw.Flush()
}
