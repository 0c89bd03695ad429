package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrDuplicateOutput is matched by the error of a batch job whose output
// path was already claimed by an earlier job.
var ErrDuplicateOutput = errors.New("duplicate output path")

// RunBatch runs every job with at most workers jobs in flight and returns
// one report per job, in job order.
//
// Failures are recorded in the reports and do not stop the other jobs.
// When two jobs resolve to the same output file, the first one keeps it and
// the later ones fail with ErrDuplicateOutput without being run. Jobs that
// have not started when ctx is cancelled are reported with ctx.Err().
// workers <= 0 means runtime.NumCPU().
func (r *Runner) RunBatch(ctx context.Context, jobs []Job, workers int) []Report {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	reports := make([]Report, len(jobs))
	claimed := make(map[string]int, len(jobs))
	var g errgroup.Group
	g.SetLimit(workers)

	for i, job := range jobs {
		if job.Output == "" {
			job.Output = DefaultOutputName(job.Input)
		}
		key := outputKey(job.Output)
		if first, ok := claimed[key]; ok {
			err := fmt.Errorf("%w: %s is also written by job %d (%s)",
				ErrDuplicateOutput, job.Output, first, jobs[first].Input)
			reports[i] = Report{Input: job.Input, Output: job.Output, Err: err, Failure: err.Error()}
			continue
		}
		claimed[key] = i

		i, job := i, job
		g.Go(func() error {
			rep, _ := r.Run(ctx, job)
			reports[i] = *rep
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for i := range reports {
		if reports[i].Err != nil {
			failed++
			r.log.Error().Err(reports[i].Err).Str("input", reports[i].Input).Msg("edge filter failed")
		}
	}
	r.log.Info().
		Int("jobs", len(jobs)).
		Int("failed", failed).
		Int("workers", workers).
		Msg("batch finished")

	return reports
}

// outputKey normalises an output path so that spellings of the same file
// compare equal.
func outputKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

// Failed returns the reports that carry an error.
func Failed(reports []Report) []Report {
	var out []Report
	for _, rep := range reports {
		if rep.Err != nil {
			out = append(out, rep)
		}
	}
	return out
}
