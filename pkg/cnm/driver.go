package cnm

// defaultReportInterval is K_report from spec.md section 4.6: the
// cancellation flag is polled and progress reported once per this many
// merges, when Options.ReportInterval is left at its zero value.
const defaultReportInterval = 100

// ProgressFunc is invoked every reportInterval merges with the number of
// merges completed so far and the maximum possible (|V|-1). It runs on the
// same goroutine that called TryCompute; it must not block indefinitely.
type ProgressFunc func(done, total int)

// CancelFunc reports whether the caller has asked the computation to stop.
// It is polled cooperatively, not preemptive: TryCompute checks it only at
// the same cadence as progress reporting and returns promptly afterward,
// without rolling back merges already applied.
type CancelFunc func() bool

// Result is what TryCompute returns on success: the final partition, named
// as Communities per spec.md section 6 ("each Community exposes its
// vertices sequence; no other Community member is part of the public
// contract" — callers needing degree/neighbors for diagnostics use the
// exported methods directly, but only Vertices is guaranteed stable across
// implementations of this spec).
type Result struct {
	Communities []*Community
	MergesDone  int
}

// Options configures a TryCompute call. Both callbacks are optional.
type Options struct {
	Progress ProgressFunc
	Cancel   CancelFunc

	// ReportInterval overrides defaultReportInterval when positive: the
	// cancellation flag is polled and Progress invoked once per this many
	// merges. Zero or negative means use defaultReportInterval.
	ReportInterval int
}

// TryCompute runs the Clauset-Newman-Moore / Wakita-Tsurumi agglomeration
// to completion (spec.md section 4.6): build the initial partition, then
// repeatedly pop the global maximum DeltaQ, merge it, and repeat, until the
// heap empties or the maximum drops strictly below zero.
//
// Cancellation is cooperative: if opts.Cancel reports true at a poll point,
// TryCompute returns a Cancelled error and the partial communities list is
// discarded — the caller must not use it. An invariant violation detected
// internally returns an Internal error instead; both are terminal, neither
// is retried.
func TryCompute(graph Graph, opts Options) (*Result, error) {
	const op = "Driver.TryCompute"

	state, err := build(graph)
	if err != nil {
		return nil, err
	}

	reportInterval := opts.ReportInterval
	if reportInterval <= 0 {
		reportInterval = defaultReportInterval
	}

	total := graph.VertexCount() - 1
	if total < 0 {
		total = 0
	}

	mergesDone := 0
	for {
		top, deltaQ, ok := state.globalHeap.TryTop()
		if !ok {
			break
		}

		if mergesDone%reportInterval == 0 {
			if opts.Cancel != nil && opts.Cancel() {
				return nil, cancelledErr(op)
			}
			if opts.Progress != nil {
				opts.Progress(mergesDone, total)
			}
		}

		if deltaQ < 0 {
			break
		}

		best := top.Best()
		if best == nil {
			return nil, internalErr(op, "P5", errTopHasNoBest)
		}

		if _, err := merge(state, top, best.Neighbor); err != nil {
			return nil, err
		}
		mergesDone++
	}

	if opts.Progress != nil {
		opts.Progress(mergesDone, total)
	}

	return &Result{
		Communities: state.liveCommunities(),
		MergesDone:  mergesDone,
	}, nil
}
