// Package sortbench benchmarks and verifies in-memory sorting algorithms.
//
// # Overview
//
// sortbench drives repeated timed trials of each registered algorithm
// against generated datasets, detects when an algorithm has become too slow
// to keep testing (a hard time cap plus a growth-trend bail-out), and
// aggregates the results into a flat record list for reporting. A separate
// correctness suite checks that every algorithm produces a properly ordered
// output without mutating its input.
//
// # Architecture
//
// The package components, leaf to root:
//
//   - dataset.go      - Array generators (random, sorted, nearly sorted, ...)
//   - scenario.go     - Scenario catalog and compatibility filter
//   - algorithm.go    - Algorithm registry (name, sort function, domain)
//   - sorts.go        - The textbook sort implementations
//   - measure.go      - Timed, sampled measurement of one trial
//   - policy.go       - Bail-out policy (time cap + quadratic-trend check)
//   - schedule.go     - Size schedule builder
//   - aggregator.go   - Trial record collection and persistence sinks
//   - orchestrator.go - Top-level benchmark loop
//   - verify.go       - Correctness suite (ordering + non-mutation)
//
// Data flows one direction: registry + filter -> orchestrator -> generator
// -> measurement -> policy -> aggregator. The orchestrator is the only
// stateful coordinator; everything else is a pure function or a thin
// stateless service.
//
// # Quick Start
//
// Run the full suite with defaults and write the results as JSON:
//
//	runner := sortbench.NewRunner(
//	    sortbench.DefaultConfig(),
//	    sortbench.DefaultRegistry(),
//	    sortbench.DefaultScenarios(),
//	    slog.Default(),
//	)
//
//	results, err := runner.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	f, _ := os.Create("results.json")
//	defer f.Close()
//	_ = (&sortbench.JSONSink{W: f, Indent: true}).Write(results)
//
// # The Bail-Out Policy
//
// Two independent triggers abandon further, larger-size testing of an
// (algorithm, scenario) pair; either is sufficient:
//
//   - Hard time cap: average trial time exceeded MaxExecutionTime.
//   - Quadratic trend: time grew much faster than size between two
//     consecutive trials (degradation ratio above QuadraticThreshold).
//
// Once abandoned, a pair is permanently skipped for the rest of the run.
// The thresholds are policy choices, not derived values, so they live in
// Config rather than constants.
//
// # Timing Model
//
// Measurement is single-threaded and synchronous. Each trial averages over
// a sample count that steps down as arrays grow (200 samples for tiny
// arrays, 5 at ten thousand elements and beyond), trading statistical
// stability against total run time. Every sample sorts a fresh clone of the
// master array, so an algorithm can never corrupt shared input across
// samples. Introducing concurrency here would invalidate the measurements.
//
// # Testing
//
// The correctness suite is independent of the benchmark engine and shares
// only the registry and the compatibility filter:
//
//	func TestAlgorithms(t *testing.T) {
//	    for _, alg := range sortbench.DefaultRegistry().Algorithms() {
//	        err := sortbench.VerifyAlgorithm(alg,
//	            sortbench.DefaultScenarios(), sortbench.DefaultVerifyConfig())
//	        if err != nil {
//	            t.Errorf("%s: %v", alg.Name, err)
//	        }
//	    }
//	}
package sortbench
