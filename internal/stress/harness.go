package stress

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/mbuesch/avr-atomic/avratomic"
)

// Report summarizes one harness run.
type Report struct {
	// Stores is the total number of stores performed by all writers.
	Stores uint64

	// Loads is the total number of loads performed by all readers.
	Loads uint64

	// Torn counts loads that observed a byte no writer fully wrote.
	// Anything other than zero means the atomic primitive is broken.
	Torn uint64

	// Distinct is the number of different byte values observed.
	Distinct int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Clean reports whether the run observed no torn values.
func (r Report) Clean() bool {
	return r.Torn == 0
}

// Render writes a human-readable summary to w.
func (r Report) Render(w io.Writer) {
	fmt.Fprintln(w, "==================================")
	fmt.Fprintln(w, "avrstress: torn-value check")
	fmt.Fprintln(w, "==================================")
	fmt.Fprintf(w, "Stores:          %d\n", r.Stores)
	fmt.Fprintf(w, "Loads:           %d\n", r.Loads)
	fmt.Fprintf(w, "Distinct values: %d\n", r.Distinct)
	fmt.Fprintf(w, "Elapsed:         %s\n", r.Elapsed)
	if r.Clean() {
		fmt.Fprintln(w, "Result:          PASS (no torn values)")
	} else {
		fmt.Fprintf(w, "Result:          FAIL (%d torn observations)\n", r.Torn)
	}
}

// readerResult aggregates one reader goroutine's observations. Results are
// merged after all goroutines have joined, so no counter needs to be shared.
type readerResult struct {
	loads    uint64
	torn     uint64
	observed [256]bool
}

// Run executes the harness described by cfg and returns its Report.
//
// Writer i stores cfg.Values[i] cfg.Iterations times into one shared cell.
// Readers load until every writer has finished, classifying each observed
// byte as allowed (a writer constant or the initial zero) or torn.
func Run(cfg Config) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	var allowed [256]bool
	allowed[0] = true
	for _, v := range cfg.Values[:cfg.Writers] {
		allowed[v] = true
	}

	// The harness dogfoods the type under test: the stop flag is itself
	// an atomic bool cell.
	var cell avratomic.Cell[avratomic.Uint8]
	var stop avratomic.Cell[avratomic.Bool]

	start := time.Now()

	var writers sync.WaitGroup
	for i := 0; i < cfg.Writers; i++ {
		writers.Add(1)
		go func(v avratomic.Uint8) {
			defer writers.Done()
			for n := 0; n < cfg.Iterations; n++ {
				cell.Store(v)
			}
		}(avratomic.Uint8(cfg.Values[i]))
	}

	results := make([]readerResult, cfg.Readers)
	var readers sync.WaitGroup
	for i := 0; i < cfg.Readers; i++ {
		readers.Add(1)
		go func(res *readerResult) {
			defer readers.Done()
			for !stop.Load() {
				v := byte(cell.Load())
				res.loads++
				res.observed[v] = true
				if !allowed[v] {
					res.torn++
				}
			}
		}(&results[i])
	}

	writers.Wait()
	stop.Store(true)
	readers.Wait()

	report := Report{
		Stores:  uint64(cfg.Writers) * uint64(cfg.Iterations),
		Elapsed: time.Since(start),
	}
	var observed [256]bool
	for i := range results {
		report.Loads += results[i].loads
		report.Torn += results[i].torn
		for v, seen := range results[i].observed {
			if seen {
				observed[v] = true
			}
		}
	}
	for _, seen := range observed {
		if seen {
			report.Distinct++
		}
	}
	return report, nil
}
