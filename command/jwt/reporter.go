package jwt

import (
	"fmt"
	"io"
	"time"

	"github.com/jwtsec/jwtattack/crack"
)

// progressReporter renders scan progress as a single rewritten line:
// attempts so far, wordlist size and the current rate. Output is throttled
// so the hot loop is not dominated by terminal writes.
type progressReporter struct {
	w        io.Writer
	interval time.Duration

	total   int
	last    time.Time
	lastN   int
	printed bool
}

func newProgressReporter(w io.Writer) *progressReporter {
	return &progressReporter{w: w, interval: time.Second}
}

func (r *progressReporter) Start(total int) {
	r.total = total
	r.last = time.Now()
	r.lastN = 0
	r.printed = false
}

func (r *progressReporter) Attempt(n int) {
	now := time.Now()
	elapsed := now.Sub(r.last)
	if elapsed < r.interval {
		return
	}
	rate := float64(n-r.lastN) / elapsed.Seconds()
	fmt.Fprintf(r.w, "\rtrying %d/%d secrets (%.0f/s)", n, r.total, rate)
	r.last = now
	r.lastN = n
	r.printed = true
}

func (r *progressReporter) Done(crack.Outcome) {
	// Terminate the rewritten line so the outcome starts on its own.
	if r.printed {
		fmt.Fprintln(r.w)
	}
}
