// Package verify checks the chapter catalog: every entry must build a
// document that passes validation. Chapters are checked in parallel and each
// failure is reported on its own, so one broken chapter never hides another.
package verify

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/vanderheijden86/primer/pkg/chapter"
	"github.com/vanderheijden86/primer/pkg/doc"
	"github.com/vanderheijden86/primer/pkg/metrics"
)

// Result is the outcome of checking a single chapter.
type Result struct {
	// Key is the chapter key.
	Key string

	// Title is the chapter title.
	Title string

	// Elements is the number of elements in the built document.
	Elements int

	// Err is set if the chapter failed to build or validate.
	Err error
}

// Run builds and validates every chapter in the registry. Results come back
// in display order, one per chapter, with individual failures captured as
// data rather than aborting the rest.
func Run(ctx context.Context, reg *chapter.Registry) []Result {
	descriptors := make([]chapter.Descriptor, 0, reg.Len())
	for d := range reg.All() {
		descriptors = append(descriptors, d)
	}

	results := make([]Result, len(descriptors))

	g, ctx := errgroup.WithContext(ctx)
	// Chapter builds are cheap but widget seeds can be arbitrarily deep.
	g.SetLimit(8)

	for i, d := range descriptors {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				results[i] = Result{Key: d.Key, Title: d.Title, Err: ctx.Err()}
				return nil
			default:
			}
			results[i] = check(d)
			return nil
		})
	}

	// Goroutines only ever return nil; failures live in the results.
	_ = g.Wait()

	return results
}

// check builds one chapter and validates the document. A panicking entry is
// a content bug and comes back as an error, not a crash.
func check(d chapter.Descriptor) (res Result) {
	res = Result{Key: d.Key, Title: d.Title}
	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("chapter %q panicked: %v", d.Key, r)
		}
	}()

	if d.Entry == nil {
		res.Err = fmt.Errorf("chapter %q has no entry", d.Key)
		return res
	}

	stop := metrics.Timer(metrics.ChapterBuild)
	document := d.Entry()
	stop()

	if err := doc.Validate(document); err != nil {
		res.Err = err
		return res
	}
	res.Elements = len(document.Elements)
	return res
}

// Failed returns how many results carry an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// Report writes one line per chapter and a closing summary. It returns the
// number of failed chapters so callers can pick an exit code.
func Report(w io.Writer, results []Result) int {
	width := 0
	for _, r := range results {
		if len(r.Key) > width {
			width = len(r.Key)
		}
	}

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "FAIL  %-*s  %v\n", width, r.Key, r.Err)
			continue
		}
		fmt.Fprintf(w, "ok    %-*s  %s (%d elements)\n", width, r.Key, r.Title, r.Elements)
	}

	failed := Failed(results)
	if failed > 0 {
		fmt.Fprintf(w, "\n%d of %d chapters failed\n", failed, len(results))
	} else {
		fmt.Fprintf(w, "\nall %d chapters ok\n", len(results))
	}
	return failed
}
