//go:build ignore

// generate_testdata.go creates synthetic practice logs for exercising
// primer --stats against realistic data volumes.
// Usage: go run scripts/generate_testdata.go
//
// Creates:
//
//	tests/testdata/practice/small.jsonl   (100 attempts)
//	tests/testdata/practice/medium.jsonl  (1000 attempts)
//	tests/testdata/practice/large.jsonl   (5000 attempts)
//	tests/testdata/practice/huge.jsonl    (20000 attempts)
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"

	"github.com/vanderheijden86/primer/internal/practicelog"
	"github.com/vanderheijden86/primer/pkg/chapter"
	"github.com/vanderheijden86/primer/pkg/content"
	"github.com/vanderheijden86/primer/pkg/xrand"
)

type datasetSpec struct {
	name string
	size int
}

var datasets = []datasetSpec{
	{"small", 100},
	{"medium", 1000},
	{"large", 5000},
	{"huge", 20000},
}

// kinds mirrors the exercise kinds the session widgets record.
var kinds = []string{"random", "state", "branch", "termination", "loop", "function", "tree"}

var prompts = map[string]string{
	"random":      "Step by step, what does (3 + 4) * 2 reduce to?",
	"state":       "apples starts at 3. After apples = apples + 1, what is apples?",
	"branch":      "coins = 6, price = 4. Which branch runs?",
	"termination": "while n > 0: n = n - 1. Does this stop?",
	"loop":        "How many times does the body run for count = 4?",
	"function":    "double_plus_one(3) returns what?",
	"tree":        "Which subterm reduces next in (1 + 2) * 3?",
}

func main() {
	outputDir := filepath.Join("tests", "testdata", "practice")
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "cannot create output directory: %v\n", err)
		os.Exit(1)
	}

	reg := chapter.Build(content.Chapters()...)
	var chapters []string
	for d := range reg.All() {
		chapters = append(chapters, d.Key)
	}

	for _, ds := range datasets {
		fmt.Printf("Generating %s dataset (%d attempts)...\n", ds.name, ds.size)

		// Reproducible per size.
		rng := xrand.New(uint64(ds.size))
		data, err := buildLog(rng, chapters, ds.size)
		if err != nil {
			fmt.Fprintf(os.Stderr, "building %s: %v\n", ds.name, err)
			os.Exit(1)
		}

		outputPath := filepath.Join(outputDir, ds.name+".jsonl")
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "writing %s: %v\n", outputPath, err)
			os.Exit(1)
		}
		fmt.Printf("  wrote %s (%d bytes)\n", outputPath, len(data))
	}

	fmt.Println("\nDone. Try: primer --stats with PRIMER_CONFIG pointing at one of the logs.")
}

// buildLog emits size attempts spread over the last 90 days, oldest first,
// with a correct rate that improves over time the way a learner's would.
func buildLog(rng *xrand.Rand, chapters []string, size int) ([]byte, error) {
	start := time.Now().UTC().Add(-90 * 24 * time.Hour)
	span := 90 * 24 * time.Hour

	var buf bytes.Buffer
	for i := 0; i < size; i++ {
		kind := kinds[rng.IntRange(0, int64(len(kinds)-1))]
		progress := float64(i) / float64(size)

		// 50% correct early on, climbing towards 90%.
		correct := rng.IntRange(0, 99) < int64(50+40*progress)

		answer := "right"
		if !correct {
			answer = "wrong"
		}

		a := practicelog.Attempt{
			Chapter: chapters[rng.IntRange(0, int64(len(chapters)-1))],
			Kind:    kind,
			Prompt:  prompts[kind],
			Answer:  answer,
			Correct: correct,
			At:      start.Add(time.Duration(float64(span) * progress)),
		}
		line, err := json.Marshal(a)
		if err != nil {
			return nil, err
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
