package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// Sample is one row of a travel-time sweep.
type Sample struct {
	X    float64
	Time float64
}

// ReadSweep parses the CSV written by the sweep command.
func ReadSweep(r io.Reader) ([]Sample, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) != 2 || header[0] != "crossing_x" || header[1] != "travel_time" {
		return nil, fmt.Errorf("unexpected header %v", header)
	}

	var samples []Sample
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		x, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(samples)+2, err)
		}
		t, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(samples)+2, err)
		}
		samples = append(samples, Sample{X: x, Time: t})
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("no samples")
	}
	return samples, nil
}

// Plateau finds the contiguous span around the sampled minimum whose
// times stay within relTol of it. A wide plateau means the crossing
// position barely matters; a narrow one means the optimum is sharp.
func Plateau(samples []Sample, relTol float64) (lo, hi int) {
	best := 0
	for i, s := range samples {
		if s.Time < samples[best].Time {
			best = i
		}
	}
	threshold := samples[best].Time + math.Max(math.Abs(samples[best].Time)*relTol, 1e-12)

	lo, hi = best, best
	for lo > 0 && samples[lo-1].Time <= threshold {
		lo--
	}
	for hi < len(samples)-1 && samples[hi+1].Time <= threshold {
		hi++
	}
	return lo, hi
}

func writeReport(w io.Writer, samples []Sample) {
	best := 0
	for i, s := range samples {
		if s.Time < samples[best].Time {
			best = i
		}
	}
	lo, hi := Plateau(samples, 1e-3)

	fmt.Fprintf(w, "samples: %d\n", len(samples))
	fmt.Fprintf(w, "crossing range: [%g, %g]\n", samples[0].X, samples[len(samples)-1].X)
	fmt.Fprintf(w, "least time: %.6g at x = %.6f\n", samples[best].Time, samples[best].X)
	fmt.Fprintf(w, "within 0.1%%: x in [%.6f, %.6f] (%d samples)\n",
		samples[lo].X, samples[hi].X, hi-lo+1)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: sweep_report <sweep.csv> [output.txt]")
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot open input file: %v\n", err)
		os.Exit(2)
	}
	defer f.Close()

	samples, err := ReadSweep(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot parse sweep: %v\n", err)
		os.Exit(3)
	}

	out := os.Stdout
	if len(os.Args) > 2 {
		out, err = os.Create(os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot create output file: %v\n", err)
			os.Exit(4)
		}
		defer out.Close()
	}

	writeReport(out, samples)
}
