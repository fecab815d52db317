//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

// Package timing records timing samples and renders profiling
// reports.
package timing

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/tabulate"
)

// ByteSize is a byte count rendered with a decimal unit.
type ByteSize uint64

func (s ByteSize) String() string {
	if s > 1000*1000*1000 {
		return fmt.Sprintf("%dGB", s/(1000*1000*1000))
	} else if s > 1000*1000 {
		return fmt.Sprintf("%dMB", s/(1000*1000))
	} else if s > 1000 {
		return fmt.Sprintf("%dkB", s/1000)
	} else {
		return fmt.Sprintf("%dB", s)
	}
}

// Timing records timing samples.
type Timing struct {
	Start   time.Time
	Samples []*Sample
}

// New creates a new Timing instance.
func New() *Timing {
	return &Timing{
		Start: time.Now(),
	}
}

// Sample adds a timing sample with label, the number of operations,
// and the number of bytes produced. The sample starts where the
// previous sample ended.
func (t *Timing) Sample(label string, ops int, bytes ByteSize) *Sample {
	start := t.Start
	if len(t.Samples) > 0 {
		start = t.Samples[len(t.Samples)-1].End
	}
	sample := &Sample{
		Label: label,
		Start: start,
		End:   time.Now(),
		Ops:   ops,
		Bytes: bytes,
	}
	t.Samples = append(t.Samples, sample)
	return sample
}

// Total returns the duration from the start until the end of the
// last sample.
func (t *Timing) Total() time.Duration {
	if len(t.Samples) == 0 {
		return 0
	}
	return t.Samples[len(t.Samples)-1].End.Sub(t.Start)
}

// Print prints the profiling report to out.
func (t *Timing) Print(out io.Writer) {
	if len(t.Samples) == 0 {
		return
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Op").SetAlign(tabulate.ML)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)
	tab.Header("Ops").SetAlign(tabulate.MR)
	tab.Header("ns/op").SetAlign(tabulate.MR)
	tab.Header("Bytes").SetAlign(tabulate.MR)

	total := t.Total()
	var totalBytes ByteSize
	for _, sample := range t.Samples {
		duration := sample.Duration()
		totalBytes += sample.Bytes

		row := tab.Row()
		row.Column(sample.Label)
		row.Column(duration.String())
		row.Column(fmt.Sprintf("%.2f%%",
			float64(duration)/float64(total)*100))
		row.Column(fmt.Sprintf("%d", sample.Ops))
		if sample.Ops > 0 {
			row.Column(fmt.Sprintf("%d",
				duration.Nanoseconds()/int64(sample.Ops)))
		} else {
			row.Column("")
		}
		row.Column(sample.Bytes.String())
	}

	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(total.String()).SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)
	row.Column(totalBytes.String()).SetFormat(tabulate.FmtBold)

	tab.Print(out)
}

// Sample contains information about one timing sample.
type Sample struct {
	Label string
	Start time.Time
	End   time.Time
	Ops   int
	Bytes ByteSize
}

// Duration returns the sample duration.
func (s *Sample) Duration() time.Duration {
	return s.End.Sub(s.Start)
}
