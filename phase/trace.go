// SPDX-License-Identifier: MIT
// Package: kuranet/phase
//
// trace.go — in-memory traces and the space-delimited trace codec.
//
// Row format: "t θ1 θ2 … θn", single-space separated, one sample per line.

package phase

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/kuranet/matrix"
)

const (
	methodReadTrace  = "ReadTrace"
	methodWriteTrace = "WriteTrace"
)

// Trace is a sampled phase trajectory. Phases[s] is the state at Time[s].
type Trace struct {
	Time   []float64
	Phases [][]float64
}

// Len returns the number of samples.
func (t *Trace) Len() int { return len(t.Time) }

// Width returns the number of oscillators, or 0 for an empty trace.
func (t *Trace) Width() int {
	if len(t.Phases) == 0 {
		return 0
	}

	return len(t.Phases[0])
}

// Write appends a copy of (time, phases). All samples must share one width.
func (t *Trace) Write(time float64, phases []float64) error {
	if len(t.Phases) > 0 && len(phases) != t.Width() {
		return fmt.Errorf("Trace.Write: width %d, want %d: %w", len(phases), t.Width(), ErrDimensionMismatch)
	}
	t.Time = append(t.Time, time)
	t.Phases = append(t.Phases, append([]float64(nil), phases...))

	return nil
}

// Column returns the time series of oscillator i.
func (t *Trace) Column(i int) ([]float64, error) {
	if i < 0 || i >= t.Width() {
		return nil, fmt.Errorf("Trace.Column(%d) of width %d: %w", i, t.Width(), matrix.ErrOutOfRange)
	}
	out := make([]float64, len(t.Phases))
	for s, row := range t.Phases {
		out[s] = row[i]
	}

	return out, nil
}

// Window returns the samples with lo ≤ Time ≤ hi, sharing backing storage.
func (t *Trace) Window(lo, hi float64) *Trace {
	out := &Trace{}
	for s, tm := range t.Time {
		if tm < lo || tm > hi {
			continue
		}
		out.Time = append(out.Time, tm)
		out.Phases = append(out.Phases, t.Phases[s])
	}

	return out
}

// TraceWriter streams samples to an io.Writer in the trace format.
type TraceWriter struct {
	w     *csv.Writer
	width int
	rec   []string
}

// NewTraceWriter returns a writer; width 0 fixes the width on the first row.
func NewTraceWriter(w io.Writer, width int) *TraceWriter {
	cw := csv.NewWriter(w)
	cw.Comma = ' '

	return &TraceWriter{w: cw, width: width}
}

// Write emits one row.
func (tw *TraceWriter) Write(time float64, phases []float64) error {
	if tw.width == 0 {
		tw.width = len(phases)
	}
	if len(phases) != tw.width {
		return fmt.Errorf("TraceWriter.Write: width %d, want %d: %w", len(phases), tw.width, ErrDimensionMismatch)
	}
	tw.rec = tw.rec[:0]
	tw.rec = append(tw.rec, formatFloat(time))
	for _, v := range phases {
		tw.rec = append(tw.rec, formatFloat(v))
	}

	return tw.w.Write(tw.rec)
}

// Flush flushes buffered rows and reports any write error.
func (tw *TraceWriter) Flush() error {
	tw.w.Flush()

	return tw.w.Error()
}

// WriteTrace writes every sample of t to w.
func WriteTrace(w io.Writer, t *Trace) error {
	tw := NewTraceWriter(w, t.Width())
	for s, tm := range t.Time {
		if err := tw.Write(tm, t.Phases[s]); err != nil {
			return fmt.Errorf("%s: row %d: %w", methodWriteTrace, s, err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", methodWriteTrace, err)
	}

	return nil
}

// ReadTrace parses a trace with n oscillators per row. n ≤ 0 takes the width
// from the first row.
func ReadTrace(r io.Reader, n int) (*Trace, error) {
	cr := csv.NewReader(r)
	cr.Comma = ' '
	cr.ReuseRecord = true
	if n > 0 {
		cr.FieldsPerRecord = n + 1
	}

	t := &Trace{}
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %v: %w", methodReadTrace, err, ErrMalformedTrace)
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("%s: line %d has no phases: %w", methodReadTrace, line, ErrMalformedTrace)
		}
		tm, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: line %d time %q: %w", methodReadTrace, line, rec[0], ErrMalformedTrace)
		}
		row := make([]float64, len(rec)-1)
		for i, f := range rec[1:] {
			if row[i], err = strconv.ParseFloat(f, 64); err != nil {
				return nil, fmt.Errorf("%s: line %d field %d %q: %w", methodReadTrace, line, i+2, f, ErrMalformedTrace)
			}
		}
		t.Time = append(t.Time, tm)
		t.Phases = append(t.Phases, row)
	}

	return t, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
