package model

import "errors"

// ErrLengthMismatch is returned when vectors that feed one calculation
// do not cover the same number of settlement periods. Mismatches are
// rejected up front; nothing is padded silently.
var ErrLengthMismatch = errors.New("input series must have the same length")

// ErrEmptySeries is returned when an operation requires at least one period.
var ErrEmptySeries = errors.New("series must not be empty")

// Series is an ordered sequence of per-period values, one entry per
// settlement period. Index position is the only identity. Calculators
// treat a Series as immutable: each stage returns a new Series rather
// than mutating its inputs.
type Series []float64

func (s Series) Len() int { return len(s) }

func (s Series) Sum() float64 {
	total := 0.0
	for _, v := range s {
		total += v
	}
	return total
}

func (s Series) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	return s.Sum() / float64(len(s))
}

func (s Series) Clone() Series {
	out := make(Series, len(s))
	copy(out, s)
	return out
}

// TileTo repeats the series until it covers n periods, truncating the
// final repetition. A source longer than n is truncated to the first n
// entries. The receiver is never modified.
func (s Series) TileTo(n int) (Series, error) {
	if len(s) == 0 {
		return nil, ErrEmptySeries
	}
	if n <= 0 {
		return nil, errors.New("target length must be positive")
	}
	out := make(Series, n)
	for i := 0; i < n; i++ {
		out[i] = s[i%len(s)]
	}
	return out, nil
}

// SameLen verifies that all series cover the same period count.
func SameLen(series ...Series) error {
	if len(series) == 0 {
		return nil
	}
	n := len(series[0])
	for _, s := range series[1:] {
		if len(s) != n {
			return ErrLengthMismatch
		}
	}
	return nil
}
