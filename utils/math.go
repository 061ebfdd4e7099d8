package utils

import "fmt"

// Linspace returns n evenly spaced samples over [start, end], end included.
func Linspace(start, end float64, n int) (v []float64) {
	switch {
	case n <= 0:
		return
	case n == 1:
		return []float64{start}
	}
	v = make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range v {
		v[i] = start + float64(i)*step
	}
	v[n-1] = end
	return
}

// ParseRange reads "start:end:n" into its three parts.
func ParseRange(s string) (start, end float64, n int, err error) {
	if _, err = fmt.Sscanf(s, "%g:%g:%d", &start, &end, &n); err != nil {
		err = fmt.Errorf("range %q, want start:end:count: %w", s, err)
	}
	return
}
