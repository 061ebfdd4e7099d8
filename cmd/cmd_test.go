package cmd

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/notargets/gospecial/InputParameters"
	"github.com/notargets/gospecial/jacobi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEvaluate(t *testing.T) {
	request := func(function string, args ...string) InputParameters.Request {
		r, err := parseArgs(function, args)
		require.NoError(t, err)
		bp := &InputParameters.BatchParameters{Requests: []InputParameters.Request{r}}
		require.NoError(t, bp.Validate())
		return bp.Requests[0]
	}
	value := func(s string) float64 {
		v, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err)
		return v
	}
	{ // Real path
		out, err := evaluate(request("rf", "1", "2", "0"), "%.17g")
		require.NoError(t, err)
		assert.InDelta(t, 1.3110287771461, value(out), 1e-13)

		out, err = evaluate(request("RC", "0", "0.25"), "%.17g")
		require.NoError(t, err)
		assert.InDelta(t, math.Pi, value(out), 1e-15)

		out, err = evaluate(request("K", "0"), "%.17g")
		require.NoError(t, err)
		assert.InDelta(t, math.Pi/2, value(out), 1e-15)
	}
	{ // Complex path
		r := request("rf", "-1,1", "0,1", "0")
		assert.True(t, r.IsComplex())
		z, err := complexFunctions[r.Function](r.Complex())
		require.NoError(t, err)
		assert.InDelta(t, 0.79612586584234, real(z), 1e-13)
		assert.InDelta(t, -1.2138566698365, imag(z), 1e-13)
		out, err := evaluate(r, "%.3f")
		require.NoError(t, err)
		assert.Equal(t, "0.796 - 1.214i", out)
	}
	{ // Jacobi trio at u = 0
		out, err := evaluate(request("jacobi", "0.5", "0"), "%g")
		require.NoError(t, err)
		assert.Equal(t, "sn=0 cn=1 dn=1", out)
	}
	{ // Failures surface as errors
		_, err := evaluate(request("rf", "NaN", "1", "2"), "%g")
		assert.Error(t, err)
	}
}

func TestParseArgs(t *testing.T) {
	r, err := parseArgs("RJ", []string{"2", "3", "4", "-1, 1"})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 4, -1}, r.Args)
	assert.Equal(t, []float64{0, 0, 0, 1}, r.Imag)

	r, err = parseArgs("RD", []string{"1", "2", "3"})
	require.NoError(t, err)
	assert.False(t, r.IsComplex())

	_, err = parseArgs("RD", []string{"1", "two", "3"})
	assert.Error(t, err)
	_, err = parseArgs("RD", []string{"1", "2,x", "3"})
	assert.Error(t, err)
}

func TestFormatComplex(t *testing.T) {
	assert.Equal(t, "1 + 2i", formatComplex(complex(1, 2), "%g"))
	assert.Equal(t, "1 - 2i", formatComplex(complex(1, -2), "%g"))
	assert.Equal(t, "1 - 0i", formatComplex(complex(1, math.Copysign(0, -1)), "%g"))
}

func TestRunBatch(t *testing.T) {
	var bp InputParameters.BatchParameters
	require.NoError(t, bp.Parse([]byte(`
Title: fixtures
Requests:
  - Function: RG
    Args: [0, 16, 16]
  - Function: RD
    Args: [0, 2, 1]
  - Label: divergent
    Function: RD
    Args: [0, 0, 1]
`)))
	rows, failures := runBatch(&bp, zap.NewNop())
	assert.Equal(t, 1, failures)
	require.Len(t, rows, 3)
	assert.Equal(t, "RG#0", rows[0][0])
	assert.Equal(t, "0, 16, 16", rows[0][2])
	assert.True(t, strings.HasPrefix(rows[0][3], "3.14159265358979"))
	assert.True(t, strings.HasPrefix(rows[1][3], "1.7972103521033"))
	assert.True(t, strings.HasPrefix(rows[2][3], "error: "))

	table := renderTable(bp.Title, []string{"Label", "Function", "Args", "Value"}, rows)
	assert.Contains(t, table, "fixtures")
	assert.Contains(t, table, "RD#1")
}

func TestRunSweep(t *testing.T) {
	cases, err := sweepCases("0.5:4:4", "0:0.9:10")
	require.NoError(t, err)
	require.Len(t, cases, 6)
	for _, c := range cases {
		res := runSweep(c, 3)
		assert.Equal(t, len(c.points), res.points, c.name)
		assert.Zero(t, res.failures, c.name)
		assert.Less(t, res.max, 1e-12, c.name)
		assert.LessOrEqual(t, res.mean, res.max, c.name)
		assert.Equal(t, (len(c.points)+2)/3, res.bucket, c.name)
		assert.Len(t, res.row(), 7)
	}
	assert.Len(t, cases[0].points, 64)
	assert.Len(t, cases[4].points, 100)

	_, err = sweepCases("0:1", "0:1:2")
	assert.Error(t, err)
}

func TestJacobiRows(t *testing.T) {
	rows := jacobiRows(jacobi.Build(0.5), 0, "%g")
	assert.Equal(t, [][]string{
		{"sn cn dn", "0", "1", "1"},
		{"cs ds ns", "+Inf", "+Inf", "+Inf"},
		{"dc nc sc", "1", "1", "0"},
		{"nd sd cd", "1", "0", "1"},
	}, rows)
}

func TestCommands(t *testing.T) {
	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&out)
		rootCmd.SetArgs(args)
		err := rootCmd.Execute()
		return out.String(), err
	}
	out, err := run("eval", "rf", "1", "2", "4", "--format", "%.10f")
	require.NoError(t, err)
	assert.Equal(t, "0.6850858166\n", out)

	_, err = run("eval", "zeta", "1")
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
Requests:
  - Function: RJ
    Args: [0, 1, 2, 3]
`), 0644))
	out, err = run("batch", "-I", file, "--format", "%.14f")
	require.NoError(t, err)
	assert.Contains(t, out, "0.77688623778582")

	out, err = run("jacobi", "--m", "0.5", "--u", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "sn cn dn")
}
