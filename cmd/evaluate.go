/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/notargets/gospecial/InputParameters"
	"github.com/notargets/gospecial/carlson"
	"github.com/notargets/gospecial/jacobi"
	"github.com/notargets/gospecial/legendre"
)

type realFunction func(a []float64) (float64, error)

type complexFunction func(z []complex128) (complex128, error)

var realFunctions = map[string]realFunction{
	"RF":     func(a []float64) (float64, error) { return carlson.RF(a[0], a[1], a[2]) },
	"RC":     func(a []float64) (float64, error) { return carlson.RC(a[0], a[1]) },
	"RJ":     func(a []float64) (float64, error) { return carlson.RJ(a[0], a[1], a[2], a[3]) },
	"RD":     func(a []float64) (float64, error) { return carlson.RD(a[0], a[1], a[2]) },
	"RG":     func(a []float64) (float64, error) { return carlson.RG(a[0], a[1], a[2]) },
	"K":      func(a []float64) (float64, error) { return legendre.BigK(a[0]) },
	"KPRIME": func(a []float64) (float64, error) { return legendre.BigKPrime(a[0]) },
	"E":      func(a []float64) (float64, error) { return legendre.BigE(a[0]) },
	"D":      func(a []float64) (float64, error) { return legendre.BigD(a[0]) },
	"PI":     func(a []float64) (float64, error) { return legendre.BigPi(a[0], a[1]) },
	"NOME":   func(a []float64) (float64, error) { return legendre.Nome(a[0]) },
	"F":      func(a []float64) (float64, error) { return legendre.BigF(a[0], a[1]) },
	"EPHI":   func(a []float64) (float64, error) { return legendre.BigEIncomplete(a[0], a[1]) },
	"DPHI":   func(a []float64) (float64, error) { return legendre.BigDIncomplete(a[0], a[1]) },
	"PIPHI":  func(a []float64) (float64, error) { return legendre.BigPiIncomplete(a[0], a[1], a[2]) },
}

var complexFunctions = map[string]complexFunction{
	"RF": func(z []complex128) (complex128, error) { return carlson.ComplexRF(z[0], z[1], z[2]) },
	"RC": func(z []complex128) (complex128, error) { return carlson.ComplexRC(z[0], z[1]) },
	"RJ": func(z []complex128) (complex128, error) { return carlson.ComplexRJ(z[0], z[1], z[2], z[3]) },
	"RD": func(z []complex128) (complex128, error) { return carlson.ComplexRD(z[0], z[1], z[2]) },
	"RG": func(z []complex128) (complex128, error) { return carlson.ComplexRG(z[0], z[1], z[2]) },
}

// evaluate runs one validated request and renders its value with the given
// printf verb.
func evaluate(r InputParameters.Request, format string) (string, error) {
	switch {
	case r.Function == "JACOBI":
		v := jacobi.Build(r.Args[0]).ValuesN(r.Args[1])
		return fmt.Sprintf("sn="+format+" cn="+format+" dn="+format, v.Sn, v.Cn, v.Dn), nil
	case r.IsComplex():
		value, err := complexFunctions[r.Function](r.Complex())
		if err != nil {
			return "", err
		}
		return formatComplex(value, format), nil
	}
	value, err := realFunctions[r.Function](r.Args)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(format, value), nil
}

func formatComplex(z complex128, format string) string {
	sign := "+"
	im := imag(z)
	if math.Signbit(im) {
		sign, im = "-", -im
	}
	return fmt.Sprintf(format+" %s "+format+"i", real(z), sign, im)
}

// parseArgs reads command line operands, "re,im" pairs mark complex values.
func parseArgs(function string, operands []string) (r InputParameters.Request, err error) {
	r.Function = function
	r.Args = make([]float64, len(operands))
	ims := make([]float64, len(operands))
	var isComplex bool
	for i, s := range operands {
		parts := strings.SplitN(s, ",", 2)
		if r.Args[i], err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
			return
		}
		if len(parts) == 2 {
			isComplex = true
			if ims[i], err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
				return
			}
		}
	}
	if isComplex {
		r.Imag = ims
	}
	return
}
