package InputParameters

import (
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
)

// Request is a single evaluation read from a batch file. Imag, when present,
// holds the imaginary parts of Args and selects complex evaluation.
type Request struct {
	Label    string    `json:"Label"`
	Function string    `json:"Function"`
	Args     []float64 `json:"Args"`
	Imag     []float64 `json:"Imag,omitempty"`
}

// Parameters obtained from the YAML batch file
type BatchParameters struct {
	Title    string    `json:"Title"`
	Format   string    `json:"Format"` // Printf verb for real results, default %.15g
	Requests []Request `json:"Requests"`
}

// Arity gives the number of arguments each function takes.
var Arity = map[string]int{
	"RF":     3,
	"RC":     2,
	"RJ":     4,
	"RD":     3,
	"RG":     3,
	"K":      1,
	"KPRIME": 1,
	"E":      1,
	"D":      1,
	"PI":     2, // n, m
	"NOME":   1,
	"F":      2, // phi, m
	"EPHI":   2,
	"DPHI":   2,
	"PIPHI":  3, // phi, n, m
	"JACOBI": 2, // m, u
}

// ComplexCapable lists the functions that accept Imag.
var ComplexCapable = map[string]bool{
	"RF": true, "RC": true, "RJ": true, "RD": true, "RG": true,
}

func (bp *BatchParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, bp); err != nil {
		return err
	}
	if bp.Format == "" {
		bp.Format = "%.15g"
	}
	return bp.Validate()
}

// Validate normalises function names to upper case and checks arities.
func (bp *BatchParameters) Validate() error {
	for i := range bp.Requests {
		r := &bp.Requests[i]
		r.Function = strings.ToUpper(strings.TrimSpace(r.Function))
		n, ok := Arity[r.Function]
		if !ok {
			return fmt.Errorf("request %d: unknown function %q", i, r.Function)
		}
		if len(r.Args) != n {
			return fmt.Errorf("request %d: %s takes %d arguments, got %d", i, r.Function, n, len(r.Args))
		}
		if len(r.Imag) != 0 {
			if !ComplexCapable[r.Function] {
				return fmt.Errorf("request %d: %s has no complex form", i, r.Function)
			}
			if len(r.Imag) != n {
				return fmt.Errorf("request %d: %d imaginary parts for %d arguments", i, len(r.Imag), n)
			}
		}
		if r.Label == "" {
			r.Label = fmt.Sprintf("%s#%d", r.Function, i)
		}
	}
	return nil
}

// Complex pairs Args with Imag.
func (r Request) Complex() (z []complex128) {
	z = make([]complex128, len(r.Args))
	for i := range r.Args {
		var im float64
		if i < len(r.Imag) {
			im = r.Imag[i]
		}
		z[i] = complex(r.Args[i], im)
	}
	return
}

func (r Request) IsComplex() bool { return len(r.Imag) != 0 }

func (bp *BatchParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", bp.Title)
	fmt.Printf("[%s]\t\t\t= Format\n", bp.Format)
	fmt.Printf("[%d]\t\t\t= Requests\n", len(bp.Requests))
	for _, r := range bp.Requests {
		fmt.Printf("%s%v\t= %s\n", r.Function, r.Args, r.Label)
	}
}
