package formatted

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/kr/pretty"
)

// Renderer produces the debug rendering of a value. It must not fail and must be
// safe for concurrent use.
type Renderer func(v any) string

// Verbose renders with %+v. It is the default. Errors implementing fmt.Formatter
// (github.com/pkg/errors for one) print their detailed form.
func Verbose(v any) string { return fmt.Sprintf("%+v", v) }

// GoSyntax renders with %#v, honoring fmt.GoStringer.
func GoSyntax(v any) string { return fmt.Sprintf("%#v", v) }

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

// Spew renders a full dump of v with go-spew. Output is deterministic: no pointer
// addresses, no capacities, sorted map keys.
func Spew(v any) string { return strings.TrimSuffix(spewConfig.Sdump(v), "\n") }

// Pretty renders v with kr/pretty's Go-syntax formatter.
func Pretty(v any) string { return fmt.Sprintf("%# v", pretty.Formatter(v)) }
