package when

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/FringeDweller/dots/internal"
	"github.com/FringeDweller/dots/precheck"
)

// Whenable is an item gated by a template statement over host facts, such as `isArch` or `exists "~/.xinitrc"`.
type Whenable interface {
	RunWhen() string
}

// EvalStatement renders the statement as a template action and reads the result as a boolean. Output that is not
// a boolean is an error rather than a false.
func EvalStatement(statement string) (bool, error) {
	statement = strings.TrimSpace(statement)
	if statement == "" {
		return true, nil
	}

	tmpl, err := template.New("when").Funcs(precheck.FactFns).Parse("{{" + statement + "}}")
	if err != nil {
		return false, fmt.Errorf("error parsing statement %q: %v", statement, err)
	}

	var out strings.Builder
	if err = tmpl.Execute(&out, nil); err != nil {
		return false, fmt.Errorf("error evaluating statement %q: %v", statement, err)
	}

	result, err := strconv.ParseBool(out.String())
	if err != nil {
		return false, fmt.Errorf("statement %q evaluated to %q, not a boolean", statement, out.String())
	}

	return result, nil
}

func ShouldRun(whenable Whenable) bool {
	shouldRun, err := EvalStatement(whenable.RunWhen())
	if err != nil {
		internal.Log.Warningf("%v", err)
		return false
	}

	return shouldRun
}
