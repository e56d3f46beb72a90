package irtext

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cuejson "cuelang.org/go/encoding/json"
)

//go:embed program.cue
var schemaSource string

// SchemaError collects every constraint violation found when unifying a
// document with the embedded schema.
type SchemaError struct {
	Problems []string
}

func (e *SchemaError) Error() string {
	if len(e.Problems) == 1 {
		return "schema: " + e.Problems[0]
	}
	return fmt.Sprintf("schema: %d violations:\n  %s", len(e.Problems), strings.Join(e.Problems, "\n  "))
}

// ValidateJSON checks a JSON program document against the embedded CUE
// schema. All violations are collected, not just the first.
func ValidateJSON(data []byte) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSource, cue.Filename("program.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling schema: %w", err)
	}
	expr, err := cuejson.Extract("program.json", data)
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}
	value := ctx.BuildExpr(expr)
	if err := value.Err(); err != nil {
		return fmt.Errorf("building document value: %w", err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Program")).Unify(value)
	if err := unified.Validate(cue.Concrete(true), cue.Final()); err != nil {
		se := &SchemaError{}
		for _, sub := range cueerrors.Errors(err) {
			se.Problems = append(se.Problems, sub.Error())
		}
		return se
	}
	return nil
}
