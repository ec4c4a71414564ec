package keys

import (
	"fmt"
	"reflect"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/sf-git-merge-driver/ir"
)

// exprExtractor evaluates a compiled expression against the scalar
// fields of a record, as in
//
//	layout + "." + (recordType ?? "")
type exprExtractor struct {
	src     string
	program *vm.Program
}

// CompileExpr compiles src into an Extractor. The expression sees each
// scalar field of the record as a string variable and must produce a
// string.
func CompileExpr(src string) (Extractor, error) {
	if src == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrExpr)
	}
	program, err := expr.Compile(src, expr.AllowUndefinedVariables(), expr.AsKind(reflect.String))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrExpr, src, err)
	}
	return &exprExtractor{src: src, program: program}, nil
}

func (x *exprExtractor) Key(record *ir.Node) (string, error) {
	if record == nil {
		return "", ErrNoKey
	}
	if record.IsScalar() {
		return record.Text(), nil
	}
	env := map[string]any{}
	for i, f := range record.Fields {
		if v := record.Values[i]; v.IsScalar() {
			env[f] = v.Text()
		}
	}
	out, err := expr.Run(x.program, env)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrExpr, x.src, err)
	}
	s, _ := out.(string)
	if s == "" {
		return "", fmt.Errorf("%w: %q produced no key", ErrNoKey, x.src)
	}
	return s, nil
}

func (x *exprExtractor) String() string {
	return x.src
}
