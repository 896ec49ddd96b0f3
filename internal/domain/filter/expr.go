package filter

import (
	"fmt"

	"github.com/google/cel-go/cel"

	"isoref/internal/core/apperror"
)

// Variable declares one name visible to expressions.
type Variable struct {
	Name string
	Type *cel.Type
}

// Env compiles selection expressions over a fixed set of variables.
type Env struct {
	env *cel.Env
}

// NewEnv declares vars in a fresh CEL environment.
func NewEnv(vars ...Variable) (*Env, error) {
	opts := make([]cel.EnvOption, 0, len(vars))
	for _, v := range vars {
		opts = append(opts, cel.Variable(v.Name, v.Type))
	}
	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}
	return &Env{env: env}, nil
}

// MustEnv is NewEnv that panics; for package-level declarations.
func MustEnv(vars ...Variable) *Env {
	e, err := NewEnv(vars...)
	if err != nil {
		panic(err)
	}
	return e
}

// Program is a compiled boolean expression.
type Program struct {
	source string
	prg    cel.Program
}

// Compile parses and type-checks expr. The result type must be bool.
func (e *Env) Compile(expr string) (*Program, error) {
	ast, iss := e.env.Compile(expr)
	if iss.Err() != nil {
		return nil, apperror.NewValidation("invalid filter expression").
			WithDetail("expr", expr).
			WithDetail("error", iss.Err().Error())
	}

	out := ast.OutputType()
	if !out.IsExactType(cel.BoolType) && !out.IsExactType(cel.DynType) {
		return nil, apperror.NewValidation("filter expression must evaluate to bool").
			WithDetail("expr", expr).
			WithDetail("type", out.String())
	}

	prg, err := e.env.Program(ast)
	if err != nil {
		return nil, apperror.NewValidation("invalid filter expression").
			WithDetail("expr", expr).
			WithDetail("error", err.Error())
	}
	return &Program{source: expr, prg: prg}, nil
}

// String returns the expression source.
func (p *Program) String() string { return p.source }

// Match evaluates the program against vars.
func (p *Program) Match(vars map[string]any) (bool, error) {
	out, _, err := p.prg.Eval(vars)
	if err != nil {
		return false, apperror.NewValidation("filter expression failed").
			WithDetail("expr", p.source).
			WithDetail("error", err.Error())
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, apperror.NewValidation("filter expression must evaluate to bool").
			WithDetail("expr", p.source)
	}
	return b, nil
}
