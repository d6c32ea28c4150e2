// Package rules compiles and evaluates the CEL conditions attached to game data.
package rules

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// Registry manages the CEL environment used by data-driven conditions.
type Registry struct {
	env *cel.Env
}

// Condition is a compiled boolean expression.
type Condition struct {
	Source  string
	program cel.Program
}

// NewRegistry initializes the CEL environment with the battle variables.
func NewRegistry() (*Registry, error) {
	env, err := cel.NewEnv(
		cel.Variable("player", cel.MapType(cel.StringType, cel.DynType)),
		cel.Variable("enemy", cel.MapType(cel.StringType, cel.DynType)),
	)
	if err != nil {
		return nil, err
	}
	return &Registry{env: env}, nil
}

// Compile type-checks an expression and prepares it for repeated evaluation.
// The expression must produce a bool.
func (r *Registry) Compile(expression string) (*Condition, error) {
	ast, iss := r.env.Compile(expression)
	if iss.Err() != nil {
		return nil, fmt.Errorf("compile %q: %w", expression, iss.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) && !ast.OutputType().IsExactType(cel.DynType) {
		return nil, fmt.Errorf("compile %q: expected bool result, got %s", expression, ast.OutputType())
	}
	prog, err := r.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program %q: %w", expression, err)
	}
	return &Condition{Source: expression, program: prog}, nil
}

// Holds evaluates the condition. A non-bool result is an error.
func (c *Condition) Holds(vars map[string]any) (bool, error) {
	out, _, err := c.program.Eval(vars)
	if err != nil {
		return false, fmt.Errorf("eval %q: %w", c.Source, err)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("eval %q: result %v is not a bool", c.Source, out.Value())
	}
	return b, nil
}
