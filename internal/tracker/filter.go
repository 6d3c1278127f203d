package tracker

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/idilsaglam/tracalorie/internal/model"
)

func itemEnv(it model.Item) map[string]any {
	return map[string]any{
		"id":       it.ID,
		"name":     it.Name,
		"calories": it.Calories,
	}
}

// CompileFilter compiles a boolean expr-lang expression over id, name and
// calories, e.g. `calories >= 500 && name contains "Cake"`.
func CompileFilter(where string) (*vm.Program, error) {
	if strings.TrimSpace(where) == "" {
		return nil, fmt.Errorf("%w: filter expression is empty", ErrInvalidInput)
	}
	program, err := expr.Compile(where, expr.Env(itemEnv(model.Item{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: filter: %v", ErrInvalidInput, err)
	}
	return program, nil
}

// Filter returns the items matching where, in list order.
func (r *Repository) Filter(where string) ([]model.Item, error) {
	program, err := CompileFilter(where)
	if err != nil {
		return nil, err
	}
	out := []model.Item{}
	for _, it := range r.items {
		res, err := expr.Run(program, itemEnv(*it))
		if err != nil {
			return nil, fmt.Errorf("filter item %d: %w", it.ID, err)
		}
		if ok, _ := res.(bool); ok {
			out = append(out, *it)
		}
	}
	return out, nil
}
