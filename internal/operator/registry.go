package operator

import (
	"slices"

	"github.com/samber/lo"
)

// registry maps operator names to float64 or any instantiations
var registry = map[string]any{
	"abs":          Abs[float64],
	"add":          Add[float64],
	"attrgetter":   AttrGetter,
	"eq":           Eq[float64],
	"floordiv":     FloorDiv[int],
	"ge":           Ge[float64],
	"gt":           Gt[float64],
	"itemgetter":   ItemGetter[any],
	"le":           Le[float64],
	"lt":           Lt[float64],
	"methodcaller": MethodCaller,
	"mod":          Mod[int],
	"mul":          Mul[float64],
	"ne":           Ne[float64],
	"neg":          Neg[float64],
	"not":          Not,
	"pow":          Pow,
	"sub":          Sub[float64],
	"truediv":      TrueDiv[float64],
	"truth":        Truth,
}

// Names returns every registered operator name in sorted order
func Names() []string {
	names := lo.Keys(registry)
	slices.Sort(names)
	return names
}

// Lookup returns the operator registered under name
func Lookup(name string) (any, bool) {
	op, ok := registry[name]
	return op, ok
}
