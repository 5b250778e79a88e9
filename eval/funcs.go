package eval

import "github.com/jingolang/jingo/value"

// builtins is the base binding table every render starts with: the
// mandatory "raw" function, plus the operator functions the parser's
// precedence-climbing desugars binary operators into. The operator
// functions don't split Int/Float the way the builtin math functions
// in a Soy-derived runtime would; jingo's Number is a single type.
var builtins = map[string]value.Function{
	"raw": funcRaw,

	"any": boolFunc(func(a, b bool) bool { return a || b }),
	"all": boolFunc(func(a, b bool) bool { return a && b }),

	"equals":  cmpFunc(func(a, b value.Value) bool { return valuesEqual(a, b) }),
	"nequals": cmpFunc(func(a, b value.Value) bool { return !valuesEqual(a, b) }),

	"greater":       numCmpFunc(func(a, b float64) bool { return a > b }),
	"greaterEquals": numCmpFunc(func(a, b float64) bool { return a >= b }),
	"less":          numCmpFunc(func(a, b float64) bool { return a < b }),
	"lessEquals":    numCmpFunc(func(a, b float64) bool { return a <= b }),

	"sum":        numFunc(func(a, b float64) float64 { return a + b }),
	"difference": numFunc(func(a, b float64) float64 { return a - b }),
	"product":    numFunc(func(a, b float64) float64 { return a * b }),
	"ratio":      numFunc(func(a, b float64) float64 { return a / b }),
	"int_ratio":  intDivFunc(func(a, b int64) int64 { return a / b }),
	"modulo":     intDivFunc(func(a, b int64) int64 { return a % b }),

	"concat": funcConcat,
}

// funcRaw returns its first positional argument re-wrapped as
// unescaped HTML, the engine's one mandatory built-in binding.
func funcRaw(args []value.Arg) value.Value {
	if len(args) == 0 {
		return value.Null{}
	}
	return value.Html(args[0].Value.Text())
}

func funcConcat(args []value.Arg) value.Value {
	var a, b value.Value = value.Null{}, value.Null{}
	if len(args) > 0 {
		a = args[0].Value
	}
	if len(args) > 1 {
		b = args[1].Value
	}
	return value.String(a.Text() + b.Text())
}

func toNumber(v value.Value) float64 {
	if n, ok := v.(value.Number); ok {
		return float64(n)
	}
	return 0
}

func numFunc(f func(a, b float64) float64) value.Function {
	return func(args []value.Arg) value.Value {
		var a, b float64
		if len(args) > 0 {
			a = toNumber(args[0].Value)
		}
		if len(args) > 1 {
			b = toNumber(args[1].Value)
		}
		return value.Number(f(a, b))
	}
}

// intDivFunc wraps an integer division/modulo operator, soft-failing to
// Null on a zero divisor rather than panicking the render.
func intDivFunc(f func(a, b int64) int64) value.Function {
	return func(args []value.Arg) value.Value {
		var a, b int64
		if len(args) > 0 {
			a = int64(toNumber(args[0].Value))
		}
		if len(args) > 1 {
			b = int64(toNumber(args[1].Value))
		}
		if b == 0 {
			return value.Null{}
		}
		return value.Number(f(a, b))
	}
}

func numCmpFunc(f func(a, b float64) bool) value.Function {
	return func(args []value.Arg) value.Value {
		var a, b float64
		if len(args) > 0 {
			a = toNumber(args[0].Value)
		}
		if len(args) > 1 {
			b = toNumber(args[1].Value)
		}
		return value.Bool(f(a, b))
	}
}

func boolFunc(f func(a, b bool) bool) value.Function {
	return func(args []value.Arg) value.Value {
		var a, b bool
		if len(args) > 0 {
			a = args[0].Value.Truthy()
		}
		if len(args) > 1 {
			b = args[1].Value.Truthy()
		}
		return value.Bool(f(a, b))
	}
}

func cmpFunc(f func(a, b value.Value) bool) value.Function {
	return func(args []value.Arg) value.Value {
		var a, b value.Value = value.Null{}, value.Null{}
		if len(args) > 0 {
			a = args[0].Value
		}
		if len(args) > 1 {
			b = args[1].Value
		}
		return value.Bool(f(a, b))
	}
}

// valuesEqual compares two values for the "equals"/"nequals"
// operators. Numbers and bools compare by underlying Go equality, and
// a Null left operand equals only a Null; for any other left operand
// the two sides compare by canonical text, which is sufficient for
// strings and gives a deterministic answer for lists/maps/html too.
func valuesEqual(a, b value.Value) bool {
	switch av := a.(type) {
	case value.Number:
		bv, ok := b.(value.Number)
		return ok && av == bv
	case value.Bool:
		bv, ok := b.(value.Bool)
		return ok && av == bv
	case value.Null:
		_, ok := b.(value.Null)
		return ok
	default:
		return a.Text() == b.Text()
	}
}
