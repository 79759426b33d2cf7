package calculator

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
)

func unary(name string, fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%s expects 1 argument, got %d", name, len(args))
		}
		v, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("%s expects a number, got %T", name, args[0])
		}
		return fn(v), nil
	}
}

var expressionFunctions = map[string]govaluate.ExpressionFunction{
	"abs":   unary("abs", math.Abs),
	"sqrt":  unary("sqrt", math.Sqrt),
	"cbrt":  unary("cbrt", math.Cbrt),
	"sin":   unary("sin", math.Sin),
	"cos":   unary("cos", math.Cos),
	"tan":   unary("tan", math.Tan),
	"asin":  unary("asin", math.Asin),
	"acos":  unary("acos", math.Acos),
	"atan":  unary("atan", math.Atan),
	"log":   unary("log", math.Log),
	"log2":  unary("log2", math.Log2),
	"log10": unary("log10", math.Log10),
	"exp":   unary("exp", math.Exp),
	"floor": unary("floor", math.Floor),
	"ceil":  unary("ceil", math.Ceil),
	"round": unary("round", math.Round),
	"pow": func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("pow expects 2 arguments, got %d", len(args))
		}
		x, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("pow expects numbers, got %T", args[0])
		}
		y, ok := args[1].(float64)
		if !ok {
			return nil, fmt.Errorf("pow expects numbers, got %T", args[1])
		}
		return math.Pow(x, y), nil
	},
}
