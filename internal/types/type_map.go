package types

import (
	"fmt"

	"github.com/banglascript/transpiler/internal/ast"
)

// MapType returns the TypeScript annotation for a source type keyword. The
// switch is kept exhaustive over ast.VarTypes.
func MapType(t ast.VarType) string {
	switch t {
	case ast.NumberType:
		return "number"
	case ast.BooleanType:
		return "boolean"
	case ast.StringType:
		return "string"
	case ast.ArrayType:
		return "any[]"
	case ast.NumberArrayType:
		return "number[]"
	case ast.StringArrayType:
		return "string[]"
	default:
		panic(fmt.Sprintf("MapType(): received illegal var type: %d", t))
	}
}
