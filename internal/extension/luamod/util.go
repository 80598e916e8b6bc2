package luamod

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/upcase/internal/textcase"
)

// textConvert routes a raw Lua value through the transform's runtime type
// check. Lua's implicit number-to-string coercion is deliberately not
// applied: only a Lua string satisfies the textual-content contract.
func textConvert(v lua.LValue) (string, error) {
	return textcase.Convert(lvalueToAny(v))
}

// lvalueToAny converts a Lua value to a Go value.
func lvalueToAny(v lua.LValue) any {
	if v == nil || v == lua.LNil {
		return nil
	}

	switch val := v.(type) {
	case lua.LBool:
		return bool(val)
	case lua.LNumber:
		return float64(val)
	case lua.LString:
		return string(val)
	case *lua.LTable:
		result := make(map[string]any)
		val.ForEach(func(k, item lua.LValue) {
			result[k.String()] = lvalueToAny(item)
		})
		return result
	default:
		return v
	}
}
