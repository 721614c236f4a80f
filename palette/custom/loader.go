// Package custom provides a bridge between the Go core and Lua-based palette scripts.
package custom

import (
	"fmt"

	libs "github.com/metafates/mangal-lua-libs"
	"github.com/spectra-cli/spectra/color"
	"github.com/spectra-cli/spectra/constant"
	"github.com/spectra-cli/spectra/filesystem"
	"github.com/spectra-cli/spectra/util"
	lua "github.com/yuin/gopher-lua"
)

// Load executes a Lua palette script and extracts its anchor colors.
// The script must define a global Colors() function returning a table of
// color tokens (hex strings or palette names).
func Load(path string) (name string, colors []color.Color, err error) {
	script, err := filesystem.API().ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("read palette script: %w", err)
	}

	state := lua.NewState()
	defer state.Close()
	libs.Preload(state)

	name = util.FileStem(path)

	if err = state.DoString(string(script)); err != nil {
		return "", nil, fmt.Errorf("execute palette %s: %w", name, err)
	}

	// Validation
	fn := state.GetGlobal(constant.PaletteColorsFn)
	if fn.Type() != lua.LTFunction {
		return "", nil, fmt.Errorf("function %s is required but not defined in %s", constant.PaletteColorsFn, name)
	}

	if err = state.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}); err != nil {
		return "", nil, fmt.Errorf("call %s in %s: %w", constant.PaletteColorsFn, name, err)
	}

	ret := state.Get(-1)
	state.Pop(1)

	table, ok := ret.(*lua.LTable)
	if !ok {
		return "", nil, fmt.Errorf("%s in %s must return a table of color tokens", constant.PaletteColorsFn, name)
	}

	var parseErr error
	table.ForEach(func(_, value lua.LValue) {
		if parseErr != nil {
			return
		}
		c, err := color.Parse(value.String())
		if err != nil {
			parseErr = fmt.Errorf("palette %s: %w", name, err)
			return
		}
		colors = append(colors, c)
	})
	if parseErr != nil {
		return "", nil, parseErr
	}

	if len(colors) < 2 {
		return "", nil, fmt.Errorf("palette %s must define at least two colors, got %d", name, len(colors))
	}

	return name, colors, nil
}
