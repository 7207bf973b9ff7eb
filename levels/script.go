package levels

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/geodash/common"
	"github.com/milk9111/geodash/obj"
)

// scriptTimeout bounds a level script so a runaway loop cannot hang the
// game at load time.
const scriptTimeout = 2 * time.Second

// scriptModules are the tengo stdlib modules level scripts may import.
var scriptModules = []string{"math", "rand", "fmt", "text"}

// RunScript executes a tengo level script. The script builds the level by
// calling functions on the global `level` object:
//
//	level.block(x, y, w, h)
//	level.spike(x, y, w, h, flip)   // flip is optional, default false
//	level.orb(x, y, d)
//
// and may read level.width, level.height, level.ground, level.ceiling and
// level.player_size.
func RunScript(name string, src []byte) (*Layout, error) {
	lay := &Layout{}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(scriptModules...))
	if err := script.Add("level", scriptAPI(lay)); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, name, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), scriptTimeout)
	defer cancel()
	if err := compiled.RunContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, name, err)
	}
	return lay, nil
}

func scriptAPI(lay *Layout) *tengo.ImmutableMap {
	values := map[string]tengo.Object{
		"width":       &tengo.Float{Value: common.BaseWidth},
		"height":      &tengo.Float{Value: common.BaseHeight},
		"ground":      &tengo.Float{Value: common.GroundYNormal},
		"ceiling":     &tengo.Float{Value: common.GroundYFlip},
		"player_size": &tengo.Float{Value: common.PlayerSize},
	}

	values["block"] = &tengo.UserFunction{Name: "block", Value: func(args ...tengo.Object) (tengo.Object, error) {
		v, err := scriptNumbers("block", args, 4)
		if err != nil {
			return nil, err
		}
		lay.Blocks = append(lay.Blocks, obj.NewBlock(v[0], v[1], v[2], v[3]))
		return tengo.UndefinedValue, nil
	}}

	values["spike"] = &tengo.UserFunction{Name: "spike", Value: func(args ...tengo.Object) (tengo.Object, error) {
		flip := false
		if len(args) == 5 {
			b, ok := args[4].(*tengo.Bool)
			if !ok {
				return nil, fmt.Errorf("spike: flip is %s, not a bool", args[4].TypeName())
			}
			flip = !b.IsFalsy()
			args = args[:4]
		}
		v, err := scriptNumbers("spike", args, 4)
		if err != nil {
			return nil, err
		}
		lay.Spikes = append(lay.Spikes, obj.NewSpike(v[0], v[1], v[2], v[3], flip))
		return tengo.UndefinedValue, nil
	}}

	values["orb"] = &tengo.UserFunction{Name: "orb", Value: func(args ...tengo.Object) (tengo.Object, error) {
		v, err := scriptNumbers("orb", args, 3)
		if err != nil {
			return nil, err
		}
		lay.Orbs = append(lay.Orbs, obj.NewOrb(v[0], v[1], v[2]))
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func scriptNumbers(fn string, args []tengo.Object, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s: want %d arguments, got %d", fn, n, len(args))
	}
	out := make([]float64, n)
	for i, a := range args {
		v, ok := tengo.ToFloat64(a)
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s: argument %d is %s, not a number", fn, i+1, a.TypeName())
		}
		out[i] = v
	}
	return out, nil
}
