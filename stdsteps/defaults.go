package stdsteps

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/confpipe/confpipe/cnfg"
	"github.com/confpipe/confpipe/producer"
	"github.com/confpipe/confpipe/store"
)

// Path is a producer.Factory whose object is a directory path string:
// a string init is passed through, a nil init becomes the working
// directory. Other sections reference it as "path__default" (with
// StandardDefaults) instead of hard-coding paths into every step.
func Path(st *store.Store, oid string) producer.Producer {
	return producer.Func(
		func(ctx context.Context, init interface{}) (interface{}, error) {
			switch v := init.(type) {
			case nil:
				return os.Getwd()
			case string:
				return v, nil
			default:
				return nil, fmt.Errorf("path %s: init must be a string, got %T", oid, init)
			}
		},
		nil,
	)
}

// Logger is a producer.Factory whose object is a *slog.Logger: a
// *slog.Logger init is passed through, a nil init becomes slog.Default().
func Logger(st *store.Store, oid string) producer.Producer {
	return producer.Func(
		func(ctx context.Context, init interface{}) (interface{}, error) {
			switch v := init.(type) {
			case nil:
				return slog.Default(), nil
			case *slog.Logger:
				return v, nil
			default:
				return nil, fmt.Errorf("logger %s: init must be a *slog.Logger, got %T", oid, init)
			}
		},
		nil,
	)
}

// Env is a producer.Factory whose object is a map[string]string snapshot of
// environment variables. Step "capture" reads the variables named by the
// "names" kwarg (a list of strings) into the map; unset variables come back
// empty.
func Env(st *store.Store, oid string) producer.Producer {
	return producer.Func(
		func(ctx context.Context, init interface{}) (interface{}, error) {
			return map[string]string{}, nil
		},
		map[string]producer.StepFunc{
			"capture": func(ctx context.Context, obj interface{}, kw producer.Kwargs) (interface{}, error) {
				m := obj.(map[string]string)
				names, ok := kw["names"].([]interface{})
				if !ok {
					return nil, fmt.Errorf("env %s: kwarg \"names\" must be a list of variable names", oid)
				}
				for _, n := range names {
					name, ok := n.(string)
					if !ok {
						return nil, fmt.Errorf("env %s: variable name must be a string, got %T", oid, n)
					}
					m[name] = os.Getenv(name)
				}
				return m, nil
			},
		},
	)
}

// StandardDefaults returns a defaults registry with the stock "path" and
// "logger" sections at priority 0, so any priority-1 section can reference
// "path__default" and "logger__default" out of the box.
func StandardDefaults() *cnfg.Defaults {
	d := cnfg.NewDefaults()
	d.Register("path", cnfg.Section{
		"default": {Producer: producer.Factory(Path), Priority: cnfg.Priority(0)},
	})
	d.Register("logger", cnfg.Section{
		"default": {Producer: producer.Factory(Logger), Priority: cnfg.Priority(0)},
	})
	return d
}
