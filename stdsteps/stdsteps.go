package stdsteps

import (
	"context"
	"fmt"

	"github.com/confpipe/confpipe/producer"
	"github.com/confpipe/confpipe/store"
)

// KV is a producer.Factory for building map[string]interface{} objects.
//
// Steps: "set" (kwargs are copied into the map as-is), "merge" (kwarg
// "with" must resolve to a map[string]interface{}, whose entries are copied
// in), "del" (kwarg "key" removes an entry), "pick" (kwarg "keys" lists the
// entries to keep, the rest are dropped).
func KV(st *store.Store, oid string) producer.Producer {
	return producer.Func(
		func(ctx context.Context, init interface{}) (interface{}, error) {
			switch m := init.(type) {
			case nil:
				return map[string]interface{}{}, nil
			case map[string]interface{}:
				out := make(map[string]interface{}, len(m))
				for k, v := range m {
					out[k] = v
				}
				return out, nil
			default:
				return nil, fmt.Errorf("kv %s: init must be a map, got %T", oid, init)
			}
		},
		map[string]producer.StepFunc{
			"set": func(ctx context.Context, obj interface{}, kw producer.Kwargs) (interface{}, error) {
				m := obj.(map[string]interface{})
				for k, v := range kw {
					m[k] = v
				}
				return m, nil
			},
			"merge": func(ctx context.Context, obj interface{}, kw producer.Kwargs) (interface{}, error) {
				m := obj.(map[string]interface{})
				with, ok := kw["with"].(map[string]interface{})
				if !ok {
					return nil, fmt.Errorf("kv %s: merge kwarg \"with\" must resolve to a map, got %T", oid, kw["with"])
				}
				for k, v := range with {
					m[k] = v
				}
				return m, nil
			},
			"del": func(ctx context.Context, obj interface{}, kw producer.Kwargs) (interface{}, error) {
				m := obj.(map[string]interface{})
				key, ok := kw["key"].(string)
				if !ok {
					return nil, fmt.Errorf("kv %s: del kwarg \"key\" must be a string", oid)
				}
				delete(m, key)
				return m, nil
			},
			"pick": func(ctx context.Context, obj interface{}, kw producer.Kwargs) (interface{}, error) {
				m := obj.(map[string]interface{})
				keys, ok := kw["keys"].([]interface{})
				if !ok {
					return nil, fmt.Errorf("kv %s: pick kwarg \"keys\" must be a list of entry names", oid)
				}
				out := make(map[string]interface{}, len(keys))
				for _, k := range keys {
					name, ok := k.(string)
					if !ok {
						return nil, fmt.Errorf("kv %s: pick entry name must be a string, got %T", oid, k)
					}
					if v, ok := m[name]; ok {
						out[name] = v
					}
				}
				return out, nil
			},
		},
	)
}

// Counter is a producer.Factory for int objects.
//
// Steps: "add" (kwarg "n"), "mul" (kwarg "n"), "set" (kwarg "n"). A nil
// init starts at 0; an int init is used as-is.
func Counter(st *store.Store, oid string) producer.Producer {
	arg := func(kw producer.Kwargs) (int, error) {
		n, ok := kw["n"].(int)
		if !ok {
			return 0, fmt.Errorf("counter %s: kwarg \"n\" must be an int, got %T", oid, kw["n"])
		}
		return n, nil
	}
	return producer.Func(
		func(ctx context.Context, init interface{}) (interface{}, error) {
			switch v := init.(type) {
			case nil:
				return 0, nil
			case int:
				return v, nil
			default:
				return nil, fmt.Errorf("counter %s: init must be an int, got %T", oid, init)
			}
		},
		map[string]producer.StepFunc{
			"add": func(ctx context.Context, obj interface{}, kw producer.Kwargs) (interface{}, error) {
				n, err := arg(kw)
				if err != nil {
					return nil, err
				}
				return obj.(int) + n, nil
			},
			"mul": func(ctx context.Context, obj interface{}, kw producer.Kwargs) (interface{}, error) {
				n, err := arg(kw)
				if err != nil {
					return nil, err
				}
				return obj.(int) * n, nil
			},
			"set": func(ctx context.Context, obj interface{}, kw producer.Kwargs) (interface{}, error) {
				n, err := arg(kw)
				if err != nil {
					return nil, err
				}
				return n, nil
			},
		},
	)
}
