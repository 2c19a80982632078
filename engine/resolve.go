package engine

import (
	"strings"

	"github.com/confpipe/confpipe/producer"
	"github.com/confpipe/confpipe/store"
)

// ResolveKwargs replaces every kwarg value in reference-sentinel form
// ("type__id", see store.IsKey) with the object stored under that key.
// Non-reference values pass through unchanged, so kwargs without sentinels
// come back structurally equal. A missing key is an
// UnresolvedReferenceError naming the key.
//
// Two escape hatches keep resolution predictable: a kwarg whose name ends
// in "_id" keeps the literal key string (for steps that want the id, not
// the object), and resolution is shallow: string elements of a []interface{}
// value are resolved one level deep, but maps and deeper nesting are left
// alone.
func ResolveKwargs(kw producer.Kwargs, st *store.Store) (producer.Kwargs, error) {
	out := make(producer.Kwargs, len(kw))
	for name, val := range kw {
		if strings.HasSuffix(name, "_id") {
			out[name] = val
			continue
		}
		resolved, err := resolveValue(val, st)
		if err != nil {
			return nil, err
		}
		out[name] = resolved
	}
	return out, nil
}

func resolveValue(val interface{}, st *store.Store) (interface{}, error) {
	switch v := val.(type) {
	case string:
		if !store.IsKey(v) {
			return val, nil
		}
		obj, ok := st.Get(v)
		if !ok {
			return nil, &UnresolvedReferenceError{Key: v}
		}
		return obj, nil
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, elem := range v {
			s, ok := elem.(string)
			if !ok || !store.IsKey(s) {
				out[i] = elem
				continue
			}
			obj, ok := st.Get(s)
			if !ok {
				return nil, &UnresolvedReferenceError{Key: s}
			}
			out[i] = obj
		}
		return out, nil
	default:
		return val, nil
	}
}
