package producer

import (
	"context"

	"github.com/confpipe/confpipe/store"
)

// FuncProducer assembles a producer from plain functions: a create function
// and a step map. Use it when a full type is overkill:
//
//	counter := producer.Func(
//		func(ctx context.Context, init interface{}) (interface{}, error) { return 0, nil },
//		map[string]producer.StepFunc{
//			"add": func(ctx context.Context, obj interface{}, kw producer.Kwargs) (interface{}, error) {
//				return obj.(int) + kw["n"].(int), nil
//			},
//		},
//	)
type FuncProducer struct {
	CreateFunc func(ctx context.Context, init interface{}) (interface{}, error)
	StepMap    map[string]StepFunc
}

// Func returns a FuncProducer with the given create function and steps.
// A nil create passes init through unchanged.
func Func(create func(ctx context.Context, init interface{}) (interface{}, error), steps map[string]StepFunc) *FuncProducer {
	return &FuncProducer{CreateFunc: create, StepMap: steps}
}

// Create implements Producer.
func (p *FuncProducer) Create(ctx context.Context, init interface{}) (interface{}, error) {
	if p.CreateFunc == nil {
		return init, nil
	}
	return p.CreateFunc(ctx, init)
}

// Steps implements Producer.
func (p *FuncProducer) Steps() map[string]StepFunc { return p.StepMap }

// Factory returns a Factory that ignores the store and oid and always yields
// this producer. For producers that need the store, write a Factory by hand
// (usually embedding Base).
func (p *FuncProducer) Factory() Factory {
	return func(st *store.Store, oid string) Producer { return p }
}
