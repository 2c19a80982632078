package producer

import (
	"context"
	"testing"

	"github.com/confpipe/confpipe/store"
)

func TestRegistry_RegisterDefault(t *testing.T) {
	reg := NewRegistry()
	p := Func(nil, nil)
	reg.Register("model", p.Factory())
	f, ok := reg.Default("model")
	if !ok || f == nil {
		t.Fatal("Default(model) should return factory")
	}
	if _, ok := reg.Default("missing"); ok {
		t.Error("Default(missing) should return false")
	}
}

func TestRegistry_Named(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterNamed("counter", Func(nil, nil).Factory())
	reg.RegisterNamed("accumulator", Func(nil, nil).Factory())
	if _, ok := reg.Named("counter"); !ok {
		t.Error("Named(counter) should return factory")
	}
	names := reg.Names()
	if len(names) != 2 || names[0] != "accumulator" || names[1] != "counter" {
		t.Errorf("names: %v", names)
	}
}

func TestRegistry_MustNamed_Panic(t *testing.T) {
	reg := NewRegistry()
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustNamed missing should panic")
		}
	}()
	reg.MustNamed("nope")
}

func TestFuncProducer_NilCreatePassesThrough(t *testing.T) {
	p := Func(nil, nil)
	obj, err := p.Create(context.Background(), 7)
	if err != nil {
		t.Fatal(err)
	}
	if obj != 7 {
		t.Errorf("create: got %v", obj)
	}
}

func TestBase_Resolve(t *testing.T) {
	st := store.New()
	if err := st.Put("dataset__train", []int{1, 2}); err != nil {
		t.Fatal(err)
	}
	b := NewBase(st, "model__default")
	obj, err := b.Resolve("dataset__train")
	if err != nil {
		t.Fatal(err)
	}
	if len(obj.([]int)) != 2 {
		t.Errorf("resolve: %v", obj)
	}
	if _, err := b.Resolve("dataset__test"); err == nil {
		t.Error("missing key should error")
	}
}
