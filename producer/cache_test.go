package producer

import (
	"context"
	"testing"
)

func TestCache_DumpThenLoad(t *testing.T) {
	dir := t.TempDir()
	b := NewBase(nil, "model__default")
	ctx := context.Background()

	obj := map[string]interface{}{"epochs": 3.0, "name": "m"}
	kw := Kwargs{"dir": dir, "codec": "json"}
	out, err := b.DumpCache(ctx, obj, kw)
	if err != nil {
		t.Fatal(err)
	}
	if out.(map[string]interface{})["name"] != "m" {
		t.Error("dump should pass object through unchanged")
	}

	loaded, err := b.LoadCache(ctx, nil, kw)
	if err != nil {
		t.Fatal(err)
	}
	m, ok := loaded.(map[string]interface{})
	if !ok || m["epochs"] != 3.0 {
		t.Errorf("load: %v", loaded)
	}
}

func TestCache_GobRoundTrip(t *testing.T) {
	dir := t.TempDir()
	b := NewBase(nil, "counter__c")
	ctx := context.Background()

	if _, err := b.DumpCache(ctx, 42, Kwargs{"dir": dir}); err != nil {
		t.Fatal(err)
	}
	loaded, err := b.LoadCache(ctx, nil, Kwargs{"dir": dir})
	if err != nil {
		t.Fatal(err)
	}
	if loaded != 42 {
		t.Errorf("load: %v", loaded)
	}
}

func TestCache_UnknownCodec(t *testing.T) {
	b := NewBase(nil, "a__b")
	if _, err := b.DumpCache(context.Background(), 1, Kwargs{"codec": "pickle"}); err == nil {
		t.Error("unsupported codec should error")
	}
}

func TestCache_LoadMissingFile(t *testing.T) {
	b := NewBase(nil, "a__b")
	if _, err := b.LoadCache(context.Background(), nil, Kwargs{"dir": t.TempDir()}); err == nil {
		t.Error("missing cache file should error")
	}
}
