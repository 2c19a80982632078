package store

import "testing"

func TestKeyRoundTrip(t *testing.T) {
	k := Key("model", "default")
	if k != "model__default" {
		t.Fatalf("key: got %q", k)
	}
	typ, id, ok := SplitKey(k)
	if !ok || typ != "model" || id != "default" {
		t.Errorf("split: %q %q %v", typ, id, ok)
	}
}

func TestIsKey(t *testing.T) {
	cases := []struct {
		s    string
		want bool
	}{
		{"a__b", true},
		{"dataset__train", true},
		{"plain", false},
		{"", false},
		{"__b", false},
		{"a__", false},
		{"a__b__c", false},
		{"a_b", false},
	}
	for _, c := range cases {
		if got := IsKey(c.s); got != c.want {
			t.Errorf("IsKey(%q) = %v, want %v", c.s, got, c.want)
		}
	}
}

func TestStore_WriteOnce(t *testing.T) {
	s := New()
	if err := s.Put("a__x", 1); err != nil {
		t.Fatal(err)
	}
	if err := s.Put("a__x", 2); err == nil {
		t.Error("second Put for same key should fail")
	}
	obj, ok := s.Get("a__x")
	if !ok || obj != 1 {
		t.Errorf("Get: %v %v", obj, ok)
	}
}

func TestStore_KeysSorted(t *testing.T) {
	s := New()
	for _, k := range []string{"b__y", "a__z", "a__x"} {
		if err := s.Put(k, k); err != nil {
			t.Fatal(err)
		}
	}
	keys := s.Keys()
	want := []string{"a__x", "a__z", "b__y"}
	if len(keys) != len(want) {
		t.Fatalf("keys: %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d]: got %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestStore_Seed(t *testing.T) {
	s := New()
	if err := s.Seed(map[string]interface{}{"logger__default": "log"}); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 1 {
		t.Errorf("len: %d", s.Len())
	}
	if err := s.Seed(map[string]interface{}{"logger__default": "again"}); err == nil {
		t.Error("seeding an existing key should fail")
	}
}

func TestStore_MustGet_Panic(t *testing.T) {
	s := New()
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustGet missing should panic")
		}
	}()
	s.MustGet("nope")
}
