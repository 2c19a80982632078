package cnfg

import "testing"

func TestResolveOrder_AscendingPriority(t *testing.T) {
	cfg := Config{
		"model":   {"default": {Priority: Priority(2)}},
		"dataset": {"train": {Priority: Priority(0)}},
		"metric":  {"acc": {Priority: Priority(1)}},
	}
	ordered, err := ResolveOrder(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(ordered) != 3 {
		t.Fatalf("ordered: %v", ordered)
	}
	keys := []string{ordered[0].Key(), ordered[1].Key(), ordered[2].Key()}
	want := []string{"dataset__train", "metric__acc", "model__default"}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("order[%d]: got %s, want %s", i, keys[i], want[i])
		}
	}
}

func TestResolveOrder_TieBreakCanonical(t *testing.T) {
	// Same priority everywhere: order must be (type, id) lexicographic
	// regardless of map iteration order.
	cfg := Config{
		"b": {"y": {}, "x": {}},
		"a": {"z": {}},
	}
	for range [8]int{} {
		ordered, err := ResolveOrder(cfg)
		if err != nil {
			t.Fatal(err)
		}
		got := []string{ordered[0].Key(), ordered[1].Key(), ordered[2].Key()}
		want := []string{"a__z", "b__x", "b__y"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("order: %v", got)
			}
		}
	}
}

func TestResolveOrder_ZeroPriorityRunsFirst(t *testing.T) {
	cfg := Config{
		"a": {"x": {Priority: Priority(1)}},
		"b": {"y": {Priority: Priority(0)}},
	}
	ordered, err := ResolveOrder(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if ordered[0].Key() != "b__y" {
		t.Errorf("priority 0 should execute first: %v", ordered)
	}
}

func TestResolveOrder_NegativePriorityRejected(t *testing.T) {
	cfg := Config{"a": {"x": {Priority: Priority(-1)}}}
	if _, err := ResolveOrder(cfg); err == nil {
		t.Error("negative priority should be rejected")
	}
}

func TestResolveOrder_SkipsGlobalPseudoSpec(t *testing.T) {
	cfg := Config{
		"a": {
			"x":      {},
			GlobalID: {Global: map[string]interface{}{"k": 1}},
		},
	}
	ordered, err := ResolveOrder(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(ordered) != 1 || ordered[0].SectionID != "x" {
		t.Errorf("global pseudo-spec must not execute: %v", ordered)
	}
}
