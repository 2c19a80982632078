package cnfg

import (
	"errors"
	"testing"
)

func TestMerge_DefaultOnlySectionsIncluded(t *testing.T) {
	defaults := Config{
		"logger": {"default": {Steps: []Step{{Name: "attach"}}}},
	}
	merged, err := Merge(Config{}, defaults)
	if err != nil {
		t.Fatal(err)
	}
	spec, ok := merged["logger"]["default"]
	if !ok {
		t.Fatal("default-only section should be included")
	}
	if len(spec.Steps) != 1 || spec.Steps[0].Name != "attach" {
		t.Errorf("steps: %v", spec.Steps)
	}
	if spec.Priority == nil || *spec.Priority != 1 {
		t.Errorf("priority should normalize to 1: %v", spec.Priority)
	}
}

func TestMerge_EmptyUserSectionDisablesType(t *testing.T) {
	defaults := Config{
		"logger": {"default": {}},
	}
	merged, err := Merge(Config{"logger": Section{}}, defaults)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := merged["logger"]; ok {
		t.Error("explicitly empty user section should disable the type")
	}
}

func TestMerge_StepsOverrideWholesale(t *testing.T) {
	defaults := Config{
		"dataset": {"train": {
			Steps: []Step{{Name: "load"}, {Name: "clean"}, {Name: "split"}},
		}},
	}
	user := Config{
		"dataset": {"train": {Steps: []Step{{Name: "load"}}}},
	}
	merged, err := Merge(user, defaults)
	if err != nil {
		t.Fatal(err)
	}
	steps := merged["dataset"]["train"].Steps
	if len(steps) != 1 || steps[0].Name != "load" {
		t.Errorf("user steps must replace defaults wholesale, got %v", steps)
	}
}

func TestMerge_ExplicitlyEmptyStepsSuppressDefault(t *testing.T) {
	defaults := Config{
		"dataset": {"train": {Steps: []Step{{Name: "load"}}}},
	}
	user := Config{
		"dataset": {"train": {Steps: []Step{}}},
	}
	merged, err := Merge(user, defaults)
	if err != nil {
		t.Fatal(err)
	}
	if len(merged["dataset"]["train"].Steps) != 0 {
		t.Error("non-nil empty steps should suppress the default's steps")
	}
}

func TestMerge_UnsetFieldsFilledFromSameID(t *testing.T) {
	defaults := Config{
		"model": {"default": {
			Init:     "template",
			Priority: Priority(3),
			Steps:    []Step{{Name: "fit"}},
		}},
	}
	user := Config{
		"model": {"default": {Steps: []Step{{Name: "predict"}}}},
	}
	merged, err := Merge(user, defaults)
	if err != nil {
		t.Fatal(err)
	}
	spec := merged["model"]["default"]
	if spec.Init != "template" {
		t.Errorf("init: %v", spec.Init)
	}
	if *spec.Priority != 3 {
		t.Errorf("priority: %d", *spec.Priority)
	}
	if len(spec.Steps) != 1 || spec.Steps[0].Name != "predict" {
		t.Errorf("steps: %v", spec.Steps)
	}
}

func TestMerge_TemplateFallsBackToFirstID(t *testing.T) {
	defaults := Config{
		"metric": {
			"zz": {Init: "wrong"},
			"aa": {Init: "right", Priority: Priority(5)},
		},
	}
	user := Config{
		"metric": {"custom": {}},
	}
	merged, err := Merge(user, defaults)
	if err != nil {
		t.Fatal(err)
	}
	spec := merged["metric"]["custom"]
	if spec.Init != "right" || *spec.Priority != 5 {
		t.Errorf("template should come from lexicographically first id: %+v", spec)
	}
}

func TestMerge_UserIDSetIsAuthoritative(t *testing.T) {
	defaults := Config{
		"metric": {"accuracy": {}, "loss": {}},
	}
	user := Config{
		"metric": {"accuracy": {}},
	}
	merged, err := Merge(user, defaults)
	if err != nil {
		t.Fatal(err)
	}
	if len(merged["metric"]) != 1 {
		t.Errorf("user-declared type should keep only the user's ids: %v", merged["metric"])
	}
}

func TestMerge_RejectsSeparatorInNames(t *testing.T) {
	_, err := Merge(Config{"a__b": {"x": {}}}, nil)
	if err == nil {
		t.Error("section type with __ should be rejected")
	}
	_, err = Merge(Config{"a": {"x__y": {}}}, nil)
	if err == nil {
		t.Error("section id with __ should be rejected")
	}
}

func TestMerge_RejectsUnnamedStep(t *testing.T) {
	_, err := Merge(Config{"a": {"x": {Steps: []Step{{}}}}}, nil)
	if err == nil {
		t.Fatal("unnamed step should be rejected")
	}
	var cerr *ConfigError
	if !errors.As(err, &cerr) || cerr.SectionType != "a" || cerr.SectionID != "x" {
		t.Errorf("error should name section: %v", err)
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	defaults := Config{"a": {"x": {Steps: []Step{{Name: "s", Kwargs: Kwargs{"k": 1}}}}}}
	user := Config{"a": {"x": {}}}
	merged, err := Merge(user, defaults)
	if err != nil {
		t.Fatal(err)
	}
	merged["a"]["x"].Steps[0].Kwargs["k"] = 2
	if defaults["a"]["x"].Steps[0].Kwargs["k"] != 1 {
		t.Error("merge must not alias default kwargs")
	}
	if user["a"]["x"].Steps != nil {
		t.Error("merge must not mutate user config")
	}
}
