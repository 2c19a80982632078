package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/confpipe/confpipe/cnfg"
)

// specFile is the on-disk shape of one section spec. Keys the struct does
// not declare are collected into Global, so shared kwargs can be written
// inline ("seed: 1" next to "steps:").
type specFile struct {
	Init     interface{}            `mapstructure:"init"`
	Producer string                 `mapstructure:"producer"`
	Priority *int                   `mapstructure:"priority"`
	Steps    []stepFile             `mapstructure:"steps"`
	Global   map[string]interface{} `mapstructure:"global"`
}

// stepFile is one step entry: either a bare name or name + kwargs.
//
//	steps:
//	  - load
//	  - name: clean
//	    kwargs: {columns: [a, b]}
type stepFile struct {
	Name   string                 `mapstructure:"name"`
	Kwargs map[string]interface{} `mapstructure:"kwargs"`
}

// ParseYAML parses YAML bytes into a configuration plus run-level globals
// (the reserved top-level "global" mapping). Section types map ids to
// specs; the reserved id "global" carries section-level kwarg
// substitutions. A spec's "producer" is a name resolved against the
// engine's producer registry at run time.
func ParseYAML(data []byte) (cnfg.Config, map[string]interface{}, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("loader: %w", err)
	}
	return fromRaw(raw)
}

// ParseTOML parses TOML bytes; the file shape is the same as YAML's.
func ParseTOML(data []byte) (cnfg.Config, map[string]interface{}, error) {
	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("loader: %w", err)
	}
	return fromRaw(raw)
}

// LoadFile reads a configuration file, dispatching on extension:
// .yaml/.yml or .toml.
func LoadFile(path string) (cnfg.Config, map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loader: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return nil, nil, fmt.Errorf("loader: extension %q not supported (use .yaml, .yml, or .toml)", ext)
	}
}

func fromRaw(raw map[string]interface{}) (cnfg.Config, map[string]interface{}, error) {
	cfg := make(cnfg.Config, len(raw))
	var global map[string]interface{}
	for sectionType, rawSec := range raw {
		if sectionType == cnfg.GlobalID {
			g, ok := toStringMap(rawSec)
			if !ok {
				return nil, nil, &cnfg.ConfigError{SectionType: sectionType, Msg: "top-level global must be a mapping"}
			}
			global = g
			continue
		}
		secMap, ok := toStringMap(rawSec)
		if !ok {
			return nil, nil, &cnfg.ConfigError{SectionType: sectionType, Msg: fmt.Sprintf("section must be a mapping of ids, got %T", rawSec)}
		}
		sec := make(cnfg.Section, len(secMap))
		for id, rawSpec := range secMap {
			if id == cnfg.GlobalID {
				g, ok := toStringMap(rawSpec)
				if !ok {
					return nil, nil, &cnfg.ConfigError{SectionType: sectionType, SectionID: id, Msg: "section global must be a mapping"}
				}
				sec[id] = cnfg.Spec{Global: g}
				continue
			}
			spec, err := decodeSpec(sectionType, id, rawSpec)
			if err != nil {
				return nil, nil, err
			}
			sec[id] = spec
		}
		cfg[sectionType] = sec
	}
	return cfg, global, nil
}

func decodeSpec(sectionType, id string, rawSpec interface{}) (cnfg.Spec, error) {
	specMap, ok := toStringMap(rawSpec)
	if !ok {
		return cnfg.Spec{}, &cnfg.ConfigError{SectionType: sectionType, SectionID: id, Msg: fmt.Sprintf("spec must be a mapping, got %T", rawSpec)}
	}

	var sf specFile
	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &sf,
		Metadata:   &md,
		DecodeHook: stepRefHook,
	})
	if err != nil {
		return cnfg.Spec{}, fmt.Errorf("loader: %w", err)
	}
	if err := decoder.Decode(specMap); err != nil {
		return cnfg.Spec{}, &cnfg.ConfigError{SectionType: sectionType, SectionID: id, Msg: err.Error()}
	}

	// Unknown spec keys are shorthand globals.
	for _, key := range md.Unused {
		if strings.Contains(key, ".") {
			continue // nested leftovers are already covered by their parent
		}
		if sf.Global == nil {
			sf.Global = make(map[string]interface{})
		}
		if _, ok := sf.Global[key]; !ok {
			sf.Global[key] = specMap[key]
		}
	}

	spec := cnfg.Spec{
		Init:     sf.Init,
		Priority: sf.Priority,
		Global:   sf.Global,
	}
	if sf.Producer != "" {
		spec.Producer = sf.Producer
	}
	if sf.Steps != nil {
		spec.Steps = make([]cnfg.Step, len(sf.Steps))
		for i, st := range sf.Steps {
			spec.Steps[i] = cnfg.Step{Name: st.Name, Kwargs: st.Kwargs}
		}
	}
	return spec, nil
}

// stepRefHook lets a step be written as a bare name string instead of a
// {name, kwargs} mapping.
func stepRefHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to == reflect.TypeOf(stepFile{}) && from.Kind() == reflect.String {
		return stepFile{Name: data.(string)}, nil
	}
	return data, nil
}

// toStringMap normalizes the mapping types the YAML and TOML decoders
// produce.
func toStringMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case nil:
		return map[string]interface{}{}, true
	default:
		return nil, false
	}
}
