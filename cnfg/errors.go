package cnfg

import "fmt"

// ConfigError reports a malformed or conflicting configuration. It is
// detected during merging or ordering, before any producer runs.
type ConfigError struct {
	SectionType string
	SectionID   string
	Msg         string
}

func (e *ConfigError) Error() string {
	switch {
	case e.SectionType == "":
		return fmt.Sprintf("cnfg: %s", e.Msg)
	case e.SectionID == "":
		return fmt.Sprintf("cnfg: section %q: %s", e.SectionType, e.Msg)
	default:
		return fmt.Sprintf("cnfg: section %s__%s: %s", e.SectionType, e.SectionID, e.Msg)
	}
}

func configErrf(sectionType, sectionID, format string, args ...interface{}) *ConfigError {
	return &ConfigError{
		SectionType: sectionType,
		SectionID:   sectionID,
		Msg:         fmt.Sprintf(format, args...),
	}
}
