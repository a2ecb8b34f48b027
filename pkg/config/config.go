// Package config loads the optional TOML file that selects the tag scheme
// and the dangling-reference policy.
//
// Example file:
//
//	scheme = "usertask"       # standard (default), bare, usertask
//	prefix = "semantic"       # overrides the preset namespace token; "" = bare tags
//	task_tag = "userTask"     # overrides the activity tag
//	single_start_end = true   # require exactly one start and one end event
//	references = "warn"       # error (default) or warn
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/bpmngraph/pkg/bpmn"
	"github.com/matzehuels/bpmngraph/pkg/errors"
	"github.com/matzehuels/bpmngraph/pkg/graph/transform"
)

// File mirrors the TOML document. Pointer fields distinguish an explicit
// empty value from an absent key.
type File struct {
	Scheme         string  `toml:"scheme"`
	Prefix         *string `toml:"prefix"`
	TaskTag        *string `toml:"task_tag"`
	SingleStartEnd *bool   `toml:"single_start_end"`
	References     string  `toml:"references"`
}

// Config is the resolved configuration of a conversion.
type Config struct {
	Scheme     bpmn.Scheme
	References transform.ReferencePolicy

	// Unknown lists keys in the file that were not recognized.
	Unknown []string
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{Scheme: bpmn.DefaultScheme(), References: transform.ReferencesError}
}

// Load reads and resolves the TOML file at path.
// An empty path returns [Default]. Unreadable files, syntax errors, unknown
// presets and unknown policies are INVALID_CONFIG errors.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}

	cfg, err := f.Resolve()
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
	}
	for _, k := range md.Undecoded() {
		cfg.Unknown = append(cfg.Unknown, k.String())
	}
	return cfg, nil
}

// Resolve applies the explicit fields of f on top of its preset.
func (f File) Resolve() (Config, error) {
	cfg := Default()

	if f.Scheme != "" {
		s, err := bpmn.SchemeByName(f.Scheme)
		if err != nil {
			return Config{}, err
		}
		cfg.Scheme = s
	}
	if f.Prefix != nil {
		cfg.Scheme.Prefix = *f.Prefix
	}
	if f.TaskTag != nil {
		if *f.TaskTag == "" {
			return Config{}, fmt.Errorf("task_tag must not be empty")
		}
		cfg.Scheme.TaskTag = *f.TaskTag
	}
	if f.SingleStartEnd != nil {
		cfg.Scheme.SingleStartEnd = *f.SingleStartEnd
	}

	refs, err := transform.ParseReferencePolicy(f.References)
	if err != nil {
		return Config{}, err
	}
	cfg.References = refs
	return cfg, nil
}
