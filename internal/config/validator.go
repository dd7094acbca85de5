package config

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var configSchemaCUE []byte

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		fmt.Fprintf(&sb, "  %s: %s\n", err.Field, err.Message)
	}
	return sb.String()
}

// Validator validates configuration against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator creates a new configuration validator.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(configSchemaCUE, cue.Filename("schema.cue"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	if !def.Exists() {
		return nil, fmt.Errorf("schema has no #Config definition")
	}

	return &Validator{
		ctx:    ctx,
		schema: def,
	}, nil
}

// Validate validates the given configuration.
func (v *Validator) Validate(cfg *Config) error {
	value := v.ctx.Encode(cfg)
	if value.Err() != nil {
		return fmt.Errorf("encoding config: %w", value.Err())
	}

	unified := v.schema.Unify(value)
	err := unified.Validate(cue.Concrete(true))
	if err == nil {
		return nil
	}

	var errs ValidationErrors
	for _, e := range cueerrors.Errors(err) {
		field := strings.Join(e.Path(), ".")
		if field == "" {
			errs = append(errs, ValidationError{Field: "config", Message: e.Error()})
			continue
		}
		format, args := e.Msg()
		errs = append(errs, ValidationError{
			Field:   field,
			Message: fmt.Sprintf(format, args...),
		})
	}
	if len(errs) == 0 {
		errs = append(errs, ValidationError{Field: "config", Message: err.Error()})
	}

	return errs
}

// ValidateFile validates a configuration file at the given path.
func (v *Validator) ValidateFile(path string) error {
	cfg, err := NewLoader().Load(path)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}

	return v.Validate(cfg)
}
