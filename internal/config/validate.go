package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ValidationError points at the file position or config key that is wrong.
type ValidationError struct {
	// Path is the config file, empty when the value came from env or defaults
	Path   string
	Line   int
	Column int
	// Key is the dotted config key, e.g. pomodoro.focus_minutes
	Key    string
	Reason string
}

func (e *ValidationError) Error() string {
	where := e.Path
	if where == "" {
		where = "config"
	}
	switch {
	case e.Line > 0:
		return fmt.Sprintf("%s:%d:%d: %s", where, e.Line, e.Column, e.Reason)
	case e.Key != "":
		return fmt.Sprintf("%s: %s %s", where, e.Key, e.Reason)
	default:
		return where + ": " + e.Reason
	}
}

// structValidator reports field names by their koanf key.
var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks the struct tag rules, then the rules tags cannot express.
func Validate(cfg *Configuration) error {
	if err := structValidator.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &ValidationError{Key: configKey(fe.Namespace()), Reason: describeRule(fe)}
		}
		return fmt.Errorf("config validation failed: %w", err)
	}
	return ValidateConfigValues(cfg, "")
}

// configKey drops the root struct name from a validator namespace
func configKey(namespace string) string {
	_, key, ok := strings.Cut(namespace, ".")
	if !ok {
		return namespace
	}
	return key
}

// describeRule turns a failed validator tag into a short reason
func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return "must be greater than " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	default:
		return "failed the " + fe.Tag() + " rule"
	}
}

// ValidateConfigValues checks cross-field and enum rules.
// path is reported in the error and may be empty.
func ValidateConfigValues(cfg *Configuration, path string) error {
	invalid := func(key, reason string) error {
		return &ValidationError{Path: path, Key: key, Reason: reason}
	}

	if cfg.Pomodoro.LongBreakMinutes < cfg.Pomodoro.ShortBreakMinutes {
		return invalid("pomodoro.long_break_minutes", "must not be shorter than pomodoro.short_break_minutes")
	}

	nc := cfg.Notifications
	if nc.Type != "" && !nc.Type.Valid() {
		return invalid("notifications.type", "must be one of: sound, visual, both")
	}
	if nc.SoundFile != "" {
		if _, err := os.Stat(nc.SoundFile); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return invalid("notifications.sound_file", "does not exist: "+nc.SoundFile)
			}
			return invalid("notifications.sound_file", "cannot be read: "+err.Error())
		}
	}

	if _, err := ParseStyle(cfg.OutputStyle); err != nil {
		return invalid("output_style", "must be one of: default, compact, plain")
	}
	return nil
}

// CheckYAMLFile reports YAML syntax errors in path with their position.
// A missing or blank file is valid.
func CheckYAMLFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return &ValidationError{Path: path, Reason: err.Error()}
	}
	return CheckYAML(data, path)
}

// CheckYAML is CheckYAMLFile for data already in memory.
func CheckYAML(data []byte, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	var node yaml.Node
	err := yaml.Unmarshal(data, &node)
	if err == nil {
		return nil
	}
	line, reason := yamlPosition(err.Error())
	column := 0
	if line > 0 {
		column = 1
	}
	return &ValidationError{Path: path, Line: line, Column: column, Reason: reason}
}

// yamlPosition splits "yaml: line 3: did not find expected key" into 3 and
// the reason. Messages without a line come back whole with line 0.
func yamlPosition(msg string) (int, string) {
	rest := strings.TrimPrefix(msg, "yaml: ")
	var line int
	if _, err := fmt.Sscanf(rest, "line %d:", &line); err != nil {
		return 0, rest
	}
	_, reason, _ := strings.Cut(rest, ": ")
	return line, reason
}
