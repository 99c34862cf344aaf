package addon

import (
	"errors"
	"fmt"
	"strings"
)

// Descriptor field names.
const (
	FieldName         = "name"
	FieldEngineType   = "engine-type"
	FieldLastModified = "last-modified"
	FieldLabel        = "label"
	FieldSummary      = "summary"
	FieldHelpPageURL  = "help-page-url"
	FieldConfigs      = "configs"
	FieldSource       = "source"
	FieldRequired     = "required"
)

// OptionalConfigAttributes lists the config attributes copied when present,
// in the order they are emitted.
//
//nolint:gochecknoglobals // Fixed declaration order.
var OptionalConfigAttributes = []string{
	"form-type",
	"el-enabled",
	"editable",
	"select-data-type",
	"oauth2-setting-name",
}

// ErrDescriptorNotMapping is returned when the descriptor root is not a mapping.
var ErrDescriptorNotMapping = errors.New("descriptor must be a mapping")

// Attribute is a rendered XML attribute of a config parameter.
type Attribute struct {
	Name  string
	Value string
}

// ConfigParameter is a named input the addon exposes to the host platform.
type ConfigParameter struct {
	Name     string
	Required bool
	// Attributes holds the optional attributes that were supplied, in
	// OptionalConfigAttributes order.
	Attributes []Attribute
	Label      []LocalizedValue
}

// Descriptor is the typed view of an addon descriptor.
type Descriptor struct {
	Name         string
	EngineType   EngineType
	LastModified bool
	Label        []LocalizedValue
	// Summary and HelpPageURL are nil when the base field is falsy.
	Summary     []LocalizedValue
	HelpPageURL []LocalizedValue
	// HasConfigs is true when "configs" is present, even if it is empty.
	HasConfigs bool
	Configs    []ConfigParameter
	Sources    []string
}

// NewDescriptor validates r and builds a Descriptor. defaultSource is used
// when the record has no source list.
func NewDescriptor(r *Record, defaultSource string) (*Descriptor, error) {
	if r == nil {
		return nil, ErrDescriptorNotMapping
	}

	name, err := descriptorName(r)
	if err != nil {
		return nil, err
	}

	engine, err := engineType(r)
	if err != nil {
		return nil, err
	}

	desc := &Descriptor{
		Name:         name,
		EngineType:   engine,
		LastModified: r.Lookup(FieldLastModified).Truthy(),
	}

	if desc.Label, err = r.Localized(FieldLabel); err != nil {
		return nil, err
	}

	if r.Lookup(FieldSummary).Truthy() {
		if desc.Summary, err = r.Localized(FieldSummary); err != nil {
			return nil, err
		}
	}

	if r.Lookup(FieldHelpPageURL).Truthy() {
		if desc.HelpPageURL, err = r.Localized(FieldHelpPageURL); err != nil {
			return nil, err
		}
	}

	if desc.HasConfigs, desc.Configs, err = configParameters(r); err != nil {
		return nil, err
	}

	if desc.Sources, err = sources(r, defaultSource); err != nil {
		return nil, err
	}

	return desc, nil
}

// Filename is the output file name of the built definition.
func (d *Descriptor) Filename() string {
	return d.Name + ".xml"
}

func descriptorName(r *Record) (string, error) {
	value, ok := r.Get(FieldName)
	if !ok {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidField, FieldName)
	}

	name, err := value.Text()
	if err != nil {
		return "", fmt.Errorf("%s: %w", FieldName, err)
	}

	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %s %q cannot be used as a file name", ErrInvalidField, FieldName, name)
	}

	return name, nil
}

func engineType(r *Record) (EngineType, error) {
	text, err := r.Lookup(FieldEngineType).Text()
	if err != nil {
		return "", fmt.Errorf("%s: %w", FieldEngineType, err)
	}

	return ParseEngineType(text)
}

func configParameters(r *Record) (bool, []ConfigParameter, error) {
	value := r.Lookup(FieldConfigs)
	if !value.Truthy() {
		return false, nil, nil
	}

	if value.Kind() != KindSequence {
		return false, nil, fmt.Errorf("%w: %s must be a sequence, got %s", ErrInvalidField, FieldConfigs, value.Kind())
	}

	params := make([]ConfigParameter, 0, len(value.Items()))

	for i, item := range value.Items() {
		if item.Kind() != KindMapping {
			return false, nil, fmt.Errorf("%w: %s[%d] must be a mapping, got %s",
				ErrInvalidField, FieldConfigs, i, item.Kind())
		}

		param, err := newConfigParameter(item.Record())
		if err != nil {
			return false, nil, fmt.Errorf("%s[%d]: %w", FieldConfigs, i, err)
		}

		params = append(params, param)
	}

	return true, params, nil
}

func newConfigParameter(r *Record) (ConfigParameter, error) {
	name, err := r.Lookup(FieldName).Text()
	if err != nil {
		return ConfigParameter{}, fmt.Errorf("%s: %w", FieldName, err)
	}

	if name == "" {
		return ConfigParameter{}, fmt.Errorf("%w: %s is required", ErrInvalidField, FieldName)
	}

	param := ConfigParameter{
		Name:     name,
		Required: r.Lookup(FieldRequired).Truthy(),
	}

	for _, key := range OptionalConfigAttributes {
		value := r.Lookup(key)
		if !value.Truthy() {
			continue
		}

		text, err := value.Text()
		if err != nil {
			return ConfigParameter{}, fmt.Errorf("%s: %w", key, err)
		}

		param.Attributes = append(param.Attributes, Attribute{Name: key, Value: text})
	}

	if param.Label, err = r.Localized(FieldLabel); err != nil {
		return ConfigParameter{}, err
	}

	return param, nil
}

func sources(r *Record, defaultSource string) ([]string, error) {
	value := r.Lookup(FieldSource)
	if !value.Truthy() {
		return []string{defaultSource}, nil
	}

	if value.Kind() != KindSequence {
		return nil, fmt.Errorf("%w: %s must be a sequence, got %s", ErrInvalidField, FieldSource, value.Kind())
	}

	paths := make([]string, 0, len(value.Items()))

	for i, item := range value.Items() {
		if item.Kind() != KindString {
			return nil, fmt.Errorf("%w: %s[%d] must be a string, got %s", ErrInvalidField, FieldSource, i, item.Kind())
		}

		paths = append(paths, item.text)
	}

	return paths, nil
}
