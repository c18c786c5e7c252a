package configloader

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/anmitsu/go-shlex"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/AntonioJCosta/cmdalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/cmdalias/internal/core/domain/command"
	"github.com/AntonioJCosta/cmdalias/internal/logger"
)

// document is the on-disk shape of one configuration file.
type document struct {
	Commands []commandSpec `yaml:"commands" toml:"commands" validate:"dive"`
}

type commandSpec struct {
	Name     string     `yaml:"name" toml:"name" validate:"required,word"`
	AltNames []string   `yaml:"alt_names" toml:"alt_names" validate:"dive,required,word"`
	Global   []ruleSpec `yaml:"global" toml:"global" validate:"dive"`
	Aliases  []ruleSpec `yaml:"aliases" toml:"aliases" validate:"dive"`
}

type ruleSpec struct {
	Names      []string     `yaml:"names" toml:"names" validate:"min=1,dive,required"`
	Substitute Substitution `yaml:"substitute" toml:"substitute"`
	Terminal   bool         `yaml:"terminal" toml:"terminal"`
	Children   []ruleSpec   `yaml:"children" toml:"children" validate:"dive"`
}

/*
Substitution is the text a rule emits. It is written either as a list of
fragments or as a single string split with POSIX shell rules:

	substitute: commit -m         # ["commit", "-m"]
	substitute: [log, "--format=%h %s"]
*/
type Substitution []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Substitution) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		fragments, err := splitFragments(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*s = fragments
		return nil
	case yaml.SequenceNode:
		var fragments []string
		if err := value.Decode(&fragments); err != nil {
			return err
		}
		*s = fragments
		return nil
	default:
		return fmt.Errorf("line %d: substitute must be a string or a list of strings", value.Line)
	}
}

// UnmarshalTOML implements toml.Unmarshaler.
func (s *Substitution) UnmarshalTOML(data interface{}) error {
	switch v := data.(type) {
	case string:
		fragments, err := splitFragments(v)
		if err != nil {
			return err
		}
		*s = fragments
		return nil
	case []interface{}:
		fragments := make([]string, 0, len(v))
		for _, item := range v {
			str, ok := item.(string)
			if !ok {
				return fmt.Errorf("substitute list items must be strings, got %T", item)
			}
			fragments = append(fragments, str)
		}
		*s = fragments
		return nil
	default:
		return fmt.Errorf("substitute must be a string or an array of strings, got %T", data)
	}
}

func splitFragments(text string) ([]string, error) {
	fragments, err := shlex.Split(text, true)
	if err != nil {
		return nil, fmt.Errorf("splitting substitute %q: %w", text, err)
	}
	return fragments, nil
}

// validate checks the document for semantic errors. Field names in messages
// are the configuration keys.
func (d *document) validate() error {
	v := validator.New()
	// word: a single shell word, usable as a command name.
	_ = v.RegisterValidation("word", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), " \t\n")
	})
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
	})
	return v.Struct(d)
}

// addTo builds the document's entries into catalog. Shadowed names are
// legal and reported as warnings.
func (d *document) addTo(catalog *command.Catalog, source string) {
	for _, spec := range d.Commands {
		entry := command.NewEntry(spec.Name, spec.AltNames...)
		addRules(entry.Global, spec.Global, spec.Name, source)
		addRules(entry.Root, spec.Aliases, spec.Name, source)
		for _, name := range catalog.Add(entry) {
			logger.Warn("command name shadows an earlier definition", "name", name, "command", spec.Name, "file", source)
		}
	}
}

func addRules(scope *alias.Scope, rules []ruleSpec, cmdName, source string) {
	for _, rule := range rules {
		node := alias.NewNode(rule.Names, rule.Substitute, rule.Terminal)
		addRules(node.Children, rule.Children, cmdName, source)
		for _, name := range scope.Add(node) {
			logger.Warn("alias shadows an earlier definition in the same scope", "alias", name, "command", cmdName, "file", source)
		}
	}
}
