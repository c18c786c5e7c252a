package configloader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type format int

const (
	formatYAML format = iota
	formatTOML
)

// formatFor picks the decoder from the file extension. Files without an
// extension, like ~/.cmdalias, are YAML.
func formatFor(name string) (format, bool) {
	base := strings.TrimPrefix(filepath.Base(name), ".")
	switch strings.ToLower(filepath.Ext(base)) {
	case "", ".yaml", ".yml":
		return formatYAML, true
	case ".toml":
		return formatTOML, true
	default:
		return formatYAML, false
	}
}

func (l *Loader) readDocument(file string) (*document, error) {
	data, err := afero.ReadFile(l.fs, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	doc := &document{}
	if len(bytes.TrimSpace(data)) == 0 {
		return doc, nil
	}

	f, _ := formatFor(file)
	switch f {
	case formatTOML:
		err = decodeTOML(data, doc)
	default:
		err = decodeYAML(data, doc)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func decodeYAML(data []byte, doc *document) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(doc); err != nil {
		// A document holding only comments or "---" decodes to EOF.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to unmarshal YAML: %w", err)
	}
	return nil
}

func decodeTOML(data []byte, doc *document) error {
	md, err := toml.Decode(string(data), doc)
	if err != nil {
		return fmt.Errorf("failed to unmarshal TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown TOML keys: %s", strings.Join(keys, ", "))
	}
	return nil
}
