package configloader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/AntonioJCosta/cmdalias/internal/core/domain/command"
	"github.com/AntonioJCosta/cmdalias/internal/core/domain/expansion"
	"github.com/AntonioJCosta/cmdalias/internal/core/ports"
	"github.com/AntonioJCosta/cmdalias/internal/logger"
	"github.com/AntonioJCosta/cmdalias/internal/paths"
)

// Loader implements the CatalogLoader interface by reading YAML or TOML
// files from a filesystem.
type Loader struct {
	fs          afero.Fs
	defaultPath func() (string, error)
}

// NewLoader creates a new Loader reading from fs.
// It panics if fs is nil.
func NewLoader(fs afero.Fs) ports.CatalogLoader {
	if fs == nil {
		panic("fs cannot be nil")
	}
	return &Loader{fs: fs, defaultPath: paths.DefaultConfig}
}

/*
Load builds a catalog from path. A directory is read file by file in lexical
order, so definitions in later files shadow those in earlier ones.

A missing default configuration yields an empty catalog; a missing explicit
path is an error. Every failure is returned as *expansion.ConfigLoadError.
*/
func (l *Loader) Load(path string) (*command.Catalog, error) {
	explicit := path != ""
	if !explicit {
		defaultPath, err := l.defaultPath()
		if err != nil {
			return nil, &expansion.ConfigLoadError{Path: "(default)", Err: err}
		}
		path = defaultPath
	}

	info, err := l.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			logger.Debug("no configuration found, using an empty catalog", "path", paths.Friendly(path))
			return command.NewCatalog(), nil
		}
		return nil, &expansion.ConfigLoadError{Path: path, Err: err}
	}

	files := []string{path}
	if info.IsDir() {
		files, err = l.configFiles(path)
		if err != nil {
			return nil, &expansion.ConfigLoadError{Path: path, Err: err}
		}
	}

	catalog := command.NewCatalog()
	for _, file := range files {
		doc, err := l.readDocument(file)
		if err != nil {
			return nil, &expansion.ConfigLoadError{Path: file, Err: err}
		}
		if err := doc.validate(); err != nil {
			return nil, &expansion.ConfigLoadError{Path: file, Err: fmt.Errorf("invalid configuration: %w", err)}
		}
		doc.addTo(catalog, paths.Friendly(file))
		logger.Debug("configuration loaded", "file", paths.Friendly(file), "commands", len(doc.Commands))
	}
	return catalog, nil
}

// configFiles lists the loadable files of dir in lexical order.
// Subdirectories, hidden files and unknown extensions are skipped.
func (l *Loader) configFiles(dir string) ([]string, error) {
	entries, err := afero.ReadDir(l.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if _, ok := formatFor(name); !ok {
			logger.Debug("skipping file with unknown extension", "file", name)
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	sort.Strings(files)
	return files, nil
}
