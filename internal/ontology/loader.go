package ontology

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadError describes a failure to load one mapping document (or the
// directory scan itself, in which case Path is empty).
type LoadError struct {
	Path    string
	Message string
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// LoadResult holds the mappings loaded from a directory.
type LoadResult struct {
	Mappings []Mapping
	Files    []string
}

// LoadFile validates and decodes a single mapping document.
func LoadFile(path string) (Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Mapping{}, &LoadError{Path: path, Message: err.Error()}
	}
	if err := ValidateDocument(data); err != nil {
		return Mapping{}, &LoadError{Path: path, Message: err.Error()}
	}
	var m Mapping
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Mapping{}, &LoadError{Path: path, Message: err.Error()}
	}
	return m, nil
}

// LoadDir loads every .yaml/.yml mapping document under dir, in sorted
// filename order. Per-file failures are collected rather than aborting the
// scan, so a validation run reports everything wrong at once.
func LoadDir(dir string) (*LoadResult, []error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Message: fmt.Sprintf("mappings directory not found: %s", dir)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Message: fmt.Sprintf("error accessing mappings directory: %v", err)}}
	}
	if !info.IsDir() {
		return nil, []error{&LoadError{Message: fmt.Sprintf("not a directory: %s", dir)}}
	}

	files, err := findMappingFiles(dir)
	if err != nil {
		return nil, []error{&LoadError{Message: fmt.Sprintf("error scanning directory: %v", err)}}
	}
	if len(files) == 0 {
		return nil, []error{&LoadError{Message: fmt.Sprintf("no mapping documents found in %s", dir)}}
	}

	result := &LoadResult{Files: files}
	var errs []error
	for _, f := range files {
		m, err := LoadFile(f)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		result.Mappings = append(result.Mappings, m)
		slog.Debug("loaded ontology mapping", "module", m.ModuleName, "path", f)
	}
	return result, errs
}

// NewRegistryFromMappings builds a registry from loaded mappings.
func NewRegistryFromMappings(mappings []Mapping) (*Registry, error) {
	r := NewRegistry()
	for _, m := range mappings {
		if err := r.Register(m); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func findMappingFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".yaml" || ext == ".yml" {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
