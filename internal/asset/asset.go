// Package asset persists viewpoint sets outside the running scene.
package asset

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"

	"BaristaSimulator/internal/viewpoint"
)

type document struct {
	Viewpoints []viewpoint.Viewpoint `yaml:"viewpoints"`
}

// File is a viewpoint set stored as a YAML document.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Path() string {
	return f.path
}

// HasData reports whether the file exists and is not empty. Its contents
// are not checked here, so a damaged file still reaches Load and fails there.
func (f *File) HasData() bool {
	info, err := os.Stat(f.path)
	return err == nil && info.Mode().IsRegular() && info.Size() > 0
}

// Load reads the stored set. A missing file is an empty set.
func (f *File) Load() ([]viewpoint.Viewpoint, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("asset: read %s: %w", f.path, err)
	}
	return Decode(data)
}

// Save replaces the stored set atomically: readers see either the old file
// or the new one, never a partial write.
func (f *File) Save(views []viewpoint.Viewpoint) error {
	data, err := Encode(views)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("asset: create %s: %w", dir, err)
	}
	if err := renameio.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("asset: save %s: %w", f.path, err)
	}
	return nil
}

func Encode(views []viewpoint.Viewpoint) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(document{Viewpoints: views}); err != nil {
		return nil, fmt.Errorf("asset: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("asset: encode: %w", err)
	}
	return buf.Bytes(), nil
}

func Decode(data []byte) ([]viewpoint.Viewpoint, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("asset: decode: %w", err)
	}
	for i, v := range doc.Viewpoints {
		if v.Name == "" {
			return nil, fmt.Errorf("asset: decode: viewpoint %d has no name", i)
		}
	}
	return doc.Viewpoints, nil
}

// Memory keeps a viewpoint set in process. Load and Save copy.
type Memory struct {
	views []viewpoint.Viewpoint
}

func NewMemory(views ...viewpoint.Viewpoint) *Memory {
	m := &Memory{}
	m.views = append(m.views, views...)
	return m
}

func (m *Memory) HasData() bool {
	return len(m.views) > 0
}

func (m *Memory) Load() ([]viewpoint.Viewpoint, error) {
	return append([]viewpoint.Viewpoint(nil), m.views...), nil
}

func (m *Memory) Save(views []viewpoint.Viewpoint) error {
	m.views = append(m.views[:0:0], views...)
	return nil
}
