// This file is part of Stagehand.
//
// Stagehand is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Stagehand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Stagehand.  If not, see <https://www.gnu.org/licenses/>.

package resources

import (
	"fmt"
	"os"
	"path/filepath"
)

// Provider is the persistence interface used by the engine.
type Provider interface {
	Load(path string) ([]byte, error)
	Save(path string, data []byte) error
}

// Dir implements the Provider interface for files below a root directory.
// Paths given to Load() and Save() are relative to the root.
type Dir struct {
	Root string
}

// NewDir returns a Dir rooted in the resource path returned by JoinPath().
func NewDir(sub ...string) (Dir, error) {
	p, err := JoinPath(append(sub, "")...)
	if err != nil {
		return Dir{}, err
	}
	return Dir{Root: p}, nil
}

func (d Dir) resolve(path string) (string, error) {
	p := filepath.Join(d.Root, filepath.Clean(string(filepath.Separator)+path))
	if d.Root == "" {
		return "", fmt.Errorf("resources: no root directory")
	}
	return p, nil
}

// Load implements the Provider interface.
func (d Dir) Load(path string) ([]byte, error) {
	p, err := d.resolve(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("resources: %w", err)
	}
	return data, nil
}

// Save implements the Provider interface. Intermediate directories are
// created as required.
func (d Dir) Save(path string, data []byte) error {
	p, err := d.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return fmt.Errorf("resources: %w", err)
	}
	if err := os.WriteFile(p, data, 0o600); err != nil {
		return fmt.Errorf("resources: %w", err)
	}
	return nil
}
