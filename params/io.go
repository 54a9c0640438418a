// SPDX-License-Identifier: MIT
// Package: kuranet/params
//
// io.go — JSON load/save of parameter documents.

package params

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// validatable is implemented by every parameter document.
type validatable interface {
	Validate() error
}

// Load decodes the JSON file at path into v and validates it when v
// implements Validate.
func Load(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("params: read %s: %w", path, err)
	}
	if err = json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("params: decode %s: %v: %w", path, err, ErrInvalidParams)
	}
	if vv, ok := v.(validatable); ok {
		if err = vv.Validate(); err != nil {
			return fmt.Errorf("params: %s: %w", path, err)
		}
	}

	return nil
}

// Save writes v as indented JSON, creating the parent directory.
func Save(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("params: encode %s: %w", path, err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("params: mkdir for %s: %w", path, err)
	}
	if err = os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("params: write %s: %w", path, err)
	}

	return nil
}

// LoadNetwork reads and validates a NetworkParam.
func LoadNetwork(path string) (*NetworkParam, error) {
	var n NetworkParam
	if err := Load(path, &n); err != nil {
		return nil, err
	}

	return &n, nil
}

// LoadControl reads a ControlParam; match it to a network with ValidateFor.
func LoadControl(path string) (*ControlParam, error) {
	var c ControlParam
	if err := Load(path, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

// LoadCommon reads and validates a CommonParam.
func LoadCommon(path string) (*CommonParam, error) {
	var c CommonParam
	if err := Load(path, &c); err != nil {
		return nil, err
	}

	return &c, nil
}
