// Copyright 2026 The il2go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package layout describes class field tables as the binding generator
// records them: one entry per field with its name, byte offset, and kind.
// Tables are stored as TOML so they can be inspected and hand-edited while
// debugging layout mismatches.
package layout

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// SlotSize is the size of a reference slot in the managed runtime's layout.
// The runtime is 64-bit only.
const SlotSize = 8

// Kind distinguishes how a field's storage is interpreted.
type Kind string

const (
	// KindValue is inline value storage of Field.Size bytes.
	KindValue Kind = "value"
	// KindRef is a pointer-sized reference slot.
	KindRef Kind = "ref"
)

// Field is one field of a class layout.
type Field struct {
	Name   string `toml:"name"`
	Offset uint64 `toml:"offset"`
	Kind   Kind   `toml:"kind"`
	// Size is the inline storage size in bytes. Required for value fields;
	// for ref fields it defaults to SlotSize.
	Size uint64 `toml:"size,omitempty"`
}

// Table is the recorded layout of one class.
type Table struct {
	Class string `toml:"class"`
	// Object is true if instances carry the cached identity pointer.
	Object bool    `toml:"object"`
	Fields []Field `toml:"fields"`
}

// Validate checks internal consistency of the table. It cannot check the
// offsets against the real runtime layout; only the generator knows that.
func (t *Table) Validate() error {
	if t.Class == "" {
		return fmt.Errorf("layout: table has no class name")
	}
	seen := make(map[string]struct{}, len(t.Fields))
	for i := range t.Fields {
		f := &t.Fields[i]
		if f.Name == "" {
			return fmt.Errorf("layout: %s: field %d has no name", t.Class, i)
		}
		if _, ok := seen[f.Name]; ok {
			return fmt.Errorf("layout: %s: duplicate field %q", t.Class, f.Name)
		}
		seen[f.Name] = struct{}{}
		switch f.Kind {
		case KindValue:
			if f.Size == 0 {
				return fmt.Errorf("layout: %s.%s: value field has no size", t.Class, f.Name)
			}
		case KindRef:
			if f.Size == 0 {
				f.Size = SlotSize
			} else if f.Size != SlotSize {
				return fmt.Errorf("layout: %s.%s: ref field size %d, want %d", t.Class, f.Name, f.Size, SlotSize)
			}
		default:
			return fmt.Errorf("layout: %s.%s: unknown kind %q", t.Class, f.Name, f.Kind)
		}
	}
	return nil
}

// End returns the first byte past the field's storage.
func (f *Field) End() uint64 {
	return f.Offset + f.Size
}

// Load reads and validates a table from a TOML file.
func Load(path string) (*Table, error) {
	var t Table
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("layout: decoding %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}
