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

// Package staticname carries static identifiers attached to generated
// declarations. A Name is captured once from a literal and is immutable
// afterwards; its backing store includes a NUL terminator so it can be
// handed to C-ABI runtime entry points without copying.
package staticname

import (
	"unsafe"
)

// Name is an immutable identifier with NUL-terminated backing storage.
// The zero Name is empty and has no backing storage.
type Name struct {
	// data is the identifier bytes followed by exactly one NUL. Never
	// mutated after New returns.
	data []byte
}

// New captures s as a Name. The backing array is sized to s plus the
// terminator and never changes afterwards.
func New(s string) Name {
	data := make([]byte, len(s)+1)
	copy(data, s)
	return Name{data: data}
}

// Len returns the identifier length, excluding the terminator.
func (n Name) Len() int {
	if n.data == nil {
		return 0
	}
	return len(n.data) - 1
}

// String returns a view of the identifier without copying. The view aliases
// the backing array, which is valid because the backing array is never
// mutated.
func (n Name) String() string {
	if n.Len() == 0 {
		return ""
	}
	return unsafe.String(&n.data[0], n.Len())
}

// Bytes returns the identifier bytes, excluding the terminator. The caller
// must not mutate the result.
func (n Name) Bytes() []byte {
	return n.data[:n.Len()]
}

// CPtr returns a pointer to the NUL-terminated backing array, suitable for
// passing to runtime entry points expecting a C string. Returns nil for the
// zero Name.
func (n Name) CPtr() *byte {
	if n.data == nil {
		return nil
	}
	return &n.data[0]
}
