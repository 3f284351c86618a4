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

// Package sizeassert checks that Go-side mirror types match the sizes the
// binding generator recorded for their runtime-side layouts. A mirror type
// of the wrong size silently corrupts neighboring fields on every store, so
// generated packages assert their sizes once at init.
package sizeassert

import (
	"fmt"
	"unsafe"
)

// Holds reports whether T occupies exactly size bytes.
func Holds[T any](size uintptr) bool {
	var v T
	return unsafe.Sizeof(v) == size
}

// Assert panics if T does not occupy exactly size bytes. Intended for use
// from init in generated packages.
func Assert[T any](size uintptr) {
	var v T
	if got := unsafe.Sizeof(v); got != size {
		panic(fmt.Sprintf("sizeassert: %T is %d bytes, layout requires %d", v, got, size))
	}
}
