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

package handle

import (
	"unsafe"

	"il2go.dev/il2go/pkg/objptr"
)

// RawPtr is the raw address carried by a handle. The managed runtime owns
// the pointee; handles never keep it alive.
type RawPtr = unsafe.Pointer

// CachedPtrOffset is the fixed byte offset of the cached identity pointer
// within every engine object. The managed runtime defines this layout; it is
// not configurable.
const CachedPtrOffset = 0x10

// Ref is a plain-reference handle. It carries no layout knowledge beyond
// "this is an address".
type Ref struct {
	ptr RawPtr
}

// RefOf returns a Ref wrapping p.
//
//go:nosplit
func RefOf(p RawPtr) Ref {
	return Ref{ptr: p}
}

// Raw implements Reference.Raw.
//
//go:nosplit
func (r Ref) Raw() RawPtr {
	return r.ptr
}

// IsNull returns true if the handle is null.
//
//go:nosplit
func (r Ref) IsNull() bool {
	return r.ptr == nil
}

// Addr returns the handle's address.
//
//go:nosplit
func (r Ref) Addr() objptr.Addr {
	return objptr.FromPointer(r.ptr)
}

// Object is a handle to an engine object, the classification that carries
// the cached identity pointer at CachedPtrOffset.
type Object struct {
	Ref
}

// ObjectOf returns an Object wrapping p.
//
//go:nosplit
func ObjectOf(p RawPtr) Object {
	return Object{Ref{ptr: p}}
}

// AsObject implements ObjectConvertible.AsObject.
//
//go:nosplit
func (o Object) AsObject() Object {
	return o
}

// CachedPtr returns the cached identity pointer stored in the object.
//
// Preconditions: the handle is non-null. CachedPtr reads through it.
//
//go:nosplit
func (o Object) CachedPtr() unsafe.Pointer {
	return *objptr.SlotAt(o.ptr, CachedPtrOffset)
}
