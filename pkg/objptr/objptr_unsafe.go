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

package objptr

import (
	"unsafe"
)

// Pointer returns the address as an unsafe.Pointer suitable for
// dereferencing.
//
// Preconditions: v refers to live runtime-managed memory.
//
//go:nosplit
func (v Addr) Pointer() unsafe.Pointer {
	return unsafe.Pointer(v)
}

// FromPointer returns the Addr of p.
//
//go:nosplit
func FromPointer(p unsafe.Pointer) Addr {
	return Addr(p)
}

// SlotAt returns the address of the pointer-sized slot offset bytes past
// instance. No indirection is performed; the result is instance+offset
// reinterpreted, nothing more.
//
// Preconditions:
//   - instance is non-null and refers to live runtime-managed memory.
//   - offset does not exceed the size of the pointed-to object. Violating
//     this is not detected; the resulting slot aliases unrelated memory.
//
//go:nosplit
func SlotAt(instance unsafe.Pointer, offset uintptr) *unsafe.Pointer {
	return (*unsafe.Pointer)(unsafe.Add(instance, offset))
}

// ROPointer is a read-only view of an instance address. It deliberately has
// no way back to a mutable pointer; slots resolved through it can be loaded
// but never stored through.
type ROPointer struct {
	p unsafe.Pointer
}

// RO returns a read-only view of p.
//
//go:nosplit
func RO(p unsafe.Pointer) ROPointer {
	return ROPointer{p: p}
}

// Addr returns the address backing the view.
//
//go:nosplit
func (r ROPointer) Addr() Addr {
	return Addr(r.p)
}

// ROSlot is the read-only counterpart of the *unsafe.Pointer returned by
// SlotAt.
type ROSlot struct {
	p *unsafe.Pointer
}

// ROSlotAt is SlotAt for read-only instance views. Same preconditions as
// SlotAt.
//
//go:nosplit
func ROSlotAt(instance ROPointer, offset uintptr) ROSlot {
	return ROSlot{p: (*unsafe.Pointer)(unsafe.Add(instance.p, offset))}
}

// Load returns the pointer value stored in the slot.
//
//go:nosplit
func (s ROSlot) Load() unsafe.Pointer {
	return *s.p
}

// Addr returns the address of the slot itself, not of its contents.
//
//go:nosplit
func (s ROSlot) Addr() Addr {
	return Addr(unsafe.Pointer(s.p))
}
