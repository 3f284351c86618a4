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

package fieldaccess

import (
	"unsafe"

	"il2go.dev/il2go/pkg/il2cpp"
	"il2go.dev/il2go/pkg/objptr"
)

// All accessors in this file share the SlotAt preconditions: the instance
// is non-null and live, and the offset is within the true object layout.
// Callers wanting those checked go through Check/CheckObject first.

// GetValue loads a value-type field of type T at offset bytes past
// instance.
func GetValue[T any](instance unsafe.Pointer, offset uintptr) T {
	return *(*T)(unsafe.Add(instance, offset))
}

// SetValue stores a value-type field of type T at offset bytes past
// instance. Value types hold no reference slots the collector cares about,
// so this is a plain store with no write barrier.
func SetValue[T any](instance unsafe.Pointer, offset uintptr, v T) {
	*(*T)(unsafe.Add(instance, offset)) = v
}

// GetRef loads a reference-type field at offset bytes past instance,
// returning the raw referent address.
//
//go:nosplit
func GetRef(instance unsafe.Pointer, offset uintptr) unsafe.Pointer {
	return *objptr.SlotAt(instance, offset)
}

// SetRef stores a reference-type field at offset bytes past instance. The
// store goes through the runtime's GC write barrier; storing a reference
// slot any other way breaks the collector's invariants.
func SetRef(instance unsafe.Pointer, offset uintptr, v unsafe.Pointer) {
	il2cpp.GCWriteBarrierSetField(instance, objptr.SlotAt(instance, offset), v)
}
