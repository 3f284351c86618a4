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

// Package il2cpp binds the handful of managed-runtime entry points the
// field accessors depend on. The runtime lives in a foreign shared object;
// whoever loads it resolves the entry points and calls Register before any
// generated binding runs. This package holds the table, nothing else.
package il2cpp

import (
	"unsafe"
)

// Class is an opaque runtime class descriptor. Pointers to it only ever
// originate from the runtime; Go code passes them through untouched.
type Class struct {
	_ [0]uintptr
}

// FieldInfo is an opaque runtime field descriptor, obtained from FindField
// and passed back to the static field entry points.
type FieldInfo struct {
	_ [0]uintptr
}

// Funcs is the table of runtime entry points. All fields are required.
type Funcs struct {
	// GCWriteBarrierSetField stores value into slot within obj, notifying
	// the runtime's garbage collector. Reference fields must be written
	// through this, never with a raw store.
	GCWriteBarrierSetField func(obj unsafe.Pointer, slot *unsafe.Pointer, value unsafe.Pointer)

	// FindField looks up a field descriptor by NUL-terminated name. Returns
	// nil if the class has no such field.
	FindField func(klass *Class, name *byte) *FieldInfo

	// FieldStaticGetValue copies the static field's current value to out.
	FieldStaticGetValue func(field *FieldInfo, out unsafe.Pointer)

	// FieldStaticSetValue copies the new value from in to the static field.
	FieldStaticSetValue func(field *FieldInfo, in unsafe.Pointer)

	// ValueBox boxes size-known value data into a fresh runtime object.
	ValueBox func(klass *Class, data unsafe.Pointer) unsafe.Pointer

	// ObjectUnbox returns the address of the value data inside a boxed
	// object.
	ObjectUnbox func(obj unsafe.Pointer) unsafe.Pointer
}

var funcs Funcs
var registered bool

// Register installs the entry point table. It must be called before any
// generated binding executes and must not race with binding calls; there is
// no locking here. Re-registering is allowed (tests do this).
func Register(f Funcs) {
	switch {
	case f.GCWriteBarrierSetField == nil:
		panic("il2cpp: Register called without GCWriteBarrierSetField")
	case f.FindField == nil:
		panic("il2cpp: Register called without FindField")
	case f.FieldStaticGetValue == nil:
		panic("il2cpp: Register called without FieldStaticGetValue")
	case f.FieldStaticSetValue == nil:
		panic("il2cpp: Register called without FieldStaticSetValue")
	case f.ValueBox == nil:
		panic("il2cpp: Register called without ValueBox")
	case f.ObjectUnbox == nil:
		panic("il2cpp: Register called without ObjectUnbox")
	}
	funcs = f
	registered = true
}

// Registered reports whether Register has been called.
func Registered() bool {
	return registered
}

//go:nosplit
func mustRegistered() {
	if !registered {
		panic("il2cpp: runtime entry points used before Register")
	}
}

// GCWriteBarrierSetField calls the registered write barrier.
func GCWriteBarrierSetField(obj unsafe.Pointer, slot *unsafe.Pointer, value unsafe.Pointer) {
	mustRegistered()
	funcs.GCWriteBarrierSetField(obj, slot, value)
}

// FindField calls the registered field lookup.
func FindField(klass *Class, name *byte) *FieldInfo {
	mustRegistered()
	return funcs.FindField(klass, name)
}

// FieldStaticGetValue calls the registered static field getter.
func FieldStaticGetValue(field *FieldInfo, out unsafe.Pointer) {
	mustRegistered()
	funcs.FieldStaticGetValue(field, out)
}

// FieldStaticSetValue calls the registered static field setter.
func FieldStaticSetValue(field *FieldInfo, in unsafe.Pointer) {
	mustRegistered()
	funcs.FieldStaticSetValue(field, in)
}

// ValueBox calls the registered boxing entry point.
func ValueBox(klass *Class, data unsafe.Pointer) unsafe.Pointer {
	mustRegistered()
	return funcs.ValueBox(klass, data)
}

// ObjectUnbox calls the registered unboxing entry point.
func ObjectUnbox(obj unsafe.Pointer) unsafe.Pointer {
	mustRegistered()
	return funcs.ObjectUnbox(obj)
}
