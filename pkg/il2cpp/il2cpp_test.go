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

package il2cpp

import (
	"testing"
	"unsafe"
)

func completeFuncs() Funcs {
	return Funcs{
		GCWriteBarrierSetField: func(_ unsafe.Pointer, slot *unsafe.Pointer, value unsafe.Pointer) {
			*slot = value
		},
		FindField:           func(*Class, *byte) *FieldInfo { return nil },
		FieldStaticGetValue: func(*FieldInfo, unsafe.Pointer) {},
		FieldStaticSetValue: func(*FieldInfo, unsafe.Pointer) {},
		ValueBox:            func(*Class, unsafe.Pointer) unsafe.Pointer { return nil },
		ObjectUnbox:         func(obj unsafe.Pointer) unsafe.Pointer { return obj },
	}
}

func TestRegisterRejectsIncompleteTable(t *testing.T) {
	tcs := []struct {
		name string
		zero func(*Funcs)
	}{
		{"GCWriteBarrierSetField", func(f *Funcs) { f.GCWriteBarrierSetField = nil }},
		{"FindField", func(f *Funcs) { f.FindField = nil }},
		{"FieldStaticGetValue", func(f *Funcs) { f.FieldStaticGetValue = nil }},
		{"FieldStaticSetValue", func(f *Funcs) { f.FieldStaticSetValue = nil }},
		{"ValueBox", func(f *Funcs) { f.ValueBox = nil }},
		{"ObjectUnbox", func(f *Funcs) { f.ObjectUnbox = nil }},
	}
	for _, tc := range tcs {
		f := completeFuncs()
		tc.zero(&f)
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Register with nil %s did not panic", tc.name)
				}
			}()
			Register(f)
		}()
	}
}

func TestRegisterDispatch(t *testing.T) {
	Register(completeFuncs())
	if !Registered() {
		t.Fatal("Registered got false after Register")
	}

	var slot unsafe.Pointer
	value := unsafe.Pointer(new(uint64))
	GCWriteBarrierSetField(nil, &slot, value)
	if slot != value {
		t.Errorf("write barrier dispatch: slot got %p want %p", slot, value)
	}

	obj := unsafe.Pointer(new(uint64))
	if got := ObjectUnbox(obj); got != obj {
		t.Errorf("ObjectUnbox dispatch got %p want %p", got, obj)
	}
	if got := FindField(nil, nil); got != nil {
		t.Errorf("FindField dispatch got %p want nil", got)
	}
}
