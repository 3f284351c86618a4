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
	"sync"
	"unsafe"

	"il2go.dev/il2go/pkg/il2cpp"
	"il2go.dev/il2go/pkg/staticname"
)

// ClassResolver returns the runtime class a static field lives on. The
// generator emits one per class; resolution may be lazy and may return nil
// before the runtime has loaded the class.
type ClassResolver func() *il2cpp.Class

// StaticField is one static field declaration. The generator emits one per
// field at package level; the runtime descriptor is resolved on first use
// and cached for the life of the process.
type StaticField struct {
	name    staticname.Name
	resolve ClassResolver

	once  sync.Once
	field *il2cpp.FieldInfo
	err   error
}

// NewStatic declares a static field with the given name on the class
// produced by resolve.
func NewStatic(name staticname.Name, resolve ClassResolver) *StaticField {
	return &StaticField{name: name, resolve: resolve}
}

// Name returns the field's name.
func (f *StaticField) Name() string {
	return f.name.String()
}

func (f *StaticField) info() (*il2cpp.FieldInfo, error) {
	f.once.Do(func() {
		klass := f.resolve()
		if klass == nil {
			f.err = &ClassNotFoundError{Field: f.name.String()}
			return
		}
		f.field = il2cpp.FindField(klass, f.name.CPtr())
		if f.field == nil {
			f.err = &FieldNotFoundError{Field: f.name.String()}
		}
	})
	return f.field, f.err
}

// GetStaticValue reads a value-type static field.
func GetStaticValue[T any](f *StaticField) (T, error) {
	var v T
	fi, err := f.info()
	if err != nil {
		return v, err
	}
	il2cpp.FieldStaticGetValue(fi, unsafe.Pointer(&v))
	return v, nil
}

// SetStaticValue writes a value-type static field.
func SetStaticValue[T any](f *StaticField, v T) error {
	fi, err := f.info()
	if err != nil {
		return err
	}
	il2cpp.FieldStaticSetValue(fi, unsafe.Pointer(&v))
	return nil
}

// GetStaticRef reads a reference-type static field, returning the raw
// referent address.
func GetStaticRef(f *StaticField) (unsafe.Pointer, error) {
	fi, err := f.info()
	if err != nil {
		return nil, err
	}
	var p unsafe.Pointer
	il2cpp.FieldStaticGetValue(fi, unsafe.Pointer(&p))
	return p, nil
}

// SetStaticRef writes a reference-type static field. Static storage is not
// scanned through the instance write barrier, so the raw referent address
// goes straight to the runtime's setter.
func SetStaticRef(f *StaticField, p unsafe.Pointer) error {
	fi, err := f.info()
	if err != nil {
		return err
	}
	il2cpp.FieldStaticSetValue(fi, p)
	return nil
}
