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
	"errors"
	"testing"
	"unsafe"

	"il2go.dev/il2go/pkg/handle"
	"il2go.dev/il2go/pkg/il2cpp"
	"il2go.dev/il2go/pkg/staticname"
)

// fakeInstance mimics an engine object holding one value field and one
// reference field past the standard header.
type fakeInstance struct {
	header [2]unsafe.Pointer
	cached unsafe.Pointer
	health int32
	_      int32
	target unsafe.Pointer
}

// fakeField is what fake FieldInfo pointers really point at: the static
// field's backing storage.
type fakeField struct {
	data []byte
}

func (f *fakeField) info() *il2cpp.FieldInfo {
	return (*il2cpp.FieldInfo)(unsafe.Pointer(f))
}

func asFakeField(fi *il2cpp.FieldInfo) *fakeField {
	return (*fakeField)(unsafe.Pointer(fi))
}

// fakeBox is the shape of boxed values produced by the fake runtime.
type fakeBox struct {
	header [2]unsafe.Pointer
	cached unsafe.Pointer
	val    uint64
}

func goString(p *byte) string {
	var n int
	for ; *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0; n++ {
	}
	return string(unsafe.Slice(p, n))
}

// fakeRuntime stands in for the managed runtime's entry points.
type fakeRuntime struct {
	fields   map[string]*fakeField
	barriers int
}

func installFakeRuntime(t *testing.T) *fakeRuntime {
	t.Helper()
	r := &fakeRuntime{fields: make(map[string]*fakeField)}
	il2cpp.Register(il2cpp.Funcs{
		GCWriteBarrierSetField: func(obj unsafe.Pointer, slot *unsafe.Pointer, value unsafe.Pointer) {
			r.barriers++
			*slot = value
		},
		FindField: func(_ *il2cpp.Class, name *byte) *il2cpp.FieldInfo {
			f, ok := r.fields[goString(name)]
			if !ok {
				return nil
			}
			return f.info()
		},
		FieldStaticGetValue: func(fi *il2cpp.FieldInfo, out unsafe.Pointer) {
			f := asFakeField(fi)
			copy(unsafe.Slice((*byte)(out), len(f.data)), f.data)
		},
		FieldStaticSetValue: func(fi *il2cpp.FieldInfo, in unsafe.Pointer) {
			f := asFakeField(fi)
			copy(f.data, unsafe.Slice((*byte)(in), len(f.data)))
		},
		ValueBox: func(_ *il2cpp.Class, data unsafe.Pointer) unsafe.Pointer {
			b := &fakeBox{cached: unsafe.Pointer(new(uint64))}
			b.val = *(*uint64)(data)
			return unsafe.Pointer(b)
		},
		ObjectUnbox: func(obj unsafe.Pointer) unsafe.Pointer {
			return unsafe.Pointer(&(*fakeBox)(obj).val)
		},
	})
	return r
}

var fakeClassMarker uint64

func fakeClass() *il2cpp.Class {
	return (*il2cpp.Class)(unsafe.Pointer(&fakeClassMarker))
}

func TestGetSetValue(t *testing.T) {
	inst := &fakeInstance{}
	p := unsafe.Pointer(inst)
	off := unsafe.Offsetof(inst.health)

	SetValue[int32](p, off, 77)
	if inst.health != 77 {
		t.Errorf("SetValue: health got %d want 77", inst.health)
	}
	if got := GetValue[int32](p, off); got != 77 {
		t.Errorf("GetValue got %d want 77", got)
	}
}

func TestGetSetRef(t *testing.T) {
	r := installFakeRuntime(t)
	inst := &fakeInstance{}
	p := unsafe.Pointer(inst)
	off := unsafe.Offsetof(inst.target)

	referent := unsafe.Pointer(new(uint64))
	SetRef(p, off, referent)
	if inst.target != referent {
		t.Errorf("SetRef: target got %p want %p", inst.target, referent)
	}
	if r.barriers != 1 {
		t.Errorf("SetRef went through the write barrier %d times, want 1", r.barriers)
	}
	if got := GetRef(p, off); got != referent {
		t.Errorf("GetRef got %p want %p", got, referent)
	}
}

func TestStaticValue(t *testing.T) {
	r := installFakeRuntime(t)
	r.fields["score"] = &fakeField{data: make([]byte, 8)}

	f := NewStatic(staticname.New("score"), fakeClass)
	if err := SetStaticValue[uint64](f, 0xfeedface); err != nil {
		t.Fatalf("SetStaticValue: %v", err)
	}
	got, err := GetStaticValue[uint64](f)
	if err != nil {
		t.Fatalf("GetStaticValue: %v", err)
	}
	if got != 0xfeedface {
		t.Errorf("GetStaticValue got %#x want 0xfeedface", got)
	}
}

func TestStaticRef(t *testing.T) {
	r := installFakeRuntime(t)
	r.fields["instance"] = &fakeField{data: make([]byte, 8)}

	f := NewStatic(staticname.New("instance"), fakeClass)
	referent := unsafe.Pointer(new(uint64))
	if err := SetStaticRef(f, referent); err != nil {
		t.Fatalf("SetStaticRef: %v", err)
	}
	got, err := GetStaticRef(f)
	if err != nil {
		t.Fatalf("GetStaticRef: %v", err)
	}
	if got != referent {
		t.Errorf("GetStaticRef got %p want %p", got, referent)
	}
}

func TestStaticClassNull(t *testing.T) {
	installFakeRuntime(t)
	f := NewStatic(staticname.New("score"), func() *il2cpp.Class { return nil })

	_, err := GetStaticValue[uint64](f)
	var cerr *ClassNotFoundError
	if !errors.As(err, &cerr) {
		t.Fatalf("GetStaticValue error got %v want *ClassNotFoundError", err)
	}
	if cerr.Field != "score" {
		t.Errorf("error field got %q want %q", cerr.Field, "score")
	}
	// Resolution failures stick for the life of the declaration.
	if err2 := SetStaticValue[uint64](f, 1); !errors.As(err2, &cerr) {
		t.Errorf("SetStaticValue error got %v want *ClassNotFoundError", err2)
	}
}

func TestStaticFieldMissing(t *testing.T) {
	installFakeRuntime(t)
	f := NewStatic(staticname.New("no_such_field"), fakeClass)

	_, err := GetStaticRef(f)
	var ferr *FieldNotFoundError
	if !errors.As(err, &ferr) {
		t.Fatalf("GetStaticRef error got %v want *FieldNotFoundError", err)
	}
	if ferr.Field != "no_such_field" {
		t.Errorf("error field got %q want %q", ferr.Field, "no_such_field")
	}
}

func TestBoxUnbox(t *testing.T) {
	installFakeRuntime(t)

	obj := BoxValue[uint64](fakeClass(), 42)
	if !handle.Valid(obj) {
		t.Fatal("boxed object failed validation")
	}
	if got := UnboxValue[uint64](obj); got != 42 {
		t.Errorf("UnboxValue got %d want 42", got)
	}
}

func TestNullInstanceErrorMessage(t *testing.T) {
	err := error(&NullInstanceError{})
	want := "Field access on nullptr instance, please make sure your instance is not null"
	if err.Error() != want {
		t.Errorf("NullInstanceError message got %q want %q", err.Error(), want)
	}
	if NullInstanceMessage != want {
		t.Errorf("NullInstanceMessage got %q want %q", NullInstanceMessage, want)
	}
}
