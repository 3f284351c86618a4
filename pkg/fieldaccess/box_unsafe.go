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

	"il2go.dev/il2go/pkg/handle"
	"il2go.dev/il2go/pkg/il2cpp"
)

// BoxValue boxes v into a fresh runtime object of class k. The runtime
// copies the value; v's storage is not retained.
func BoxValue[T any](k *il2cpp.Class, v T) handle.Object {
	return handle.ObjectOf(il2cpp.ValueBox(k, unsafe.Pointer(&v)))
}

// UnboxValue copies the value data out of a boxed object.
//
// Preconditions: o is non-null and boxes a value of T's exact layout.
func UnboxValue[T any](o handle.Object) T {
	return *(*T)(il2cpp.ObjectUnbox(o.Raw()))
}
