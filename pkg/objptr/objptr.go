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

// Package objptr provides address arithmetic over instances whose layout is
// owned by the managed runtime.
//
// Nothing in this package allocates, frees, or checks the memory it is
// pointed at. Every operation has the same precondition: the instance
// address is valid and the offset does not exceed the true size of the
// pointed-to object. Both are supplied by the binding generator, not
// verified here.
package objptr

// Addr represents the address of a runtime-managed instance. It is a plain
// integer and may be manipulated without keeping the instance alive; the
// managed runtime, not the Go GC, owns the pointee.
type Addr uintptr

// IsNull returns true if the address is the null address.
//
//go:nosplit
func (v Addr) IsNull() bool {
	return v == 0
}

// Add returns the address offset bytes past v. It does not check for
// overflow or for the bounds of the underlying object.
//
//go:nosplit
func (v Addr) Add(offset uintptr) Addr {
	return v + Addr(offset)
}
