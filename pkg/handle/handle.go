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

// Package handle classifies instance handles and decides whether a field
// access through one is safe to perform.
//
// There are exactly two classifications, fixed by a handle's static type:
//
//   - Ref wraps any reference-like handle. The only thing that can be said
//     about it is whether it is null.
//
//   - Object wraps handles for engine objects, which additionally carry a
//     cached identity pointer maintained by the managed runtime at a fixed
//     offset. The runtime nulls that pointer when it destroys the object, so
//     an Object handle can be non-null and still refer to a dead object.
//
// Generated binding types embed one of the two and thereby pick their
// validation policy at compile time. The cached-pointer check cannot be
// requested for a plain Ref: Valid requires ObjectConvertible, which Ref
// does not satisfy, making the mistake a compile error rather than a read
// through a field that does not exist.
package handle

// Reference is satisfied by every handle classification.
type Reference interface {
	// Raw returns the wrapped instance address.
	Raw() RawPtr
}

// ObjectConvertible is satisfied only by handle types that carry the cached
// identity pointer, i.e. Object and anything embedding it.
type ObjectConvertible interface {
	Reference

	// AsObject reclassifies the handle as a bare Object.
	AsObject() Object
}

// NonNull reports whether the handle itself is non-null. It never touches
// the pointee, so it is safe on handles referring to dead or unmapped
// memory. For ObjectConvertible handles this is the policy used when the
// cached-pointer check is not wanted.
func NonNull[T Reference](h T) bool {
	return h.Raw() != nil
}

// Valid reports whether h is safe to access as a live engine object: the
// handle must be non-null and its cached identity pointer must be non-null.
// The handle check short-circuits; the cached pointer is never read through
// a null handle.
//
// Valid is a pure function of the handle and the current contents of the
// cached-pointer slot. It does not observe concurrent destruction: a true
// result is stale the moment the runtime destroys the object.
func Valid[T ObjectConvertible](h T) bool {
	o := h.AsObject()
	return !o.IsNull() && o.CachedPtr() != nil
}
