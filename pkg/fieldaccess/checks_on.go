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

//go:build il2go_fieldchecks

package fieldaccess

import (
	"il2go.dev/il2go/pkg/handle"
)

// ChecksEnabled is true in builds carrying the il2go_fieldchecks tag.
const ChecksEnabled = true

// Check panics with *NullInstanceError if the handle is null. This is the
// policy for plain references, and for engine objects when the caller opts
// out of the cached-pointer check.
func Check[T handle.Reference](h T) {
	if !handle.NonNull(h) {
		panic(&NullInstanceError{})
	}
}

// CheckObject panics with *NullInstanceError if the handle is null or its
// cached identity pointer is null. A non-null handle whose cached pointer
// has been nulled refers to an object the runtime already destroyed, so it
// fails validation just like a null handle.
func CheckObject[T handle.ObjectConvertible](h T) {
	if !handle.Valid(h) {
		panic(&NullInstanceError{})
	}
}
