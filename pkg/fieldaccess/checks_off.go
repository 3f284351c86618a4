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

//go:build !il2go_fieldchecks

package fieldaccess

import (
	"il2go.dev/il2go/pkg/handle"
)

// ChecksEnabled is false in builds without the il2go_fieldchecks tag.
const ChecksEnabled = false

// Check is a no-op in unchecked builds; it inlines to nothing. Accessing a
// field on an invalid handle in this configuration is undefined behavior.
func Check[T handle.Reference](T) {
}

// CheckObject is a no-op in unchecked builds; it inlines to nothing.
func CheckObject[T handle.ObjectConvertible](T) {
}
