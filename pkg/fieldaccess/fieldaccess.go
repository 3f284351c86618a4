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

// Package fieldaccess implements the accessor bodies emitted by the binding
// generator: instance field loads and stores at known offsets, static field
// access through the runtime, boxing, and the optional null validation that
// guards all of it.
//
// Validation is a build-time choice. Builds with the il2go_fieldchecks tag
// validate every access and panic with *NullInstanceError on a bad handle;
// builds without it compile the checks down to nothing and accesses on
// invalid handles are undefined behavior. There is no runtime switch, so
// unchecked builds carry no validation code at all.
package fieldaccess

import (
	"fmt"
)

// NullInstanceMessage is the diagnostic carried by NullInstanceError. The
// wording is fixed; tooling downstream matches on it.
const NullInstanceMessage = "Field access on nullptr instance, please make sure your instance is not null"

// NullInstanceError is the panic value raised by Check and CheckObject in
// validated builds when an instance handle fails validation.
type NullInstanceError struct{}

// Error implements error.Error.
func (*NullInstanceError) Error() string {
	return NullInstanceMessage
}

// ClassNotFoundError indicates that a static field's class resolver
// returned nil.
type ClassNotFoundError struct {
	Field string
}

// Error implements error.Error.
func (e *ClassNotFoundError) Error() string {
	return fmt.Sprintf("class for static field %q is null", e.Field)
}

// FieldNotFoundError indicates that the runtime has no field with the
// requested name on the resolved class.
type FieldNotFoundError struct {
	Field string
}

// Error implements error.Error.
func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("could not find static field %q", e.Field)
}
