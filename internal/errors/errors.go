/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package errors provides reusable error types for verex's enum-like and
// value-object model types.
//
// These types are shared by internal/semver and cmd/verex whenever a
// ParseXxx helper, a Marshal/Unmarshal
// implementation, or a Validate method needs to report a structured,
// recognizable failure instead of an ad-hoc fmt.Errorf string. Centralizing
// them here keeps the error surface consistent and lets callers type-assert
// instead of parsing messages.
package errors

import "strconv"

// ParseError is returned when parsing a string into a strongly typed value
// fails (for example, a classifier alias, or an enum-like kind).
//
// Type identifies the logical type being parsed (for example,
// "PreReleaseClassifier"), and Value contains the exact string that could
// not be interpreted.
type ParseError struct {
	// Type is the logical name of the type being parsed.
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The message format is "verex: invalid {Type} value: {Value}".
func (e *ParseError) Error() string {
	return "verex: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails because it
// falls outside the set of valid constants or invariants for its type.
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The message format is "verex: cannot marshal invalid {Type} value: {Value}".
func (e *MarshalError) Error() string {
	return "verex: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value
// fails.
//
// Type identifies the logical type being populated, Data contains the
// original raw payload, and Reason is a short human-readable explanation.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The message format is "verex: cannot unmarshal {Type}: {Reason}". Data is
// deliberately excluded from the message to avoid overly verbose logs.
func (e *UnmarshalError) Error() string {
	return "verex: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the logical name of the type being validated, Field
// optionally identifies which field failed, Reason explains why, and Value
// optionally carries the offending value.
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation. May be empty
	// if the error applies to the entire value.
	Field string

	// Reason is a short, human-readable explanation of why validation
	// failed.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The message format is "verex: invalid {Type}.{Field}: {Reason}" when
// Field is set, or "verex: invalid {Type}: {Reason}" otherwise.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "verex: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "verex: invalid " + e.Type + ": " + e.Reason
}
