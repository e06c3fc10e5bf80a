/*
 * Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License").
 * You may not use this file except in compliance with the License.
 * A copy of the License is located at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * or in the "license" file accompanying this file. This file is distributed
 * on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
 * express or implied. See the License for the specific language governing
 * permissions and limitations under the License.
 */

package ion

import "fmt"

// A ParseError is returned when the parser encounters malformed input. The
// first ParseError aborts the entire parse; no partial document is returned.
type ParseError struct {
	// Section is the name of the most recently opened section, or "unknown"
	// if no section header had been seen yet.
	Section string
	Msg     string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ion: %v (section %q)", e.Msg, e.Section)
}

// A MissingSectionError is returned by Document.Fetch when no section with
// the requested name exists.
type MissingSectionError struct {
	Name string
}

func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("ion: missing section %q", e.Name)
}

// A MissingValueError is returned by Section.Fetch when the section's
// dictionary has no value under the requested key.
type MissingValueError struct {
	Key string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("ion: missing value %q", e.Key)
}
