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

// Package ion reads and writes Ion, a line-oriented configuration and data
// format. An Ion document is a sequence of named sections; each section holds
// a dictionary of typed values and a table of pipe-delimited rows:
//
//	[HOTEL]
//	name  = "Strand"
//	stars = 4
//	loc   = { lat = 52.5, lon = 13.4 }
//
//	| room   | beds | price |
//	|--------|------|-------|
//	| single | 1    | 80.0  |
//	| double | 2    | 120.5 |
//
// Parse scans a document in a single pass over the input string:
//
//	doc, err := ion.Parse(text)
//
// ParseFiltered restricts the scan to an accepted list of section names and
// stops reading as soon as all of them have been seen, which makes plucking a
// few sections out of a large document cheap. A parsed Document owns all of
// its data and can be rendered back to canonical text with Document.String.
package ion
