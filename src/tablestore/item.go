/*
Copyright (c) YugabyteDB, Inc.

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
package tablestore

import (
	"encoding/json"
)

// Item is one record of a table: attribute name -> attribute value in the
// wire-level representation (e.g. {"PK": {"S": "user#1"}}). The store does not
// interpret attribute values; it only round-trips them.
type Item map[string]interface{}

// Serialize renders the item in its canonical JSON form. Keys are emitted in
// sorted order, so equal items always serialize to identical bytes.
func (i Item) Serialize() ([]byte, error) {
	return json.Marshal(i)
}
