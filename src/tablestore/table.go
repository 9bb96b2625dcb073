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
	"sync"
)

type Table struct {
	name string
	arn  string

	mu          sync.RWMutex
	pitrEnabled bool
	items       []Item
}

func NewTable(name string, arn string) *Table {
	return &Table{
		name: name,
		arn:  arn,
	}
}

func (t *Table) Name() string {
	return t.name
}

func (t *Table) Arn() string {
	return t.arn
}

func (t *Table) PointInTimeRecoveryEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.pitrEnabled
}

func (t *Table) SetPointInTimeRecovery(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pitrEnabled = enabled
}

func (t *Table) PutItem(item Item) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = append(t.items, item)
}

// AllItems returns a snapshot of the table's current item set. Enumeration
// order is insertion order; consumers must not rely on it.
func (t *Table) AllItems() []Item {
	t.mu.RLock()
	defer t.mu.RUnlock()
	items := make([]Item, len(t.items))
	copy(items, t.items)
	return items
}

func (t *Table) ItemCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.items)
}
