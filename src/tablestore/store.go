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
	"sort"
	"sync"

	goerrors "github.com/go-errors/errors"
	"github.com/samber/lo"

	"github.com/awslite/tablexport/src/errs"
)

// Store is the table registry of the emulator. Tables are indexed both by name
// and by ARN; ARN lookups stay O(1) no matter how large the namespace grows.
type Store struct {
	mu       sync.RWMutex
	tables   map[string]*Table
	arnIndex map[string]*Table
}

func NewStore() *Store {
	return &Store{
		tables:   make(map[string]*Table),
		arnIndex: make(map[string]*Table),
	}
}

func (s *Store) CreateTable(name string, arn string) (*Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tables[name]; ok {
		return nil, goerrors.Errorf("table %q already exists", name)
	}
	if _, ok := s.arnIndex[arn]; ok {
		return nil, goerrors.Errorf("table ARN %q already exists", arn)
	}
	table := NewTable(name, arn)
	s.tables[name] = table
	s.arnIndex[arn] = table
	return table, nil
}

// FindTableByArn resolves a table ARN to its table instance.
// Returns errs.TableNotFoundError when no table carries that ARN.
func (s *Store) FindTableByArn(arn string) (*Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	table, ok := s.arnIndex[arn]
	if !ok {
		return nil, errs.NewTableNotFoundError(arn)
	}
	return table, nil
}

func (s *Store) GetTable(name string) (*Table, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	table, ok := s.tables[name]
	return table, ok
}

// Tables returns all registered tables sorted by name.
func (s *Store) Tables() []*Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tables := lo.Values(s.tables)
	sort.Slice(tables, func(i, j int) bool {
		return tables[i].Name() < tables[j].Name()
	})
	return tables
}

func (s *Store) TableNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := lo.Keys(s.tables)
	sort.Strings(names)
	return names
}
