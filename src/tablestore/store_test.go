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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awslite/tablexport/src/errs"
)

func TestCreateTableRejectsDuplicates(t *testing.T) {
	store := NewStore()
	_, err := store.CreateTable("users", "arn:aws:dynamodb:us-east-1:123456789012:table/users")
	require.NoError(t, err)

	_, err = store.CreateTable("users", "arn:aws:dynamodb:us-east-1:123456789012:table/users2")
	assert.Error(t, err)

	_, err = store.CreateTable("users2", "arn:aws:dynamodb:us-east-1:123456789012:table/users")
	assert.Error(t, err)
}

func TestFindTableByArn(t *testing.T) {
	store := NewStore()
	arn := "arn:aws:dynamodb:us-east-1:123456789012:table/orders"
	created, err := store.CreateTable("orders", arn)
	require.NoError(t, err)

	found, err := store.FindTableByArn(arn)
	require.NoError(t, err)
	assert.Same(t, created, found)

	_, err = store.FindTableByArn("arn:aws:dynamodb:us-east-1:123456789012:table/unknown")
	require.Error(t, err)
	var notFound *errs.TableNotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestTableNamesSorted(t *testing.T) {
	store := NewStore()
	for _, name := range []string{"zebra", "alpha", "mid"} {
		_, err := store.CreateTable(name, "arn:aws:dynamodb:us-east-1:123456789012:table/"+name)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"alpha", "mid", "zebra"}, store.TableNames())

	tables := store.Tables()
	require.Len(t, tables, 3)
	assert.Equal(t, "alpha", tables[0].Name())
}

func TestAllItemsReturnsSnapshot(t *testing.T) {
	table := NewTable("users", "arn:aws:dynamodb:us-east-1:123456789012:table/users")
	table.PutItem(Item{"PK": map[string]interface{}{"S": "user#1"}})

	snapshot := table.AllItems()
	table.PutItem(Item{"PK": map[string]interface{}{"S": "user#2"}})

	assert.Len(t, snapshot, 1)
	assert.Equal(t, 2, table.ItemCount())
}

func TestItemSerializeIsDeterministic(t *testing.T) {
	item := Item{
		"b": map[string]interface{}{"N": "2"},
		"a": map[string]interface{}{"S": "x"},
	}
	first, err := item.Serialize()
	require.NoError(t, err)
	second, err := item.Serialize()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.JSONEq(t, `{"a":{"S":"x"},"b":{"N":"2"}}`, string(first))
}

func TestPointInTimeRecoveryFlag(t *testing.T) {
	table := NewTable("users", "arn:aws:dynamodb:us-east-1:123456789012:table/users")
	assert.False(t, table.PointInTimeRecoveryEnabled())
	table.SetPointInTimeRecovery(true)
	assert.True(t, table.PointInTimeRecoveryEnabled())
}

func TestLoadFromFile(t *testing.T) {
	seed := `{
		"Tables": [
			{
				"TableName": "users",
				"TableArn": "arn:aws:dynamodb:us-east-1:123456789012:table/users",
				"PointInTimeRecovery": true,
				"Items": [
					{"PK": {"S": "user#1"}},
					{"PK": {"S": "user#2"}}
				]
			},
			{
				"TableName": "orders",
				"TableArn": "arn:aws:dynamodb:us-east-1:123456789012:table/orders",
				"PointInTimeRecovery": false
			}
		]
	}`
	seedPath := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(seedPath, []byte(seed), 0644))

	store := LoadFromFile(seedPath)
	assert.Equal(t, []string{"orders", "users"}, store.TableNames())

	users, err := store.FindTableByArn("arn:aws:dynamodb:us-east-1:123456789012:table/users")
	require.NoError(t, err)
	assert.True(t, users.PointInTimeRecoveryEnabled())
	assert.Equal(t, 2, users.ItemCount())

	orders, ok := store.GetTable("orders")
	require.True(t, ok)
	assert.False(t, orders.PointInTimeRecoveryEnabled())
	assert.Equal(t, 0, orders.ItemCount())
}
