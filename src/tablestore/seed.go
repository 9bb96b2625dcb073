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
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/awslite/tablexport/src/utils"
)

type TableSeed struct {
	TableName           string `json:"TableName"`
	TableArn            string `json:"TableArn"`
	PointInTimeRecovery bool   `json:"PointInTimeRecovery"`
	Items               []Item `json:"Items"`
}

type Seed struct {
	Tables []*TableSeed `json:"Tables"`
}

// LoadFromFile populates a fresh Store from a JSON seed file.
func LoadFromFile(seedFilePath string) *Store {
	log.Infof("loading table seed from %q", seedFilePath)
	seedJson, err := os.ReadFile(seedFilePath)
	if err != nil {
		utils.ErrExit("load table seed file: %v", err)
	}

	var seed Seed
	err = json.Unmarshal(seedJson, &seed)
	if err != nil {
		utils.ErrExit("unmarshal table seed: %v", err)
	}

	store := NewStore()
	for _, tableSeed := range seed.Tables {
		table, err := store.CreateTable(tableSeed.TableName, tableSeed.TableArn)
		if err != nil {
			utils.ErrExit("seed table %q: %v", tableSeed.TableName, err)
		}
		table.SetPointInTimeRecovery(tableSeed.PointInTimeRecovery)
		for _, item := range tableSeed.Items {
			table.PutItem(item)
		}
		log.Infof("seeded table %q with %d items (PITR=%v)",
			tableSeed.TableName, table.ItemCount(), tableSeed.PointInTimeRecovery)
	}
	return store
}
