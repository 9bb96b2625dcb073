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
package export

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/awslite/tablexport/src/errs"
	"github.com/awslite/tablexport/src/objectstore"
	"github.com/awslite/tablexport/src/tablestore"
)

const (
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
	StatusFailed     = "FAILED"
)

// TableStore is the source surface an export needs from the table registry.
type TableStore interface {
	FindTableByArn(arn string) (*tablestore.Table, error)
}

// Response is the pollable status snapshot of an export job. Field names
// follow the DynamoDB DescribeExport wire shape.
type Response struct {
	ExportArn       string `json:"ExportArn"`
	ExportStatus    string `json:"ExportStatus"`
	FailureCode     string `json:"FailureCode,omitempty"`
	FailureMessage  string `json:"FailureMessage,omitempty"`
	ExportFormat    string `json:"ExportFormat"`
	ExportType      string `json:"ExportType"`
	ItemCount       int64  `json:"ItemCount"`
	BilledSizeBytes int64  `json:"BilledSizeBytes"`
}

// ExportJob owns one full snapshot-export lifecycle: precondition checks
// against the table and object stores, item serialization, the compressed
// single-object upload, and the terminal status it leaves behind.
type ExportJob struct {
	exportArn    string
	tableArn     string
	bucketName   string
	prefix       string
	exportFormat string
	exportType   string

	tables  TableStore
	objects objectstore.ObjectStore

	startOnce sync.Once
	done      chan struct{}

	// All mutable state below is guarded by mu. Terminal status, failure
	// code/message and the counters are always assigned inside one critical
	// section, so Response never returns a torn snapshot.
	mu             sync.Mutex
	status         string
	failureCode    string
	failureMessage string
	tableName      string
	itemCount      int64
	processedBytes int64
	errorCount     int64
}

// NewExportJob builds a job in IN_PROGRESS state with a freshly generated
// export ARN. No I/O happens here; all validation is deferred to Start.
func NewExportJob(bucketName string, prefix string, region string, accountID string,
	tableArn string, exportFormat string, exportType string,
	tables TableStore, objects objectstore.ObjectStore) *ExportJob {

	exportID := uuid.NewString()
	arn := fmt.Sprintf("arn:%s:dynamodb:%s:%s:table/%s/export/%s",
		GetPartition(region), region, accountID, tableArn, stripDashes(exportID))

	return &ExportJob{
		exportArn:    arn,
		tableArn:     tableArn,
		bucketName:   bucketName,
		prefix:       prefix,
		exportFormat: exportFormat,
		exportType:   exportType,
		tables:       tables,
		objects:      objects,
		done:         make(chan struct{}),
		status:       StatusInProgress,
	}
}

func (e *ExportJob) ExportArn() string {
	return e.exportArn
}

// Start schedules the export run on its own goroutine and returns immediately.
// Calling Start more than once is a no-op.
func (e *ExportJob) Start() {
	e.startOnce.Do(func() {
		go e.run()
	})
}

// Done is closed once the job reaches a terminal state.
func (e *ExportJob) Done() <-chan struct{} {
	return e.done
}

// Response returns the current status snapshot. Safe to call at any time,
// concurrently with the running export.
func (e *ExportJob) Response() Response {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Response{
		ExportArn:       e.exportArn,
		ExportStatus:    e.status,
		FailureCode:     e.failureCode,
		FailureMessage:  e.failureMessage,
		ExportFormat:    e.exportFormat,
		ExportType:      e.exportType,
		ItemCount:       e.itemCount,
		BilledSizeBytes: e.processedBytes,
	}
}

func (e *ExportJob) run() {
	defer close(e.done)
	ctx := context.Background()
	log.Infof("export %s: starting run for table ARN %q into bucket %q", e.exportArn, e.tableArn, e.bucketName)

	exists, err := e.objects.BucketExists(ctx, e.bucketName)
	if err != nil {
		e.fail(errs.FAILURE_CODE_UNKNOWN, err.Error())
		return
	}
	if !exists {
		e.fail(errs.FAILURE_CODE_NO_SUCH_BUCKET, errs.FAILURE_MSG_NO_SUCH_BUCKET)
		return
	}

	table, err := e.tables.FindTableByArn(e.tableArn)
	if err != nil {
		e.fail(errs.FAILURE_CODE_TABLE_NOT_FOUND, errs.FAILURE_MSG_TABLE_NOT_FOUND)
		return
	}
	e.setTableName(table.Name())

	if !table.PointInTimeRecoveryEnabled() {
		e.fail(errs.FAILURE_CODE_PITR_UNAVAILABLE, errs.FAILURE_MSG_PITR_UNAVAILABLE)
		return
	}

	if err := e.snapshotToObjectStore(ctx, table); err != nil {
		e.fail(errs.FAILURE_CODE_UNKNOWN, err.Error())
		return
	}

	e.finish()
}

// snapshotToObjectStore serializes the table's items, counts them, and uploads
// the gzipped JSON array as a single object.
func (e *ExportJob) snapshotToObjectStore(ctx context.Context, table *tablestore.Table) error {
	items := table.AllItems()
	backup := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		data, err := item.Serialize()
		if err != nil {
			return fmt.Errorf("serialize item: %w", err)
		}
		backup = append(backup, data)
		e.addProcessedBytes(int64(len(data)))
	}
	e.setItemCount(int64(len(backup)))

	payload, err := json.Marshal(backup)
	if err != nil {
		return fmt.Errorf("marshal item batch: %w", err)
	}
	compressed, err := gzipCompress(payload)
	if err != nil {
		return fmt.Errorf("compress item batch: %w", err)
	}

	// Mirrors the real export layout: a per-export directory holding one data
	// file per shard. This emulator always produces a single shard.
	key := fmt.Sprintf("%s/AWSDynamoDB/%s/data/%s.gz", e.prefix, uuid.NewString(), uuid.NewString())
	if err := e.objects.PutObject(ctx, e.bucketName, key, compressed); err != nil {
		return err
	}
	log.Infof("export %s: wrote %d items (%d bytes serialized, %d compressed) to %s/%s",
		e.exportArn, len(backup), len(payload), len(compressed), e.bucketName, key)
	return nil
}

func (e *ExportJob) fail(code string, message string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status != StatusInProgress {
		return
	}
	e.status = StatusFailed
	e.failureCode = code
	e.failureMessage = message
	log.Warnf("export %s: failed with code %s: %s", e.exportArn, code, message)
}

// finish resolves the terminal status after a successful upload. A nonzero
// per-item error count still counts as a failed export.
func (e *ExportJob) finish() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status != StatusInProgress {
		return
	}
	if e.errorCount == 0 {
		e.status = StatusCompleted
		log.Infof("export %s: table %q completed with %d items, %d bytes",
			e.exportArn, e.tableName, e.itemCount, e.processedBytes)
		return
	}
	e.status = StatusFailed
	e.failureCode = errs.FAILURE_CODE_UNKNOWN
	e.failureMessage = fmt.Sprintf("%d items failed to serialize", e.errorCount)
}

func (e *ExportJob) setTableName(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tableName = name
}

func (e *ExportJob) addProcessedBytes(n int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.processedBytes += n
}

func (e *ExportJob) setItemCount(n int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.itemCount = n
}

func gzipCompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
