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

package errs

import (
	"fmt"
)

const (
	// failure codes surfaced through the export status snapshot
	FAILURE_CODE_NO_SUCH_BUCKET   = "S3NoSuchBucket"
	FAILURE_CODE_TABLE_NOT_FOUND  = "DynamoDBTableNotFound"
	FAILURE_CODE_PITR_UNAVAILABLE = "PointInTimeRecoveryUnavailable"
	FAILURE_CODE_UNKNOWN          = "UNKNOWN"

	// failure messages paired with the codes above
	FAILURE_MSG_NO_SUCH_BUCKET   = "The specified bucket does not exist"
	FAILURE_MSG_TABLE_NOT_FOUND  = "The specified table does not exist"
	FAILURE_MSG_PITR_UNAVAILABLE = "Point in time recovery not enabled for table"
)

// ExportFailedError carries the terminal failure code/message pair of an
// export run together with the underlying error, if any.
type ExportFailedError struct {
	code    string
	message string
	err     error
}

func (e *ExportFailedError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("export failed with code '%s': %s: %s", e.code, e.message, e.err.Error())
	}
	return fmt.Sprintf("export failed with code '%s': %s", e.code, e.message)
}

func (e *ExportFailedError) Code() string {
	return e.code
}

func (e *ExportFailedError) Message() string {
	return e.message
}

func (e *ExportFailedError) Unwrap() error {
	return e.err
}

// NewExportFailedError creates a terminal export failure with an explicit code.
func NewExportFailedError(code string, message string, err error) *ExportFailedError {
	return &ExportFailedError{
		code:    code,
		message: message,
		err:     err,
	}
}

type TableNotFoundError struct {
	tableArn string
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("no table with ARN %q", e.tableArn)
}

func NewTableNotFoundError(tableArn string) *TableNotFoundError {
	return &TableNotFoundError{tableArn: tableArn}
}

type BucketNotFoundError struct {
	bucketName string
}

func (e *BucketNotFoundError) Error() string {
	return fmt.Sprintf("no bucket named %q", e.bucketName)
}

func NewBucketNotFoundError(bucketName string) *BucketNotFoundError {
	return &BucketNotFoundError{bucketName: bucketName}
}
