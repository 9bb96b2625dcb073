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
package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/awslite/tablexport/src/export"
	"github.com/awslite/tablexport/src/utils"
)

var exportAllCmd = &cobra.Command{
	Use:   "export-all",
	Short: "Snapshot every table in the seed file into the bucket.",
	Long: `Runs one independent export job per table in the seed file. Jobs run
concurrently; the command waits for all of them and prints a summary.`,

	Run: func(cmd *cobra.Command, args []string) {
		exportAllTables()
	},
}

func exportAllTables() {
	tables := loadTables()
	objects := resolveObjectStore()
	if createBucket {
		prepareBucket(objects)
	}

	var jobs []*export.ExportJob
	for _, table := range tables.Tables() {
		job := export.NewExportJob(targetBucket, targetPrefix, region, accountID,
			table.Arn(), exportFormat, exportType, tables, objects)
		registry.Add(job)
		jobs = append(jobs, job)
		job.Start()
	}
	for _, job := range jobs {
		<-job.Done()
	}

	failed := 0
	summary := uitable.New()
	summary.MaxColWidth = 80
	summary.AddRow("TABLE ARN", "STATUS", "ITEMS", "SIZE")
	for _, job := range registry.List() {
		resp := job.Response()
		status := resp.ExportStatus
		if status == export.StatusFailed {
			failed++
			status = color.RedString("%s (%s)", status, resp.FailureCode)
		} else {
			status = color.GreenString(status)
		}
		summary.AddRow(shortArn(resp.ExportArn), status,
			fmt.Sprintf("%d", resp.ItemCount), humanize.Bytes(uint64(resp.BilledSizeBytes)))
	}
	fmt.Println(summary)
	utils.PrintAndLog("%d export(s) finished, %d failed", len(jobs), failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// shortArn trims the export suffix so the summary fits a terminal line.
func shortArn(exportArn string) string {
	if idx := len(exportArn) - 33; idx > 0 && exportArn[idx] == '/' {
		return exportArn[:idx]
	}
	return exportArn
}

func init() {
	rootCmd.AddCommand(exportAllCmd)

	exportAllCmd.Flags().StringVar(&targetBucket, "bucket", "",
		"destination bucket name (required)")
	exportAllCmd.MarkFlagRequired("bucket")

	exportAllCmd.Flags().StringVar(&targetPrefix, "prefix", "exports",
		"destination key prefix inside the bucket")

	exportAllCmd.Flags().StringVar(&region, "region", "us-east-1",
		"region embedded in the export ARNs")

	exportAllCmd.Flags().StringVar(&accountID, "account-id", "123456789012",
		"account id embedded in the export ARNs")

	exportAllCmd.Flags().StringVar(&exportFormat, "format", "DYNAMODB_JSON",
		"export format label passed through to the status snapshots")

	exportAllCmd.Flags().StringVar(&exportType, "export-type", "FULL_EXPORT",
		"export type label passed through to the status snapshots")

	exportAllCmd.Flags().StringVar(&seedFile, "seed-file", "",
		"JSON file describing the tables and their items (required)")
	exportAllCmd.MarkFlagRequired("seed-file")

	exportAllCmd.Flags().StringVar(&objectStoreSpec, "object-store", "",
		"object store target: 's3', 'mem', or a local root directory (default <work-dir>/objects)")

	exportAllCmd.Flags().BoolVar(&createBucket, "create-bucket", false,
		"create the destination bucket in local/mem object stores before exporting")
}
