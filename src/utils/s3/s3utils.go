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
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/awslite/tablexport/src/utils"
)

var client *s3.Client

func createClientIfNotExists() {
	if client != nil {
		return
	}
	cfg, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		utils.ErrExit("load s3 config: %w", err)
	}
	client = s3.NewFromConfig(cfg, func(o *s3.Options) {
		// TABLEXPORT_S3_ENDPOINT points writes at an S3-compatible emulator endpoint.
		if endpoint := os.Getenv("TABLEXPORT_S3_ENDPOINT"); endpoint != "" {
			o.EndpointResolver = s3.EndpointResolverFromURL(endpoint)
			o.UsePathStyle = true
		}
	})
}

func ValidateObjectURL(target string) error {
	u, err := url.Parse(target)
	if err != nil {
		return err
	}
	if u.Host == "" {
		return fmt.Errorf("missing bucket in s3 url %v", target)
	}
	return nil
}

// BucketExists issues a HeadBucket request; a NotFound/NoSuchBucket API error
// maps to (false, nil), anything else is surfaced to the caller.
func BucketExists(ctx context.Context, bucketName string) (bool, error) {
	createClientIfNotExists()
	_, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: &bucketName})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.ErrorCode() {
			case "NotFound", "NoSuchBucket":
				return false, nil
			}
		}
		return false, fmt.Errorf("head bucket %q: %w", bucketName, err)
	}
	return true, nil
}

func PutObject(ctx context.Context, bucketName string, key string, data []byte) error {
	createClientIfNotExists()
	_, err := client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucketName,
		Key:    &key,
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return fmt.Errorf("put object s3://%s/%s: %w", bucketName, key, err)
	}
	return nil
}
