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
	"sort"
	"sync"

	"github.com/samber/lo"
)

// Registry holds live and finished export jobs by export ARN, so the service
// layer can answer DescribeExport/ListExports style lookups. Jobs are never
// evicted; a finished job stays queryable for the registry's lifetime.
type Registry struct {
	mu   sync.RWMutex
	jobs map[string]*ExportJob
}

func NewRegistry() *Registry {
	return &Registry{
		jobs: make(map[string]*ExportJob),
	}
}

func (r *Registry) Add(job *ExportJob) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ExportArn()] = job
}

func (r *Registry) Get(exportArn string) (*ExportJob, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[exportArn]
	return job, ok
}

func (r *Registry) List() []*ExportJob {
	r.mu.RLock()
	defer r.mu.RUnlock()
	jobs := lo.Values(r.jobs)
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].ExportArn() < jobs[j].ExportArn()
	})
	return jobs
}
