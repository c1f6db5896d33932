/*
Copyright 2024 The Kubernetes Authors.

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

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRequest(t *testing.T) {
	before := testutil.ToFloat64(apiRequestCount.WithLabelValues("GET", "disks"))
	ObserveRequest("GET", "disks")
	ObserveRequest("GET", "disks")
	after := testutil.ToFloat64(apiRequestCount.WithLabelValues("GET", "disks"))
	if got := after - before; got != 2 {
		t.Errorf("apiRequestCount{GET,disks} increased by %v, want 2", got)
	}
}

func TestObserveError(t *testing.T) {
	before := testutil.ToFloat64(apiErrorCount.WithLabelValues("409"))
	ObserveError(409)
	after := testutil.ToFloat64(apiErrorCount.WithLabelValues("409"))
	if got := after - before; got != 1 {
		t.Errorf("apiErrorCount{409} increased by %v, want 1", got)
	}
}
