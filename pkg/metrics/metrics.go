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

// Package metrics exposes usage counters for outgoing Compute API calls.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"k8s.io/klog/v2"
)

var (
	apiRequestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gce_zone_api_requests_total",
			Help: "Number of Compute API requests issued, by method and resource",
		},
		[]string{"method", "resource"},
	)
	apiErrorCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gce_zone_api_errors_total",
			Help: "Number of Compute API requests that failed, by HTTP status code",
		},
		[]string{"code"},
	)
)

func init() {
	klog.V(3).Infof("Registering Compute API usage metrics %v and %v", apiRequestCount, apiErrorCount)
	prometheus.MustRegister(apiRequestCount, apiErrorCount)
}

// ObserveRequest records an outgoing API request.
func ObserveRequest(method, resource string) {
	apiRequestCount.WithLabelValues(method, resource).Inc()
}

// ObserveError records a failed API request. A code of 0 means the request
// never produced an HTTP response (transport failure).
func ObserveError(code int) {
	apiErrorCount.WithLabelValues(strconv.Itoa(code)).Inc()
}
