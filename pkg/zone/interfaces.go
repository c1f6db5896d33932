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

package zone

import (
	"context"
	"net/url"
)

// RequestOptions describes one Compute API request: the HTTP method, the
// project-relative path (e.g. "zones/us-central1-a/disks"), optional query
// parameters and an optional JSON body.
type RequestOptions struct {
	Method string
	Path   string
	Query  url.Values
	Body   interface{}
}

// Requester issues Compute API requests. Implementations own transport
// concerns (auth, retries, timeouts); this package never retries. A non-nil
// out is decoded from the response body.
type Requester interface {
	Do(ctx context.Context, opts *RequestOptions, out interface{}) error
}

// Image is a resolved source image.
type Image struct {
	SelfLink string
}

// ImageResolver resolves an operating system name (e.g. "debian-12") to the
// latest matching public image.
type ImageResolver interface {
	GetLatest(ctx context.Context, os string) (*Image, error)
}

// Rule describes a firewall rule to provision: a single protocol with its
// ports, allowed source ranges and the instance tags it targets.
type Rule struct {
	Protocol     string
	Ports        []string
	SourceRanges []string
	TargetTags   []string
}

// FirewallCreator provisions project-wide firewall rules. Creation is not
// required to be idempotent; callers decide how to treat an already-exists
// conflict.
type FirewallCreator interface {
	CreateFirewall(ctx context.Context, name string, rule Rule) error
}
