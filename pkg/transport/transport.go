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

// Package transport is the default zone.Requester: JSON over HTTP against
// the Compute v1 endpoint. Auth, retries and timeouts belong to the
// injected http.Client.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
	"k8s.io/klog/v2"

	"k8s.io/gce-zone/pkg/metrics"
	"k8s.io/gce-zone/pkg/zone"
)

// basePath is the Compute v1 endpoint all requests are made against.
const basePath = "https://compute.googleapis.com/compute/v1/projects/"

// Client issues Compute API requests for one project. It implements
// zone.Requester.
type Client struct {
	client  *http.Client
	project string
}

// NewClient returns a Client for the given project. hc must already carry
// credentials for the compute scope.
func NewClient(hc *http.Client, project string) *Client {
	return &Client{client: hc, project: project}
}

// Do implements zone.Requester. Non-2xx responses are returned as
// *googleapi.Error so callers can branch on the status code.
func (c *Client) Do(ctx context.Context, opts *zone.RequestOptions, out interface{}) error {
	u := basePath + c.project + "/" + strings.TrimPrefix(opts.Path, "/")
	if len(opts.Query) > 0 {
		u += "?" + opts.Query.Encode()
	}

	var body *bytes.Reader
	if opts.Body != nil {
		raw, err := json.Marshal(opts.Body)
		if err != nil {
			return fmt.Errorf("encoding %s %s body: %w", opts.Method, opts.Path, err)
		}
		body = bytes.NewReader(raw)
	}

	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, opts.Method, u, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, opts.Method, u, nil)
	}
	if err != nil {
		return fmt.Errorf("building %s %s request: %w", opts.Method, opts.Path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	klog.V(3).Infof("%s %s", opts.Method, u)
	metrics.ObserveRequest(opts.Method, resourceLabel(opts.Path))

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.ObserveError(0)
		return err
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		metrics.ObserveError(resp.StatusCode)
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", opts.Method, opts.Path, err)
	}
	return nil
}

// resourceLabel reduces a request path to its resource collection for the
// metrics label, e.g. "zones/us-central1-a/disks" -> "disks".
func resourceLabel(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	return parts[len(parts)-1]
}
