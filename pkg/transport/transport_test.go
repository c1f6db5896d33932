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

package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	compute "google.golang.org/api/compute/v1"

	"k8s.io/gce-zone/pkg/utils"
	"k8s.io/gce-zone/pkg/zone"
)

// testClient returns a Client whose requests are rewritten to srv.
func testClient(srv *httptest.Server, project string) *Client {
	hc := srv.Client()
	hc.Transport = &rewriteTransport{base: hc.Transport, target: srv.URL}
	return NewClient(hc, project)
}

type rewriteTransport struct {
	base   http.RoundTripper
	target string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	u, err := url.Parse(t.target)
	if err != nil {
		return nil, err
	}
	req.URL.Scheme = u.Scheme
	req.URL.Host = u.Host
	return t.base.RoundTrip(req)
}

func TestDo(t *testing.T) {
	var gotMethod, gotPath, gotQuery, gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		json.NewEncoder(w).Encode(&compute.Operation{Name: "op-1"})
	}))
	defer srv.Close()

	client := testClient(srv, "test-project")
	query := url.Values{}
	query.Set("sourceImage", "some-image")
	var out compute.Operation
	err := client.Do(context.Background(), &zone.RequestOptions{
		Method: http.MethodPost,
		Path:   "zones/us-central1-a/disks",
		Query:  query,
		Body:   &compute.Disk{Name: "d"},
	}, &out)
	if err != nil {
		t.Fatalf("Do(...) returned error %v, want nil", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("request method = %q, want POST", gotMethod)
	}
	wantPath := "/compute/v1/projects/test-project/zones/us-central1-a/disks"
	if gotPath != wantPath {
		t.Errorf("request path = %q, want %q", gotPath, wantPath)
	}
	if !strings.Contains(gotQuery, "sourceImage=some-image") {
		t.Errorf("request query = %q, want it to carry sourceImage", gotQuery)
	}
	if gotContentType != "application/json" {
		t.Errorf("content type = %q, want application/json", gotContentType)
	}
	var sentDisk compute.Disk
	if err := json.Unmarshal(gotBody, &sentDisk); err != nil {
		t.Fatalf("unmarshaling sent body: %v", err)
	}
	if diff := cmp.Diff(compute.Disk{Name: "d"}, sentDisk); diff != "" {
		t.Errorf("sent body mismatch (-want +got):\n%s", diff)
	}
	if out.Name != "op-1" {
		t.Errorf("decoded response name = %q, want op-1", out.Name)
	}
}

func TestDoNoBody(t *testing.T) {
	var gotContentLength int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentLength = r.ContentLength
		w.Write([]byte("{}"))
	}))
	defer srv.Close()

	client := testClient(srv, "test-project")
	err := client.Do(context.Background(), &zone.RequestOptions{
		Method: http.MethodGet,
		Path:   "zones/us-central1-a/disks",
	}, nil)
	if err != nil {
		t.Fatalf("Do(...) returned error %v, want nil", err)
	}
	if gotContentLength > 0 {
		t.Errorf("GET request carried a body of %d bytes, want none", gotContentLength)
	}
}

func TestDoErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error": {"code": 409, "message": "already exists"}}`))
	}))
	defer srv.Close()

	client := testClient(srv, "test-project")
	err := client.Do(context.Background(), &zone.RequestOptions{
		Method: http.MethodPost,
		Path:   "global/firewalls",
		Body:   &compute.Firewall{Name: "default-allow-http"},
	}, nil)
	if err == nil {
		t.Fatal("Do(...) returned nil error for a 409 response")
	}
	if !utils.IsConflictError(err) {
		t.Errorf("Do(...) returned %v, want a googleapi error with code 409", err)
	}
}

func TestResourceLabel(t *testing.T) {
	testCases := []struct {
		path string
		want string
	}{
		{path: "zones/us-central1-a/disks", want: "disks"},
		{path: "zones/us-central1-a/instances", want: "instances"},
		{path: "global/firewalls", want: "firewalls"},
	}
	for _, tc := range testCases {
		if got := resourceLabel(tc.path); got != tc.want {
			t.Errorf("resourceLabel(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
