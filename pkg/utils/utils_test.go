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

package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"google.golang.org/api/googleapi"
)

func TestIsHTTPErrorCode(t *testing.T) {
	testCases := []struct {
		desc string
		err  error
		code int
		want bool
	}{
		{
			desc: "googleapi conflict",
			err:  &googleapi.Error{Code: http.StatusConflict},
			code: http.StatusConflict,
			want: true,
		},
		{
			desc: "googleapi conflict wrapped",
			err:  fmt.Errorf("creating firewall: %w", &googleapi.Error{Code: http.StatusConflict}),
			code: http.StatusConflict,
			want: true,
		},
		{
			desc: "code mismatch",
			err:  &googleapi.Error{Code: http.StatusNotFound},
			code: http.StatusConflict,
			want: false,
		},
		{
			desc: "not a googleapi error",
			err:  errors.New("connection refused"),
			code: http.StatusConflict,
			want: false,
		},
		{
			desc: "nil error",
			err:  nil,
			code: http.StatusConflict,
			want: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			if got := IsHTTPErrorCode(tc.err, tc.code); got != tc.want {
				t.Errorf("IsHTTPErrorCode(%v, %d) = %t, want %t", tc.err, tc.code, got, tc.want)
			}
		})
	}
}

func TestIgnoreHTTPConflict(t *testing.T) {
	conflict := &googleapi.Error{Code: http.StatusConflict}
	if err := IgnoreHTTPConflict(conflict); err != nil {
		t.Errorf("IgnoreHTTPConflict(%v) = %v, want nil", conflict, err)
	}

	other := &googleapi.Error{Code: http.StatusForbidden}
	if err := IgnoreHTTPConflict(other); err != other {
		t.Errorf("IgnoreHTTPConflict(%v) = %v, want the error back", other, err)
	}

	if err := IgnoreHTTPConflict(nil); err != nil {
		t.Errorf("IgnoreHTTPConflict(nil) = %v, want nil", err)
	}
}

func TestZonalResourcePath(t *testing.T) {
	got := ZonalResourcePath("us-central1-a", "disks", "my-disk")
	want := "zones/us-central1-a/disks/my-disk"
	if got != want {
		t.Errorf("ZonalResourcePath(...) = %q, want %q", got, want)
	}
}
