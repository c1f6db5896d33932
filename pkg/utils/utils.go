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

	"google.golang.org/api/googleapi"
)

// IsHTTPErrorCode checks if the given error matches the given HTTP Error code.
// For this to work the error must be a googleapi Error.
func IsHTTPErrorCode(err error, code int) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// IgnoreHTTPConflict returns the passed err if it's not a GoogleAPI error
// with a Conflict status code.
func IgnoreHTTPConflict(err error) error {
	if err != nil && IsHTTPErrorCode(err, http.StatusConflict) {
		return nil
	}
	return err
}

// IsNotFoundError returns true if the resource does not exist.
func IsNotFoundError(err error) bool {
	return IsHTTPErrorCode(err, http.StatusNotFound)
}

// IsConflictError returns true if the resource already exists.
func IsConflictError(err error) bool {
	return IsHTTPErrorCode(err, http.StatusConflict)
}

// ZonalResourcePath returns the zone-relative path of a named resource,
// e.g. "zones/us-central1-a/disks/my-disk".
func ZonalResourcePath(zone, resource, name string) string {
	return fmt.Sprintf("zones/%s/%s/%s", zone, resource, name)
}
