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
	"encoding/json"
	"fmt"

	"google.golang.org/api/googleapi"
)

// FakeRequester records every request it is given and replays canned
// responses in order.
type FakeRequester struct {
	// Requests are the options of every Do call, in order.
	Requests []*RequestOptions

	responses []fakeResponse
}

type fakeResponse struct {
	body interface{}
	err  error
}

// Respond queues a response body for the next unanswered request. body is
// round-tripped through JSON into the caller's out value, the same way a
// real response body would be decoded.
func (f *FakeRequester) Respond(body interface{}) {
	f.responses = append(f.responses, fakeResponse{body: body})
}

// Fail queues an error for the next unanswered request.
func (f *FakeRequester) Fail(err error) {
	f.responses = append(f.responses, fakeResponse{err: err})
}

// Do implements Requester. With no queued response it succeeds with an
// empty body.
func (f *FakeRequester) Do(_ context.Context, opts *RequestOptions, out interface{}) error {
	f.Requests = append(f.Requests, opts)
	if len(f.responses) == 0 {
		return nil
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	if resp.err != nil {
		return resp.err
	}
	if resp.body == nil || out == nil {
		return nil
	}
	raw, err := json.Marshal(resp.body)
	if err != nil {
		return fmt.Errorf("fake requester: marshaling canned response: %w", err)
	}
	return json.Unmarshal(raw, out)
}

// FakeImageResolver resolves OS names from a fixed map and records lookups.
type FakeImageResolver struct {
	// Images maps OS name to the selfLink to resolve it to.
	Images map[string]string
	// Err, when set, fails every lookup.
	Err error
	// Lookups are the OS names resolved, in order.
	Lookups []string
}

// GetLatest implements ImageResolver.
func (f *FakeImageResolver) GetLatest(_ context.Context, os string) (*Image, error) {
	f.Lookups = append(f.Lookups, os)
	if f.Err != nil {
		return nil, f.Err
	}
	link, ok := f.Images[os]
	if !ok {
		return nil, fmt.Errorf("fake image resolver: no image for os %q", os)
	}
	return &Image{SelfLink: link}, nil
}

// FakeFirewallCreator records created rules and can fail with a fixed error.
type FakeFirewallCreator struct {
	// Created maps firewall name to the rule it was created with.
	Created map[string]Rule
	// Err, when set, fails every creation.
	Err error
}

// CreateFirewall implements FirewallCreator.
func (f *FakeFirewallCreator) CreateFirewall(_ context.Context, name string, rule Rule) error {
	if f.Err != nil {
		return f.Err
	}
	if f.Created == nil {
		f.Created = map[string]Rule{}
	}
	f.Created[name] = rule
	return nil
}

// FakeGoogleAPIConflictErr returns the error the API surfaces when a
// resource already exists.
func FakeGoogleAPIConflictErr() *googleapi.Error {
	return &googleapi.Error{Code: 409, Message: "Conflict"}
}

// FakeGoogleAPINotFoundErr returns the error the API surfaces for a missing
// resource.
func FakeGoogleAPINotFoundErr() *googleapi.Error {
	return &googleapi.Error{Code: 404, Message: "Not Found"}
}
