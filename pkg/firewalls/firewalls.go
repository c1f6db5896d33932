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

// Package firewalls provisions project-wide firewall rules through the
// Compute API.
package firewalls

import (
	"context"
	"net/http"

	compute "google.golang.org/api/compute/v1"
	"k8s.io/klog/v2"

	"k8s.io/gce-zone/pkg/zone"
)

// defaultNetwork is the network the provisioned rules apply to.
const defaultNetwork = "global/networks/default"

// Creator creates firewall rules. It implements zone.FirewallCreator.
type Creator struct {
	client zone.Requester
}

// NewCreator returns a Creator issuing its requests through client.
func NewCreator(client zone.Requester) *Creator {
	return &Creator{client: client}
}

// CreateFirewall creates the named rule on the default network. Errors,
// including already-exists conflicts, are returned verbatim; callers decide
// whether a conflict is benign.
func (c *Creator) CreateFirewall(ctx context.Context, name string, rule zone.Rule) error {
	firewall := &compute.Firewall{
		Name:    name,
		Network: defaultNetwork,
		Allowed: []*compute.FirewallAllowed{
			{
				IPProtocol: rule.Protocol,
				Ports:      rule.Ports,
			},
		},
		SourceRanges: rule.SourceRanges,
		TargetTags:   rule.TargetTags,
	}
	klog.V(3).Infof("Creating firewall rule %q", name)
	reqOpts := &zone.RequestOptions{Method: http.MethodPost, Path: "global/firewalls", Body: firewall}
	return c.client.Do(ctx, reqOpts, nil)
}
