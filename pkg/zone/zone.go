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

// Package zone wraps the zone-scoped surface of the Compute API: creating
// disks and instances, listing disks, instances and operations, and lazily
// provisioning the default HTTP/HTTPS firewall rules for instances that ask
// for public exposure. Transport, auth and the image catalog are injected
// collaborators; nothing here retries.
package zone

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	compute "google.golang.org/api/compute/v1"
	"k8s.io/klog/v2"

	"k8s.io/gce-zone/pkg/utils"
	"k8s.io/gce-zone/pkg/utils/slice"
)

const (
	httpServerTag  = "http-server"
	httpsServerTag = "https-server"

	httpFirewallName  = "default-allow-http"
	httpsFirewallName = "default-allow-https"
)

// Zone wraps resources scoped to one Compute zone. Immutable after New;
// concurrent calls on one Zone are independent.
type Zone struct {
	name      string
	client    Requester
	images    ImageResolver
	firewalls FirewallCreator
}

// Options carries the optional collaborators of a Zone. A nil Images makes
// OS-based configs fail; a nil Firewalls makes HTTP/HTTPS exposure fail.
type Options struct {
	Images    ImageResolver
	Firewalls FirewallCreator
}

// New returns a Zone issuing its requests through client.
func New(name string, client Requester, opts Options) *Zone {
	return &Zone{
		name:      name,
		client:    client,
		images:    opts.Images,
		firewalls: opts.Firewalls,
	}
}

// Name returns the zone name.
func (z *Zone) Name() string {
	return z.name
}

func (z *Zone) path(resource string) string {
	return fmt.Sprintf("zones/%s/%s", z.name, resource)
}

// resolveImage looks up the latest image for the named OS.
func (z *Zone) resolveImage(ctx context.Context, os string) (*Image, error) {
	if z.images == nil {
		return nil, fmt.Errorf("zone %s has no image resolver, cannot resolve os %q", z.name, os)
	}
	return z.images.GetLatest(ctx, os)
}

// CreateDisk creates a persistent disk. When config.OS is set it is resolved
// to the latest matching image first; a resolution failure is returned as-is
// and no API call is made. The returned Operation's Metadata is the API
// response.
func (z *Zone) CreateDisk(ctx context.Context, name string, config *DiskConfig) (*Disk, *Operation, error) {
	if config == nil {
		config = &DiskConfig{}
	}
	body := config.diskBody(name)
	query := url.Values{}
	if config.OS != "" {
		image, err := z.resolveImage(ctx, config.OS)
		if err != nil {
			return nil, nil, err
		}
		body.SourceImage = image.SelfLink
	} else if config.Image != "" {
		query.Set("sourceImage", config.Image)
	}

	klog.V(3).Infof("Creating disk %s/%s", z.name, name)
	var resp compute.Operation
	reqOpts := &RequestOptions{Method: http.MethodPost, Path: z.path("disks"), Query: query, Body: body}
	if err := z.client.Do(ctx, reqOpts, &resp); err != nil {
		return nil, nil, err
	}

	disk := z.Disk(name)
	op := z.Operation(resp.Name)
	op.Metadata = &resp
	return disk, op, nil
}

// CreateVM creates a compute instance. The instance always gets exactly one
// network interface on the default network. config.OS resolves to an
// auto-deleted boot disk; HTTP/HTTPS exposure provisions the matching
// default-allow firewall rule before the instance request and attaches a NAT
// access config plus the server tag.
func (z *Zone) CreateVM(ctx context.Context, name string, config *VMConfig) (*VM, *Operation, error) {
	if config == nil {
		config = &VMConfig{}
	}
	var bootDisk *compute.AttachedDisk
	if config.OS != "" {
		image, err := z.resolveImage(ctx, config.OS)
		if err != nil {
			return nil, nil, err
		}
		bootDisk = &compute.AttachedDisk{
			AutoDelete: true,
			Boot:       true,
			InitializeParams: &compute.AttachedDiskInitializeParams{
				SourceImage: image.SelfLink,
			},
		}
	}
	body := config.instanceBody(name, z.name, bootDisk)

	if config.HTTP {
		if err := z.ensureHTTPServerFirewall(ctx); err != nil {
			return nil, nil, err
		}
		exposeVM(body, httpServerTag)
	}
	if config.HTTPS {
		if err := z.ensureHTTPSServerFirewall(ctx); err != nil {
			return nil, nil, err
		}
		exposeVM(body, httpsServerTag)
	}

	klog.V(3).Infof("Creating instance %s/%s", z.name, name)
	var resp compute.Operation
	reqOpts := &RequestOptions{Method: http.MethodPost, Path: z.path("instances"), Body: body}
	if err := z.client.Do(ctx, reqOpts, &resp); err != nil {
		return nil, nil, err
	}

	vm := z.VM(name)
	op := z.Operation(resp.Name)
	op.Metadata = &resp
	return vm, op, nil
}

// exposeVM attaches the NAT access config to the instance's sole network
// interface and appends tag unless it is already present.
func exposeVM(inst *compute.Instance, tag string) {
	nic := inst.NetworkInterfaces[0]
	if len(nic.AccessConfigs) == 0 {
		nic.AccessConfigs = []*compute.AccessConfig{{Type: "ONE_TO_ONE_NAT"}}
	}
	if inst.Tags == nil {
		inst.Tags = &compute.Tags{}
	}
	if !slice.Contains(inst.Tags.Items, tag, nil) {
		inst.Tags.Items = append(inst.Tags.Items, tag)
	}
}

// ListOptions narrows and pages list calls. The zero value lists everything
// from the first page.
type ListOptions struct {
	Filter     string
	MaxResults int64
	OrderBy    string
	PageToken  string
}

func (o *ListOptions) values() url.Values {
	query := url.Values{}
	if o == nil {
		return query
	}
	if o.Filter != "" {
		query.Set("filter", o.Filter)
	}
	if o.MaxResults > 0 {
		query.Set("maxResults", strconv.FormatInt(o.MaxResults, 10))
	}
	if o.OrderBy != "" {
		query.Set("orderBy", o.OrderBy)
	}
	if o.PageToken != "" {
		query.Set("pageToken", o.PageToken)
	}
	return query
}

// ListDisks returns one page of disk handles, each carrying its API resource
// as Metadata, plus the token of the next page ("" when the listing is
// complete).
func (z *Zone) ListDisks(ctx context.Context, opts *ListOptions) ([]*Disk, string, error) {
	var resp compute.DiskList
	reqOpts := &RequestOptions{Method: http.MethodGet, Path: z.path("disks"), Query: opts.values()}
	if err := z.client.Do(ctx, reqOpts, &resp); err != nil {
		return nil, "", err
	}
	disks := make([]*Disk, 0, len(resp.Items))
	for _, item := range resp.Items {
		disk := z.Disk(item.Name)
		disk.Metadata = item
		disks = append(disks, disk)
	}
	return disks, resp.NextPageToken, nil
}

// ListVMs returns one page of instance handles. See ListDisks.
func (z *Zone) ListVMs(ctx context.Context, opts *ListOptions) ([]*VM, string, error) {
	var resp compute.InstanceList
	reqOpts := &RequestOptions{Method: http.MethodGet, Path: z.path("instances"), Query: opts.values()}
	if err := z.client.Do(ctx, reqOpts, &resp); err != nil {
		return nil, "", err
	}
	vms := make([]*VM, 0, len(resp.Items))
	for _, item := range resp.Items {
		vm := z.VM(item.Name)
		vm.Metadata = item
		vms = append(vms, vm)
	}
	return vms, resp.NextPageToken, nil
}

// ListOperations returns one page of zone operation handles. See ListDisks.
func (z *Zone) ListOperations(ctx context.Context, opts *ListOptions) ([]*Operation, string, error) {
	var resp compute.OperationList
	reqOpts := &RequestOptions{Method: http.MethodGet, Path: z.path("operations"), Query: opts.values()}
	if err := z.client.Do(ctx, reqOpts, &resp); err != nil {
		return nil, "", err
	}
	ops := make([]*Operation, 0, len(resp.Items))
	for _, item := range resp.Items {
		op := z.Operation(item.Name)
		op.Metadata = item
		ops = append(ops, op)
	}
	return ops, resp.NextPageToken, nil
}

// ensureHTTPServerFirewall provisions the default-allow-http rule. An
// already-exists conflict counts as success; the existing rule's shape is
// not verified, so concurrent creators may race on its contents.
func (z *Zone) ensureHTTPServerFirewall(ctx context.Context) error {
	return z.ensureFirewall(ctx, httpFirewallName, Rule{
		Protocol:     "tcp",
		Ports:        []string{"80"},
		SourceRanges: []string{"0.0.0.0/0"},
		TargetTags:   []string{httpServerTag},
	})
}

// ensureHTTPSServerFirewall provisions the default-allow-https rule. See
// ensureHTTPServerFirewall.
func (z *Zone) ensureHTTPSServerFirewall(ctx context.Context) error {
	return z.ensureFirewall(ctx, httpsFirewallName, Rule{
		Protocol:     "tcp",
		Ports:        []string{"443"},
		SourceRanges: []string{"0.0.0.0/0"},
		TargetTags:   []string{httpsServerTag},
	})
}

func (z *Zone) ensureFirewall(ctx context.Context, name string, rule Rule) error {
	if z.firewalls == nil {
		return fmt.Errorf("zone %s has no firewall creator, cannot ensure firewall %q", z.name, name)
	}
	err := z.firewalls.CreateFirewall(ctx, name, rule)
	if utils.IsConflictError(err) {
		// The rule was created by someone else, possibly with different
		// contents. Continue anyway.
		klog.Warningf("Failed to create firewall %q due to conflict status, continuing. err: %v", name, err)
		return nil
	}
	return err
}
