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
	"fmt"

	compute "google.golang.org/api/compute/v1"
)

const (
	// DefaultMachineType is used when VMConfig.MachineType is empty.
	DefaultMachineType = "n1-standard-1"

	// defaultNetwork is the network every created instance attaches to.
	defaultNetwork = "global/networks/default"
)

// DiskConfig configures CreateDisk. All fields are optional.
type DiskConfig struct {
	// OS names an operating system to resolve to the latest matching image
	// via the zone's ImageResolver. Takes precedence over Image.
	OS string

	// Image is a source-image URI, sent as the sourceImage query parameter.
	Image string

	SizeGB      int64
	Type        string
	Description string
}

// diskBody projects the serializable subset of c into the request body.
// Image is excluded: it travels in the query string, not the body.
func (c *DiskConfig) diskBody(name string) *compute.Disk {
	return &compute.Disk{
		Name:        name,
		SizeGb:      c.SizeGB,
		Type:        c.Type,
		Description: c.Description,
	}
}

// VMConfig configures CreateVM. All fields are optional.
type VMConfig struct {
	// MachineType is the short machine type name, expanded to a zone-scoped
	// URI. Defaults to DefaultMachineType.
	MachineType string

	// Tags are network tags to attach, in order. Ignored when TagSet is set.
	Tags []string

	// TagSet is the pre-shaped tags resource, used verbatim when non-nil.
	TagSet *compute.Tags

	// HTTP and HTTPS request public exposure on ports 80/443: the matching
	// default-allow firewall rule is provisioned, a NAT access config is
	// attached and the server tag is appended. Control fields only, never
	// serialized.
	HTTP  bool
	HTTPS bool

	// OS names an operating system to resolve into an auto-deleted boot
	// disk via the zone's ImageResolver.
	OS string

	// Disks are additional attached-disk descriptors, sent after the boot
	// disk derived from OS (if any).
	Disks []*compute.AttachedDisk

	Description string

	// Metadata is projected to the instance metadata items.
	Metadata map[string]string
}

// instanceBody projects the serializable subset of c into the request body.
// The HTTP/HTTPS control flags and the unresolved OS name never appear in
// the result; bootDisk carries the resolved OS image when there was one.
func (c *VMConfig) instanceBody(name, zone string, bootDisk *compute.AttachedDisk) *compute.Instance {
	machineType := c.MachineType
	if machineType == "" {
		machineType = DefaultMachineType
	}
	disks := c.Disks
	if bootDisk != nil {
		disks = append([]*compute.AttachedDisk{bootDisk}, disks...)
	}
	return &compute.Instance{
		Name:        name,
		MachineType: fmt.Sprintf("zones/%s/machineTypes/%s", zone, machineType),
		NetworkInterfaces: []*compute.NetworkInterface{
			{Network: defaultNetwork},
		},
		Disks:       disks,
		Tags:        c.normalizedTags(),
		Description: c.Description,
		Metadata:    metadataItems(c.Metadata),
	}
}

// normalizedTags reduces the two accepted tag inputs to the single wire
// shape. The result is a copy; the config is never mutated.
func (c *VMConfig) normalizedTags() *compute.Tags {
	if c.TagSet != nil {
		return &compute.Tags{
			Items:       append([]string(nil), c.TagSet.Items...),
			Fingerprint: c.TagSet.Fingerprint,
		}
	}
	if len(c.Tags) == 0 {
		return nil
	}
	return &compute.Tags{Items: append([]string(nil), c.Tags...)}
}

func metadataItems(m map[string]string) *compute.Metadata {
	if len(m) == 0 {
		return nil
	}
	md := &compute.Metadata{}
	for k, v := range m {
		v := v
		md.Items = append(md.Items, &compute.MetadataItems{Key: k, Value: &v})
	}
	return md
}
