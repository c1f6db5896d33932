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
	compute "google.golang.org/api/compute/v1"

	"k8s.io/gce-zone/pkg/utils"
)

// Disk is a handle to a persistent disk in a zone. Metadata holds the API
// resource that produced the handle, when there was one.
type Disk struct {
	zone     *Zone
	Name     string
	Metadata *compute.Disk
}

// Disk returns a handle to the named disk. No I/O is performed.
func (z *Zone) Disk(name string) *Disk {
	return &Disk{zone: z, Name: name}
}

// Path returns the zone-relative resource path of the disk.
func (d *Disk) Path() string {
	return utils.ZonalResourcePath(d.zone.name, "disks", d.Name)
}

func (d *Disk) String() string {
	return d.Path()
}

// VM is a handle to a compute instance in a zone.
type VM struct {
	zone     *Zone
	Name     string
	Metadata *compute.Instance
}

// VM returns a handle to the named instance. No I/O is performed.
func (z *Zone) VM(name string) *VM {
	return &VM{zone: z, Name: name}
}

// Path returns the zone-relative resource path of the instance.
func (v *VM) Path() string {
	return utils.ZonalResourcePath(v.zone.name, "instances", v.Name)
}

func (v *VM) String() string {
	return v.Path()
}

// Operation is a handle to a zone operation, the asynchronous-task resource
// returned by mutating calls.
type Operation struct {
	zone     *Zone
	Name     string
	Metadata *compute.Operation
}

// Operation returns a handle to the named zone operation. No I/O is performed.
func (z *Zone) Operation(name string) *Operation {
	return &Operation{zone: z, Name: name}
}

// Path returns the zone-relative resource path of the operation.
func (o *Operation) Path() string {
	return utils.ZonalResourcePath(o.zone.name, "operations", o.Name)
}

func (o *Operation) String() string {
	return o.Path()
}
