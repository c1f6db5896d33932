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

package flags

import (
	flag "github.com/spf13/pflag"
)

const (
	// DefaultZone is used when --zone is not set.
	DefaultZone = "us-central1-a"
)

var (
	// F are global flags for zonectl.
	F = struct {
		Project     string
		Zone        string
		MachineType string
		Image       string
		Tags        []string
		HTTP        bool
		HTTPS       bool
		Filter      string
		PageSize    int64
		Version     bool
	}{
		Zone: DefaultZone,
	}
)

// Register adds the zonectl flags to the global pflag set.
func Register() {
	flag.StringVar(&F.Project, "project", F.Project,
		`Project ID whose Compute resources are operated on. Required.`)

	flag.StringVar(&F.Zone, "zone", F.Zone,
		`Zone to operate in.`)

	flag.StringVar(&F.MachineType, "machine-type", F.MachineType,
		`Machine type (short name) for create-vm.`)

	flag.StringVar(&F.Image, "image", F.Image,
		`Source image URI for create-disk.`)

	flag.StringSliceVar(&F.Tags, "tags", F.Tags,
		`Network tags to attach to the VM for create-vm.`)

	flag.BoolVar(&F.HTTP, "http", F.HTTP,
		`Expose the VM on port 80 (provisions the default-allow-http firewall).`)

	flag.BoolVar(&F.HTTPS, "https", F.HTTPS,
		`Expose the VM on port 443 (provisions the default-allow-https firewall).`)

	flag.StringVar(&F.Filter, "filter", F.Filter,
		`Filter expression passed through to list calls.`)

	flag.Int64Var(&F.PageSize, "page-size", F.PageSize,
		`Maximum results per list page. 0 uses the API default.`)

	flag.BoolVar(&F.Version, "version", F.Version,
		`Print the version of the binary, and exit.`)
}
