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

// zonectl is a small command-line client for zone-scoped Compute resources:
// listing disks, instances and operations and creating disks and instances,
// including lazy provisioning of the default HTTP/HTTPS firewall rules.
package main

import (
	"context"
	goflag "flag"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"golang.org/x/oauth2/google"
	compute "google.golang.org/api/compute/v1"
	"k8s.io/klog/v2"

	"k8s.io/gce-zone/pkg/firewalls"
	"k8s.io/gce-zone/pkg/flags"
	"k8s.io/gce-zone/pkg/transport"
	"k8s.io/gce-zone/pkg/version"
	"k8s.io/gce-zone/pkg/zone"
)

func main() {
	klog.InitFlags(nil)
	flags.Register()
	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	flag.Parse()

	if flags.F.Version {
		fmt.Printf("zonectl version: %s (%s)\n", version.Version, version.GitCommit)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		klog.Exitf("usage: zonectl [flags] vms|disks|operations|create-disk <name>|create-vm <name>")
	}
	if flags.F.Project == "" {
		klog.Exitf("--project is required")
	}

	ctx := context.Background()
	hc, err := google.DefaultClient(ctx, compute.ComputeScope)
	if err != nil {
		klog.Fatalf("Failed to create authenticated client: %v", err)
	}
	client := transport.NewClient(hc, flags.F.Project)
	z := zone.New(flags.F.Zone, client, zone.Options{
		Firewalls: firewalls.NewCreator(client),
	})

	klog.V(2).Infof("zonectl %s, project %q, zone %q", version.Version, flags.F.Project, flags.F.Zone)

	if err := run(ctx, z, args); err != nil {
		klog.Fatalf("%v", err)
	}
}

func run(ctx context.Context, z *zone.Zone, args []string) error {
	listOpts := &zone.ListOptions{
		Filter:     flags.F.Filter,
		MaxResults: flags.F.PageSize,
	}

	switch verb := args[0]; verb {
	case "vms":
		vms, token, err := z.ListVMs(ctx, listOpts)
		if err != nil {
			return fmt.Errorf("listing instances: %w", err)
		}
		for _, vm := range vms {
			fmt.Printf("%s\t%s\n", vm.Name, vm.Metadata.Status)
		}
		printToken(token)
		return nil

	case "disks":
		disks, token, err := z.ListDisks(ctx, listOpts)
		if err != nil {
			return fmt.Errorf("listing disks: %w", err)
		}
		for _, disk := range disks {
			fmt.Printf("%s\t%dGB\t%s\n", disk.Name, disk.Metadata.SizeGb, disk.Metadata.Status)
		}
		printToken(token)
		return nil

	case "operations":
		ops, token, err := z.ListOperations(ctx, listOpts)
		if err != nil {
			return fmt.Errorf("listing operations: %w", err)
		}
		for _, op := range ops {
			fmt.Printf("%s\t%s\t%s\n", op.Name, op.Metadata.OperationType, op.Metadata.Status)
		}
		printToken(token)
		return nil

	case "create-disk":
		if len(args) != 2 {
			return fmt.Errorf("usage: zonectl create-disk <name>")
		}
		disk, op, err := z.CreateDisk(ctx, args[1], &zone.DiskConfig{Image: flags.F.Image})
		if err != nil {
			return fmt.Errorf("creating disk %q: %w", args[1], err)
		}
		fmt.Printf("creating %s (operation %s)\n", disk, op.Name)
		return nil

	case "create-vm":
		if len(args) != 2 {
			return fmt.Errorf("usage: zonectl create-vm <name>")
		}
		vm, op, err := z.CreateVM(ctx, args[1], &zone.VMConfig{
			MachineType: flags.F.MachineType,
			Tags:        flags.F.Tags,
			HTTP:        flags.F.HTTP,
			HTTPS:       flags.F.HTTPS,
		})
		if err != nil {
			return fmt.Errorf("creating instance %q: %w", args[1], err)
		}
		fmt.Printf("creating %s (operation %s)\n", vm, op.Name)
		return nil

	default:
		return fmt.Errorf("unknown command %q", verb)
	}
}

func printToken(token string) {
	if token != "" {
		fmt.Printf("next page: --filter unchanged, pageToken %s\n", token)
	}
}
