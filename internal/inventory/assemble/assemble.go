// Package assemble builds the three parallel views of an ingested row: the
// canonical vmInfo view, the blended specs view and the verbatim audit view.
package assemble

import (
	"strconv"
	"strings"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/domain"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/fields"
)

// Reserved keys of the specs view. Computed values are written under these
// first; an original column with the same header replaces them.
const (
	SpecCPUModel          = "cpu_model"
	SpecCPUCores          = "cpu_cores"
	SpecRAMTotal          = "ram_total"
	SpecRAMType           = "ram_type"
	SpecDiskTotal         = "disk_total"
	SpecDiskType          = "disk_type"
	SpecNetworkThroughput = "network_throughput"
	SpecIPAddress         = "ip_address"
	SpecDNSName           = "dns_name"
	SpecPowerState        = "power_state"
	SpecVMHost            = "vm_host"
	SpecOperatingSystem   = "operating_system"
)

// Defaults for the specs view when the row has no literal value.
const (
	DefaultCPUModel          = "Virtual CPU"
	DefaultRAMType           = "DDR4"
	DefaultDiskType          = "SSD"
	DefaultNetworkThroughput = "1 Gbps"
)

// Views are the three dictionaries derived from one row.
type Views struct {
	VMInfo         map[string]string
	Specs          map[string]string
	AdditionalData map[string]string
}

// Assemble builds the views for the row behind ix using an allocation that
// has already been computed for it.
func Assemble(ix *fields.Index, alloc domain.ResourceAllocation) Views {
	return Views{
		VMInfo:         VMInfo(ix),
		Specs:          Specs(ix, alloc),
		AdditionalData: AdditionalData(ix.Row()),
	}
}

// VMInfo resolves every canonical concept. Only concepts that resolved to a
// value are present.
func VMInfo(ix *fields.Index) map[string]string {
	info := make(map[string]string, len(fields.Table))
	for _, c := range fields.Table {
		if v := ix.Resolve(c.Aliases, ""); v != "" {
			info[c.Key] = v
		}
	}
	return info
}

// Specs writes the computed defaults and then layers every non-empty original
// column on top under its literal header.
func Specs(ix *fields.Index, alloc domain.ResourceAllocation) map[string]string {
	row := ix.Row()
	ramType := ix.Resolve(fields.RAMTypeAliases, DefaultRAMType)

	specs := make(map[string]string, len(row)+12)
	specs[SpecCPUModel] = ix.Resolve(fields.CPUModelAliases, DefaultCPUModel)
	specs[SpecCPUCores] = strconv.Itoa(alloc.CPU) + " vCPU"
	specs[SpecRAMTotal] = gigabytes(alloc.RAM) + "GB " + ramType
	specs[SpecRAMType] = ramType
	specs[SpecDiskTotal] = gigabytes(alloc.Disk) + "GB"
	specs[SpecDiskType] = ix.Resolve(fields.DiskTypeAliases, DefaultDiskType)
	specs[SpecNetworkThroughput] = ix.Resolve(fields.NetworkAliases, DefaultNetworkThroughput)

	optional := []struct {
		key     string
		aliases []string
	}{
		{SpecIPAddress, fields.IPAddressAliases},
		{SpecDNSName, fields.DNSNameAliases},
		{SpecPowerState, fields.PowerStateAliases},
		{SpecVMHost, fields.HostAliases},
		{SpecOperatingSystem, fields.OSAliases},
	}
	for _, o := range optional {
		if v := ix.Resolve(o.aliases, ""); v != "" {
			specs[o.key] = v
		}
	}

	for header, value := range row {
		if v := strings.TrimSpace(value); v != "" {
			specs[header] = v
		}
	}
	return specs
}

// AdditionalData copies every non-empty column of row verbatim.
func AdditionalData(row domain.RawRow) map[string]string {
	data := make(map[string]string, len(row))
	for header, value := range row {
		if v := strings.TrimSpace(value); v != "" {
			data[header] = v
		}
	}
	return data
}

// gigabytes renders mb in GB with no trailing zeros: 8192 -> "8",
// 1536 -> "1.5".
func gigabytes(mb int) string {
	return strconv.FormatFloat(float64(mb)/1024, 'f', -1, 64)
}
