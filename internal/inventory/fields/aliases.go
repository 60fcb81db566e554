// Package fields maps the many header spellings found in virtualization
// inventory exports onto canonical concepts and resolves row values for them.
//
// The alias tables in this file are static configuration. They are never
// mutated at runtime and are safe to share between goroutines.
package fields

// Concept is a canonical field together with the header spellings that may
// carry it. Aliases are tried in order; earlier entries win.
type Concept struct {
	Key     string
	Aliases []string
}

// Canonical concept keys. These are the only keys that can appear in the
// canonical (vmInfo) view of a record.
const (
	KeyVM            = "vm"
	KeyDNSName       = "dnsName"
	KeyPowerState    = "powerstate"
	KeyDatacenter    = "datacenter"
	KeyHost          = "host"
	KeyOS            = "os"
	KeyIPAddress     = "ipAddress"
	KeyMigrated      = "migre"
	KeyCPUs          = "cpus"
	KeyMemorySize    = "memorySize"
	KeyProvisionedMB = "provisionedMB"
	KeyProd          = "prod"
	KeyPCA           = "pca"
	KeyInfra         = "infra"
	KeyIntegration   = "integration"
	KeyApp           = "app"
	KeyDB            = "db"
	KeyAntivirus     = "antivirus"
	KeyFolder        = "folder"
	KeyProject       = "projet"
)

// Alias lists shared between the canonical table and the record validator.
var (
	// NameAliases identify the server name.
	NameAliases = []string{"VM", "Name", "Server Name", "VM Name", "Hostname", "hostname", "Server", "vm", "name"}

	// LocationAliases identify where the server runs.
	LocationAliases = []string{"Datacenter", "Location", "Site", "datacenter", "location", "site"}

	// ProjectAliases identify the free-text project or environment label.
	ProjectAliases = []string{"projet", "Project", "Projet", "Folder", "project", "folder"}

	// CPUAliases identify the number of virtual CPUs.
	CPUAliases = []string{"CPUs", "CPU", "vCPU", "vCPUs", "Num CPUs", "cpus", "cpu"}

	// MemoryAliases identify the configured memory size.
	MemoryAliases = []string{"Memory Size", "Memory", "RAM", "Memory MB", "memorySize", "memory", "ram"}

	// DiskAliases identify the provisioned storage in megabytes.
	DiskAliases = []string{"Provisioned MB", "Provisioned MiB", "provisionedMB", "Disk Size", "Total disk capacity MiB", "Disk", "disk"}

	DNSNameAliases    = []string{"DNS Name", "dnsName", "DNS", "FQDN", "dns_name"}
	PowerStateAliases = []string{"Powerstate", "Power State", "PowerState", "powerstate", "State"}
	HostAliases       = []string{"Host", "ESX Host", "Hypervisor", "host"}
	OSAliases         = []string{"OS", "OS according to the configuration file", "OS according to the VMware Tools", "Operating System", "Guest OS", "os"}
	IPAddressAliases  = []string{"Primary IP Address", "IP Address", "IP", "ipAddress", "ip_address"}

	// Spec-only lookups; these never reach the canonical view.
	CPUModelAliases = []string{"CPU Model", "cpu_model", "Processor"}
	RAMTypeAliases  = []string{"RAM Type", "Memory Type", "ram_type"}
	DiskTypeAliases = []string{"Disk Type", "Storage Type", "disk_type"}
	NetworkAliases  = []string{"Network Throughput", "Network", "network_throughput"}
)

// Table is the canonical concept table, in the order concepts are resolved.
var Table = []Concept{
	{Key: KeyVM, Aliases: NameAliases},
	{Key: KeyDNSName, Aliases: DNSNameAliases},
	{Key: KeyPowerState, Aliases: PowerStateAliases},
	{Key: KeyDatacenter, Aliases: LocationAliases},
	{Key: KeyHost, Aliases: HostAliases},
	{Key: KeyOS, Aliases: OSAliases},
	{Key: KeyIPAddress, Aliases: IPAddressAliases},
	{Key: KeyMigrated, Aliases: []string{"Migré", "Migre", "migre", "Migrated"}},
	{Key: KeyCPUs, Aliases: CPUAliases},
	{Key: KeyMemorySize, Aliases: MemoryAliases},
	{Key: KeyProvisionedMB, Aliases: DiskAliases},
	{Key: KeyProd, Aliases: []string{"PROD", "Prod", "prod", "Production"}},
	{Key: KeyPCA, Aliases: []string{"PCA", "pca"}},
	{Key: KeyInfra, Aliases: []string{"INFRA", "Infra", "infra"}},
	{Key: KeyIntegration, Aliases: []string{"INTEGRATION", "Integration", "integration"}},
	{Key: KeyApp, Aliases: []string{"APP", "App", "Application", "app"}},
	{Key: KeyDB, Aliases: []string{"DB", "Database", "db"}},
	{Key: KeyAntivirus, Aliases: []string{"Antivirus", "AV", "antivirus"}},
	{Key: KeyFolder, Aliases: []string{"Folder", "folder"}},
	{Key: KeyProject, Aliases: []string{"projet", "Projet", "Project", "project"}},
}

// Lookup returns the concept registered under key.
func Lookup(key string) (Concept, bool) {
	for _, c := range Table {
		if c.Key == key {
			return c, true
		}
	}
	return Concept{}, false
}

// Keys returns the canonical keys in table order.
func Keys() []string {
	keys := make([]string, len(Table))
	for i, c := range Table {
		keys[i] = c.Key
	}
	return keys
}
