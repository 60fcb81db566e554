package domain

import "time"

// Fixed values stamped on every ingested server record.
const (
	CategoryServers    = "Servers"
	StatusOperational  = "operational"
	AssigneeUnassigned = "Unassigned"
	ProjectUnassigned  = "Unassigned"
	LocationUnknown    = "Unknown Location"
)

// ResourceAllocation is the normalized sizing of a server. CPU is in cores,
// RAM and Disk are in megabytes. All fields are always populated.
type ResourceAllocation struct {
	CPU  int `json:"cpu"`
	RAM  int `json:"ram"`
	Disk int `json:"disk"`
}

// ValidatedServerData is the finished record produced for one accepted row.
type ValidatedServerData struct {
	Name         string             `json:"name"`
	Category     string             `json:"category"`
	Status       string             `json:"status"`
	Location     string             `json:"location"`
	PurchaseDate time.Time          `json:"purchaseDate"`
	AssignedTo   string             `json:"assignedTo"`
	Project      string             `json:"project,omitempty"`
	ProjectName  string             `json:"projectName"`
	Resources    ResourceAllocation `json:"resources"`

	// VMInfo holds only canonical concept keys that resolved to a value.
	VMInfo map[string]string `json:"vmInfo"`

	// Specs holds computed defaults overlaid with every original column.
	Specs map[string]string `json:"specs"`

	// AdditionalData is a verbatim copy of every non-empty original column.
	AdditionalData map[string]string `json:"additionalData"`
}
