// Package sources turns remote provider inventories into raw rows that go
// through the same validation as uploaded files.
package sources

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/domain"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/retry"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
	"go.uber.org/zap"
)

// Column headers emitted for Hetzner servers. They are chosen from the field
// alias table so rows resolve exactly like an exported spreadsheet.
const (
	ColumnVM          = "VM"
	ColumnDatacenter  = "Datacenter"
	ColumnOS          = "OS"
	ColumnIPAddress   = "Primary IP Address"
	ColumnPowerState  = "Powerstate"
	ColumnCPUs        = "CPUs"
	ColumnMemory      = "Memory Size"
	ColumnDisk        = "Provisioned MB"
	ColumnServerType  = "Server Type"
	ColumnHetznerID   = "Hetzner ID"
	ColumnProject     = "projet"
	LabelColumnPrefix = "Label "

	// ProjectLabel is the server label read as the project name.
	ProjectLabel = "project"
)

const requestTimeout = 30 * time.Second

var (
	ErrUnauthorized = errors.New("hetzner: token rejected")
	ErrRateLimited  = errors.New("hetzner: rate limit exceeded")
)

// ServerLister lists every server in a project. *hcloud.ServerClient
// satisfies it.
type ServerLister interface {
	All(ctx context.Context) ([]*hcloud.Server, error)
}

// HetznerSource reads servers from the Hetzner Cloud API.
type HetznerSource struct {
	servers ServerLister
	retry   retry.Config
	logger  *zap.Logger
}

// HetznerOption configures a HetznerSource.
type HetznerOption func(*HetznerSource)

// WithRetry replaces the retry policy used for listing.
func WithRetry(cfg retry.Config) HetznerOption {
	return func(h *HetznerSource) { h.retry = cfg }
}

// WithLogger sets the logger used for retry diagnostics.
func WithLogger(logger *zap.Logger) HetznerOption {
	return func(h *HetznerSource) { h.logger = logger }
}

// NewHetznerSource creates a source reading through lister.
func NewHetznerSource(lister ServerLister, opts ...HetznerOption) *HetznerSource {
	h := &HetznerSource{servers: lister, retry: retry.DefaultConfig(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = zap.NewNop()
	}
	return h
}

// NewHetznerClient builds an hcloud client for token. Default options
// (application name) are applied first; callers can override them.
func NewHetznerClient(token, version string, opts ...hcloud.ClientOption) *hcloud.Client {
	defaults := []hcloud.ClientOption{
		hcloud.WithToken(token),
		hcloud.WithApplication("assetctl", version),
	}
	return hcloud.NewClient(append(defaults, opts...)...)
}

// Rows lists all servers and converts each to a raw row, ordered by server
// name.
func (h *HetznerSource) Rows(ctx context.Context) ([]domain.RawRow, error) {
	cfg := h.retry
	cfg.OnRetry = func(attempt int, err error, delay time.Duration) {
		h.logger.Warn("hetzner list failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
	}

	var servers []*hcloud.Server
	err := retry.Do(ctx, cfg, isHetznerRetryable, func() error {
		reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()
		var apiErr error
		servers, apiErr = h.servers.All(reqCtx)
		return apiErr
	})
	if err != nil {
		switch {
		case hcloud.IsError(err, hcloud.ErrorCodeUnauthorized):
			return nil, fmt.Errorf("failed to list servers: %w", ErrUnauthorized)
		case hcloud.IsError(err, hcloud.ErrorCodeRateLimitExceeded):
			return nil, fmt.Errorf("failed to list servers: %w", ErrRateLimited)
		}
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}

	sort.SliceStable(servers, func(i, j int) bool { return servers[i].Name < servers[j].Name })

	rows := make([]domain.RawRow, 0, len(servers))
	for _, s := range servers {
		rows = append(rows, ServerRow(s))
	}
	h.logger.Debug("hetzner servers listed", zap.Int("count", len(rows)))
	return rows, nil
}

// ServerRow converts one Hetzner server into a raw inventory row. Columns
// with no value are omitted.
func ServerRow(s *hcloud.Server) domain.RawRow {
	row := domain.RawRow{
		ColumnVM:         s.Name,
		ColumnHetznerID:  strconv.FormatInt(s.ID, 10),
		ColumnPowerState: powerState(s.Status),
	}

	switch {
	case s.Location != nil && s.Location.Name != "":
		row[ColumnDatacenter] = s.Location.Name
	case s.Datacenter != nil && s.Datacenter.Location != nil:
		row[ColumnDatacenter] = s.Datacenter.Location.Name
	case s.Datacenter != nil:
		row[ColumnDatacenter] = s.Datacenter.Name
	}

	if !s.PublicNet.IPv4.IsUnspecified() {
		row[ColumnIPAddress] = s.PublicNet.IPv4.IP.String()
	} else if len(s.PrivateNet) > 0 && s.PrivateNet[0].IP != nil {
		row[ColumnIPAddress] = s.PrivateNet[0].IP.String()
	}

	if s.Image != nil {
		if s.Image.Description != "" {
			row[ColumnOS] = s.Image.Description
		} else {
			row[ColumnOS] = s.Image.Name
		}
	}

	if st := s.ServerType; st != nil {
		row[ColumnServerType] = st.Name
		if st.Cores > 0 {
			row[ColumnCPUs] = strconv.Itoa(st.Cores)
		}
		if st.Memory > 0 {
			row[ColumnMemory] = strconv.FormatFloat(float64(st.Memory), 'f', -1, 32) + " GB"
		}
	}

	disk := s.PrimaryDiskSize
	if disk == 0 && s.ServerType != nil {
		disk = s.ServerType.Disk
	}
	if disk > 0 {
		row[ColumnDisk] = strconv.Itoa(disk * 1024)
	}

	for key, value := range s.Labels {
		row[LabelColumnPrefix+key] = value
	}
	if project := s.Labels[ProjectLabel]; project != "" {
		row[ColumnProject] = project
	}

	return row
}

// powerState maps Hetzner server states onto the vSphere vocabulary used by
// inventory exports.
func powerState(status hcloud.ServerStatus) string {
	switch status {
	case hcloud.ServerStatusRunning:
		return "poweredOn"
	case hcloud.ServerStatusOff:
		return "poweredOff"
	default:
		return string(status)
	}
}

func isHetznerRetryable(err error) bool {
	switch {
	case hcloud.IsError(err, hcloud.ErrorCodeUnauthorized):
		return false
	case hcloud.IsError(err, hcloud.ErrorCodeRateLimitExceeded),
		hcloud.IsError(err, hcloud.ErrorCodeServiceError),
		hcloud.IsError(err, hcloud.ErrorCodeTimeout):
		return true
	}
	return retry.IsRetryable(err)
}
