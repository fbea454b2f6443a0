package domain

import "time"

// Status is the liveness status reported for a registered service.
type Status string

const (
	StatusHealthy Status = "healthy"
	StatusUnknown Status = "unknown"
)

// ParseStatus maps a heartbeat payload status to a Status. Empty means healthy,
// anything unrecognised is unknown.
func ParseStatus(s string) Status {
	switch Status(s) {
	case "", StatusHealthy:
		return StatusHealthy
	default:
		return StatusUnknown
	}
}

// ServiceRecord represents a registered service instance stored by the registry.
type ServiceRecord struct {
	ServiceID string    // unique service identifier
	URL       string    // address the service is reachable at
	Status    Status    // set by the last heartbeat
	LastSeen  time.Time // last successful register or heartbeat (registry clock)
}

// Heartbeat is one liveness signal sent by a registered client.
type Heartbeat struct {
	ServiceID string
	Status    Status
	Timestamp time.Time // client clock, informational only
	URL       string
}

// HeartbeatResult is the outcome of a heartbeat.
type HeartbeatResult int

const (
	// Acknowledged means the record exists and was refreshed.
	Acknowledged HeartbeatResult = iota
	// ReregisterRequired means the registry has no record for the id; the client must register again.
	ReregisterRequired
)

func (r HeartbeatResult) String() string {
	switch r {
	case Acknowledged:
		return "acknowledged"
	case ReregisterRequired:
		return "reregister_required"
	default:
		return "unknown"
	}
}

// HeartbeatTimeLayout is the wire format of heartbeat timestamps.
const HeartbeatTimeLayout = "2006-01-02T15:04:05Z"
