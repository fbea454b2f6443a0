package handlers

import (
	"testing"
	"time"

	"myregistry/domain"
	"myregistry/helpers"
	"myregistry/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRegistrationRequest(t *testing.T) {
	id, url, err := fromRegistrationRequest(RegistrationRequest{ServiceId: "svc-1", MyUrl: "http://a:8000"})
	require.NoError(t, err)
	assert.Equal(t, "svc-1", id)
	assert.Equal(t, "http://a:8000", url)

	_, _, err = fromRegistrationRequest(RegistrationRequest{MyUrl: "ftp//broken"})
	require.Error(t, err)
	assert.True(t, service.IsBadParameterError(err))
	assert.Contains(t, err.Error(), "serviceId is required")
	assert.Contains(t, err.Error(), "myUrl must be a valid URL")
}

func TestFromHeartbeatRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     HeartbeatRequest
		want    domain.Heartbeat
		wantErr bool
	}{
		{
			name: "full payload",
			req:  HeartbeatRequest{ServiceId: "svc-1", MyUrl: "http://a:8000", Status: helpers.Ptr("healthy"), Timestamp: helpers.Ptr("2026-02-11T12:00:00Z")},
			want: domain.Heartbeat{ServiceID: "svc-1", URL: "http://a:8000", Status: domain.StatusHealthy, Timestamp: helpers.TestNow()},
		},
		{
			name: "status and timestamp omitted",
			req:  HeartbeatRequest{ServiceId: "svc-1", MyUrl: "http://a:8000"},
			want: domain.Heartbeat{ServiceID: "svc-1", URL: "http://a:8000", Status: domain.StatusHealthy},
		},
		{
			name: "rfc3339 with offset is normalised to UTC",
			req:  HeartbeatRequest{ServiceId: "svc-1", MyUrl: "http://a:8000", Timestamp: helpers.Ptr("2026-02-11T14:00:00+02:00")},
			want: domain.Heartbeat{ServiceID: "svc-1", URL: "http://a:8000", Status: domain.StatusHealthy, Timestamp: helpers.TestNow()},
		},
		{
			name:    "malformed timestamp",
			req:     HeartbeatRequest{ServiceId: "svc-1", MyUrl: "http://a:8000", Timestamp: helpers.Ptr("11/02/2026")},
			wantErr: true,
		},
		{
			name:    "missing myUrl",
			req:     HeartbeatRequest{ServiceId: "svc-1"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fromHeartbeatRequest(tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, service.IsBadParameterError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromJourneyRequest(t *testing.T) {
	now := helpers.TestNow()
	got, err := fromJourneyRequest(JourneyRequest{StartCity: "Paris", EndCity: "Lyon", Distance: 392}, now)
	require.NoError(t, err)
	assert.Equal(t, domain.Journey{StartCity: "Paris", EndCity: "Lyon", DistanceKm: 392, RecordedAt: now}, got)

	_, err = fromJourneyRequest(JourneyRequest{StartCity: "Paris", Distance: -1}, now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end_city is required")
	assert.Contains(t, err.Error(), "distance must be greater than 0")
}

func TestToServicesResponse(t *testing.T) {
	local := time.FixedZone("CET", 3600)
	got := toServicesResponse([]domain.ServiceRecord{
		{ServiceID: "svc-1", URL: "http://a:8000", Status: domain.StatusUnknown, LastSeen: helpers.TestNow().In(local)},
	})
	require.Len(t, got.Services, 1)
	assert.Equal(t, ServiceInfo{ServiceId: "svc-1", MyUrl: "http://a:8000", Status: Unknown, LastSeen: helpers.TestNow()}, got.Services[0])

	assert.NotNil(t, toServicesResponse(nil).Services)
}

func TestToJourneysResponse(t *testing.T) {
	got := toJourneysResponse([]domain.Journey{{StartCity: "A", EndCity: "B", DistanceKm: 1, RecordedAt: helpers.TestNow()}})
	require.Len(t, got.Journeys, 1)
	assert.Equal(t, map[string]float64{}, got.Journeys[0].Emissions)
	assert.NotNil(t, toJourneysResponse(nil).Journeys)
}
