package handlers

import (
	"time"

	"myregistry/domain"
	"myregistry/helpers"
	"myregistry/service"
)

// fromRegistrationRequest validates a /register or /deregister body and returns (serviceID, url).
func fromRegistrationRequest(req RegistrationRequest) (string, string, error) {
	if err := validateRequest(req); err != nil {
		return "", "", err
	}
	return req.ServiceId, req.MyUrl, nil
}

// fromHeartbeatRequest converts HeartbeatRequest to domain.Heartbeat.
// An absent status means healthy; an absent timestamp is left zero.
func fromHeartbeatRequest(req HeartbeatRequest) (domain.Heartbeat, error) {
	if err := validateRequest(req); err != nil {
		return domain.Heartbeat{}, err
	}

	hb := domain.Heartbeat{
		ServiceID: req.ServiceId,
		Status:    domain.ParseStatus(helpers.Value(req.Status)),
		URL:       req.MyUrl,
	}
	if ts := helpers.Value(req.Timestamp); ts != "" {
		t, err := parseHeartbeatTime(ts)
		if err != nil {
			return domain.Heartbeat{}, service.NewBadParameterError("timestamp must be formatted as YYYY-MM-DDTHH:MM:SSZ", err)
		}
		hb.Timestamp = t
	}
	return hb, nil
}

func parseHeartbeatTime(ts string) (time.Time, error) {
	t, err := time.Parse(domain.HeartbeatTimeLayout, ts)
	if err == nil {
		return t, nil
	}
	if t, rfcErr := time.Parse(time.RFC3339, ts); rfcErr == nil {
		return t.UTC(), nil
	}
	return time.Time{}, err
}

// fromJourneyRequest converts JourneyRequest to domain.Journey stamped with recordedAt.
func fromJourneyRequest(req JourneyRequest, recordedAt time.Time) (domain.Journey, error) {
	if err := validateRequest(req); err != nil {
		return domain.Journey{}, err
	}
	var emissions map[string]float64
	if req.Emissions != nil {
		emissions = *req.Emissions
	}
	return domain.Journey{
		StartCity:  req.StartCity,
		EndCity:    req.EndCity,
		DistanceKm: req.Distance,
		Emissions:  emissions,
		RecordedAt: recordedAt,
	}, nil
}
