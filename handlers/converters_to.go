package handlers

import (
	"myregistry/domain"
)

// toServicesResponse converts domain records to API response.
func toServicesResponse(records []domain.ServiceRecord) ServicesResponse {
	out := make([]ServiceInfo, 0, len(records))
	for _, r := range records {
		out = append(out, ServiceInfo{
			ServiceId: r.ServiceID,
			MyUrl:     r.URL,
			Status:    ServiceInfoStatus(r.Status),
			LastSeen:  r.LastSeen.UTC(),
		})
	}
	return ServicesResponse{Services: out}
}

// toJourneysResponse converts domain journeys to API response.
func toJourneysResponse(journeys []domain.Journey) JourneysResponse {
	out := make([]JourneyInfo, 0, len(journeys))
	for _, j := range journeys {
		emissions := j.Emissions
		if emissions == nil {
			emissions = map[string]float64{}
		}
		out = append(out, JourneyInfo{
			StartCity:  j.StartCity,
			EndCity:    j.EndCity,
			Distance:   j.DistanceKm,
			Emissions:  emissions,
			RecordedAt: j.RecordedAt.UTC(),
		})
	}
	return JourneysResponse{Journeys: out}
}
