package scenario

import (
	"context"
	"fmt"
	"time"

	"myregistry/handlers"

	"github.com/google/uuid"
)

const scenarioJourneyLog = "journey_log"

func init() {
	Register(Scenario{
		Name:        scenarioJourneyLog,
		Description: "POST /journeys then find it in GET /journeys",
		Run:         runJourneyLog,
	})
}

func runJourneyLog(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	startCity := "scenario-" + uuid.NewString()
	emissions := map[string]float64{"car": 81.5, "train": 4.2}
	if err := PostJourney(ctx, cfg, handlers.JourneyRequest{
		StartCity: startCity,
		EndCity:   "Lyon",
		Distance:  392,
		Emissions: &emissions,
	}); err != nil {
		return err
	}

	journeys, err := ListJourneys(ctx, cfg)
	if err != nil {
		return err
	}
	for _, j := range journeys {
		if j.StartCity != startCity {
			continue
		}
		if j.EndCity != "Lyon" || j.Distance != 392 {
			return fmt.Errorf("journey: got %s -> %s (%v km), want %s -> Lyon (392 km)", j.StartCity, j.EndCity, j.Distance, startCity)
		}
		if j.Emissions["train"] != 4.2 {
			return fmt.Errorf("journey: train emissions=%v, want 4.2", j.Emissions["train"])
		}
		return nil
	}
	return fmt.Errorf("journey from %s is not listed", startCity)
}
