package dto

type CreateJourneyRequest struct {
	JourneyName string `json:"journeyName" validate:"required,safe"`
}

type RenameJourneyRequest struct {
	NewJourneyName string `json:"newJourneyName" validate:"required,safe"`
}

type CreateJourneyResponse struct {
	IDJourney   string `json:"idJourney"`
	IDDirectory string `json:"idDirectory"`
	JourneyName string `json:"journeyName"`
}

type RenameJourneyResponse struct {
	IDJourney      string `json:"idJourney"`
	NewJourneyName string `json:"newJourneyName"`
}

type JourneyItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type JourneysResponse struct {
	IDDirectory string        `json:"idDirectory"`
	Journeys    []JourneyItem `json:"journeys"`
}
