package constants

const (
	// MsgPlanFailed is the only failure text the presentation layer ever sees.
	MsgPlanFailed = "Failed to fetch plan. Please check the planning service is running."

	MsgEmptyQuery      = "Describe your trip first, e.g. \"3 days in Rome, love history\"."
	MsgNoPlacesForDay  = "No POIs found for this day."
	MsgPlanning        = "Planning your trip..."
	MsgEmptyItinerary  = "Your day-by-day plan will appear here after you submit."
	MsgExplanationHead = "Why this itinerary works"
	MsgExplanationMeta = "Generated by an LLM based on your preferences and the selected POIs."

	DefaultTripTitle   = "Trip plan"
	SourceLabelOffline = "Offline dataset"
	SourceLabelGoogle  = "Live (Google Places)"
)
