package config

// Agent represents one member of the brokerage's sales team offered during
// the listing-intake wizard.
type Agent struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Title      string  `json:"title"`
	Experience string  `json:"experience"`
	Rating     float64 `json:"rating"`
	Specialty  string  `json:"specialty"`
}

// Agents is the fixed candidate list presented at the agent-selection step.
var Agents = []Agent{
	{
		ID:         "1",
		Name:       "Sarah Mitchell",
		Title:      "Senior Sales Agent",
		Experience: "12 years in Brisbane residential sales",
		Rating:     4.9,
		Specialty:  "Family homes and character properties",
	},
	{
		ID:         "2",
		Name:       "James Chen",
		Title:      "Sales Agent",
		Experience: "8 years across inner-city apartments",
		Rating:     4.8,
		Specialty:  "Apartments and off-the-plan sales",
	},
	{
		ID:         "3",
		Name:       "Emma Thompson",
		Title:      "Principal Agent",
		Experience: "15 years on the Gold Coast",
		Rating:     4.9,
		Specialty:  "Prestige and waterfront properties",
	},
	{
		ID:         "4",
		Name:       "David Nguyen",
		Title:      "Sales Agent",
		Experience: "6 years in acreage and land sales",
		Rating:     4.7,
		Specialty:  "Land, acreage and commercial",
	},
}

// GetAgentByID returns an agent by id, or nil when no agent matches.
func GetAgentByID(id string) *Agent {
	for _, agent := range Agents {
		if agent.ID == id {
			return &agent
		}
	}
	return nil
}
