package f1api

type raceResponse struct {
	Round    int    `json:"round"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Date     string `json:"date"`
}

type resultsResponse struct {
	Race    string           `json:"race"`
	Results []resultResponse `json:"results"`
}

// Position arrives as a float ("1.0") and is null for unclassified drivers.
type resultResponse struct {
	Position *float64 `json:"position"`
	Driver   string   `json:"driver"`
	Team     string   `json:"team"`
	Time     string   `json:"time"`
	Status   string   `json:"status"`
	Points   float64  `json:"points"`
}

type stintResponse struct {
	Driver      string  `json:"driver"`
	Stint       int     `json:"stint"`
	Compound    string  `json:"compound"`
	LapsCount   int     `json:"laps_count"`
	MeanLapTime float64 `json:"mean_lap_time"`
}

type teamResponse struct {
	Team    string   `json:"team"`
	Wins    int      `json:"wins"`
	Poles   int      `json:"poles"`
	Starts  int      `json:"starts"`
	Drivers []string `json:"drivers"`
}

type careerResponse struct {
	WDC     int `json:"wdc"`
	Wins    int `json:"wins"`
	Podiums int `json:"podiums"`
}

type specsResponse struct {
	Engine     map[string]string `json:"engine"`
	Power      map[string]string `json:"power"`
	Battery    map[string]string `json:"battery"`
	Dimensions map[string]string `json:"dimensions"`
}
