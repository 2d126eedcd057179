package teams

// Team aggregates a constructor's season stats and its driver codes.
type Team struct {
	Team    string   `json:"team"`
	Wins    int      `json:"wins"`
	Poles   int      `json:"poles"`
	Starts  int      `json:"starts"`
	Drivers []string `json:"drivers"`
}

// HasDriver reports whether code is on the team's roster.
func (t Team) HasDriver(code string) bool {
	for _, d := range t.Drivers {
		if d == code {
			return true
		}
	}
	return false
}

// CareerStats are a driver's all-time totals.
type CareerStats struct {
	WDC     int `json:"wdc"`
	Wins    int `json:"wins"`
	Podiums int `json:"podiums"`
}
