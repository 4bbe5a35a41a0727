package components

import "github.com/yohamta/donburi"

// StatsData is the session scoreboard, persisted between runs.
type StatsData struct {
	ShotsFired     int
	Bounces        int
	LongestAirTime float64

	Dirty bool // set when a value changes, cleared on save
}

var Stats = donburi.NewComponentType[StatsData]()
