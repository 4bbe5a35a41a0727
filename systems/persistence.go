package systems

import (
	"encoding/json"
	"log"

	"github.com/Vynokris/CannonWarfare2/components"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	ShowTrajectory bool `json:"showTrajectory"`
	Fullscreen     bool `json:"fullscreen"`
}

// SavedStats mirrors StatsData on disk.
type SavedStats struct {
	ShotsFired     int     `json:"shotsFired"`
	Bounces        int     `json:"bounces"`
	LongestAirTime float64 `json:"longestAirTime"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "cannonwarfare",
	})
	if err != nil {
		log.Printf("Warning: could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk; nil means no saved settings yet.
func LoadSettings() (*SavedSettings, error) {
	data, err := loadItem("settings")
	if data == nil || err != nil {
		return nil, err
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveItem("settings", s)
}

// LoadStats loads the persisted scoreboard; nil when none exists.
func LoadStats() (*SavedStats, error) {
	data, err := loadItem("stats")
	if data == nil || err != nil {
		return nil, err
	}

	var stats SavedStats
	if err := json.Unmarshal(data, &stats); err != nil {
		log.Printf("Warning: could not parse saved stats: %v", err)
		return nil, err
	}
	return &stats, nil
}

// SaveStatsIfDirty flushes the stats singleton when it changed this frame.
func SaveStatsIfDirty(e *ecs.ECS) {
	entry, ok := components.Stats.First(e.World)
	if !ok {
		return
	}
	stats := components.Stats.Get(entry)
	if !stats.Dirty {
		return
	}
	stats.Dirty = false

	_ = saveItem("stats", &SavedStats{
		ShotsFired:     stats.ShotsFired,
		Bounces:        stats.Bounces,
		LongestAirTime: stats.LongestAirTime,
	})
}

// ApplySavedStats copies loaded values into the stats singleton.
func ApplySavedStats(e *ecs.ECS, saved *SavedStats) {
	if saved == nil {
		return
	}
	if entry, ok := components.Stats.First(e.World); ok {
		stats := components.Stats.Get(entry)
		stats.ShotsFired = saved.ShotsFired
		stats.Bounces = saved.Bounces
		stats.LongestAirTime = saved.LongestAirTime
	}
}

func loadItem(key string) ([]byte, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}
	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Printf("Warning: could not load %s: %v", key, err)
		return nil, err
	}
	return data, nil
}

func saveItem(key string, v any) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: could not serialize %s: %v", key, err)
		return err
	}
	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Printf("Warning: could not save %s: %v", key, err)
		return err
	}
	return nil
}
