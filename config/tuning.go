package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// TuningFile mirrors the optional tuning.yaml placed next to the binary.
// Pointer fields so that absent keys keep the compiled-in defaults.
type TuningFile struct {
	Gravity         *float64 `yaml:"gravity"`
	PixelScale      *float64 `yaml:"pixelScale"`
	RestSpeed       *float64 `yaml:"restSpeed"`
	Radius          *float64 `yaml:"radius"`
	Elasticity      *float64 `yaml:"elasticity"`
	DestroyDuration *float64 `yaml:"destroyDuration"`
	MinPower        *float64 `yaml:"minPower"`
	MaxPower        *float64 `yaml:"maxPower"`
	DefaultPower    *float64 `yaml:"defaultPower"`
}

// LoadTuning applies overrides from the given YAML file onto the global
// config. A missing file is not an error; a malformed one is logged and
// ignored so the game still starts with defaults.
func LoadTuning(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: could not read %s: %v", path, err)
		}
		return
	}

	var t TuningFile
	if err := yaml.Unmarshal(data, &t); err != nil {
		log.Printf("Warning: could not parse %s: %v", path, err)
		return
	}
	ApplyTuning(&t)
}

// ApplyTuning copies the non-nil overrides into the global config.
func ApplyTuning(t *TuningFile) {
	if t.Gravity != nil {
		Physics.Gravity = *t.Gravity
	}
	if t.PixelScale != nil {
		Physics.PixelScale = *t.PixelScale
	}
	if t.RestSpeed != nil {
		Physics.RestSpeed = *t.RestSpeed
	}
	if t.Radius != nil {
		Projectile.Radius = *t.Radius
	}
	if t.Elasticity != nil {
		Projectile.Elasticity = *t.Elasticity
	}
	if t.DestroyDuration != nil {
		Projectile.DestroyDuration = *t.DestroyDuration
	}
	if t.MinPower != nil {
		Cannon.MinPower = *t.MinPower
	}
	if t.MaxPower != nil {
		Cannon.MaxPower = *t.MaxPower
	}
	if t.DefaultPower != nil {
		Cannon.DefaultPower = *t.DefaultPower
	}
}
