package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTuningOverridesOnlyPresentKeys(t *testing.T) {
	oldPhysics := Physics
	oldProjectile := Projectile
	defer func() {
		Physics = oldPhysics
		Projectile = oldProjectile
	}()

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	yml := "gravity: 50\nelasticity: 0.3\n"
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	LoadTuning(path)

	if Physics.Gravity != 50 {
		t.Errorf("gravity = %f, want 50", Physics.Gravity)
	}
	if Projectile.Elasticity != 0.3 {
		t.Errorf("elasticity = %f, want 0.3", Projectile.Elasticity)
	}
	// Keys absent from the file keep their defaults.
	if Physics.PixelScale != oldPhysics.PixelScale {
		t.Errorf("pixelScale = %f, want default %f", Physics.PixelScale, oldPhysics.PixelScale)
	}
	if Projectile.Radius != oldProjectile.Radius {
		t.Errorf("radius = %f, want default %f", Projectile.Radius, oldProjectile.Radius)
	}
}

func TestLoadTuningMissingFileKeepsDefaults(t *testing.T) {
	oldGravity := Physics.Gravity
	LoadTuning(filepath.Join(t.TempDir(), "nope.yaml"))
	if Physics.Gravity != oldGravity {
		t.Fatalf("gravity changed by missing file: %f", Physics.Gravity)
	}
}

func TestLoadTuningMalformedFileKeepsDefaults(t *testing.T) {
	oldGravity := Physics.Gravity
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	LoadTuning(path)
	if Physics.Gravity != oldGravity {
		t.Fatalf("gravity changed by malformed file: %f", Physics.Gravity)
	}
}
