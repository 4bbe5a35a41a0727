package assets

import "testing"

func TestMustLoadRanges(t *testing.T) {
	ranges := NewRangeLoader().MustLoadRanges()
	if len(ranges) == 0 {
		t.Fatal("no ranges loaded")
	}

	r := ranges[0]
	if r.Width <= 0 || r.Height <= 0 {
		t.Fatalf("bad dimensions %dx%d", r.Width, r.Height)
	}
	if r.GroundY <= 0 || r.GroundY >= float64(r.Height) {
		t.Fatalf("ground y %f outside map height %d", r.GroundY, r.Height)
	}
	if r.CannonSpawn.X <= 0 || r.CannonSpawn.Y >= r.GroundY {
		t.Fatalf("cannon spawn %v not above ground %f", r.CannonSpawn, r.GroundY)
	}
	if len(r.Crates) == 0 {
		t.Fatal("expected at least one crate obstacle")
	}
	for _, c := range r.Crates {
		if c.W <= 0 || c.H <= 0 {
			t.Fatalf("degenerate crate %+v", c)
		}
	}
}
