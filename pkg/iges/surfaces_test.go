package iges

import "testing"

func TestPlaneSurfaceRescaleSkipsNormal(t *testing.T) {
	p := NewPlaneSurface190()
	p.Point = [3]float64{1, 2, 3}
	p.Normal = [3]float64{0, 0, 1}
	p.RefDir = [3]float64{1, 0, 0}

	if err := p.Rescale(2.0); err != nil {
		t.Fatalf("Rescale: %v", err)
	}
	if p.Point != [3]float64{2, 4, 6} {
		t.Errorf("Point = %v, want scaled", p.Point)
	}
	if p.Normal != [3]float64{0, 0, 1} {
		t.Errorf("Normal = %v, want unchanged", p.Normal)
	}
}

func TestCylindricalSurfaceRescaleScalesRadiusNotAxis(t *testing.T) {
	c := NewCylindricalSurface192()
	c.Location = [3]float64{1, 1, 0}
	c.Radius = 5

	if err := c.Rescale(3.0); err != nil {
		t.Fatalf("Rescale: %v", err)
	}
	if c.Radius != 15 {
		t.Errorf("Radius = %v, want 15", c.Radius)
	}
	if c.Axis != [3]float64{0, 0, 1} {
		t.Errorf("Axis = %v, want unchanged", c.Axis)
	}
	if c.Location != [3]float64{3, 3, 0} {
		t.Errorf("Location = %v, want scaled", c.Location)
	}
}

func TestSurfaceFactoriesRegistered(t *testing.T) {
	m := NewModel()
	if _, err := m.CreateEntity(TypePlaneSurface190); err != nil {
		t.Errorf("CreateEntity(190): %v", err)
	}
	if _, err := m.CreateEntity(TypeCylindricalSurface192); err != nil {
		t.Errorf("CreateEntity(192): %v", err)
	}
}
