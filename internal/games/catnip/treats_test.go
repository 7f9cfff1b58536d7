package catnip

import (
	"testing"

	"github.com/okatenko/catnip/internal/catsim"
	"github.com/okatenko/catnip/internal/config"
)

func testTreatsCfg() config.TreatsConfig {
	return config.TreatsConfig{
		ThrowSpeed:   0.8,
		EatRange:     1.5,
		KibblePoints: 2,
		YarnPoints:   3,
		TunaPoints:   5,
	}
}

var testTreatBounds = catsim.Rect{X: 0, Y: 1, W: 80, H: 23}

func TestTreatFliesAndLands(t *testing.T) {
	m := newTreatManager(testTreatsCfg())
	m.Throw(TreatKibble, catsim.Vec{X: 2, Y: 23}, catsim.Vec{X: 10, Y: 23}, testTreatBounds)

	for i := 0; i < 20 && !m.Treats()[0].Landed; i++ {
		m.Update()
	}

	treat := m.Treats()[0]
	if !treat.Landed {
		t.Fatal("treat never landed")
	}
	if treat.Pos != (catsim.Vec{X: 10, Y: 23}) {
		t.Errorf("treat landed at %v, expected the target", treat.Pos)
	}
}

func TestTreatTargetClampedToBounds(t *testing.T) {
	m := newTreatManager(testTreatsCfg())
	m.Throw(TreatTuna, catsim.Vec{X: 2, Y: 23}, catsim.Vec{X: 500, Y: -50}, testTreatBounds)

	for i := 0; i < 200 && !m.Treats()[0].Landed; i++ {
		m.Update()
	}

	pos := m.Treats()[0].Pos
	if !testTreatBounds.Contains(pos) {
		t.Errorf("treat landed outside bounds at %v", pos)
	}
}

func TestTreatEating(t *testing.T) {
	m := newTreatManager(testTreatsCfg())
	m.Throw(TreatYarn, catsim.Vec{X: 9, Y: 23}, catsim.Vec{X: 10, Y: 23}, testTreatBounds)
	m.Update()
	m.Update()

	if !m.Treats()[0].Landed {
		t.Fatal("treat should have landed")
	}

	// Cat too far away: nothing to eat.
	if got := m.TryEat(catsim.Vec{X: 30, Y: 10}); got != 0 {
		t.Errorf("TryEat out of range returned %d", got)
	}
	if len(m.Treats()) != 1 {
		t.Error("failed eat attempt should not consume the treat")
	}

	// In range: yarn is worth 3.
	if got := m.TryEat(catsim.Vec{X: 10.5, Y: 23}); got != 3 {
		t.Errorf("TryEat = %d, expected 3 for yarn", got)
	}
	if len(m.Treats()) != 0 {
		t.Error("eaten treat should be removed")
	}
}

func TestTreatInFlightNotEdible(t *testing.T) {
	m := newTreatManager(testTreatsCfg())
	m.Throw(TreatKibble, catsim.Vec{X: 2, Y: 23}, catsim.Vec{X: 60, Y: 10}, testTreatBounds)
	m.Update()

	pos := m.Treats()[0].Pos
	if got := m.TryEat(pos); got != 0 {
		t.Errorf("in-flight treat should not be edible, got %d points", got)
	}
}

func TestTreatExpires(t *testing.T) {
	m := newTreatManager(testTreatsCfg())
	m.Throw(TreatKibble, catsim.Vec{X: 9, Y: 23}, catsim.Vec{X: 10, Y: 23}, testTreatBounds)

	for i := 0; i < landedTreatTTL+10; i++ {
		m.Update()
	}

	if len(m.Treats()) != 0 {
		t.Errorf("landed treat should expire, %d still alive", len(m.Treats()))
	}
}

func TestTreatKindPoints(t *testing.T) {
	cfg := testTreatsCfg()
	tests := []struct {
		kind     TreatKind
		expected int
	}{
		{TreatKibble, 2},
		{TreatYarn, 3},
		{TreatTuna, 5},
	}
	for _, tc := range tests {
		if got := tc.kind.Points(cfg); got != tc.expected {
			t.Errorf("%v.Points = %d, expected %d", tc.kind, got, tc.expected)
		}
	}
}
