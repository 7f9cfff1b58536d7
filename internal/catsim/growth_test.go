package catsim

import "testing"

func TestStageFor(t *testing.T) {
	g := GrowthParams{YoungAt: 8, GrownAt: 20}

	tests := []struct {
		affinity int
		expected Stage
	}{
		{0, StageKitten},
		{7, StageKitten},
		{8, StageYoung},
		{19, StageYoung},
		{20, StageGrown},
		{999, StageGrown},
	}
	for _, tc := range tests {
		if got := g.StageFor(tc.affinity); got != tc.expected {
			t.Errorf("StageFor(%d) = %v, expected %v", tc.affinity, got, tc.expected)
		}
	}
}

func TestStageIndexClamps(t *testing.T) {
	g := GrowthParams{Radius: [3]float64{1, 1.5, 2}, Speed: [3]float64{0.5, 0.6, 0.7}}

	if g.RadiusFor(Stage(0)) != 1 {
		t.Error("out-of-range low stage should clamp to kitten")
	}
	if g.SpeedFor(Stage(9)) != 0.7 {
		t.Error("out-of-range high stage should clamp to grown")
	}
}
