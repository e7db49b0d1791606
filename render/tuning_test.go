package render

import (
	"testing"

	"github.com/automoto/downpour/components"
)

func TestTuningOverlaySelectWraps(t *testing.T) {
	var o TuningOverlay
	o.Select(-1)
	if o.Selected != len(tunables)-1 {
		t.Errorf("Expected %d, got %d", len(tunables)-1, o.Selected)
	}
	o.Select(2)
	if o.Selected != 1 {
		t.Errorf("Expected 1, got %d", o.Selected)
	}
}

func TestTuningOverlayAdjust(t *testing.T) {
	tuning := components.NewTuning()
	before := tuning.MaxMoveSpeed

	o := TuningOverlay{Selected: 1}
	o.Adjust(&tuning, 1)
	o.Adjust(&tuning, 1)
	o.Adjust(&tuning, -1)

	if want := before + tunables[1].step; tuning.MaxMoveSpeed != want {
		t.Errorf("Expected %v, got %v", want, tuning.MaxMoveSpeed)
	}
}
