package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/logshare/internal/adapters/detector"
	"go.trai.ch/logshare/internal/core/domain"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		isTTY bool
		ci    string
		want  domain.UIMode
	}{
		{"terminal", true, "", domain.UIModeTUI},
		{"CI=true forces linear", true, "true", domain.UIModeLinear},
		{"CI=1 forces linear", true, "1", domain.UIModeLinear},
		{"CI=false keeps terminal", true, "false", domain.UIModeTUI},
		{"pipe", false, "", domain.UIModeLinear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.Detect(tt.isTTY, tt.ci))
		})
	}
}

func TestDetectEnvironment_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, domain.UIModeLinear, detector.DetectEnvironment())
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name      string
		detected  domain.UIMode
		requested domain.UIMode
		want      domain.UIMode
	}{
		{"auto keeps detected tui", domain.UIModeTUI, domain.UIModeAuto, domain.UIModeTUI},
		{"empty keeps detected linear", domain.UIModeLinear, "", domain.UIModeLinear},
		{"force tui", domain.UIModeLinear, domain.UIModeTUI, domain.UIModeTUI},
		{"force linear", domain.UIModeTUI, domain.UIModeLinear, domain.UIModeLinear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.ResolveMode(tt.detected, tt.requested))
		})
	}
}
