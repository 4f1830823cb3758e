package scene

import (
	"fmt"
	"time"
)

const (
	// below this the liquid reads as a line and the curve degenerates
	WaveThreshold = 50

	WavePeriod = 4 * time.Second

	waveAmplitude = 10
	waveDepth     = 20
)

type Wave struct {
	Keyframes [3]string
	Duration  time.Duration
}

func GenerateWave(g Geometry) *Wave {
	if g.LiquidHeight < WaveThreshold {
		return nil
	}
	crest := wavePath(g, g.LiquidTop+waveAmplitude)
	trough := wavePath(g, g.LiquidTop-waveAmplitude)
	return &Wave{
		Keyframes: [3]string{crest, trough, crest},
		Duration:  WavePeriod,
	}
}

func wavePath(g Geometry, control int) string {
	top := g.LiquidTop
	return fmt.Sprintf("M0,%d Q%d,%d %d,%d T%d,%d V%d H0 Z",
		top, g.Width/4, control, g.Width/2, top, g.Width, top, top+waveDepth)
}
