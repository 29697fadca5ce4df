package music

import (
	"sync"

	"github.com/iburimskiy/heartclock/internal/logger"
)

// Player is a single playable audio resource. Play may fail, for instance
// when nothing is loaded or the sound device is unavailable.
type Player interface {
	Play() error
	Pause()
	Paused() bool
}

// Indicator is the visual state of the toggle control.
type Indicator int

const (
	IndicatorPaused Indicator = iota
	IndicatorPlaying
)

func (i Indicator) String() string {
	if i == IndicatorPlaying {
		return "playing"
	}
	return "paused"
}

// Toggle is the play/pause control over a Player. Playback failures never
// escape it: they leave the indicator paused and are logged at debug level.
type Toggle struct {
	player    Player
	log       *logger.Logger
	indicator Indicator
	unlock    sync.Once
}

// NewToggle creates a toggle in the paused state.
func NewToggle(player Player, log *logger.Logger) *Toggle {
	if log == nil {
		log = logger.Discard()
	}
	return &Toggle{
		player: player,
		log:    log.WithFields("component", "music"),
	}
}

// Indicator returns the current visual state.
func (t *Toggle) Indicator() Indicator {
	return t.indicator
}

// Autoplay makes a best-effort attempt to start playback.
func (t *Toggle) Autoplay() Indicator {
	t.play("autoplay")
	return t.indicator
}

// Click flips between playing and paused. It also counts as the first
// interaction, so a later Unlock does nothing.
func (t *Toggle) Click() Indicator {
	t.unlock.Do(func() {})

	if t.player.Paused() {
		t.play("click")
	} else {
		t.player.Pause()
		t.indicator = IndicatorPaused
		t.log.Debug("playback paused")
	}
	return t.indicator
}

// Unlock retries playback on the first user interaction if still paused.
// Only the first call has any effect.
func (t *Toggle) Unlock() Indicator {
	t.unlock.Do(func() {
		if t.player.Paused() {
			t.play("unlock")
		}
	})
	return t.indicator
}

func (t *Toggle) play(trigger string) {
	if err := t.player.Play(); err != nil {
		t.indicator = IndicatorPaused
		t.log.Debug("playback not started", "trigger", trigger, "error", err)
		return
	}
	t.indicator = IndicatorPlaying
	t.log.Debug("playback started", "trigger", trigger)
}
