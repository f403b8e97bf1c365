package game

import (
	"time"

	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/pixelswarm/internal/chime"
	"github.com/iburimskiy/pixelswarm/internal/log"
)

type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// StartAudio initializes the speaker and starts streaming the chime player.
// If the speaker cannot be opened the game runs silently.
func StartAudio(logger *log.Logger, muted bool) *chime.Player {
	bufferSize := chime.SampleRate.N(time.Second / 20)
	if err := speaker.Init(chime.SampleRate, bufferSize); err != nil {
		logger.Warnf("audio disabled: %v", err)
		return nil
	}
	player := chime.NewPlayer(chime.SampleRate, speakerLock{}, muted)
	speaker.Play(player.Output())
	return player
}
