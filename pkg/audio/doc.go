// Package audio plays short synthesized sound cues for game events.
//
// A [Player] mixes tones into a single [beep.Mixer] that is handed to the
// speaker once by [Player.Init]. Before Init, or after [Player.Close],
// every Play method is a no-op, so callers can wire a Player
// unconditionally and only initialize it when sound is enabled.
//
// Player implements [observability.GameHooks]:
//
//	p := audio.NewPlayer()
//	if err := p.Init(); err != nil {
//	    logger.Warn("sound disabled", "error", err)
//	}
//	defer p.Close()
//	observability.SetGameHooks(p)
package audio
