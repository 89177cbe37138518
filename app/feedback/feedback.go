// Package feedback owns audio cues and the success streak. It picks the sound for each outcome,
// rotating through success sounds, and hands it to a Player.
package feedback

import (
	"sync"

	log "github.com/go-pkgz/lgr"
)

//go:generate moq -out mocks/player.go -pkg mocks -skip-ensure -fmt goimports . Player

// Player plays a sound file without blocking the caller
type Player interface {
	Play(file string) error
}

// Params for Feedback
type Params struct {
	ErrorSound    string
	SuccessSounds []string // one fixed sound or a rotating set
}

// Feedback picks sounds and tracks the streak of successful updates. Safe for concurrent use.
type Feedback struct {
	player Player
	params Params

	mu     sync.Mutex
	next   int
	streak int
}

// New makes Feedback. Nil player makes it silent, counters still work.
func New(player Player, params Params) *Feedback {
	return &Feedback{player: player, params: params}
}

// RecordSuccess advances the rotation and the streak, plays and returns the chosen sound.
// Returns empty string if no success sounds configured.
func (f *Feedback) RecordSuccess() string {
	f.mu.Lock()
	f.streak++
	sound := ""
	if len(f.params.SuccessSounds) > 0 {
		sound = f.params.SuccessSounds[f.next%len(f.params.SuccessSounds)]
		f.next = (f.next + 1) % len(f.params.SuccessSounds)
	}
	f.mu.Unlock()

	f.play(sound)
	return sound
}

// RecordError resets the streak, plays and returns the error sound
func (f *Feedback) RecordError() string {
	f.mu.Lock()
	f.streak = 0
	f.mu.Unlock()

	f.play(f.params.ErrorSound)
	return f.params.ErrorSound
}

// Streak returns the number of successes since the last error
func (f *Feedback) Streak() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.streak
}

func (f *Feedback) play(sound string) {
	if sound == "" || f.player == nil {
		return
	}
	if err := f.player.Play(sound); err != nil {
		log.Printf("[WARN] can't play %s, %v", sound, err)
	}
}
