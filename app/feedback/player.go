package feedback

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	log "github.com/go-pkgz/lgr"
)

// CmdPlayer plays sounds with an external player command, like "paplay" or "afplay"
type CmdPlayer struct {
	Command string // player command with optional arguments, the sound file is appended as the last argument
}

// Play starts the player and returns right away, completion is logged in background
func (p CmdPlayer) Play(file string) error {
	args := strings.Fields(p.Command)
	if len(args) == 0 {
		return errors.New("empty player command")
	}
	if _, err := os.Stat(file); err != nil {
		return fmt.Errorf("sound file %s: %w", file, err)
	}

	cmd := exec.Command(args[0], append(args[1:], file)...) //nolint:gosec // player set by user
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("can't start %q: %w", p.Command, err)
	}
	log.Printf("[DEBUG] playing %s with %s", file, args[0])
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Printf("[WARN] player %q failed on %s, %v", p.Command, file, err)
		}
	}()
	return nil
}
