// Package speech provides the fire-and-forget pronunciation collaborator.
// Playback failure never reaches the caller: grading and progress must
// not depend on whether audio works on this machine.
package speech

import "os/exec"

// Speaker speaks a word or phrase aloud. Implementations must not
// block the caller and must swallow playback errors.
type Speaker interface {
	Speak(text string)
}

// ttsCommands are tried in order; the first one present on PATH wins.
var ttsCommands = []string{"say", "espeak", "spd-say"}

// NewSpeaker returns a Speaker backed by the host's text-to-speech
// command, or a no-op Speaker when none is installed.
func NewSpeaker() Speaker {
	for _, name := range ttsCommands {
		if path, err := exec.LookPath(name); err == nil {
			return &commandSpeaker{path: path}
		}
	}
	return NoopSpeaker{}
}

// commandSpeaker shells out to a TTS binary in the background.
type commandSpeaker struct {
	path string
}

func (c *commandSpeaker) Speak(text string) {
	if text == "" {
		return
	}
	cmd := exec.Command(c.path, text)
	if err := cmd.Start(); err != nil {
		return
	}
	// Reap the child without waiting on it.
	go func() { _ = cmd.Wait() }()
}

// NoopSpeaker silently discards every request.
type NoopSpeaker struct{}

func (NoopSpeaker) Speak(string) {}

// Recorder is a Speaker that captures requests, for tests.
type Recorder struct {
	Spoken []string
}

func (r *Recorder) Speak(text string) {
	r.Spoken = append(r.Spoken, text)
}
