// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package radio

import (
	"fmt"
	"os/exec"
	"sync"
)

// process is a handle on a started playback command.
type process interface {
	Wait() error
	Kill() error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Start(name string, args ...string) (process, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Start(name string, args ...string) (process, error) {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &osProcess{cmd: cmd}, nil
}

type osProcess struct {
	cmd *exec.Cmd
}

func (p *osProcess) Wait() error { return p.cmd.Wait() }
func (p *osProcess) Kill() error { return p.cmd.Process.Kill() }

var defaultExec executor = &osExecutor{}

// Player runs an external audio player command. At most one playback is
// active: starting a new one stops the prior process first.
type Player struct {
	command string
	exec    executor

	mu      sync.Mutex
	current process
}

// NewPlayer builds a player around the configured command (e.g. "aplay").
func NewPlayer(command string) *Player {
	return &Player{command: command, exec: defaultExec}
}

// Play stops any active playback and starts the player on the given file.
func (p *Player) Play(path string) error {
	if p.command == "" {
		return fmt.Errorf("no player command configured")
	}
	if _, err := p.exec.LookPath(p.command); err != nil {
		return fmt.Errorf("player %s not found: %w", p.command, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	proc, err := p.exec.Start(p.command, path)
	if err != nil {
		return fmt.Errorf("starting player: %w", err)
	}
	p.current = proc
	return nil
}

// Wait blocks until the active playback finishes.
func (p *Player) Wait() error {
	p.mu.Lock()
	proc := p.current
	p.mu.Unlock()

	if proc == nil {
		return nil
	}
	err := proc.Wait()

	p.mu.Lock()
	if p.current == proc {
		p.current = nil
	}
	p.mu.Unlock()
	return err
}

// Stop kills the active playback, if any.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Player) stopLocked() {
	if p.current == nil {
		return
	}
	p.current.Kill()
	p.current.Wait()
	p.current = nil
}
