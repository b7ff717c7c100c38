// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package radio

import (
	"errors"
	"testing"
)

// mockProcess records kill/wait calls.
type mockProcess struct {
	killed bool
	waited bool
}

func (m *mockProcess) Wait() error { m.waited = true; return nil }
func (m *mockProcess) Kill() error { m.killed = true; return nil }

// mockExecutor tracks started playback commands.
type mockExecutor struct {
	availableBins map[string]bool
	started       []*mockProcess
	startedArgs   [][]string
	startErr      error
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.availableBins[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) Start(name string, args ...string) (process, error) {
	if m.startErr != nil {
		return nil, m.startErr
	}
	proc := &mockProcess{}
	m.started = append(m.started, proc)
	m.startedArgs = append(m.startedArgs, append([]string{name}, args...))
	return proc, nil
}

func testPlayer(exec *mockExecutor) *Player {
	return &Player{command: "aplay", exec: exec}
}

func TestPlay(t *testing.T) {
	exec := &mockExecutor{availableBins: map[string]bool{"aplay": true}}
	p := testPlayer(exec)

	if err := p.Play("briefing.wav"); err != nil {
		t.Fatal(err)
	}
	if len(exec.started) != 1 {
		t.Fatalf("started %d processes, want 1", len(exec.started))
	}
	want := []string{"aplay", "briefing.wav"}
	if got := exec.startedArgs[0]; got[0] != want[0] || got[1] != want[1] {
		t.Errorf("command = %v, want %v", got, want)
	}
}

func TestPlayStopsPriorPlayback(t *testing.T) {
	exec := &mockExecutor{availableBins: map[string]bool{"aplay": true}}
	p := testPlayer(exec)

	if err := p.Play("first.wav"); err != nil {
		t.Fatal(err)
	}
	if err := p.Play("second.wav"); err != nil {
		t.Fatal(err)
	}

	if len(exec.started) != 2 {
		t.Fatalf("started %d processes, want 2", len(exec.started))
	}
	if !exec.started[0].killed {
		t.Error("first playback should be killed when the second starts")
	}
	if exec.started[1].killed {
		t.Error("second playback should still be running")
	}
}

func TestPlayErrors(t *testing.T) {
	p := &Player{command: "", exec: &mockExecutor{}}
	if err := p.Play("x.wav"); err == nil {
		t.Error("empty command should fail")
	}

	p = testPlayer(&mockExecutor{availableBins: map[string]bool{}})
	if err := p.Play("x.wav"); err == nil {
		t.Error("missing player binary should fail")
	}

	exec := &mockExecutor{availableBins: map[string]bool{"aplay": true}, startErr: errors.New("boom")}
	if err := testPlayer(exec).Play("x.wav"); err == nil {
		t.Error("start failure should surface")
	}
}

func TestStopIdempotent(t *testing.T) {
	exec := &mockExecutor{availableBins: map[string]bool{"aplay": true}}
	p := testPlayer(exec)

	p.Stop() // nothing active

	if err := p.Play("x.wav"); err != nil {
		t.Fatal(err)
	}
	p.Stop()
	p.Stop()

	if !exec.started[0].killed {
		t.Error("playback not killed")
	}
}
