package command

import (
	"fmt"
	"strconv"
	"strings"

	"framelab/framebuf"
)

// Step is one scripted tick: a command and the input it is applied with.
type Step struct {
	Command Command
	Input   Input
}

// ParseStep parses a step of the form name[@x,y[+dx,dy]]. The pointer ends
// at (x+dx, y+dy) and the stroke starts at (x, y), so "line@10,10+50,20"
// draws from (10,10) to (60,30).
func ParseStep(s string) (Step, error) {
	name, pos, hasPos := strings.Cut(strings.TrimSpace(s), "@")

	cmd, err := ParseCommand(name)
	if err != nil {
		return Step{}, err
	}
	step := Step{Command: cmd}
	if !hasPos {
		return step, nil
	}

	at, delta, hasDelta := strings.Cut(pos, "+")
	start, err := parsePoint(at)
	if err != nil {
		return Step{}, fmt.Errorf("invalid position in step %q: %w", s, err)
	}
	var d framebuf.Vector2
	if hasDelta {
		if d, err = parsePoint(delta); err != nil {
			return Step{}, fmt.Errorf("invalid delta in step %q: %w", s, err)
		}
	}

	step.Input = Input{
		Start:   start,
		Pointer: start.Add(d),
		Delta:   d,
	}
	return step, nil
}

func parsePoint(s string) (framebuf.Vector2, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return framebuf.Vector2{}, fmt.Errorf("expected x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return framebuf.Vector2{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return framebuf.Vector2{}, err
	}
	return framebuf.Vec(x, y), nil
}

// Run applies steps in order, stopping at the first failure.
func (s *Session) Run(steps []Step) error {
	for i, step := range steps {
		if err := s.Apply(step.Command, step.Input); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}
