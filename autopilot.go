// autopilot.go

// This file contains the pre-flight check and a simple scripted flight runner.

// Copyright (C) 2018  Steve Merrony

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package tellosdk

import (
	"fmt"
	"time"
)

// DefaultSettle is how long the default plan waits after takeoff before manoeuvring.
const DefaultSettle = 2 * time.Second

// Step is one stage of a scripted flight.
type Step struct {
	Name  string
	Run   func(*Tello) error
	Pause time.Duration // wait this long after Run succeeds
}

// DefaultPlan returns the demonstration flight: take off, let the drone
// settle, rotate 90 degrees clockwise, move back and right 1m, then land.
func DefaultPlan(settle time.Duration) []Step {
	return []Step{
		{Name: "takeoff", Run: (*Tello).TakeOff, Pause: settle},
		{Name: "rotate", Run: func(tello *Tello) error { return tello.Clockwise(90) }},
		{Name: "back", Run: func(tello *Tello) error { return tello.Backward(100) }},
		{Name: "right", Run: func(tello *Tello) error { return tello.Right(100) }},
		{Name: "land", Run: (*Tello).Land},
	}
}

// Preflight enters SDK mode and checks the battery.
// The battery level is always returned when it could be read; if it is below
// minPct the error wraps ErrBatteryLow and nothing else is sent to the drone.
func (tello *Tello) Preflight(minPct uint8) (uint8, error) {
	if err := tello.EnterCommandMode(); err != nil {
		return 0, err
	}
	pct, err := tello.Battery()
	if err != nil {
		return 0, err
	}
	if pct < minPct {
		return pct, fmt.Errorf("%w: %d%% (minimum %d%%)", ErrBatteryLow, pct, minPct)
	}
	return pct, nil
}

// Fly runs the steps in order, stopping at the first failure.
// Each step must be acknowledged before the next is sent.
func (tello *Tello) Fly(steps []Step) error {
	for _, s := range steps {
		if err := s.Run(tello); err != nil {
			return fmt.Errorf("%s: %w", s.Name, err)
		}
		if s.Pause > 0 {
			time.Sleep(s.Pause)
		}
	}
	return nil
}
