// flightCommands.go

// This file contains the high-level Tello flight command API

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

// EnterCommandMode puts the Tello into SDK mode; it must be the first command sent.
func (tello *Tello) EnterCommandMode() error {
	return tello.expectOK(cmdCommand)
}

// TakeOff sends a normal takeoff request to the Tello
func (tello *Tello) TakeOff() error {
	return tello.expectOK(cmdTakeoff)
}

// Land sends a normal Land request to the Tello
func (tello *Tello) Land() error {
	return tello.expectOK(cmdLand)
}

// Clockwise rotates the drone clockwise by deg degrees
func (tello *Tello) Clockwise(deg uint16) error {
	return tello.expectOK(withArg(cmdCw, deg))
}

// TurnRight is an alias for Clockwise()
func (tello *Tello) TurnRight(deg uint16) error {
	return tello.Clockwise(deg)
}

// Anticlockwise rotates the drone anticlockwise by deg degrees
func (tello *Tello) Anticlockwise(deg uint16) error {
	return tello.expectOK(withArg(cmdCcw, deg))
}

// TurnLeft is an alias for Anticlockwise()
func (tello *Tello) TurnLeft(deg uint16) error {
	return tello.Anticlockwise(deg)
}

// *** The translation commands all take a distance in centimetres.
// *** The drone itself rejects distances outside its supported range.

// Forward moves the drone forward by cm
func (tello *Tello) Forward(cm uint16) error {
	return tello.expectOK(withArg(cmdForward, cm))
}

// Backward moves the drone backward by cm
func (tello *Tello) Backward(cm uint16) error {
	return tello.expectOK(withArg(cmdBack, cm))
}

// Left moves the drone left by cm
func (tello *Tello) Left(cm uint16) error {
	return tello.expectOK(withArg(cmdLeft, cm))
}

// Right moves the drone right by cm
func (tello *Tello) Right(cm uint16) error {
	return tello.expectOK(withArg(cmdRight, cm))
}

// Up raises the drone by cm
func (tello *Tello) Up(cm uint16) error {
	return tello.expectOK(withArg(cmdUp, cm))
}

// Down lowers the drone by cm
func (tello *Tello) Down(cm uint16) error {
	return tello.expectOK(withArg(cmdDown, cm))
}

// Battery queries the remaining battery charge as a percentage.
// A reply which is not a whole number from 0 to 100 is a *ProtocolError.
func (tello *Tello) Battery() (uint8, error) {
	reply, err := tello.Send(cmdBatteryQ)
	if err != nil {
		return 0, err
	}
	pct, err := parsePercentage(reply)
	if err != nil {
		return 0, &ProtocolError{Command: cmdBatteryQ, Reply: reply, Err: err}
	}
	return pct, nil
}
