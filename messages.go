// messages.go

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
	"strconv"
	"strings"
)

// acknowledgement token sent by the drone for a successful action command
const msgOK = "ok"

// Tello SDK command words
const (
	cmdCommand  = "command"
	cmdTakeoff  = "takeoff"
	cmdLand     = "land"
	cmdCw       = "cw"
	cmdCcw      = "ccw"
	cmdForward  = "forward"
	cmdBack     = "back"
	cmdLeft     = "left"
	cmdRight    = "right"
	cmdUp       = "up"
	cmdDown     = "down"
	cmdBatteryQ = "battery?"
)

const maxBatteryPct = 100

// withArg formats a command taking a single integer argument, eg. "cw 90".
func withArg(cmd string, arg uint16) string {
	return cmd + " " + strconv.FormatUint(uint64(arg), 10)
}

func isAck(reply string) bool {
	return strings.EqualFold(reply, msgOK)
}

// parsePercentage reads a telemetry percentage, 0 to 100 inclusive.
func parsePercentage(reply string) (uint8, error) {
	v, err := strconv.ParseUint(reply, 10, 8)
	if err != nil {
		return 0, err
	}
	if v > maxBatteryPct {
		return 0, &strconv.NumError{Func: "parsePercentage", Num: reply, Err: strconv.ErrRange}
	}
	return uint8(v), nil
}
