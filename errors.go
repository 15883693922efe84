// errors.go

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
	"errors"
	"fmt"
	"net"
)

var (
	// ErrInvalidCommand is returned, without touching the network, for a command
	// that is empty or contains a line terminator.
	ErrInvalidCommand = errors.New("invalid Tello command")

	// ErrBatteryLow is returned by Preflight when the battery is below the
	// requested minimum.
	ErrBatteryLow = errors.New("Tello battery too low for flight")
)

// IOError reports a transport failure: the socket could not be set up, or a
// send or receive failed or timed out.
type IOError struct {
	Op      string // "dial", "write" or "read"
	Command string // the command being sent, empty for "dial"
	Err     error
}

func (e *IOError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("tello %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("tello %s %q: %v", e.Op, e.Command, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Timeout reports whether the failure was a read or write deadline expiring.
func (e *IOError) Timeout() bool {
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}

// ProtocolError reports a reply which arrived but does not fit the command,
// eg. anything other than "ok" to an action command.
type ProtocolError struct {
	Command string
	Reply   string
	Err     error // why the reply was rejected, nil for a plain refusal
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tello %q: unexpected reply %q: %v", e.Command, e.Reply, e.Err)
	}
	return fmt.Sprintf("tello %q: command rejected with %q", e.Command, e.Reply)
}

func (e *ProtocolError) Unwrap() error { return e.Err }
