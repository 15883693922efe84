// network.go

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
	"net"
	"strings"
	"time"
)

// replies from the SDK are short text, this is ample
const maxReplySize = 2048

// controlConnect binds to localAddr and fixes the peer to droneAddr, so that
// plain Read/Write can be used and datagrams from anyone else are dropped by the OS.
func controlConnect(localAddr, droneAddr string) (*net.UDPConn, error) {
	rAddr, err := net.ResolveUDPAddr("udp", droneAddr)
	if err != nil {
		return nil, err
	}
	lAddr, err := net.ResolveUDPAddr("udp", localAddr)
	if err != nil {
		return nil, err
	}
	return net.DialUDP("udp", lAddr, rAddr)
}

// roundTrip writes one command datagram and reads back exactly one reply datagram.
// Deadlines are set afresh on each call so a timeout leaves the connection reusable.
func roundTrip(conn *net.UDPConn, command string, writeTimeout, readTimeout time.Duration) (string, error) {
	if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return "", &IOError{Op: "write", Command: command, Err: err}
	}
	if _, err := conn.Write([]byte(command)); err != nil {
		return "", &IOError{Op: "write", Command: command, Err: err}
	}

	buff := make([]byte, maxReplySize)
	if err := conn.SetReadDeadline(time.Now().Add(readTimeout)); err != nil {
		return "", &IOError{Op: "read", Command: command, Err: err}
	}
	n, err := conn.Read(buff)
	if err != nil {
		return "", &IOError{Op: "read", Command: command, Err: err}
	}
	return decodeReply(buff[:n]), nil
}

// decodeReply turns a reply datagram into text, replacing any invalid UTF-8.
func decodeReply(b []byte) string {
	return strings.TrimSpace(strings.ToValidUTF8(string(b), "�"))
}
