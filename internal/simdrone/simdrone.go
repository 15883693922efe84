// simdrone.go - an in-process stand-in for the Tello SDK command port

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

// Package simdrone runs a UDP peer on the loopback interface which answers
// Tello SDK commands from a Handler and records everything it receives.
package simdrone

import (
	"errors"
	"log"
	"net"
	"strings"
	"sync"
)

// NoReply may be returned by a Handler, or listed in a Script, to send nothing back.
const NoReply = "\x00no-reply"

// Handler decides the reply for each received command.
type Handler func(command string) string

// Drone is a running simulated drone.
type Drone struct {
	conn     *net.UDPConn
	handler  Handler
	mu       sync.Mutex
	received []string
	done     chan struct{}
}

// Start listens on an ephemeral loopback port and serves commands until Close.
func Start(h Handler) (*Drone, error) {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		return nil, err
	}
	d := &Drone{conn: conn, handler: h, done: make(chan struct{})}
	go d.serve()
	return d, nil
}

// Host is the address the simulated drone listens on.
func (d *Drone) Host() string {
	return d.conn.LocalAddr().(*net.UDPAddr).IP.String()
}

// Port is the UDP port the simulated drone listens on.
func (d *Drone) Port() int {
	return d.conn.LocalAddr().(*net.UDPAddr).Port
}

// Commands returns a copy of every command received so far, in order.
func (d *Drone) Commands() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.received...)
}

// Close stops the drone and waits for its listener to exit.
func (d *Drone) Close() error {
	err := d.conn.Close()
	<-d.done
	return err
}

func (d *Drone) serve() {
	defer close(d.done)
	buff := make([]byte, 1024)
	for {
		n, from, err := d.conn.ReadFromUDP(buff)
		if err != nil {
			if !errors.Is(err, net.ErrClosed) {
				log.Printf("simdrone: read error - %v\n", err)
			}
			return
		}
		cmd := string(buff[:n])
		d.mu.Lock()
		d.received = append(d.received, cmd)
		d.mu.Unlock()

		reply := d.handler(cmd)
		if reply == NoReply {
			continue
		}
		if _, err := d.conn.WriteToUDP([]byte(reply), from); err != nil {
			log.Printf("simdrone: write error - %v\n", err)
		}
	}
}

// Script replies with each of replies in turn, then stays silent.
func Script(replies ...string) Handler {
	next := 0
	return func(string) string {
		if next >= len(replies) {
			return NoReply
		}
		r := replies[next]
		next++
		return r
	}
}

// Obedient behaves like a healthy drone: every action is acknowledged and
// "battery?" is answered with the given level.
func Obedient(battery string) Handler {
	return func(cmd string) string {
		if strings.HasSuffix(cmd, "?") {
			if cmd == "battery?" {
				return battery
			}
			return "unknown command: " + cmd
		}
		return "ok"
	}
}
