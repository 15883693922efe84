// tello.go

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
	"log"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	defaultTelloAddr        = "192.168.10.1"
	defaultTelloControlPort = 8889
	defaultLocalAddr        = "0.0.0.0:0"
	defaultReadTimeout      = 5 * time.Second
	defaultWriteTimeout     = 3 * time.Second
)

// Config describes where the Tello is and how long to wait for it.
// The zero value of any field means "use the default".
type Config struct {
	Addr         string        `yaml:"addr"`          // drone IP address or host name
	Port         int           `yaml:"port"`          // drone SDK command port
	LocalAddr    string        `yaml:"local_addr"`    // local bind address, port 0 picks an ephemeral port
	ReadTimeout  time.Duration `yaml:"read_timeout"`  // how long to wait for a reply
	WriteTimeout time.Duration `yaml:"write_timeout"` // how long a send may block
	Logger       *log.Logger   `yaml:"-"`             // if set, every command and reply is logged here
}

// DefaultConfig returns the settings for a Tello in its factory access-point mode.
func DefaultConfig() Config {
	return Config{
		Addr:         defaultTelloAddr,
		Port:         defaultTelloControlPort,
		LocalAddr:    defaultLocalAddr,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
	}
}

func (cfg Config) withDefaults() Config {
	def := DefaultConfig()
	if cfg.Addr == "" {
		cfg.Addr = def.Addr
	}
	if cfg.Port == 0 {
		cfg.Port = def.Port
	}
	if cfg.LocalAddr == "" {
		cfg.LocalAddr = def.LocalAddr
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = def.ReadTimeout
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = def.WriteTimeout
	}
	return cfg
}

// RemoteAddr returns the drone endpoint as host:port.
func (cfg Config) RemoteAddr() string {
	return net.JoinHostPort(cfg.Addr, strconv.Itoa(cfg.Port))
}

// Tello holds the command connection to a single Tello drone.
//
// Only one command may be outstanding at a time: the SDK protocol has no
// sequence numbers, so a reply is always taken to belong to the most recent command.
type Tello struct {
	ctrlMu       sync.Mutex // held for the whole of each command/reply round-trip
	ctrlConn     *net.UDPConn
	readTimeout  time.Duration
	writeTimeout time.Duration
	logger       *log.Logger
}

// Open binds a local UDP socket and associates it with the Tello described by cfg.
// The caller owns the returned Tello and must Close it.
func Open(cfg Config) (*Tello, error) {
	cfg = cfg.withDefaults()
	conn, err := controlConnect(cfg.LocalAddr, cfg.RemoteAddr())
	if err != nil {
		return nil, &IOError{Op: "dial", Err: err}
	}
	return &Tello{
		ctrlConn:     conn,
		readTimeout:  cfg.ReadTimeout,
		writeTimeout: cfg.WriteTimeout,
		logger:       cfg.Logger,
	}, nil
}

// OpenDefault opens a command connection to a Tello on the default network addresses.
func OpenDefault() (*Tello, error) {
	return Open(DefaultConfig())
}

// Close releases the socket.  It is safe to call more than once.
func (tello *Tello) Close() error {
	tello.ctrlMu.Lock()
	defer tello.ctrlMu.Unlock()
	if tello.ctrlConn == nil {
		return nil
	}
	err := tello.ctrlConn.Close()
	tello.ctrlConn = nil
	return err
}

// LocalAddr returns the local endpoint chosen when the socket was bound.
func (tello *Tello) LocalAddr() net.Addr {
	tello.ctrlMu.Lock()
	defer tello.ctrlMu.Unlock()
	if tello.ctrlConn == nil {
		return nil
	}
	return tello.ctrlConn.LocalAddr()
}

// Send transmits a raw SDK command and waits for the single reply datagram,
// which is returned with surrounding whitespace removed.
// Timeouts are reported as an *IOError and are never retried.
func (tello *Tello) Send(command string) (string, error) {
	if err := checkCommand(command); err != nil {
		return "", err
	}

	tello.ctrlMu.Lock()
	defer tello.ctrlMu.Unlock()

	if tello.ctrlConn == nil {
		return "", &IOError{Op: "write", Command: command, Err: net.ErrClosed}
	}
	tello.logf("-> %q", command)
	reply, err := roundTrip(tello.ctrlConn, command, tello.writeTimeout, tello.readTimeout)
	if err != nil {
		tello.logf("!! %q: %v", command, err)
		return "", err
	}
	tello.logf("<- %q", reply)
	return reply, nil
}

// expectOK sends an action command which must be answered with the acknowledgement token.
func (tello *Tello) expectOK(command string) error {
	reply, err := tello.Send(command)
	if err != nil {
		return err
	}
	if !isAck(reply) {
		return &ProtocolError{Command: command, Reply: reply}
	}
	return nil
}

func (tello *Tello) logf(format string, v ...interface{}) {
	if tello.logger != nil {
		tello.logger.Printf(format, v...)
	}
}

func checkCommand(command string) error {
	switch {
	case command == "":
		return fmt.Errorf("%w: empty command", ErrInvalidCommand)
	case strings.ContainsAny(command, "\r\n"):
		return fmt.Errorf("%w: %q contains a line terminator", ErrInvalidCommand, command)
	}
	return nil
}
