// tello_test.go

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
	"net"
	"testing"
	"time"

	"github.com/SMerrony/tellosdk/internal/simdrone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// use go test -count=1 to bypass test caching

const testTimeout = 300 * time.Millisecond

func testConfig(sim *simdrone.Drone) Config {
	return Config{
		Addr:         sim.Host(),
		Port:         sim.Port(),
		LocalAddr:    "127.0.0.1:0",
		ReadTimeout:  testTimeout,
		WriteTimeout: testTimeout,
	}
}

// connect starts a simulated drone with handler h and opens a Tello on it.
func connect(t *testing.T, h simdrone.Handler) (*Tello, *simdrone.Drone) {
	t.Helper()
	sim, err := simdrone.Start(h)
	require.NoError(t, err)
	t.Cleanup(func() { sim.Close() })

	drone, err := Open(testConfig(sim))
	require.NoError(t, err)
	t.Cleanup(func() { drone.Close() })
	return drone, sim
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "192.168.10.1:8889", cfg.RemoteAddr())
	assert.Equal(t, "0.0.0.0:0", cfg.LocalAddr)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 3*time.Second, cfg.WriteTimeout)
}

func TestZeroConfigGetsDefaults(t *testing.T) {
	cfg := Config{Port: 9000}.withDefaults()
	assert.Equal(t, "192.168.10.1", cfg.Addr)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 3*time.Second, cfg.WriteTimeout)
}

func TestOpenBindsEphemeralPort(t *testing.T) {
	drone, _ := connect(t, simdrone.Obedient("50"))
	addr, ok := drone.LocalAddr().(*net.UDPAddr)
	require.True(t, ok)
	assert.NotZero(t, addr.Port)
}

func TestOpenBadAddress(t *testing.T) {
	_, err := Open(Config{Addr: "no.such.host.invalid", Port: 8889})
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "dial", ioErr.Op)
}

func TestSendTrimsReply(t *testing.T) {
	drone, sim := connect(t, simdrone.Script("  hello there \r\n"))
	reply, err := drone.Send("speed?")
	require.NoError(t, err)
	assert.Equal(t, "hello there", reply)
	assert.Equal(t, []string{"speed?"}, sim.Commands())
}

func TestSendReplacesInvalidUTF8(t *testing.T) {
	drone, _ := connect(t, simdrone.Script("ok\xff"))
	reply, err := drone.Send("command")
	require.NoError(t, err)
	assert.Equal(t, "ok�", reply)
}

func TestSendRefusesBadCommands(t *testing.T) {
	drone, sim := connect(t, simdrone.Obedient("50"))
	for _, cmd := range []string{"", "takeoff\n", "land\r\n", "cw\n90"} {
		_, err := drone.Send(cmd)
		assert.ErrorIs(t, err, ErrInvalidCommand, "command %q", cmd)
	}
	assert.Empty(t, sim.Commands(), "nothing should reach the drone")
}

func TestSendTimeoutThenRecovers(t *testing.T) {
	drone, sim := connect(t, simdrone.Script(simdrone.NoReply, "ok"))

	start := time.Now()
	_, err := drone.Send("command")
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "read", ioErr.Op)
	assert.Equal(t, "command", ioErr.Command)
	assert.True(t, ioErr.Timeout())
	assert.GreaterOrEqual(t, time.Since(start), testTimeout)

	// the channel is idle again and usable
	require.NoError(t, drone.EnterCommandMode())
	assert.Equal(t, []string{"command", "command"}, sim.Commands())
}

func TestSendPeerGone(t *testing.T) {
	sim, err := simdrone.Start(simdrone.Obedient("50"))
	require.NoError(t, err)
	drone, err := Open(testConfig(sim))
	require.NoError(t, err)
	defer drone.Close()
	require.NoError(t, sim.Close())

	_, err = drone.Send("command")
	var ioErr *IOError
	assert.ErrorAs(t, err, &ioErr)
}

func TestClose(t *testing.T) {
	drone, _ := connect(t, simdrone.Obedient("50"))
	require.NoError(t, drone.Close())
	require.NoError(t, drone.Close(), "second Close is a no-op")
	assert.Nil(t, drone.LocalAddr())

	_, err := drone.Send("command")
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.True(t, errors.Is(err, net.ErrClosed))
}

func TestExpectOK(t *testing.T) {
	for _, reply := range []string{"ok", "OK", "Ok", "oK", "  ok\n", "\tOK "} {
		drone, _ := connect(t, simdrone.Script(reply))
		assert.NoError(t, drone.TakeOff(), "reply %q", reply)
	}
}

func TestExpectOKRejected(t *testing.T) {
	for _, reply := range []string{"error", "error Not joystick", "okay", "o k", "", "out of range"} {
		drone, _ := connect(t, simdrone.Script(reply))
		err := drone.Land()
		var pErr *ProtocolError
		require.ErrorAs(t, err, &pErr, "reply %q", reply)
		assert.Equal(t, "land", pErr.Command)
		assert.Equal(t, reply, pErr.Reply)
		assert.Contains(t, err.Error(), `"land"`)
		assert.Contains(t, err.Error(), `"`+reply+`"`)
	}
}

func TestBattery(t *testing.T) {
	for _, tc := range []struct {
		reply string
		want  uint8
	}{
		{"0", 0}, {"7", 7}, {"15", 15}, {"86", 86}, {"100", 100}, {" 42\r\n", 42},
	} {
		drone, _ := connect(t, simdrone.Script(tc.reply))
		pct, err := drone.Battery()
		require.NoError(t, err, "reply %q", tc.reply)
		assert.Equal(t, tc.want, pct)
	}
}

func TestBatteryBadReplies(t *testing.T) {
	for _, reply := range []string{"101", "-1", "abc", "", "256", "12.5", "error"} {
		drone, _ := connect(t, simdrone.Script(reply))
		_, err := drone.Battery()
		var pErr *ProtocolError
		require.ErrorAs(t, err, &pErr, "reply %q", reply)
		assert.Equal(t, "battery?", pErr.Command)
		assert.Equal(t, reply, pErr.Reply)
		assert.Error(t, pErr.Err, "parse reason should be kept")
		assert.Contains(t, err.Error(), `"`+reply+`"`)
	}
}

func TestBatteryTwice(t *testing.T) {
	drone, _ := connect(t, simdrone.Script("50", "49"))
	pct, err := drone.Battery()
	require.NoError(t, err)
	assert.EqualValues(t, 50, pct)
	pct, err = drone.Battery()
	require.NoError(t, err)
	assert.EqualValues(t, 49, pct)
}

func TestCommandFormatting(t *testing.T) {
	drone, sim := connect(t, simdrone.Obedient("50"))
	require.NoError(t, drone.EnterCommandMode())
	require.NoError(t, drone.Clockwise(90))
	require.NoError(t, drone.Backward(100))
	require.NoError(t, drone.Right(100))
	require.NoError(t, drone.Anticlockwise(0))
	require.NoError(t, drone.Forward(20))
	require.NoError(t, drone.Left(35))
	require.NoError(t, drone.Up(500))
	require.NoError(t, drone.Down(65535))
	require.NoError(t, drone.TurnRight(1))
	require.NoError(t, drone.TurnLeft(360))
	assert.Equal(t, []string{
		"command", "cw 90", "back 100", "right 100", "ccw 0", "forward 20",
		"left 35", "up 500", "down 65535", "cw 1", "ccw 360",
	}, sim.Commands())
}
