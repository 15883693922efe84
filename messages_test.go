// tellosdk project messages_test.go

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
	"strconv"
	"testing"
)

func TestWithArg(t *testing.T) {
	cases := map[string]string{
		withArg(cmdCw, 90):     "cw 90",
		withArg(cmdBack, 100):  "back 100",
		withArg(cmdRight, 100): "right 100",
		withArg(cmdUp, 0):      "up 0",
	}
	for got, want := range cases {
		if got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}
}

func TestIsAck(t *testing.T) {
	for _, r := range []string{"ok", "OK", "Ok", "oK"} {
		if !isAck(r) {
			t.Errorf("%q should be an acknowledgement", r)
		}
	}
	for _, r := range []string{"", "o", "okay", "error", " ok"} {
		if isAck(r) {
			t.Errorf("%q should not be an acknowledgement", r)
		}
	}
}

func TestParsePercentage(t *testing.T) {
	for i := 0; i <= 100; i++ {
		p, err := parsePercentage(strconv.Itoa(i))
		if err != nil || int(p) != i {
			t.Errorf("Expected %d, got %d (%v)", i, p, err)
		}
	}
	_, err := parsePercentage("101")
	if !errors.Is(err, strconv.ErrRange) {
		t.Errorf("Expected range error for 101, got %v", err)
	}
	_, err = parsePercentage("-1")
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Errorf("Expected syntax error for -1, got %v", err)
	}
}

func TestDecodeReply(t *testing.T) {
	if r := decodeReply([]byte(" ok\r\n")); r != "ok" {
		t.Errorf("Expected ok, got %q", r)
	}
	if r := decodeReply([]byte{'8', 0xc3, '6'}); r != "8�6" {
		t.Errorf("Expected replacement char, got %q", r)
	}
}
