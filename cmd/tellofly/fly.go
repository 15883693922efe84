// fly.go

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

package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/SMerrony/tellosdk"
)

func (a *app) flyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fly",
		Short: "Check the battery and fly the scripted manoeuvre (the default)",
		Args:  cobra.NoArgs,
		RunE:  a.runFly,
	}
	a.addFlightFlags(cmd)
	return cmd
}

func (a *app) runFly(cmd *cobra.Command, args []string) error {
	drone, err := tellosdk.Open(a.cfg.Drone)
	if err != nil {
		return err
	}
	defer drone.Close()

	out := cmd.OutOrStdout()
	pct, err := drone.Preflight(a.cfg.Flight.MinBattery)
	switch {
	case errors.Is(err, tellosdk.ErrBatteryLow):
		fmt.Fprintln(out, batteryLine(pct, a.cfg.Flight.MinBattery))
		fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render(
			fmt.Sprintf("Battery too low for flight (%d%%, need %d%%); aborting.", pct, a.cfg.Flight.MinBattery)))
		return nil
	case err != nil:
		return err
	}
	fmt.Fprintln(out, batteryLine(pct, a.cfg.Flight.MinBattery))

	log.Printf("starting flight, settle time %v", a.cfg.Flight.Settle)
	if err := drone.Fly(tellosdk.DefaultPlan(a.cfg.Flight.Settle)); err != nil {
		return err
	}
	fmt.Fprintln(out, okStyle.Render("Landed."))
	return nil
}
