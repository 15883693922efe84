// battery.go

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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SMerrony/tellosdk"
)

func (a *app) batteryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "battery",
		Short: "Show the battery charge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			drone, err := tellosdk.Open(a.cfg.Drone)
			if err != nil {
				return err
			}
			defer drone.Close()

			if err := drone.EnterCommandMode(); err != nil {
				return err
			}
			pct, err := drone.Battery()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), batteryLine(pct, a.cfg.Flight.MinBattery))
			return nil
		},
	}
}
