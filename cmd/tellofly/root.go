// root.go

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
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/SMerrony/tellosdk/internal/config"
)

// app holds the flag values and the state shared by all commands.
type app struct {
	// Global flags
	cfgFile      string
	addr         string
	port         int
	readTimeout  time.Duration
	writeTimeout time.Duration
	logFile      string
	verbose      bool

	// Flight flags
	minBattery uint8
	settle     time.Duration

	// Set during PersistentPreRun
	cfg       *config.Config
	logCloser io.Closer
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tellofly",
		Short: "Fly a Tello drone through a short scripted manoeuvre",
		Long: `tellofly talks to a Tello over its SDK command port.  Run without a
sub-command it enters SDK mode, checks the battery and, if there is enough
charge, takes off, turns 90 degrees clockwise, moves back and right 1m and lands.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setup,
		RunE:              a.runFly,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is ~/.tello/config.yaml)")
	pf.StringVar(&a.addr, "addr", "", "drone IP address (default \"192.168.10.1\")")
	pf.IntVar(&a.port, "port", 0, "drone SDK command port (default 8889)")
	pf.DurationVar(&a.readTimeout, "read-timeout", 0, "how long to wait for each reply (default 5s)")
	pf.DurationVar(&a.writeTimeout, "write-timeout", 0, "how long a send may block (default 3s)")
	pf.StringVar(&a.logFile, "log-file", "", "write the log to this file, rotating it when large")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log every command and reply")
	a.addFlightFlags(root)

	root.AddCommand(a.flyCmd(), a.batteryCmd(), a.sendCmd(), versionCmd())
	return root
}

func (a *app) addFlightFlags(cmd *cobra.Command) {
	cmd.Flags().Uint8Var(&a.minBattery, "min-battery", 0, "refuse to take off below this battery percentage (default 15)")
	cmd.Flags().DurationVar(&a.settle, "settle", 0, "pause after takeoff (default 2s)")
}

// setup loads the configuration, applies flag overrides and sets up logging.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	path := a.cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Drone.Addr = a.addr
	}
	if flags.Changed("port") {
		cfg.Drone.Port = a.port
	}
	if flags.Changed("read-timeout") {
		cfg.Drone.ReadTimeout = a.readTimeout
	}
	if flags.Changed("write-timeout") {
		cfg.Drone.WriteTimeout = a.writeTimeout
	}
	if flags.Changed("min-battery") {
		cfg.Flight.MinBattery = a.minBattery
	}
	if flags.Changed("settle") {
		cfg.Flight.Settle = a.settle
	}
	if flags.Changed("log-file") {
		cfg.Log.File = a.logFile
	}
	if flags.Changed("verbose") {
		cfg.Log.Verbose = a.verbose
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if cfg.Log.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAgeDays,
		}
		log.SetOutput(lj)
		a.logCloser = lj
	}
	if cfg.Log.Verbose {
		cfg.Drone.Logger = log.Default()
	}
	log.Printf("using drone at %s", cfg.Drone.RemoteAddr())

	a.cfg = cfg
	return nil
}

// closeLog flushes and closes any log file, returning the log to stderr.
func (a *app) closeLog() {
	if a.logCloser == nil {
		return
	}
	log.SetOutput(os.Stderr)
	a.logCloser.Close()
	a.logCloser = nil
}
