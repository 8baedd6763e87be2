// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gcontainer builds the generic containers from integers given on the
// command line and reports on them.
//
//  gcontainer avl --search 4 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16
//  gcontainer bst --search 4 --search 99 12 1 6 4 3 6 14
//  gcontainer queue 1 2 3
//  gcontainer stack 1 2 3
//  gcontainer sort 5 3 9 1
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/spf13/cobra"
)

type driver struct {
	out io.Writer

	// managed is set when the driver owns the logger lifetime.
	managed     bool
	initialised bool

	configPath string
	limit      int
	verbose    bool
	conf       *Config
	log        *logger.L
}

func (d *driver) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "gcontainer",
		Short:         "Exercise the generic containers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := LoadConfig(d.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("limit") {
				if d.limit < 0 {
					return fmt.Errorf("negative limit %d", d.limit)
				}
				conf.Limit = d.limit
			}
			if d.verbose {
				conf.Logging.Console = true
				conf.Logging.Levels[logger.DefaultTag] = "debug"
			}
			d.conf = conf
			if d.managed {
				err = logger.Initialise(conf.Logging.configuration())
				if err != nil {
					return fmt.Errorf("failed to initialise logging: %w", err)
				}
				d.initialised = true
			}
			d.log = logger.New(cmd.Name())
			d.log.Debugf("config: %+v", *conf)
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&d.configPath, "config", "c", "", "YAML configuration `FILE`")
	root.PersistentFlags().IntVarP(&d.limit, "limit", "l", 0, "maximum live allocations per container, 0 for no limit")
	root.PersistentFlags().BoolVarP(&d.verbose, "verbose", "v", false, "log debug messages to the console")

	root.AddCommand(
		d.treeCommand("avl", "Build an AVL tree", true),
		d.treeCommand("bst", "Build an unbalanced binary search tree", false),
		&cobra.Command{
			Use:   "queue [ints...]",
			Short: "Push integers through a FIFO queue",
			RunE:  d.runQueue,
		},
		&cobra.Command{
			Use:   "stack [ints...]",
			Short: "Push integers through a LIFO stack",
			RunE:  d.runStack,
		},
		&cobra.Command{
			Use:   "sort [ints...]",
			Short: "Merge sort integers",
			RunE:  d.runSort,
		},
	)
	return root
}

// finalise flushes and closes the log if the driver opened it.
func (d *driver) finalise() {
	if d.initialised {
		logger.Finalise()
		d.initialised = false
	}
}

func main() {
	d := &driver{out: os.Stdout, managed: true}
	err := d.rootCommand().Execute()
	d.finalise()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gcontainer: %v\n", err)
		os.Exit(1)
	}
}
