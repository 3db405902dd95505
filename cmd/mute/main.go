// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Command mute rewrites reactive component sources into state hook calls.
//
// Usage:
//
//	mute [flags] [file...]
//
// Without files the source is read from stdin and written to stdout.
package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// keep-sorted start
const (
	configKey           = "config"
	escapeKey           = "escape"
	generatedKey        = "generated"
	hookKey             = "hook"
	ignoreDirectivesKey = "ignore-directives"
	jobsKey             = "jobs"
	lenientKey          = "lenient"
	namespaceKey        = "namespace"
	outDirKey           = "out-dir"
	packageKey          = "package"
	sigilKey            = "sigil"
	statsKey            = "stats"
	verboseKey          = "verbose"
	writeKey            = "write"
)

// keep-sorted end

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "mute",
		Usage:     "Rewrite $-prefixed component locals into state hooks",
		ArgsUsage: "[file...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  configKey,
				Usage: "Settings file, searched upward as .mute.yaml when not given",
			},
			&cli.StringFlag{
				Name:  packageKey,
				Usage: "Import source of the escape hatch",
			},
			&cli.StringFlag{
				Name:  escapeKey,
				Usage: "Exported name of the escape hatch",
			},
			&cli.StringFlag{
				Name:  namespaceKey,
				Usage: "Object the state hook is called on",
			},
			&cli.StringFlag{
				Name:  hookKey,
				Usage: "Name of the state hook",
			},
			&cli.StringFlag{
				Name:  sigilKey,
				Usage: "Prefix marking reactive variables",
			},
			&cli.BoolFlag{
				Name:  lenientKey,
				Usage: "Degrade unsupported compound assignments to an empty updater call",
			},
			&cli.BoolFlag{
				Name:  generatedKey,
				Usage: "Rewrite generated files",
			},
			&cli.BoolFlag{
				Name:  ignoreDirectivesKey,
				Usage: "Ignore //nolint:mute comments",
			},
			&cli.BoolFlag{
				Name:    writeKey,
				Aliases: []string{"w"},
				Usage:   "Write results back to the source files",
			},
			&cli.StringFlag{
				Name:    outDirKey,
				Aliases: []string{"o"},
				Usage:   "Write results into this directory",
			},
			&cli.UintFlag{
				Name:    jobsKey,
				Aliases: []string{"j"},
				Usage:   "Number of files processed in parallel, 0 for one per CPU",
			},
			&cli.BoolFlag{
				Name:  statsKey,
				Usage: "Print a table of rewrites per file",
			},
			&cli.BoolFlag{
				Name:    verboseKey,
				Aliases: []string{"v"},
				Usage:   "Log debug records to stderr",
			},
		},
		Action: compile,
	}
}
