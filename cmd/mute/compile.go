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

package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/mute/internal/report"
	"fillmore-labs.com/mute/settings"
	"fillmore-labs.com/mute/transform"
)

var (
	// ErrUsage is returned for contradicting or incomplete flags.
	ErrUsage = errors.New("usage error")

	// ErrFailed is returned when at least one file could not be rewritten.
	ErrFailed = errors.New("rewrite failed")
)

// status is the fate of a single file.
type status uint8

const (
	statusStdout status = iota
	statusWritten
	statusUnchanged
	statusSkipped
	statusFailed
)

func (s status) String() string {
	switch s {
	case statusStdout:
		return "stdout"

	case statusWritten:
		return "written"

	case statusUnchanged:
		return "unchanged"

	case statusSkipped:
		return "skipped"

	default:
		return "failed"
	}
}

// job is a file to rewrite. An empty name reads stdin, an empty dest writes stdout.
type job struct {
	name, dest string
}

type outcome struct {
	job
	size   int
	stats  transform.Stats
	status status
}

func compile(ctx context.Context, cmd *cli.Command) error {
	stderr := cmp.Or[io.Writer](cmd.ErrWriter, os.Stderr)
	logger := newLogger(stderr, cmd.Bool(verboseKey))

	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "configured", opts.LogAttr())

	jobs, err := plan(cmd.Args().Slice(), cmd.Bool(writeKey), cmd.String(outDirKey))
	if err != nil {
		return err
	}

	c := &compiler{
		transformer: transform.New(opts, transform.WithLogger(logger)),
		stdin:       cmp.Or[io.Reader](cmd.Reader, os.Stdin),
		stdout:      cmp.Or[io.Writer](cmd.Writer, os.Stdout),
		printer:     newPrinter(stderr),
	}

	limit := int(cmd.Uint(jobsKey))
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	outcomes, err := c.run(ctx, jobs, limit)

	if cmd.Bool(statsKey) {
		renderStats(stderr, outcomes)
	}

	return err
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newPrinter(w io.Writer) report.Printer {
	if f, ok := w.(*os.File); ok {
		return report.NewPrinter(f)
	}

	return report.Printer{W: w}
}

// loadOptions merges the settings file and the explicitly set flags, flags last.
func loadOptions(cmd *cli.Command) (transform.Options, error) {
	var opts transform.Options

	path := cmd.String(configKey)
	if path == "" {
		found, err := settings.Find(".")
		switch {
		case err == nil:
			path = found

		case !errors.Is(err, settings.ErrNotFound):
			return nil, err
		}
	}

	if path != "" {
		s, err := settings.Load(path)
		if err != nil {
			return nil, err
		}

		opts = append(opts, s.Options()...)
	}

	for _, f := range [...]struct {
		key    string
		option func(string) transform.Option
	}{
		{packageKey, transform.WithMarkerPackage},
		{escapeKey, transform.WithEscapeHatch},
		{namespaceKey, transform.WithHookNamespace},
		{hookKey, transform.WithHookName},
		{sigilKey, transform.WithSigil},
	} {
		if cmd.IsSet(f.key) {
			opts = append(opts, f.option(cmd.String(f.key)))
		}
	}

	for _, f := range [...]struct {
		key    string
		option func(bool) transform.Option
	}{
		{lenientKey, transform.WithLenient},
		{generatedKey, transform.WithGenerated},
		{ignoreDirectivesKey, func(ignore bool) transform.Option { return transform.WithDirectives(!ignore) }},
	} {
		if cmd.IsSet(f.key) {
			opts = append(opts, f.option(cmd.Bool(f.key)))
		}
	}

	return opts, nil
}

// plan decides where each input goes.
func plan(args []string, write bool, outDir string) ([]job, error) {
	switch {
	case write && outDir != "":
		return nil, fmt.Errorf("%w: --%s and --%s are mutually exclusive", ErrUsage, writeKey, outDirKey)

	case len(args) == 0 && (write || outDir != ""):
		return nil, fmt.Errorf("%w: reading stdin needs no --%s or --%s", ErrUsage, writeKey, outDirKey)

	case len(args) == 0:
		return []job{{}}, nil

	case len(args) > 1 && !write && outDir == "":
		return nil, fmt.Errorf("%w: multiple files need --%s or --%s", ErrUsage, writeKey, outDirKey)
	}

	jobs := make([]job, 0, len(args))

	for _, name := range args {
		j := job{name: name}

		switch {
		case write:
			j.dest = name

		case outDir != "":
			j.dest = destination(outDir, name)
		}

		jobs = append(jobs, j)
	}

	return jobs, nil
}

// destination keeps relative paths below outDir and flattens others.
func destination(outDir, name string) string {
	if filepath.IsLocal(name) {
		return filepath.Join(outDir, name)
	}

	return filepath.Join(outDir, filepath.Base(name))
}

type compiler struct {
	transformer *transform.Transformer
	stdin       io.Reader
	stdout      io.Writer

	mu      sync.Mutex // guards printer
	printer report.Printer
}

func (c *compiler) run(ctx context.Context, jobs []job, limit int) ([]outcome, error) {
	outcomes := make([]outcome, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, j := range jobs {
		g.Go(func() error {
			o, err := c.compile(ctx, j)
			outcomes[i] = o

			return err
		})
	}

	if err := g.Wait(); err != nil {
		return outcomes, err
	}

	failed := 0

	for _, o := range outcomes {
		if o.status == statusFailed {
			failed++
		}
	}

	if failed > 0 {
		return outcomes, fmt.Errorf("%w: %d of %d files", ErrFailed, failed, len(outcomes))
	}

	return outcomes, nil
}

// compile rewrites a single job. The returned error aborts the whole run.
func (c *compiler) compile(ctx context.Context, j job) (outcome, error) {
	o := outcome{job: j, status: statusFailed}

	src, err := c.read(j.name)
	if err != nil {
		return o, err
	}

	res, err := c.transformer.Transform(ctx, j.name, src)
	if errors.Is(err, transform.ErrInvalidConvention) {
		return o, err
	}

	c.report(res.Diagnostics, err)

	if err != nil {
		return o, nil
	}

	o.size, o.stats = len(res.Code), res.Stats

	o.status, err = c.write(j.dest, res.Code)
	if err != nil {
		return o, err
	}

	if res.Skipped && o.status != statusStdout {
		o.status = statusSkipped
	}

	return o, nil
}

func (c *compiler) read(name string) ([]byte, error) {
	if name == "" {
		return io.ReadAll(c.stdin)
	}

	return os.ReadFile(name)
}

// write stores code at dest unless it already holds the same content.
func (c *compiler) write(dest string, code []byte) (status, error) {
	if dest == "" {
		_, err := c.stdout.Write(code)

		return statusStdout, err
	}

	perm := fs.FileMode(0o644)

	switch info, err := os.Stat(dest); {
	case err == nil:
		same, err := sameContent(dest, code)
		if err != nil {
			return statusFailed, err
		}

		if same {
			return statusUnchanged, nil
		}

		perm = info.Mode().Perm()

	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return statusFailed, err
		}

	default:
		return statusFailed, err
	}

	if err := os.WriteFile(dest, code, perm); err != nil {
		return statusFailed, err
	}

	return statusWritten, nil
}

// sameContent compares the xxhash digest of the file at path with the one of code.
func sameContent(path string, code []byte) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	d := xxhash.New()
	if _, err := io.Copy(d, f); err != nil {
		return false, err
	}

	return d.Sum64() == xxhash.Sum64(code), nil
}

func (c *compiler) report(diags transform.Diagnostics, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if perr := c.printer.Print(diags); perr != nil {
		return
	}

	if err != nil && len(diags) == 0 {
		_, _ = fmt.Fprintln(c.printer.W, err)
	}
}
