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

package transform

import (
	"log/slog"

	"fillmore-labs.com/mute/internal/config"
	"fillmore-labs.com/mute/internal/run"
)

// Option configures specific behavior of a [New] transformer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithSigil is an [Option] to configure the prefix marking reactive variables.
func WithSigil(sigil string) Option { return sigilOption{sigil: sigil} }

type sigilOption struct{ sigil string }

func (o sigilOption) apply(r *run.Options) {
	r.Conventions.Sigil = o.sigil
}

func (o sigilOption) LogAttr() slog.Attr {
	return slog.String("sigil", o.sigil)
}

// WithMarkerPackage is an [Option] to configure the import source of the escape hatch.
func WithMarkerPackage(pkg string) Option { return markerPackageOption{pkg: pkg} }

type markerPackageOption struct{ pkg string }

func (o markerPackageOption) apply(r *run.Options) {
	r.Conventions.MarkerPackage = o.pkg
}

func (o markerPackageOption) LogAttr() slog.Attr {
	return slog.String("marker-package", o.pkg)
}

// WithEscapeHatch is an [Option] to configure the exported name of the escape hatch.
func WithEscapeHatch(name string) Option { return escapeHatchOption{name: name} }

type escapeHatchOption struct{ name string }

func (o escapeHatchOption) apply(r *run.Options) {
	r.Conventions.EscapeHatch = o.name
}

func (o escapeHatchOption) LogAttr() slog.Attr {
	return slog.String("escape-hatch", o.name)
}

// WithHookNamespace is an [Option] to configure the object the state hook is called on.
func WithHookNamespace(namespace string) Option { return hookNamespaceOption{namespace: namespace} }

type hookNamespaceOption struct{ namespace string }

func (o hookNamespaceOption) apply(r *run.Options) {
	r.Conventions.HookNamespace = o.namespace
}

func (o hookNamespaceOption) LogAttr() slog.Attr {
	return slog.String("hook-namespace", o.namespace)
}

// WithHookName is an [Option] to configure the name of the state hook.
func WithHookName(name string) Option { return hookNameOption{name: name} }

type hookNameOption struct{ name string }

func (o hookNameOption) apply(r *run.Options) {
	r.Conventions.HookName = o.name
}

func (o hookNameOption) LogAttr() slog.Attr {
	return slog.String("hook-name", o.name)
}

// WithLenient is an [Option] to degrade unsupported compound assignments to an empty updater call.
func WithLenient(lenient bool) Option { return lenientOption{lenient: lenient} }

type lenientOption struct{ lenient bool }

func (o lenientOption) apply(r *run.Options) {
	r.Behavior.Set(config.Lenient, o.lenient)
}

func (o lenientOption) LogAttr() slog.Attr {
	return slog.Bool("lenient", o.lenient)
}

// WithGenerated is an [Option] to configure rewriting of generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithDirectives is an [Option] to configure whether //nolint:mute comments are honored.
func WithDirectives(directives bool) Option { return directivesOption{directives: directives} }

type directivesOption struct{ directives bool }

func (o directivesOption) apply(r *run.Options) {
	r.Behavior.Set(config.IgnoreDirectives, !o.directives)
}

func (o directivesOption) LogAttr() slog.Attr {
	return slog.Bool("directives", o.directives)
}

// WithLogger is an [Option] to receive per-file debug records.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *run.Options) {
	r.Logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
