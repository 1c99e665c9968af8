// SPDX-License-Identifier: MIT
//
// Package: vitrine/cmd/vitrinectl — command tree and shared plumbing.
//
// Purpose:
//   One subcommand per tool family plus a stdio serve loop. Every
//   subcommand funnels through the same dispatch registry the serve
//   loop uses, so the CLI and the wire protocol cannot drift apart.
//
// Contract:
//   - Precedence for shared knobs: explicit flag > config file > default.
//   - Results print as JSON on stdout; logs go to stderr only.
//   - --select applies a JSONPath expression to the result before
//     printing; a non-matching expression is an error, not empty output.
//
// AI-Hints:
//   - New subcommands: build params as map[string]any and call
//     rootOptions.invoke with the wire tool name; output formatting and
//     error kinds come for free.
//   - Only pass a param when its flag was set, so registry defaults
//     stay authoritative.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vitrinelab/vitrine/tool"
)

const appName = "vitrinectl"

// rootOptions carries the global flag values and the objects derived
// from them once the command line is parsed.
type rootOptions struct {
	configPath string
	logLevel   string
	pretty     bool
	selectExpr string
	stateFile  string

	cfg      config
	log      zerolog.Logger
	registry *tool.Registry
	out      io.Writer
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Deterministic shop window display engine",
		Long: appName + ` explores a five-axis aesthetic parameter space for shop
window displays: canonical states, oscillating trajectories between
them, visual vocabulary extraction, geometric blueprints, and
image-generation prompts. All output is deterministic JSON.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.setup(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&o.configPath, "config", "c", "", "Path to a TOML config file")
	pf.StringVar(&o.logLevel, "log-level", defaultLogLevel, "Log level: trace|debug|info|warn|error")
	pf.BoolVar(&o.pretty, "pretty", false, "Indent JSON output")
	pf.StringVar(&o.selectExpr, "select", "", "JSONPath applied to the result before printing")
	pf.StringVar(&o.stateFile, "state-file", "", "YAML file of axis: value coordinates")

	cmd.AddCommand(
		newStatesCmd(o),
		newPresetsCmd(o),
		newSequenceCmd(o),
		newPresetApplyCmd(o),
		newVocabCmd(o),
		newDistanceCmd(o),
		newBlueprintCmd(o),
		newPromptCmd(o),
		newTaxonomyCmd(o),
		newToolsCmd(o),
		newInfoCmd(o),
		newServeCmd(o),
	)
	return cmd
}

// setup resolves config precedence and builds the logger and registry.
// Runs once per invocation, before any subcommand body.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg := defaultConfig()
	if o.configPath != "" {
		loaded, err := loadConfig(o.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if cmd.Flags().Changed("pretty") {
		cfg.Pretty = o.pretty
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	writer := zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.RFC3339}
	o.log = zerolog.New(writer).With().Timestamp().Str("app", appName).Logger().Level(lvl)

	o.cfg = cfg
	o.registry = tool.New(o.log)
	o.out = cmd.OutOrStdout()
	return nil
}

// invoke dispatches one registry tool and prints the unwrapped result.
// Engine faults become plain errors carrying the stable wire kind.
func (o *rootOptions) invoke(name string, params any) error {
	var raw json.RawMessage
	if params != nil {
		b, err := json.Marshal(params)
		if err != nil {
			return fmt.Errorf("encode params: %w", err)
		}
		raw = b
	}
	env := o.registry.Dispatch("", name, raw)
	if !env.OK {
		return fmt.Errorf("%s: %s", env.Error.Kind, env.Error.Message)
	}
	return o.emit(env.Result)
}
