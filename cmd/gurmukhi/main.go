// Copyright 2026 The Gurmukhi Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Gurmukhi converts Gurmukhi text between the legacy font encoding and
// Unicode, transliterates it, and analyses it.
//
// Usage:
//
//	gurmukhi [flags] <command> [arguments]
//
// Each command reads the named files, or standard input if there are none,
// converts them line by line and writes the result to standard output in the
// order the files were given. Run "gurmukhi help" for the list of commands.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/template"

	"github.com/gurmukhi-go/gurmukhi"
)

// A Command is an implementation of a gurmukhi command.
type Command struct {
	// Run runs the command.
	// The args are the arguments after the command name.
	Run func(e *env, cmd *Command, args []string) error

	// UsageLine is the one-line usage message.
	// The first word in the line is taken to be the command name.
	UsageLine string

	// Short is the short description shown in the 'gurmukhi help' output.
	Short string

	// Long is the long message shown in the 'gurmukhi help <command>' output.
	Long string

	// Flag is a set of flags specific to this command.
	Flag flag.FlagSet
}

// Name returns the command's name: the first word in the usage line.
func (c *Command) Name() string {
	name := c.UsageLine
	if i := strings.Index(name, " "); i >= 0 {
		name = name[:i]
	}
	return name
}

// Usage writes the usage of c to w.
func (c *Command) Usage(w io.Writer) {
	fmt.Fprintf(w, "usage: gurmukhi %s\n", c.UsageLine)
	if c.Long != "" {
		fmt.Fprintf(w, "\n%s\n", strings.TrimSpace(c.Long))
	}
	c.Flag.SetOutput(w)
	c.Flag.PrintDefaults()
}

// env is the state shared by all commands of one invocation.
type env struct {
	ctx    context.Context
	cfg    *Config
	log    *slog.Logger
	stdin  io.Reader
	stdout io.Writer

	commands []*Command
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line args and returns the exit status: 0 on
// success, 1 if the command failed and 2 for usage errors.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	commands := newCommands()

	fs := flag.NewFlagSet("gurmukhi", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr, fs, commands) }
	configFile := fs.String("config", "", "read settings from the YAML `file`")
	verbose := fs.Bool("v", false, "log every rewrite rule applied")
	workers := fs.Int("workers", 0, "convert up to `n` files at the same time")
	charset := fs.String("charset", "", "input character set: utf-8 or windows-1252")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg := Default()
	if *configFile != "" {
		var err error
		if cfg, err = Load(*configFile); err != nil {
			fmt.Fprintf(stderr, "gurmukhi: %v\n", err)
			return 1
		}
	}
	if *verbose {
		cfg.LogLevel = LogDebug
	}
	if *workers != 0 {
		cfg.Workers = *workers
	}
	if *charset != "" {
		cfg.InputCharset = *charset
	}
	if err := Validate(cfg); err != nil {
		fmt.Fprintf(stderr, "gurmukhi: %v\n", err)
		return 2
	}

	logger := newLogger(cfg.LogLevel, stderr)
	if cfg.LogLevel == LogDebug {
		gurmukhi.SetLogger(logger)
		defer gurmukhi.SetLogger(nil)
	}

	args = fs.Args()
	if len(args) < 1 {
		usage(stderr, fs, commands)
		return 2
	}
	var cmd *Command
	for _, c := range commands {
		if c.Name() == args[0] {
			cmd = c
			break
		}
	}
	if cmd == nil {
		fmt.Fprintf(stderr, "gurmukhi: unknown command %q\nRun 'gurmukhi help' for usage.\n", args[0])
		return 2
	}

	cmd.Flag.Usage = func() { cmd.Usage(stderr) }
	cmd.Flag.SetOutput(stderr)
	if err := cmd.Flag.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	e := &env{
		ctx:      ctx,
		cfg:      cfg,
		log:      logger,
		stdin:    stdin,
		stdout:   stdout,
		commands: commands,
	}
	if err := cmd.Run(e, cmd, cmd.Flag.Args()); err != nil {
		fmt.Fprintf(stderr, "gurmukhi %s: %v\n", cmd.Name(), err)
		return 1
	}
	return 0
}

func newLogger(level LogLevel, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch level {
	case LogDebug:
		lvl = slog.LevelDebug
	case LogWarn:
		lvl = slog.LevelWarn
	case LogError:
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

var usageTemplate = template.Must(template.New("usage").Parse(`Gurmukhi converts and analyses Gurmukhi text.

Usage:

	gurmukhi [flags] <command> [arguments]

The commands are:
{{range .}}
	{{.Name | printf "%-16s"}} {{.Short}}{{end}}

Use "gurmukhi help <command>" for more information about a command.

The flags are:
`))

func usage(w io.Writer, fs *flag.FlagSet, commands []*Command) {
	usageTemplate.Execute(w, commands)
	fs.SetOutput(w)
	fs.PrintDefaults()
}
