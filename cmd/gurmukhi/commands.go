// Copyright 2026 The Gurmukhi Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/transform"

	"github.com/gurmukhi-go/gurmukhi"
	"github.com/gurmukhi-go/gurmukhi/internal/rewrite"
)

// newCommands returns the commands with fresh flag sets.
func newCommands() []*Command {
	cmds := []*Command{
		lineCommand("unicode", "convert legacy font text to Unicode", gurmukhi.ToUnicode),
		lineCommand("legacy", "convert Unicode to legacy font text", gurmukhi.ToLegacy),
		lineCommand("english", "transliterate Unicode to Latin script", gurmukhi.ToEnglish),
		lineCommand("hindi", "transliterate Unicode to Devanagari", gurmukhi.ToHindi),
		lineCommand("shahmukhi", "transliterate Unicode to Shahmukhi", gurmukhi.ToShahmukhi),
		lineCommand("syllables", "print the syllable weights of each line", gurmukhi.ToSyllabicSymbols),
		lineCommand("count", "print the syllable count of each line", func(s string) string {
			return strconv.Itoa(gurmukhi.CountSyllables(s))
		}),
		cmdDetect(),
		cmdStripVishraams(),
		lineCommand("strip-endings", "remove verse numbers and line endings", gurmukhi.StripEndings),
		lineCommand("strip-accents", "replace accented letters by their base letter", gurmukhi.StripAccents),
		lineCommand("first-letters", "print the first letter of each word", gurmukhi.FirstLetters),
		cmdHelp,
	}
	for _, c := range cmds {
		c.Flag.Init(c.Name(), c.Flag.ErrorHandling())
	}
	return cmds
}

// lineCommand returns a command that applies f to every line of its input.
func lineCommand(name, short string, f func(string) string) *Command {
	return &Command{
		UsageLine: name + " [file ...]",
		Short:     short,
		Run: func(e *env, cmd *Command, args []string) error {
			return e.convert(args, f)
		},
	}
}

func cmdDetect() *Command {
	c := &Command{
		UsageLine: "detect [-all] [file ...]",
		Short:     "report whether each line is Gurmukhi",
		Long: `
Detect prints true for every line that starts with a Gurmukhi character and
false otherwise. With -all every character of the line must be Gurmukhi,
apart from spaces, dandas and pause marks.`,
	}
	all := c.Flag.Bool("all", false, "check every character")
	c.Run = func(e *env, cmd *Command, args []string) error {
		return e.convert(args, func(s string) string {
			return strconv.FormatBool(gurmukhi.IsGurmukhiScript(s, *all))
		})
	}
	return c
}

func cmdStripVishraams() *Command {
	c := &Command{
		UsageLine: "strip-vishraams [-only list] [file ...]",
		Short:     "remove pause marks",
		Long: `
Strip-vishraams removes the pause marks of the strengths given by -only, a
comma-separated list of light, medium and heavy. Without -only it removes
the marks listed in the configuration file, or all of them.`,
	}
	only := c.Flag.String("only", "", "comma-separated pause strengths to remove")
	c.Run = func(e *env, cmd *Command, args []string) error {
		v, err := e.cfg.vishraams()
		if *only != "" {
			v, err = parseVishraams(strings.Split(*only, ","))
		}
		if err != nil {
			return err
		}
		e.log.Debug("strip vishraams", "vishraams", v)
		return e.convert(args, func(s string) string {
			return gurmukhi.StripVishraams(s, v)
		})
	}
	return c
}

var cmdHelp = &Command{
	UsageLine: "help [command]",
	Short:     "show help for a command",
	Run: func(e *env, cmd *Command, args []string) error {
		if len(args) == 0 {
			return usageTemplate.Execute(e.stdout, e.commands)
		}
		for _, c := range e.commands {
			if c.Name() == args[0] {
				c.Usage(e.stdout)
				return nil
			}
		}
		return fmt.Errorf("unknown command %q", args[0])
	},
}

// convert applies f to every line of the named files, or of standard input
// if there are none, and writes the results in argument order. Files are
// read and converted concurrently.
func (e *env) convert(files []string, f func(string) string) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	results := make([][]byte, len(files))

	g, ctx := errgroup.WithContext(e.ctx)
	g.SetLimit(e.cfg.Workers)
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := e.read(name)
			if err != nil {
				return err
			}
			out, err := e.apply(data, f)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			e.log.Info("converted", "file", name, "in", len(data), "out", len(out))
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, out := range results {
		if len(out) > 0 && out[len(out)-1] != '\n' {
			out = append(out, '\n')
		}
		if _, err := e.stdout.Write(out); err != nil {
			return err
		}
	}
	return nil
}

func (e *env) read(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(e.stdin)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return data, nil
}

// apply decodes data from the configured character set and converts it
// line by line.
func (e *env) apply(data []byte, f func(string) string) ([]byte, error) {
	dec, err := e.cfg.decoder()
	if err != nil {
		return nil, err
	}
	if dec != nil {
		if data, _, err = transform.Bytes(dec, data); err != nil {
			return nil, fmt.Errorf("decode %s: %w", e.cfg.InputCharset, err)
		}
	}
	out, _, err := transform.Bytes(rewrite.Lines(f), data)
	return out, err
}
