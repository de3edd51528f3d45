// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Program jpull checks, queries, and summarizes streams of JSON values.
//
// Usage:
//
//	jpull [options] check [FILE...]
//	jpull [options] select EXPR [FILE...]
//	jpull [options] stats [FILE...]
//
// If no files are named, or a file is named "-", standard input is read.
package main

import (
	"io"
	"os"

	"github.com/creachadair/jpull"
	"github.com/creachadair/jpull/source"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jessevdk/go-flags"
)

// options are the global flags shared by all subcommands.
type options struct {
	Encoding string `long:"encoding" default:"auto" choice:"auto" choice:"utf8" choice:"utf16le" choice:"utf16be" description:"Input text encoding"`
	JWCC     bool   `long:"jwcc" description:"Accept comments and trailing commas"`
	MaxDepth int    `long:"max-depth" default:"10000" description:"Maximum container nesting depth (0 means no limit)"`
	Verbose  bool   `short:"v" long:"verbose" description:"Enable debug logging"`
}

// tool carries the settings and I/O streams of a single invocation.
type tool struct {
	opts options
	in   io.Reader
	out  io.Writer
	logw io.Writer
	log  log.Logger
}

func main() {
	t := &tool{in: os.Stdin, out: os.Stdout, logw: os.Stderr}
	if _, err := newParser(t, flags.Default).Parse(); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(1)
	}
}

func newParser(t *tool, opts flags.Options) *flags.Parser {
	p := flags.NewNamedParser("jpull", opts)
	if _, err := p.AddGroup("Global Options", "", &t.opts); err != nil {
		panic(err)
	}
	for _, c := range []struct {
		name, short, long string
		cmd               any
	}{
		{"check", "validate JSON input",
			"Check that each input holds a whitespace-separated stream of valid JSON values.",
			&checkCmd{t: t}},
		{"select", "print values matching a JSONPath expression",
			"Print the path and value of each match of EXPR in the input, one per line.",
			&selectCmd{t: t}},
		{"stats", "summarize JSON input",
			"Count the values of each type in each input, and report the maximum nesting depth.",
			&statsCmd{t: t}},
	} {
		if _, err := p.AddCommand(c.name, c.short, c.long, c.cmd); err != nil {
			panic(err)
		}
	}
	p.CommandHandler = func(cmd flags.Commander, args []string) error {
		t.log = t.newLogger()
		if cmd == nil {
			return nil
		}
		return cmd.Execute(args)
	}
	return p
}

func (t *tool) newLogger() log.Logger {
	lg := log.NewLogfmtLogger(log.NewSyncWriter(t.logw))
	lg = log.With(lg, "ts", log.DefaultTimestampUTC)
	allow := level.AllowInfo()
	if t.opts.Verbose {
		allow = level.AllowDebug()
	}
	return level.NewFilter(lg, allow)
}

// eachInput calls f with a parser for each named input in turn, or for
// standard input if names is empty. It stops at the first error from f.
func (t *tool) eachInput(names []string, f func(name string, p *jpull.Parser) error) error {
	if len(names) == 0 {
		names = []string{"-"}
	}
	for _, name := range names {
		if err := t.withInput(name, f); err != nil {
			return err
		}
	}
	return nil
}

func (t *tool) withInput(name string, f func(string, *jpull.Parser) error) error {
	r := io.NopCloser(t.in)
	if name != "-" {
		fp, err := os.Open(name)
		if err != nil {
			return err
		}
		r = fp
	}
	defer r.Close()

	rr, err := source.Encoding(r, t.opts.Encoding)
	if err != nil {
		return err
	}
	if t.opts.JWCC {
		rr, err = source.Standardize(rr)
		if err != nil {
			return err
		}
	}
	p := jpull.NewFromRunes(rr)
	p.SetMaxDepth(t.opts.MaxDepth)
	level.Debug(t.log).Log("msg", "reading input", "file", name,
		"encoding", t.opts.Encoding, "jwcc", t.opts.JWCC)
	return f(name, p)
}
