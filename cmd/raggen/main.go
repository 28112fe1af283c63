/*
Command raggen generates a random nested columnar array and prints it.

Usage:

	raggen [-seed n] [-config file.yaml] [-format console|dot|html|yaml] [-virtual] [-trace]

The same seed and configuration always produce the same array.
With -virtual, the array is generated as a projection with lazy buffers;
printing it materializes the lazy buffers, which is reported on the trace.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/ragged"
	"github.com/npillmayer/ragged/content"
	"github.com/npillmayer/ragged/formatter"
	"github.com/npillmayer/ragged/sampler"
	"github.com/npillmayer/ragged/virtual"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

// Options holds the command line options of raggen.
type Options struct {
	Command *cli.Command
	Seed    int    `cli:"name=seed desc='random seed, 0 selects a time-based seed'"`
	Config  string `cli:"name=config desc='YAML file with generator options'"`
	Format  string `cli:"name=format desc='output format: console, dot, html or yaml' default=console"`
	Virtual bool   `cli:"name=virtual desc='generate a projection with lazy buffers'"`
	Trace   bool   `cli:"name=trace desc='trace generator decisions'"`
}

// MainCommand returns the raggen command.
func MainCommand() *cli.Command {
	opts := &Options{}
	sOpts, err := cli.StructOpts(opts)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&opts.Command, "raggen").
		WithSynopsis("raggen [-seed n] [-config file] [-format console|dot|html|yaml] [-virtual] [-trace]").
		WithDescription("generate a random nested columnar array and print it").
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			if _, err := opts.Command.Parse(cc, args); err != nil {
				return err
			}
			setupTracing(opts.Trace)
			return run(cc.Out, opts)
		})
}

// setupTracing routes the core tracer and all package tracers to the
// standard logger.
func setupTracing(debug bool) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	gtrace.CoreTracer = tracing.Select("ragged")
	level := tracing.LevelInfo
	if debug {
		level = tracing.LevelDebug
	}
	gtrace.CoreTracer.SetTraceLevel(level)
}

func run(w io.Writer, opts *Options) error {
	var genOpts []ragged.Option
	if opts.Config != "" {
		cfg, err := ragged.LoadConfigFile(opts.Config)
		if err != nil {
			return err
		}
		if genOpts, err = cfg.Options(); err != nil {
			return err
		}
	}
	s := sampler.NewRandom(int64(opts.Seed))
	gtrace.CoreTracer.Infof("seed = %d", s.Seed())
	var p *virtual.Projection
	var c content.Content
	var err error
	if opts.Virtual {
		if p, err = ragged.Arrays(s, genOpts...); err != nil {
			return err
		}
		defer p.Close()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if keys, ok := p.Watch(ctx, uint(len(p.Buffers))); ok {
			go func() {
				for k := range keys {
					gtrace.CoreTracer.Debugf("materialized lazy buffer %s", k)
				}
			}()
		}
		if c, err = virtual.FromBuffers(p); err != nil {
			return err
		}
	} else {
		if c, err = ragged.Contents(s, genOpts...); err != nil {
			return err
		}
		if p, err = virtual.ToBuffers(c); err != nil {
			return err
		}
	}
	gtrace.CoreTracer.Infof("weight = %d, depth = %d", content.Weight(c), content.Depth(c))
	switch opts.Format {
	case "console", "":
		return formatter.NewConsole(nil).Print(c, w, formatter.ConfigFromTerminal())
	case "dot":
		return formatter.Dot(c, w)
	case "html":
		return formatter.HTML(c, w)
	case "yaml":
		return printProjection(w, p)
	}
	return fmt.Errorf("%w: unknown output format %q", cli.ErrUsage, opts.Format)
}

func printProjection(w io.Writer, p *virtual.Projection) error {
	form, err := p.Form.YAML()
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintf(w, "length: %d\nform:\n", p.Length); err != nil {
		return err
	}
	for _, line := range strings.Split(strings.TrimRight(string(form), "\n"), "\n") {
		fmt.Fprintf(w, "  %s\n", line)
	}
	fmt.Fprintln(w, "buffers:")
	for _, k := range p.Keys() {
		b := p.Buffers[k]
		lazy := b.IsLazy()
		fmt.Fprintf(w, "  %s: {bytes: %d, lazy: %t}\n", k, len(b.Bytes()), lazy)
	}
	return nil
}
