/*
Command succtree builds a successor tree from keys and scripts, and prints
its successor chain.

	succtree [flags] [keys...]

Keys given as arguments or in a key file (-keys) are inserted first, then a
YAML script (-script) is replayed. The resulting chain is printed to stdout.
Optionally the tree is written as a Graphviz DOT file (-dot) or as an HTML
fragment (-html).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/succtree"
	"github.com/npillmayer/succtree/display"
	"github.com/npillmayer/succtree/script"
)

type options struct {
	script  string
	keys    string
	dot     string
	html    string
	verbose bool
}

func main() {
	var opts options
	flag.StringVar(&opts.script, "script", "", "YAML script to replay")
	flag.StringVar(&opts.keys, "keys", "", "file of whitespace-separated keys to insert")
	flag.StringVar(&opts.dot, "dot", "", "write the tree in Graphviz DOT format to `file`")
	flag.StringVar(&opts.html, "html", "", "write the tree as an HTML fragment to `file`")
	flag.BoolVar(&opts.verbose, "v", false, "trace every operation")
	flag.Parse()
	//
	gtrace.CoreTracer = gologadapter.New()
	if opts.verbose {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	} else {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
	tree, err := run(opts, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "succtree: %v\n", err)
		os.Exit(1)
	}
	if err := display.NewConsole(nil).Print(tree, nil); err != nil {
		fmt.Fprintf(os.Stderr, "succtree: %v\n", err)
		os.Exit(1)
	}
}

// run builds the tree from command line keys, the key file and the script,
// and writes the requested output files.
func run(opts options, args []string) (*succtree.Tree, error) {
	var keys []int
	for _, arg := range args {
		k, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("key %q is not an integer", arg)
		}
		keys = append(keys, k)
	}
	if opts.keys != "" {
		fromFile, err := readKeyFile(opts.keys)
		if err != nil {
			return nil, err
		}
		keys = append(keys, fromFile...)
	}
	runner := script.NewRunner(nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	if opts.verbose {
		events, ok := runner.Subscribe(ctx, 16)
		if !ok {
			close(done)
		} else {
			go func() {
				defer close(done)
				for e := range events {
					succtree.T().Infof("%v", e)
				}
			}()
		}
	} else {
		close(done)
	}
	err := runScripts(runner, keys, opts.script)
	runner.Close()
	cancel()
	<-done
	if err != nil {
		return nil, err
	}
	tree := runner.Tree()
	if opts.dot != "" {
		if err := writeFile(opts.dot, func(w io.Writer) error {
			succtree.Tree2Dot(tree, w)
			return nil
		}); err != nil {
			return nil, err
		}
	}
	if opts.html != "" {
		if err := writeFile(opts.html, func(w io.Writer) error {
			return display.HTML(w, tree)
		}); err != nil {
			return nil, err
		}
	}
	return tree, nil
}

func runScripts(runner *script.Runner, keys []int, path string) error {
	if len(keys) > 0 {
		initial := &script.Script{
			Name:  "command line",
			Steps: []script.Step{{Op: script.OpInsert, Keys: keys}},
		}
		if err := runner.Run(initial); err != nil {
			return err
		}
	}
	if path == "" {
		return nil
	}
	s, err := script.Load(path)
	if err != nil {
		return err
	}
	return runner.Run(s)
}

func readKeyFile(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	keys, err := script.ReadKeys(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return keys, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
