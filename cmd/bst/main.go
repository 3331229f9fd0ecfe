// Copyright 2014 Google Inc.
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

// Command bst builds a binary search tree from the integer keys given on the
// command line and prints traversals or queries of it.
//
//	bst traverse -order=bfs 8 3 10 1 6 14 4 7 13
//	bst print 8 3 10 1 6 14 4 7 13
//	bst query -member=6 8 3 10
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/google/bst"
	"github.com/google/subcommands"
)

var logger = log.New(os.Stderr, "bst: ", 0)

func main() {
	register(subcommands.DefaultCommander, os.Stdout)
	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}

func register(cdr *subcommands.Commander, w io.Writer) {
	cdr.Register(cdr.HelpCommand(), "")
	cdr.Register(cdr.FlagsCommand(), "")
	cdr.Register(&cmdTraverse{out: w}, "")
	cdr.Register(&cmdPrint{out: w}, "")
	cdr.Register(&cmdQuery{out: w}, "")
}

// parseKeys parses decimal integer keys.
func parseKeys(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, a := range args {
		k, err := strconv.Atoi(a)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// buildTree inserts the positional keys of f, in order, into a new tree.
// Duplicates are reported and skipped.
func buildTree(f *flag.FlagSet) (*bst.Tree, error) {
	keys, err := parseKeys(f.Args())
	if err != nil {
		return nil, err
	}
	tr := bst.New()
	for _, k := range keys {
		if !tr.Insert(k) {
			logger.Println("duplicate key skipped:", k)
		}
	}
	return tr, nil
}

// splitList splits a comma-separated flag value, ignoring empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
