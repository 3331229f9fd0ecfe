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

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/google/bst"
	"github.com/google/subcommands"
)

type cmdTraverse struct {
	out       io.Writer
	argOrder  string
	argDelete string
}

func (cmd *cmdTraverse) Name() string     { return "traverse" }
func (cmd *cmdTraverse) Synopsis() string { return "print the keys in a traversal order" }
func (cmd *cmdTraverse) Usage() string {
	return "traverse [-order=pre|in|rev|post|bfs] [-delete=k1,k2] key...\n"
}

func (cmd *cmdTraverse) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.argOrder, "order", "in", "Traversal order: pre, in, rev, post or bfs")
	f.StringVar(&cmd.argDelete, "delete", "", "Comma-separated keys to delete before traversing")
}

func (cmd *cmdTraverse) walker(tr *bst.Tree) func(bst.KeyIterator) {
	switch cmd.argOrder {
	case "pre":
		return tr.PreOrder
	case "in":
		return tr.InOrder
	case "rev":
		return tr.ReverseInOrder
	case "post":
		return tr.PostOrder
	case "bfs":
		return tr.BreadthFirst
	}
	return nil
}

func (cmd *cmdTraverse) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	tr, err := buildTree(f)
	if err != nil {
		logger.Println("invalid key:", err)
		return subcommands.ExitUsageError
	}
	walk := cmd.walker(tr)
	if walk == nil {
		logger.Println("unknown traversal order:", cmd.argOrder)
		return subcommands.ExitUsageError
	}
	dels, err := parseKeys(splitList(cmd.argDelete))
	if err != nil {
		logger.Println("invalid key in -delete:", err)
		return subcommands.ExitUsageError
	}
	for _, k := range dels {
		if !tr.Delete(k) {
			logger.Println("key not in tree:", k)
		}
	}
	var keys []string
	walk(func(key int) bool {
		keys = append(keys, fmt.Sprint(key))
		return true
	})
	fmt.Fprintln(cmd.out, strings.Join(keys, " "))
	return subcommands.ExitSuccess
}
