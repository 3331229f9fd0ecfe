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
	"io"

	"github.com/google/subcommands"
)

type cmdPrint struct {
	out io.Writer
}

func (cmd *cmdPrint) Name() string     { return "print" }
func (cmd *cmdPrint) Synopsis() string { return "print the tree indented by depth" }
func (cmd *cmdPrint) Usage() string    { return "print key...\n" }

func (cmd *cmdPrint) SetFlags(f *flag.FlagSet) {}

func (cmd *cmdPrint) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	tr, err := buildTree(f)
	if err != nil {
		logger.Println("invalid key:", err)
		return subcommands.ExitUsageError
	}
	if err := tr.Print(cmd.out); err != nil {
		logger.Println("write failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
