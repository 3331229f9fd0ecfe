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
	"strconv"

	"github.com/google/subcommands"
)

type cmdQuery struct {
	out       io.Writer
	argMember string
}

func (cmd *cmdQuery) Name() string     { return "query" }
func (cmd *cmdQuery) Synopsis() string { return "print size, min, max and validity" }
func (cmd *cmdQuery) Usage() string    { return "query [-member=k] key...\n" }

func (cmd *cmdQuery) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.argMember, "member", "", "Key to test for membership")
}

// orEmpty formats the result of Min or Max.
func orEmpty(key int, err error) string {
	if err != nil {
		return "empty"
	}
	return strconv.Itoa(key)
}

func (cmd *cmdQuery) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	tr, err := buildTree(f)
	if err != nil {
		logger.Println("invalid key:", err)
		return subcommands.ExitUsageError
	}
	fmt.Fprintln(cmd.out, "len:", tr.Len())
	fmt.Fprintln(cmd.out, "min:", orEmpty(tr.Min()))
	fmt.Fprintln(cmd.out, "max:", orEmpty(tr.Max()))
	fmt.Fprintln(cmd.out, "valid:", tr.Verify())
	if cmd.argMember != "" {
		k, err := strconv.Atoi(cmd.argMember)
		if err != nil {
			logger.Println("invalid -member:", err)
			return subcommands.ExitUsageError
		}
		fmt.Fprintf(cmd.out, "member %d: %v\n", k, tr.Has(k))
	}
	return subcommands.ExitSuccess
}
