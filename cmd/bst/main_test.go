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
	"bytes"
	"context"
	"flag"
	"io"
	"reflect"
	"testing"

	"github.com/google/subcommands"
)

var wikiArgs = []string{"8", "3", "10", "1", "6", "14", "4", "7", "13"}

func run(t *testing.T, args ...string) (string, subcommands.ExitStatus) {
	t.Helper()
	fs := flag.NewFlagSet("bst", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cdr := subcommands.NewCommander(fs, "bst")
	cdr.Output, cdr.Error = io.Discard, io.Discard
	var buf bytes.Buffer
	register(cdr, &buf)
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	status := cdr.Execute(context.Background())
	return buf.String(), status
}

func TestTraverse(t *testing.T) {
	for _, tc := range []struct {
		flags []string
		want  string
	}{
		{nil, "1 3 4 6 7 8 10 13 14\n"},
		{[]string{"-order=pre"}, "8 3 1 6 4 7 10 14 13\n"},
		{[]string{"-order=in"}, "1 3 4 6 7 8 10 13 14\n"},
		{[]string{"-order=rev"}, "14 13 10 8 7 6 4 3 1\n"},
		{[]string{"-order=post"}, "1 4 7 6 3 13 14 10 8\n"},
		{[]string{"-order=bfs"}, "8 3 10 1 6 14 4 7 13\n"},
		{[]string{"-order=pre", "-delete=3,99"}, "8 4 1 6 7 10 14 13\n"},
	} {
		args := append([]string{"traverse"}, tc.flags...)
		got, status := run(t, append(args, wikiArgs...)...)
		if status != subcommands.ExitSuccess {
			t.Fatalf("%v: status %v", tc.flags, status)
		}
		if got != tc.want {
			t.Errorf("%v:\n got: %q\nwant: %q", tc.flags, got, tc.want)
		}
	}
}

func TestTraverseUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{"traverse", "-order=sideways", "1"},
		{"traverse", "1", "two"},
		{"traverse", "-delete=x", "1"},
		{"print", "1.5"},
		{"query", "-member=y", "1"},
	} {
		if _, status := run(t, args...); status != subcommands.ExitUsageError {
			t.Errorf("%v: status %v, want usage error", args, status)
		}
	}
}

func TestPrint(t *testing.T) {
	got, status := run(t, "print", "5", "2", "8", "9", "2")
	if status != subcommands.ExitSuccess {
		t.Fatalf("status %v", status)
	}
	if want := "5\n   2\n   8\n      9\n"; got != want {
		t.Fatalf("mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestQuery(t *testing.T) {
	got, status := run(t, append([]string{"query", "-member=6"}, wikiArgs...)...)
	if status != subcommands.ExitSuccess {
		t.Fatalf("status %v", status)
	}
	if want := "len: 9\nmin: 1\nmax: 14\nvalid: true\nmember 6: true\n"; got != want {
		t.Fatalf("mismatch:\n got: %q\nwant: %q", got, want)
	}

	got, _ = run(t, "query")
	if want := "len: 0\nmin: empty\nmax: empty\nvalid: true\n"; got != want {
		t.Fatalf("empty tree:\n got: %q\nwant: %q", got, want)
	}
}

func TestSplitList(t *testing.T) {
	if got, want := splitList(" 1, ,2,3 "), []string{"1", "2", "3"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got := splitList(""); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}
