// Copyright 2026 The il2go Authors.
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
	"strconv"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"il2go.dev/il2go/pkg/layout"
	"il2go.dev/il2go/pkg/objptr"
)

// Resolve implements subcommands.Command for the "resolve" command.
type Resolve struct {
	base       string
	offset     uint64
	layoutPath string
}

// Name implements subcommands.Command.Name.
func (*Resolve) Name() string {
	return "resolve"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Resolve) Synopsis() string {
	return "compute field slot addresses from an instance base address"
}

// Usage implements subcommands.Command.Usage.
func (*Resolve) Usage() string {
	return `resolve -base <hex address> [-offset <bytes> | -layout <table.toml>]
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (r *Resolve) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.base, "base", "", "instance base address, hex")
	f.Uint64Var(&r.offset, "offset", 0, "single field offset in bytes")
	f.StringVar(&r.layoutPath, "layout", "", "layout table; resolves every field in it")
}

// Execute implements subcommands.Command.Execute.
func (r *Resolve) Execute(context.Context, *flag.FlagSet, ...any) subcommands.ExitStatus {
	base, err := parseAddr(r.base)
	if err != nil {
		logrus.WithError(err).Error("bad -base")
		return subcommands.ExitUsageError
	}

	if r.layoutPath == "" {
		fmt.Printf("%#x\n", uintptr(base.Add(uintptr(r.offset))))
		return subcommands.ExitSuccess
	}

	table, err := layout.Load(r.layoutPath)
	if err != nil {
		logrus.WithError(err).Error("loading layout table")
		return subcommands.ExitFailure
	}
	for _, fl := range table.Fields {
		fmt.Printf("%#x\t%s\t%s.%s\n", uintptr(base.Add(uintptr(fl.Offset))), fl.Kind, table.Class, fl.Name)
	}
	return subcommands.ExitSuccess
}

func parseAddr(s string) (objptr.Addr, error) {
	if s == "" {
		return 0, fmt.Errorf("no address given")
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, err
	}
	return objptr.Addr(v), nil
}
