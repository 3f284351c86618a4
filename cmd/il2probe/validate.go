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
	"os"
	"unsafe"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"il2go.dev/il2go/pkg/handle"
	"il2go.dev/il2go/pkg/layout"
	"il2go.dev/il2go/pkg/objptr"
)

// Validate implements subcommands.Command for the "validate" command. It
// maps an instance snapshot and applies the same checks a validated build
// performs before field access, then walks the layout table's fields.
type Validate struct {
	snapshot   string
	layoutPath string
	object     bool
}

// Name implements subcommands.Command.Name.
func (*Validate) Name() string {
	return "validate"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Validate) Synopsis() string {
	return "validate an instance snapshot against a layout table"
}

// Usage implements subcommands.Command.Usage.
func (*Validate) Usage() string {
	return `validate -snapshot <file> [-layout <table.toml>] [-object]
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (v *Validate) SetFlags(f *flag.FlagSet) {
	f.StringVar(&v.snapshot, "snapshot", "", "file containing a raw dump of the instance's memory")
	f.StringVar(&v.layoutPath, "layout", "", "layout table describing the instance's fields")
	f.BoolVar(&v.object, "object", false, "treat the instance as an engine object and check its cached identity pointer")
}

// Execute implements subcommands.Command.Execute.
func (v *Validate) Execute(context.Context, *flag.FlagSet, ...any) subcommands.ExitStatus {
	if v.snapshot == "" {
		logrus.Error("-snapshot is required")
		return subcommands.ExitUsageError
	}

	f, err := os.Open(v.snapshot)
	if err != nil {
		logrus.WithError(err).Error("opening snapshot")
		return subcommands.ExitFailure
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		logrus.WithError(err).Error("stating snapshot")
		return subcommands.ExitFailure
	}
	if st.Size() == 0 {
		logrus.Error("snapshot is empty")
		return subcommands.ExitFailure
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(st.Size()), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		logrus.WithError(err).Error("mapping snapshot")
		return subcommands.ExitFailure
	}
	defer unix.Munmap(data)

	ok := v.check(data)

	if v.layoutPath != "" {
		table, err := layout.Load(v.layoutPath)
		if err != nil {
			logrus.WithError(err).Error("loading layout table")
			return subcommands.ExitFailure
		}
		if !v.walk(data, table) {
			ok = false
		}
	}

	if !ok {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// check applies the handle-validation policies to the snapshot base.
func (v *Validate) check(data []byte) bool {
	base := unsafe.Pointer(&data[0])
	if !v.object {
		// A mapped snapshot base is always non-null; just report it.
		logrus.WithField("handle", handle.NonNull(handle.RefOf(base))).Info("plain reference check")
		return true
	}
	if len(data) < handle.CachedPtrOffset+layout.SlotSize {
		logrus.Errorf("snapshot too small for an engine object: %d bytes", len(data))
		return false
	}
	obj := handle.ObjectOf(base)
	alive := handle.Valid(obj)
	logrus.WithFields(logrus.Fields{
		"cachedptr": obj.CachedPtr(),
		"alive":     alive,
	}).Info("engine object check")
	if !alive {
		logrus.Warn("cached identity pointer is null; the runtime has destroyed this object")
	}
	return alive
}

// walk reads every field the table describes, bounds-checking against the
// snapshot since, unlike live accessors, we know the buffer's real size.
func (v *Validate) walk(data []byte, table *layout.Table) bool {
	ok := true
	ro := objptr.RO(unsafe.Pointer(&data[0]))
	for _, fl := range table.Fields {
		entry := logrus.WithFields(logrus.Fields{
			"field":  table.Class + "." + fl.Name,
			"offset": fl.Offset,
		})
		if fl.End() > uint64(len(data)) {
			entry.Errorf("field extends past snapshot end (%d bytes)", len(data))
			ok = false
			continue
		}
		switch fl.Kind {
		case layout.KindRef:
			entry.WithField("referent", objptr.ROSlotAt(ro, uintptr(fl.Offset)).Load()).Info("ref slot")
		case layout.KindValue:
			entry.WithField("bytes", fmt.Sprintf("%x", data[fl.Offset:fl.End()])).Info("value storage")
		}
	}
	return ok
}
