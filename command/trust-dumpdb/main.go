// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"reflect"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"

	"github.com/bitmark-inc/trustregistry/chain"
	"github.com/bitmark-inc/trustregistry/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "list", HasArg: getoptions.NO_ARGUMENT, Short: 'l'},
		{Long: "chain", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["list"]) > 0 {

		// this will be a struct type
		poolType := reflect.TypeOf(storage.Pool)

		// print all available tags
		fmt.Printf(" tags:\n")
		for i := 0; i < poolType.NumField(); i += 1 {
			fieldInfo := poolType.Field(i)
			prefixTag := fieldInfo.Tag.Get("prefix")
			fmt.Printf("       %s → %s\n", prefixTag, fieldInfo.Name)
		}
		return
	}

	if len(options["help"]) > 0 || 1 != len(options["file"]) {
		exitwithstatus.Message("usage: %s [--help] [--list] [--chain=NETWORK] [--count=N] --file=LEVELDB [tags...]", program)
	}

	chainName := chain.Testing
	if len(options["chain"]) > 0 {
		chainName = options["chain"][0]
	}
	if !chain.Valid(chainName) {
		exitwithstatus.Message("%s: invalid chain: %q", program, chainName)
	}

	count := 0 // unlimited
	if len(options["count"]) > 0 {
		count, err = strconv.Atoi(options["count"][0])
		if nil != err || count < 0 {
			exitwithstatus.Message("%s: invalid count: %q", program, options["count"][0])
		}
	}

	// all pools if no tags given
	if 0 == len(arguments) {
		arguments = []string{"F", "A", "R"}
	}

	err = storage.Initialise(options["file"][0], storage.ReadOnly)
	if nil != err {
		exitwithstatus.Message("%s: database open error: %s", program, err)
	}
	defer storage.Finalise()

	err = dump(os.Stdout, arguments, chain.IsTesting(chainName), count)
	if nil != err {
		exitwithstatus.Message("%s: dump error: %s", program, err)
	}
}
