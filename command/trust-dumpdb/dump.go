// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/bitmark-inc/trustregistry/address"
	"github.com/bitmark-inc/trustregistry/record"
	"github.com/bitmark-inc/trustregistry/storage"
)

// one line of output
type entry struct {
	Pool    string          `json:"pool"`
	Address address.Address `json:"address"`
	Type    string          `json:"type"`
	Record  record.Record   `json:"record"`
	Error   string          `json:"error,omitempty"`
}

// stops the cursor when the count is reached
var errCountReached = errors.New("count reached")

// write each record of the tagged pools as a JSON line
func dump(w io.Writer, tags []string, testnet bool, count int) error {

	encoder := json.NewEncoder(w)

	for _, tag := range tags {
		name, pool := poolByTag(tag)
		if nil == pool {
			return fmt.Errorf("no pool for tag: %q", tag)
		}

		n := 0
		err := pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
			if count > 0 && n >= count {
				return errCountReached
			}
			n += 1

			e := entry{
				Pool: name,
			}
			a, err := address.FromBytes(key)
			if nil != err {
				e.Error = err.Error()
				return encoder.Encode(e)
			}
			e.Address = a

			packed := record.Packed(value)
			if e.Type, err = packed.Type(); nil != err {
				e.Error = err.Error()
				return encoder.Encode(e)
			}
			if e.Record, err = packed.Unpack(testnet); nil != err {
				e.Error = err.Error()
			}
			return encoder.Encode(e)
		})
		if nil != err && errCountReached != err {
			return err
		}
	}
	return nil
}

// match a tag to one of the prefixed pools, either by prefix or by name
func poolByTag(tag string) (string, *storage.PoolHandle) {

	poolType := reflect.TypeOf(storage.Pool)
	poolValue := reflect.ValueOf(storage.Pool)

	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)
		if tag != fieldInfo.Tag.Get("prefix") && tag != fieldInfo.Name {
			continue
		}
		pool, ok := poolValue.Field(i).Interface().(*storage.PoolHandle)
		if !ok {
			return "", nil
		}
		return fieldInfo.Name, pool
	}
	return "", nil
}
