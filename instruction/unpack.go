// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/trustregistry/account"
	"github.com/bitmark-inc/trustregistry/address"
	"github.com/bitmark-inc/trustregistry/fault"
	"github.com/bitmark-inc/trustregistry/record"
	"github.com/bitmark-inc/trustregistry/util"
)

// Unpack - turn a byte slice into an instruction
//
// must cast result to correct type
//
// e.g.
//
//	switch inst := result.(type) {
//	case *instruction.IssueTrust:
func (packed Packed) Unpack(testnet bool) (t Instruction, n int, e error) {

	defer func() {
		if r := recover(); nil != r {
			t = nil
			n = 0
			e = fault.NotInstructionPack
		}
	}()

	tag, n := util.ClippedVarint64(packed, 1, int(InvalidTag)-1)
	if 0 == n {
		return nil, 0, fault.NotInstructionPack
	}

	r := &reader{buffer: packed, n: n, testnet: testnet}

	switch TagType(tag) {

	case CreateFrameworkTag:
		c := &CreateFramework{}
		c.Authority = r.account()
		c.FrameworkId = r.uint64()
		c.Name = r.string()
		c.Description = r.string()
		c.Criteria = r.strings()
		c.Signature = r.signature()
		t = c

	case UpdateFrameworkTag:
		u := &UpdateFramework{}
		u.Authority = r.account()
		u.Framework = r.address()
		u.Bump = uint8(r.clipped(0, 255))
		u.Timestamp = int64(r.uint64())
		if r.present() {
			name := r.string()
			u.Name = &name
		}
		if r.present() {
			description := r.string()
			u.Description = &description
		}
		if r.present() {
			criteria := r.strings()
			u.Criteria = &criteria
		}
		if r.present() {
			active := r.present()
			u.IsActive = &active
		}
		u.Signature = r.signature()
		t = u

	case CreateAssetTag:
		c := &CreateAsset{}
		c.Owner = r.account()
		c.AssetId = r.uint64()
		c.Name = r.string()
		c.Description = r.string()
		c.AssetType = record.AssetType(r.clipped(0, 255))
		if r.present() {
			uri := r.string()
			c.MetadataUri = &uri
		}
		c.Signature = r.signature()
		t = c

	case IssueTrustTag:
		i := &IssueTrust{}
		i.Issuer = r.account()
		i.Framework = r.address()
		i.Asset = r.address()
		i.TrustScore = r.uint64()
		i.Evidence = r.string()
		if r.present() {
			expiresAt := int64(r.uint64())
			i.ExpiresAt = &expiresAt
		}
		i.Signature = r.signature()
		t = i

	default:
		return nil, 0, fault.InstructionTypeNotExpected
	}

	if nil != r.err {
		return nil, 0, r.err
	}
	return t, r.n, nil
}

// sequential field reader, the first error sticks
type reader struct {
	buffer  Packed
	n       int
	testnet bool
	err     error
}

func (r *reader) fail(err error) {
	if nil == r.err {
		r.err = err
	}
}

func (r *reader) uint64() uint64 {
	if nil != r.err {
		return 0
	}
	value, count := util.FromVarint64(r.buffer[r.n:])
	if 0 == count {
		r.fail(fault.NotInstructionPack)
		return 0
	}
	r.n += count
	return value
}

func (r *reader) clipped(minimum int, maximum int) int {
	if nil != r.err {
		return 0
	}
	value, count := util.ClippedVarint64(r.buffer[r.n:], minimum, maximum)
	if 0 == count {
		r.fail(fault.NotInstructionPack)
		return 0
	}
	r.n += count
	return value
}

// length prefixed field, zero length allowed
func (r *reader) bytes(maximum int) []byte {
	length := r.clipped(0, maximum)
	if nil != r.err {
		return nil
	}
	if r.n+length > len(r.buffer) {
		r.fail(fault.NotInstructionPack)
		return nil
	}
	b := make([]byte, length)
	copy(b, r.buffer[r.n:r.n+length])
	r.n += length
	return b
}

func (r *reader) string() string {
	return string(r.bytes(maxFieldLength))
}

func (r *reader) strings() []string {
	count := r.clipped(0, maxListCount)
	if nil != r.err {
		return nil
	}
	list := make([]string, 0, count)
	for i := 0; i < count && nil == r.err; i += 1 {
		list = append(list, r.string())
	}
	return list
}

// a presence byte, also used for booleans
func (r *reader) present() bool {
	if nil != r.err {
		return false
	}
	if r.n >= len(r.buffer) {
		r.fail(fault.NotInstructionPack)
		return false
	}
	b := r.buffer[r.n]
	r.n += 1
	switch b {
	case 0:
		return false
	case 1:
		return true
	default:
		r.fail(fault.NotInstructionPack)
		return false
	}
}

func (r *reader) address() address.Address {
	b := r.bytes(address.Length)
	if nil != r.err {
		return address.Address{}
	}
	a, err := address.FromBytes(b)
	if nil != err {
		r.fail(err)
	}
	return a
}

func (r *reader) account() *account.Account {
	b := r.bytes(maxFieldLength)
	if nil != r.err {
		return nil
	}
	a, err := account.AccountFromBytes(b)
	if nil != err {
		r.fail(err)
		return nil
	}
	if a.IsTesting() != r.testnet {
		r.fail(fault.WrongNetworkForPublicKey)
		return nil
	}
	return a
}

func (r *reader) signature() account.Signature {
	return account.Signature(r.bytes(maxSignatureLength))
}
