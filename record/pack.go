// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"

	"github.com/bitmark-inc/trustregistry/fault"
)

// Pack - validate then lay out a TrustFramework
func (framework *TrustFramework) Pack() (Packed, error) {
	if err := framework.Validate(); nil != err {
		return nil, err
	}

	e := newEncoder(trustFrameworkDiscriminator, TrustFrameworkSpace)
	e.fixed(framework.Authority.PublicKeyBytes())
	e.uint64(framework.FrameworkId)
	e.string(framework.Name)
	e.string(framework.Description)
	e.uint32(uint32(len(framework.Criteria)))
	for _, criterion := range framework.Criteria {
		e.string(criterion)
	}
	e.boolean(framework.IsActive)
	e.uint64(uint64(framework.CreatedAt))
	e.uint8(framework.Bump)

	return e.finish()
}

// Pack - validate then lay out an AssetProfile
func (asset *AssetProfile) Pack() (Packed, error) {
	if err := asset.Validate(); nil != err {
		return nil, err
	}

	e := newEncoder(assetProfileDiscriminator, AssetProfileSpace)
	e.fixed(asset.Owner.PublicKeyBytes())
	e.uint64(asset.AssetId)
	e.string(asset.Name)
	e.string(asset.Description)
	e.uint8(uint8(asset.AssetType))
	if nil == asset.MetadataUri {
		e.boolean(false)
	} else {
		e.boolean(true)
		e.string(*asset.MetadataUri)
	}
	e.boolean(asset.IsActive)
	e.uint64(uint64(asset.CreatedAt))
	e.uint8(asset.Bump)

	return e.finish()
}

// Pack - validate then lay out a TrustRecord
func (trust *TrustRecord) Pack() (Packed, error) {
	if err := trust.Validate(); nil != err {
		return nil, err
	}

	e := newEncoder(trustRecordDiscriminator, TrustRecordSpace)
	e.fixed(trust.Framework[:])
	e.fixed(trust.Issuer.PublicKeyBytes())
	e.fixed(trust.TargetAsset[:])
	e.uint8(trust.TrustScore)
	e.string(trust.Evidence)
	e.boolean(trust.IsActive)
	e.uint64(uint64(trust.IssuedAt))
	if nil == trust.ExpiresAt {
		e.boolean(false)
	} else {
		e.boolean(true)
		e.uint64(uint64(*trust.ExpiresAt))
	}
	e.uint8(trust.Bump)

	return e.finish()
}

// accumulates a record into a buffer preallocated to its space
type encoder struct {
	buffer []byte
	space  int
}

func newEncoder(d [discriminatorLength]byte, space int) *encoder {
	e := &encoder{
		buffer: make([]byte, 0, space),
		space:  space,
	}
	e.buffer = append(e.buffer, d[:]...)
	return e
}

func (e *encoder) fixed(b []byte) {
	e.buffer = append(e.buffer, b...)
}

func (e *encoder) uint8(v uint8) {
	e.buffer = append(e.buffer, v)
}

func (e *encoder) uint32(v uint32) {
	e.buffer = binary.LittleEndian.AppendUint32(e.buffer, v)
}

func (e *encoder) uint64(v uint64) {
	e.buffer = binary.LittleEndian.AppendUint64(e.buffer, v)
}

func (e *encoder) boolean(b bool) {
	if b {
		e.buffer = append(e.buffer, 1)
	} else {
		e.buffer = append(e.buffer, 0)
	}
}

func (e *encoder) string(s string) {
	e.uint32(uint32(len(s)))
	e.buffer = append(e.buffer, s...)
}

// zero pad to the full space
func (e *encoder) finish() (Packed, error) {
	if len(e.buffer) > e.space {
		return nil, fault.BufferTooSmall
	}
	packed := make(Packed, e.space)
	copy(packed, e.buffer)
	return packed, nil
}
