// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"bytes"
	"encoding/binary"

	"github.com/bitmark-inc/trustregistry/account"
	"github.com/bitmark-inc/trustregistry/address"
	"github.com/bitmark-inc/trustregistry/fault"
)

// Type - the type name carried by the discriminator
func (record Packed) Type() (string, error) {
	if len(record) < discriminatorLength {
		return "", fault.NotRecordPack
	}
	d := record[:discriminatorLength]
	switch {
	case bytes.Equal(d, trustFrameworkDiscriminator[:]):
		return trustFrameworkName, nil
	case bytes.Equal(d, assetProfileDiscriminator[:]):
		return assetProfileName, nil
	case bytes.Equal(d, trustRecordDiscriminator[:]):
		return trustRecordName, nil
	default:
		return "", fault.UnknownDiscriminator
	}
}

// Unpack - decode any record; the caller switches on the concrete type
//
// e.g.
//
//	switch r := result.(type) {
//	case *record.TrustFramework:
func (record Packed) Unpack(testnet bool) (Record, error) {
	typeName, err := record.Type()
	if nil != err {
		return nil, err
	}
	switch typeName {
	case trustFrameworkName:
		return record.unpackFramework(testnet)
	case assetProfileName:
		return record.unpackAsset(testnet)
	default:
		return record.unpackTrust(testnet)
	}
}

// UnpackTrustFramework - decode, rejecting any other record type
func (record Packed) UnpackTrustFramework(testnet bool) (*TrustFramework, error) {
	if err := record.expect(trustFrameworkName); nil != err {
		return nil, err
	}
	return record.unpackFramework(testnet)
}

// UnpackAssetProfile - decode, rejecting any other record type
func (record Packed) UnpackAssetProfile(testnet bool) (*AssetProfile, error) {
	if err := record.expect(assetProfileName); nil != err {
		return nil, err
	}
	return record.unpackAsset(testnet)
}

// UnpackTrustRecord - decode, rejecting any other record type
func (record Packed) UnpackTrustRecord(testnet bool) (*TrustRecord, error) {
	if err := record.expect(trustRecordName); nil != err {
		return nil, err
	}
	return record.unpackTrust(testnet)
}

func (record Packed) expect(typeName string) error {
	actual, err := record.Type()
	if nil != err {
		return err
	}
	if actual != typeName {
		return fault.RecordTypeMismatch
	}
	return nil
}

func (record Packed) unpackFramework(testnet bool) (*TrustFramework, error) {
	d, err := newDecoder(record, TrustFrameworkSpace)
	if nil != err {
		return nil, err
	}

	framework := &TrustFramework{}
	framework.Authority = d.account(testnet)
	framework.FrameworkId = d.uint64()
	framework.Name = d.string(MaxFrameworkNameLength, fault.NameTooLong)
	framework.Description = d.string(MaxFrameworkDescriptionLength, fault.DescriptionTooLong)

	count := d.uint32()
	if nil == d.err && count > MaxCriteriaCount {
		d.err = fault.TooManyCriteria
	}
	if nil == d.err {
		framework.Criteria = make([]string, 0, count)
		for i := uint32(0); i < count; i += 1 {
			framework.Criteria = append(framework.Criteria, d.string(MaxCriterionLength, fault.CriteriaTooLong))
		}
	}

	framework.IsActive = d.boolean()
	framework.CreatedAt = int64(d.uint64())
	framework.Bump = d.uint8()

	if nil != d.err {
		return nil, d.err
	}
	return framework, nil
}

func (record Packed) unpackAsset(testnet bool) (*AssetProfile, error) {
	d, err := newDecoder(record, AssetProfileSpace)
	if nil != err {
		return nil, err
	}

	asset := &AssetProfile{}
	asset.Owner = d.account(testnet)
	asset.AssetId = d.uint64()
	asset.Name = d.string(MaxAssetNameLength, fault.NameTooLong)
	asset.Description = d.string(MaxAssetDescriptionLength, fault.DescriptionTooLong)
	asset.AssetType = AssetType(d.uint8())
	if nil == d.err && !asset.AssetType.Valid() {
		d.err = fault.InvalidAssetType
	}
	if d.option() {
		uri := d.string(MaxMetadataUriLength, fault.MetadataUriTooLong)
		asset.MetadataUri = &uri
	}
	asset.IsActive = d.boolean()
	asset.CreatedAt = int64(d.uint64())
	asset.Bump = d.uint8()

	if nil != d.err {
		return nil, d.err
	}
	return asset, nil
}

func (record Packed) unpackTrust(testnet bool) (*TrustRecord, error) {
	d, err := newDecoder(record, TrustRecordSpace)
	if nil != err {
		return nil, err
	}

	trust := &TrustRecord{}
	trust.Framework = d.address()
	trust.Issuer = d.account(testnet)
	trust.TargetAsset = d.address()
	trust.TrustScore = d.uint8()
	if nil == d.err && trust.TrustScore > MaxTrustScore {
		d.err = fault.InvalidTrustScore
	}
	trust.Evidence = d.string(MaxEvidenceLength, fault.EvidenceTooLong)
	trust.IsActive = d.boolean()
	trust.IssuedAt = int64(d.uint64())
	if d.option() {
		expiresAt := int64(d.uint64())
		trust.ExpiresAt = &expiresAt
	}
	trust.Bump = d.uint8()

	if nil != d.err {
		return nil, d.err
	}
	return trust, nil
}

// reads fields in order, the first error sticks and later reads return zero values
type decoder struct {
	buffer []byte
	n      int
	err    error
}

func newDecoder(record Packed, space int) (*decoder, error) {
	if len(record) < space {
		return nil, fault.BufferTooSmall
	}
	d := &decoder{
		buffer: record[:space],
		n:      discriminatorLength,
	}
	return d, nil
}

func (d *decoder) take(count int) []byte {
	if nil != d.err {
		return nil
	}
	if count < 0 || d.n+count > len(d.buffer) {
		d.err = fault.BufferTooSmall
		return nil
	}
	b := d.buffer[d.n : d.n+count]
	d.n += count
	return b
}

func (d *decoder) uint8() uint8 {
	b := d.take(1)
	if nil == b {
		return 0
	}
	return b[0]
}

func (d *decoder) uint32() uint32 {
	b := d.take(4)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (d *decoder) uint64() uint64 {
	b := d.take(8)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (d *decoder) boolean() bool {
	switch d.uint8() {
	case 0:
		return false
	case 1:
		return true
	default:
		if nil == d.err {
			d.err = fault.InvalidBoolean
		}
		return false
	}
}

func (d *decoder) option() bool {
	switch d.uint8() {
	case 0:
		return false
	case 1:
		return nil == d.err
	default:
		if nil == d.err {
			d.err = fault.InvalidOptionTag
		}
		return false
	}
}

func (d *decoder) string(maximum int, tooLong error) string {
	length := d.uint32()
	if nil != d.err {
		return ""
	}
	if length > uint32(maximum) {
		d.err = tooLong
		return ""
	}
	return string(d.take(int(length)))
}

func (d *decoder) address() address.Address {
	b := d.take(address.Length)
	if nil == b {
		return address.Address{}
	}
	a, err := address.FromBytes(b)
	if nil != err {
		d.err = err
	}
	return a
}

func (d *decoder) account(testnet bool) *account.Account {
	b := d.take(keyLength)
	if nil == b {
		return nil
	}
	a, err := account.AccountFromPublicKey(testnet, b)
	if nil != err {
		d.err = err
		return nil
	}
	return a
}
