// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/trustregistry/account"
	"github.com/bitmark-inc/trustregistry/fault"
	"github.com/bitmark-inc/trustregistry/util"
)

// pack CreateFramework
//
// Pack Varint64(tag) followed by fields in order as struct above with
// signature last
//
// NOTE: returns the "unsigned" message on signature failure, this is
// how a client obtains the bytes to sign
func (c *CreateFramework) Pack(signer *account.Account) (Packed, error) {
	if err := checkEnvelope(c.Authority, signer, c.Signature); nil != err {
		return nil, err
	}
	if len(c.Criteria) > maxListCount {
		return nil, fault.TooManyCriteria
	}

	message := util.ToVarint64(uint64(CreateFrameworkTag))
	message = appendAccount(message, c.Authority)
	message = appendUint64(message, c.FrameworkId)
	message = appendString(message, c.Name)
	message = appendString(message, c.Description)
	message = appendStrings(message, c.Criteria)

	return sign(message, signer, c.Signature)
}

// pack UpdateFramework
//
// absent optional fields are a single zero byte, the timestamp is
// signed as its two's complement bit pattern
func (u *UpdateFramework) Pack(signer *account.Account) (Packed, error) {
	if err := checkEnvelope(u.Authority, signer, u.Signature); nil != err {
		return nil, err
	}
	if nil != u.Criteria && len(*u.Criteria) > maxListCount {
		return nil, fault.TooManyCriteria
	}

	message := util.ToVarint64(uint64(UpdateFrameworkTag))
	message = appendAccount(message, u.Authority)
	message = appendBytes(message, u.Framework[:])
	message = appendUint64(message, uint64(u.Bump))
	message = appendUint64(message, uint64(u.Timestamp))

	message = appendOptionalString(message, u.Name)
	message = appendOptionalString(message, u.Description)
	if nil == u.Criteria {
		message = append(message, 0)
	} else {
		message = append(message, 1)
		message = appendStrings(message, *u.Criteria)
	}
	if nil == u.IsActive {
		message = append(message, 0)
	} else if *u.IsActive {
		message = append(message, 1, 1)
	} else {
		message = append(message, 1, 0)
	}

	return sign(message, signer, u.Signature)
}

// pack CreateAsset
func (c *CreateAsset) Pack(signer *account.Account) (Packed, error) {
	if err := checkEnvelope(c.Owner, signer, c.Signature); nil != err {
		return nil, err
	}

	message := util.ToVarint64(uint64(CreateAssetTag))
	message = appendAccount(message, c.Owner)
	message = appendUint64(message, c.AssetId)
	message = appendString(message, c.Name)
	message = appendString(message, c.Description)
	message = appendUint64(message, uint64(c.AssetType))
	message = appendOptionalString(message, c.MetadataUri)

	return sign(message, signer, c.Signature)
}

// pack IssueTrust
//
// the expiry is signed as its two's complement bit pattern
func (i *IssueTrust) Pack(signer *account.Account) (Packed, error) {
	if err := checkEnvelope(i.Issuer, signer, i.Signature); nil != err {
		return nil, err
	}

	message := util.ToVarint64(uint64(IssueTrustTag))
	message = appendAccount(message, i.Issuer)
	message = appendBytes(message, i.Framework[:])
	message = appendBytes(message, i.Asset[:])
	message = appendUint64(message, i.TrustScore)
	message = appendString(message, i.Evidence)
	if nil == i.ExpiresAt {
		message = append(message, 0)
	} else {
		message = append(message, 1)
		message = appendUint64(message, uint64(*i.ExpiresAt))
	}

	return sign(message, signer, i.Signature)
}

// structural checks common to every instruction
func checkEnvelope(caller *account.Account, signer *account.Account, signature account.Signature) error {
	if len(signature) > maxSignatureLength {
		return fault.SignatureTooLong
	}
	if nil == caller || nil == signer {
		return fault.MissingCaller
	}
	return nil
}

// verify the signature then append it
func sign(message Packed, signer *account.Account, signature account.Signature) (Packed, error) {
	err := signer.CheckSignature(message, signature)
	if nil != err {
		return message, err
	}
	return appendBytes(message, signature), nil
}

// append a single string to buffer
//
// the field is prefixed by Varint64(length)
func appendString(buffer Packed, s string) Packed {
	buffer = util.AppendVarint64(buffer, uint64(len(s)))
	return append(buffer, s...)
}

// append Varint64(count) then each string
func appendStrings(buffer Packed, list []string) Packed {
	buffer = util.AppendVarint64(buffer, uint64(len(list)))
	for _, s := range list {
		buffer = appendString(buffer, s)
	}
	return buffer
}

// presence byte then the string if present
func appendOptionalString(buffer Packed, s *string) Packed {
	if nil == s {
		return append(buffer, 0)
	}
	buffer = append(buffer, 1)
	return appendString(buffer, *s)
}

// append an account to a buffer
//
// the field is prefixed by Varint64(length)
func appendAccount(buffer Packed, a *account.Account) Packed {
	return appendBytes(buffer, a.Bytes())
}

// append a bytes to a buffer
//
// the field is prefixed by Varint64(length)
func appendBytes(buffer Packed, data []byte) Packed {
	buffer = util.AppendVarint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	return util.AppendVarint64(buffer, value)
}

// Authenticate - the caller must be on the node's network and must
// have signed the instruction
func Authenticate(item Instruction, testnet bool) (Packed, error) {
	caller := item.Caller()
	if nil == caller {
		return nil, fault.MissingCaller
	}
	if caller.IsTesting() != testnet {
		return nil, fault.WrongNetworkForPublicKey
	}
	return item.Pack(caller)
}

// Sign - client side signing: pack unsigned, sign the message, store
// the signature and pack again
func Sign(item Instruction, key *account.PrivateKey) (Packed, error) {
	signer := key.Account()

	message, err := item.Pack(signer)
	if fault.InvalidSignature != err {
		if nil == err {
			return message, nil
		}
		return nil, err
	}

	signature := key.Sign(message)
	switch i := item.(type) {
	case *CreateFramework:
		i.Signature = signature
	case *UpdateFramework:
		i.Signature = signature
	case *CreateAsset:
		i.Signature = signature
	case *IssueTrust:
		i.Signature = signature
	default:
		return nil, fault.InstructionTypeNotExpected
	}
	return item.Pack(signer)
}
