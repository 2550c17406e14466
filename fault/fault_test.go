// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/trustregistry/fault"
)

// test that each registry error belongs to exactly the expected class
func TestClasses(t *testing.T) {
	errorList := []struct {
		err           error
		authorisation bool
		exists        bool
		invalid       bool
		length        bool
		notFound      bool
		process       bool
		record        bool
	}{
		{fault.Unauthorized, true, false, false, false, false, false, false},
		{fault.AddressAlreadyInUse, false, true, false, false, false, false, false},
		{fault.InvalidTrustScore, false, false, true, false, false, false, false},
		{fault.ExpiryInPast, false, false, true, false, false, false, false},
		{fault.NameTooLong, false, false, false, true, false, false, false},
		{fault.DescriptionTooLong, false, false, false, true, false, false, false},
		{fault.MetadataUriTooLong, false, false, false, true, false, false, false},
		{fault.EvidenceTooLong, false, false, false, true, false, false, false},
		{fault.TooManyCriteria, false, false, false, true, false, false, false},
		{fault.CriteriaTooLong, false, false, false, true, false, false, false},
		{fault.FrameworkNotFound, false, false, false, false, true, false, false},
		{fault.NoViableBump, false, false, false, false, false, true, false},
		{fault.FrameworkInactive, false, false, false, false, false, false, true},
		{fault.AssetInactive, false, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrAuthorisation(err) != e.authorisation {
			t.Errorf("%d: expected 'authorisation' == %v for err = %v", i, e.authorisation, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
	}
}

// the error text is the tag returned to clients
func TestStableTags(t *testing.T) {
	if s := fault.AddressAlreadyInUse.Error(); "address already in use" != s {
		t.Errorf("tag: %q  expected: %q", s, "address already in use")
	}
	if s := fault.InvalidTrustScore.Error(); "trust score must be between 0 and 100" != s {
		t.Errorf("tag: %q  expected: %q", s, "trust score must be between 0 and 100")
	}
}
