// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/trustregistry/command/trust-cli/configuration"
	"github.com/bitmark-inc/trustregistry/fault"
)

const minimumPasswordLength = 8

func readPassword(prompt string, e io.Writer) (string, error) {
	fmt.Fprint(e, prompt)
	password, err := terminal.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(e)
	if nil != err {
		return "", err
	}
	return string(password), nil
}

// prompt twice for a new password
func promptNewPassword(e io.Writer) (string, error) {
	password, err := readPassword("Set identity password (length >= 8): ", e)
	if nil != err {
		return "", err
	}

	if len(password) < minimumPasswordLength {
		return "", fault.InvalidPasswordLength
	}

	verifyPassword, err := readPassword("Verify password: ", e)
	if nil != err {
		return "", err
	}

	if password != verifyPassword {
		return "", fault.PasswordMismatch
	}

	return password, nil
}

// decrypt the private key of the selected identity
func unlockIdentity(m *metadata, name string, password string) (*configuration.Private, error) {
	if "" == password {
		var err error
		password, err = readPassword("password: ", m.e)
		if nil != err {
			return nil, err
		}
	}
	return m.config.Private(password, name)
}
