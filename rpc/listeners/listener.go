// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/trustregistry/fault"
)

// Listener - a configured server that binds its sockets on Serve
type Listener interface {
	Serve() error
	Close()
}

// split each listen address into its network type, rewriting "*:PORT"
// as "[::]:PORT" on the assumption that this listens on tcp4 and tcp6
func parseListenAddress(addrs []string, log *logger.L) ([]string, []string, error) {
	networks := make([]string, len(addrs))
	rewritten := make([]string, len(addrs))
	for i, listen := range addrs {
		host, port, err := net.SplitHostPort(listen)
		if nil != err {
			log.Errorf("listen: %q  error: %s", listen, err)
			return nil, nil, fault.InvalidIpAddress
		}

		switch {
		case "*" == host:
			host = "::"
			networks[i] = "tcp"
		case strings.Contains(host, ":"):
			networks[i] = "tcp6"
		default:
			networks[i] = "tcp4"
		}

		if ip := net.ParseIP(host); nil == ip {
			log.Errorf("listen: %q  error: %s", listen, fault.InvalidIpAddress)
			return nil, nil, fault.InvalidIpAddress
		}
		rewritten[i] = net.JoinHostPort(host, port)
	}

	return networks, rewritten, nil
}
