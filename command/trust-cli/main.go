// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/trustregistry/chain"
	"github.com/bitmark-inc/trustregistry/command/trust-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "trust-cli"
	app.Usage = "client for the trust attestation registry"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.Testing,
			Usage: " connect to trustd `NETWORK` [live|testing|local]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "setup",
			Usage:     "initialise trust-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*trustd host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "private-key, k",
					Value: "",
					Usage: " using existing base58 private key `KEY`",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "private-key, k",
					Value: "",
					Usage: "+using existing base58 private key `KEY`",
				},
				cli.BoolFlag{
					Name:  "new, N",
					Usage: "+generate a new private key",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "+receive only `ACCOUNT`",
				},
			},
			Action: runAdd,
		},
		{
			Name:      "list",
			Usage:     "list identities",
			ArgsUsage: " ",
			Action:    runList,
		},
		{
			Name:      "create-framework",
			Usage:     "create a trust framework owned by the identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "id",
					Usage: "*framework `ID` unique for this identity",
				},
				cli.StringFlag{
					Name:  "name, m",
					Value: "",
					Usage: "*framework `NAME`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " framework `DESCRIPTION`",
				},
				cli.StringSliceFlag{
					Name:  "criterion, c",
					Usage: " framework `CRITERION`, may be repeated",
				},
			},
			Action: runCreateFramework,
		},
		{
			Name:      "update-framework",
			Usage:     "change fields of a framework owned by the identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "id",
					Usage: "*framework `ID`",
				},
				cli.StringFlag{
					Name:  "name, m",
					Value: "",
					Usage: " new framework `NAME`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " new framework `DESCRIPTION`",
				},
				cli.StringSliceFlag{
					Name:  "criterion, c",
					Usage: " replace criteria with `CRITERION`, may be repeated",
				},
				cli.BoolFlag{
					Name:  "clear-criteria",
					Usage: " replace criteria with an empty list",
				},
				cli.BoolFlag{
					Name:  "activate",
					Usage: " mark the framework active",
				},
				cli.BoolFlag{
					Name:  "deactivate",
					Usage: " mark the framework inactive",
				},
			},
			Action: runUpdateFramework,
		},
		{
			Name:      "create-asset",
			Usage:     "create an asset profile owned by the identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "id",
					Usage: "*asset `ID` unique for this identity",
				},
				cli.StringFlag{
					Name:  "name, m",
					Value: "",
					Usage: "*asset `NAME`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " asset `DESCRIPTION`",
				},
				cli.StringFlag{
					Name:  "type, t",
					Value: "business",
					Usage: " asset `TYPE` [business|real_estate|intellectual|digital|other]",
				},
				cli.StringFlag{
					Name:  "metadata-uri, u",
					Value: "",
					Usage: " optional metadata `URI`",
				},
			},
			Action: runCreateAsset,
		},
		{
			Name:      "issue",
			Usage:     "attest to an asset under a framework",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "framework, f",
					Value: "",
					Usage: "*framework `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*asset `ADDRESS`",
				},
				cli.Uint64Flag{
					Name:  "score, s",
					Usage: "*trust `SCORE` 0..100",
				},
				cli.StringFlag{
					Name:  "evidence, e",
					Value: "",
					Usage: " supporting `EVIDENCE`",
				},
				cli.DurationFlag{
					Name:  "expires-in, x",
					Usage: " attestation expires after `DURATION` from now",
				},
			},
			Action: runIssue,
		},
		{
			Name:      "framework",
			Usage:     "display a trust framework",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*framework `ADDRESS`",
				},
			},
			Action: runFramework,
		},
		{
			Name:      "asset",
			Usage:     "display an asset profile",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*asset `ADDRESS`",
				},
			},
			Action: runAsset,
		},
		{
			Name:      "trust",
			Usage:     "display a trust record with its status",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*trust record `ADDRESS`",
				},
			},
			Action: runTrust,
		},
		{
			Name:      "lookup",
			Usage:     "find the trust record of an issuer for an asset under a framework",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "framework, f",
					Value: "",
					Usage: "*framework `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "issuer, r",
					Value: "",
					Usage: " issuer identity `NAME` or account, default is the identity",
				},
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*asset `ADDRESS`",
				},
			},
			Action: runLookup,
		},
		{
			Name:      "derive",
			Usage:     "compute record addresses without contacting the node",
			ArgsUsage: "\n   (* = required)",
			Subcommands: []cli.Command{
				{
					Name:  "framework",
					Usage: "address of a framework",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "authority, o",
							Value: "",
							Usage: " authority identity `NAME` or account, default is the identity",
						},
						cli.Uint64Flag{
							Name:  "id",
							Usage: "*framework `ID`",
						},
					},
					Action: runDeriveFramework,
				},
				{
					Name:  "asset",
					Usage: "address of an asset profile",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "owner, o",
							Value: "",
							Usage: " owner identity `NAME` or account, default is the identity",
						},
						cli.Uint64Flag{
							Name:  "id",
							Usage: "*asset `ID`",
						},
					},
					Action: runDeriveAsset,
				},
				{
					Name:  "trust",
					Usage: "address of a trust record",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "framework, f",
							Value: "",
							Usage: "*framework `ADDRESS`",
						},
						cli.StringFlag{
							Name:  "issuer, r",
							Value: "",
							Usage: " issuer identity `NAME` or account, default is the identity",
						},
						cli.StringFlag{
							Name:  "asset, a",
							Value: "",
							Usage: "*asset `ADDRESS`",
						},
					},
					Action: runDeriveTrust,
				},
			},
		},
		{
			Name:      "decode",
			Usage:     "display a packed instruction and check its signature",
			ArgsUsage: "HEX",
			Action:    runDecode,
		},
		{
			Name:      "submit",
			Usage:     "send a packed instruction signed elsewhere",
			ArgsUsage: "HEX",
			Action:    runSubmit,
		},
		{
			Name:   "info",
			Usage:  "display trustd node information",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display trust-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "help", "h", "decode":
			return nil
		}

		network := checkNetwork(c.GlobalString("network"))
		if "" == network {
			return fmt.Errorf("network: %q can only be live/testing/local", c.GlobalString("network"))
		}

		file, err := configurationFile(c.App.Name, network)
		if nil != err {
			return err
		}
		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}
			c.App.Metadata["config"] = &metadata{
				file:    file,
				save:    false,
				testnet: chain.IsTesting(network),
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}
		config, err := configuration.Load(file)
		if nil != err {
			return err
		}
		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  config,
			testnet: config.TestNet,
			save:    false,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || !m.save {
			return nil
		}
		if m.verbose {
			fmt.Fprintf(m.e, "updating config file: %s\n", m.file)
		}
		return configuration.Save(m.file, m.config)
	}

	return app
}

// XDG_CONFIG_HOME/trust-cli/NETWORK-trust-cli.json
func configurationFile(name string, network string) (string, error) {
	p := os.Getenv("XDG_CONFIG_HOME")
	if "" == p {
		return "", fmt.Errorf("XDG_CONFIG_HOME environment is not set")
	}
	dir, err := checkFileExists(p)
	if nil != err {
		return "", err
	}
	if !dir {
		return "", fmt.Errorf("not a directory: %q", p)
	}
	return path.Join(p, name, network+"-"+name+".json"), nil
}
