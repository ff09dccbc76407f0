package main

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/westerntoad/ed256toolkit/internal/fileformat"
	"github.com/westerntoad/ed256toolkit/protocol"
)

var keygenCommand = &cli.Command{
	Name:      "keygen",
	Usage:     "write public key (hex x and y lines)",
	ArgsUsage: "passphrase out-path",
	Action:    runKeygen,
}

func runKeygen(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("usage: keygen passphrase out-path", 1)
	}
	passphrase, outPath := c.Args().Get(0), c.Args().Get(1)

	kp := protocol.Keygen([]byte(passphrase))
	if err := fileformat.WritePublicKey(outPath, kp.Public); err != nil {
		return errors.Wrap(err, "keygen")
	}
	return nil
}
