package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/westerntoad/ed256toolkit/protocol"
)

var encryptCommand = &cli.Command{
	Name:      "encrypt",
	Usage:     "symmetric sponge encrypt",
	ArgsUsage: "passphrase in-path out-path",
	Action:    runEncrypt,
}

var decryptCommand = &cli.Command{
	Name:      "decrypt",
	Usage:     "symmetric inverse; rejects on MAC mismatch",
	ArgsUsage: "passphrase in-path out-path",
	Action:    runDecrypt,
}

func runEncrypt(c *cli.Context) error {
	if c.NArg() != 3 {
		return cli.Exit("usage: encrypt passphrase in-path out-path", 1)
	}
	passphrase, inPath, outPath := c.Args().Get(0), c.Args().Get(1), c.Args().Get(2)

	plaintext, err := os.ReadFile(inPath)
	if err != nil {
		return errors.Wrapf(err, "encrypt: reading %s", inPath)
	}
	record, err := protocol.EncryptSymmetric([]byte(passphrase), plaintext)
	if err != nil {
		return errors.Wrap(err, "encrypt")
	}
	if err := os.WriteFile(outPath, record, 0o600); err != nil {
		return errors.Wrapf(err, "encrypt: writing %s", outPath)
	}
	return nil
}

func runDecrypt(c *cli.Context) error {
	if c.NArg() != 3 {
		return cli.Exit("usage: decrypt passphrase in-path out-path", 1)
	}
	passphrase, inPath, outPath := c.Args().Get(0), c.Args().Get(1), c.Args().Get(2)

	record, err := os.ReadFile(inPath)
	if err != nil {
		return errors.Wrapf(err, "decrypt: reading %s", inPath)
	}
	plaintext, err := protocol.DecryptSymmetric([]byte(passphrase), record)
	if err != nil {
		return errors.Wrap(err, "decrypt")
	}
	if err := os.WriteFile(outPath, plaintext, 0o600); err != nil {
		return errors.Wrapf(err, "decrypt: writing %s", outPath)
	}
	return nil
}
