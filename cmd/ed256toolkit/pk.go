package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/westerntoad/ed256toolkit/internal/fileformat"
	"github.com/westerntoad/ed256toolkit/protocol"
)

var encryptPKCommand = &cli.Command{
	Name:      "encrypt-pk",
	Usage:     "ECIES-style public-key encryption",
	ArgsUsage: "pk-path msg-path out-path",
	Action:    runEncryptPK,
}

var decryptPKCommand = &cli.Command{
	Name:      "decrypt-pk",
	Usage:     "inverse of encrypt-pk",
	ArgsUsage: "passphrase in-path out-path",
	Action:    runDecryptPK,
}

func runEncryptPK(c *cli.Context) error {
	if c.NArg() != 3 {
		return cli.Exit("usage: encrypt-pk pk-path msg-path out-path", 1)
	}
	pkPath, msgPath, outPath := c.Args().Get(0), c.Args().Get(1), c.Args().Get(2)

	v, err := fileformat.ReadPublicKey(pkPath)
	if err != nil {
		return errors.Wrap(err, "encrypt-pk: reading public key")
	}
	plaintext, err := os.ReadFile(msgPath)
	if err != nil {
		return errors.Wrapf(err, "encrypt-pk: reading %s", msgPath)
	}

	ct, err := protocol.Encrypt(plaintext, v)
	if err != nil {
		return errors.Wrap(err, "encrypt-pk")
	}
	if err := fileformat.WriteCiphertext(outPath, ct); err != nil {
		return errors.Wrap(err, "encrypt-pk: writing ciphertext")
	}
	return nil
}

func runDecryptPK(c *cli.Context) error {
	if c.NArg() != 3 {
		return cli.Exit("usage: decrypt-pk passphrase in-path out-path", 1)
	}
	passphrase, inPath, outPath := c.Args().Get(0), c.Args().Get(1), c.Args().Get(2)

	ct, err := fileformat.ReadCiphertext(inPath)
	if err != nil {
		return errors.Wrap(err, "decrypt-pk: reading ciphertext")
	}
	plaintext, err := protocol.Decrypt(ct, []byte(passphrase))
	if err != nil {
		return errors.Wrap(err, "decrypt-pk")
	}
	if err := os.WriteFile(outPath, plaintext, 0o600); err != nil {
		return errors.Wrapf(err, "decrypt-pk: writing %s", outPath)
	}
	return nil
}
