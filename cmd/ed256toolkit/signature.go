package main

import (
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/westerntoad/ed256toolkit/internal/fileformat"
	"github.com/westerntoad/ed256toolkit/protocol"
)

var signCommand = &cli.Command{
	Name:      "sign",
	Usage:     "Schnorr sign",
	ArgsUsage: "passphrase msg-path out-path",
	Action:    runSign,
}

var verifyCommand = &cli.Command{
	Name:      "verify",
	Usage:     "print verdict",
	ArgsUsage: "msg-path sig-path pk-path",
	Action:    runVerify,
}

func runSign(c *cli.Context) error {
	if c.NArg() != 3 {
		return cli.Exit("usage: sign passphrase msg-path out-path", 1)
	}
	passphrase, msgPath, outPath := c.Args().Get(0), c.Args().Get(1), c.Args().Get(2)

	message, err := os.ReadFile(msgPath)
	if err != nil {
		return errors.Wrapf(err, "sign: reading %s", msgPath)
	}
	sig, err := protocol.Sign([]byte(passphrase), message)
	if err != nil {
		return errors.Wrap(err, "sign")
	}
	if err := fileformat.WriteSignature(outPath, sig); err != nil {
		return errors.Wrap(err, "sign: writing signature")
	}
	return nil
}

func runVerify(c *cli.Context) error {
	if c.NArg() != 3 {
		return cli.Exit("usage: verify msg-path sig-path pk-path", 1)
	}
	msgPath, sigPath, pkPath := c.Args().Get(0), c.Args().Get(1), c.Args().Get(2)

	message, err := os.ReadFile(msgPath)
	if err != nil {
		return errors.Wrapf(err, "verify: reading %s", msgPath)
	}
	sig, err := fileformat.ReadSignature(sigPath)
	if err != nil {
		return errors.Wrap(err, "verify: reading signature")
	}
	v, err := fileformat.ReadPublicKey(pkPath)
	if err != nil {
		return errors.Wrap(err, "verify: reading public key")
	}

	if err := protocol.Verify(message, sig, v); err != nil {
		glog.V(1).Infof("verify: rejected: %s", err)
		fmt.Println("INVALID")
		return cli.Exit("", 1)
	}
	fmt.Println("VALID")
	return nil
}
