package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/westerntoad/ed256toolkit/sha3"
)

var macCommand = &cli.Command{
	Name:      "mac",
	Usage:     "absorb passphrase then file, squeeze bits",
	ArgsUsage: "suffix passphrase path out-bits",
	Action:    runMAC,
}

func runMAC(c *cli.Context) error {
	if c.NArg() != 4 {
		return cli.Exit("usage: mac suffix passphrase path out-bits", 1)
	}
	suffix, err := strconv.Atoi(c.Args().Get(0))
	if err != nil {
		return errors.Wrap(err, "mac: parsing suffix")
	}
	passphrase := c.Args().Get(1)
	path := c.Args().Get(2)
	outBits, err := strconv.Atoi(c.Args().Get(3))
	if err != nil {
		return errors.Wrap(err, "mac: parsing out-bits")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "mac: reading %s", path)
	}

	var h sha3.ShakeHash
	switch suffix {
	case 128:
		h = sha3.NewShake128()
	case 256:
		h = sha3.NewShake256()
	default:
		return cli.Exit(fmt.Sprintf("mac: unsupported suffix %d", suffix), 1)
	}
	h.Write([]byte(passphrase))
	h.Write(data)
	out := make([]byte, outBits/8)
	h.Read(out)
	fmt.Println(hex.EncodeToString(out))
	return nil
}
