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

var hashCommand = &cli.Command{
	Name:      "hash",
	Usage:     "print hex SHA3-suffix of file bytes",
	ArgsUsage: "suffix path",
	Action:    runHash,
}

func runHash(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("usage: hash suffix path", 1)
	}
	suffix, err := strconv.Atoi(c.Args().Get(0))
	if err != nil {
		return errors.Wrap(err, "hash: parsing suffix")
	}
	path := c.Args().Get(1)

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "hash: reading %s", path)
	}

	digest := sha3.Sum3(suffix, data)
	fmt.Println(hex.EncodeToString(digest))
	return nil
}
