// Command ed256toolkit is the CLI driver over package protocol: hash,
// mac, encrypt, decrypt, keygen, encrypt-pk, decrypt-pk, sign, and
// verify, each taking the positional arguments documented in its
// Usage string. It is the thin external-I/O layer; none of the
// cryptographic design lives here.
package main

import (
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/urfave/cli/v2"
)

func main() {
	defer glog.Flush()

	app := &cli.App{
		Name:  "ed256toolkit",
		Usage: "Keccak/SHA-3/SHAKE hashing and NUMS-256 public-key cryptography",
		Commands: []*cli.Command{
			hashCommand,
			macCommand,
			encryptCommand,
			decryptCommand,
			keygenCommand,
			encryptPKCommand,
			decryptPKCommand,
			signCommand,
			verifyCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		glog.Errorf("%+v", err)
		os.Exit(1)
	}
}
