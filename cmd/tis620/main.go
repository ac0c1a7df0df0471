// tis620 converts text between UTF-8 and TIS-620 over files or pipes.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

const appVer = "1.0.0"

func main() {
	app := cli.NewApp()
	app.Name = "tis620"
	app.Usage = "Convert text between UTF-8 and TIS-620"
	app.Version = appVer
	app.Commands = []cli.Command{
		cmdEncode,
		cmdDecode,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "tis620:", err)
		os.Exit(1)
	}
}
