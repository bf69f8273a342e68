package main

import (
	"fmt"
	"os"

	"github.com/saulo-duarte/eternal-quest/internal/cli"
)

func main() {
	if err := cli.NewApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitInternalError)
	}
}
