package main

import (
	"context"
	"os"

	"github.com/ardnew/seedmap/cli"
	"github.com/ardnew/seedmap/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		log.Error("run failed", cli.ErrorAttr(err))
		os.Exit(1)
	}
}
