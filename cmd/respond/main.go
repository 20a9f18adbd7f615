package main

import (
	"fmt"
	"os"

	"github.com/xy-planning-network/respond/cmd/respond/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
