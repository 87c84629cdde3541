package main

import (
	"fmt"
	"os"

	"github.com/rony4d/go-hashgraph/cmd/hashgraph/launcher"
)

func main() {
	if err := launcher.Launch(os.Args); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
