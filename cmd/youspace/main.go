package main

import (
	"os"

	"github.com/youspace/youspace/spaceservice"
)

func main() {
	if err := spaceservice.Run(); err != nil {
		os.Exit(1)
	}
}
