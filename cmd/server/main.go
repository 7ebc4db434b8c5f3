package main

import (
	"os"

	"multi-ai/backend/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
