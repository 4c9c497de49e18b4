package main

import (
	"os"

	"github.com/joho/godotenv"

	"gridcourier/internal/cli"
)

func main() {
	_ = godotenv.Load()
	os.Exit(cli.Execute())
}
