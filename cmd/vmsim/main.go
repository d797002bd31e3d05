package main

import (
	"github.com/joho/godotenv"
	"github.com/tebeka/atexit"
)

func main() {
	// A .env file can provide VMSIM_* defaults for any run flag.
	_ = godotenv.Load()

	Execute()

	atexit.Exit(0)
}
