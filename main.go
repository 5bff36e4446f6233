/*
Copyright © 2025 lehoangvu
*/
package main

import (
	"github.com/joho/godotenv"
	"github.com/lehoangvu/docchat-be/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	// .env is optional; API keys may come from the shell environment.
	_ = godotenv.Load()
}
