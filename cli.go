//go:build cli
// +build cli

package main

import (
	"mobilia.GO/cmd"
	"mobilia.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
