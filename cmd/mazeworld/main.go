// Command mazeworld generates perfect mazes and solves them, either headless
// (solve) or interactively in the terminal (play).
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
