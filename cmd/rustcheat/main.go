package main

import (
	"os"

	"github.com/harrison/rustcheat/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
