// echochat is a terminal chat widget that answers every message with an echo.
package main

import (
	"fmt"
	"os"

	"github.com/linanwx/echochat/cmd"
	"github.com/linanwx/echochat/config"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "dotenv error:", err)
	}
	cmd.Execute()
}
