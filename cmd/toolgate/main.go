// cmd/toolgate/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dalemusser/waffle/app"
	"github.com/toolgate/toolgate/internal/app/bootstrap"
)

func main() {
	if err := app.Run(context.Background(), bootstrap.Hooks); err != nil {
		fmt.Fprintln(os.Stderr, "toolgate:", err)
		os.Exit(1)
	}
}
