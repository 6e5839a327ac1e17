package main

import (
	"context"
	"os"

	"github.com/agbru/fibserve/internal/app"
	apperrors "github.com/agbru/fibserve/internal/errors"
)

func main() {
	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(apperrors.ExitCode(err))
	}

	os.Exit(application.Run(context.Background()))
}
