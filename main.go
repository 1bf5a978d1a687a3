package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"snowfall/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.GetLogger().Error("Command execution failed", zap.Error(err))
		logging.Sync()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Sync()
}
