package main

import (
	"fmt"
	"io"
	"os"

	"github.com/oopdemos/patterns-go/example/shared/shell/config"
	"github.com/oopdemos/patterns-go/vehicle"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	cfg, err := config.ParseLoggingFlags("vehicles", args)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "invalid configuration: %v\n", err)
		return 2
	}

	logger := cfg.NewLogger(stderr)

	usFactory := vehicle.NewUSVehicleFactory(logger)
	euFactory := vehicle.NewEUVehicleFactory(logger)

	usCar := usFactory.CreateCar("Hyundai", "Santafe")
	euCar := euFactory.CreateCar("ZAZ", "Slavuta")

	usCar.StartEngine()
	euCar.StartEngine()

	return 0
}
