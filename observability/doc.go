// Package observability defines the logging capability shared by the vehicle
// and library packages.
//
// Components never reach for a process-wide logger. They receive a Logger at
// construction time and stay silent when none is given. A *slog.Logger satisfies
// the interface directly:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
//	factory := vehicle.NewUSVehicleFactory(logger)
package observability
