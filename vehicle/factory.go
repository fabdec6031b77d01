package vehicle

import (
	"errors"
	"fmt"

	"github.com/oopdemos/patterns-go/observability"
)

// ErrUnknownRegion is returned by FactoryFor for a region without a factory.
var ErrUnknownRegion = errors.New("unknown region")

// Region identifies the market variant a vehicle was built for.
type Region string

// Supported regions.
const (
	RegionUS Region = "US"
	RegionEU Region = "EU"
)

// Regions returns all regions that have a factory, in a stable order.
func Regions() []Region {
	return []Region{RegionUS, RegionEU}
}

// VehicleFactory creates vehicles pre-bound to the factory's region.
// Make and model are not validated; any string is accepted.
type VehicleFactory interface {
	CreateCar(vehicleMake, model string) Vehicle
	CreateMotorcycle(vehicleMake, model string) Vehicle
}

// USVehicleFactory builds vehicles to US specification.
type USVehicleFactory struct {
	logger observability.Logger
}

// NewUSVehicleFactory creates a USVehicleFactory. The logger is handed to every vehicle it builds and may be nil.
func NewUSVehicleFactory(logger observability.Logger) USVehicleFactory {
	return USVehicleFactory{logger: logger}
}

// CreateCar returns a US spec Car.
func (f USVehicleFactory) CreateCar(vehicleMake, model string) Vehicle {
	return NewCar(vehicleMake, model, RegionUS, f.logger)
}

// CreateMotorcycle returns a US spec Motorcycle.
func (f USVehicleFactory) CreateMotorcycle(vehicleMake, model string) Vehicle {
	return NewMotorcycle(vehicleMake, model, RegionUS, f.logger)
}

// EUVehicleFactory builds vehicles to EU specification.
type EUVehicleFactory struct {
	logger observability.Logger
}

// NewEUVehicleFactory creates an EUVehicleFactory. The logger is handed to every vehicle it builds and may be nil.
func NewEUVehicleFactory(logger observability.Logger) EUVehicleFactory {
	return EUVehicleFactory{logger: logger}
}

// CreateCar returns an EU spec Car.
func (f EUVehicleFactory) CreateCar(vehicleMake, model string) Vehicle {
	return NewCar(vehicleMake, model, RegionEU, f.logger)
}

// CreateMotorcycle returns an EU spec Motorcycle.
func (f EUVehicleFactory) CreateMotorcycle(vehicleMake, model string) Vehicle {
	return NewMotorcycle(vehicleMake, model, RegionEU, f.logger)
}

// FactoryFor returns the factory bound to the given region.
func FactoryFor(region Region, logger observability.Logger) (VehicleFactory, error) {
	switch region {
	case RegionUS:
		return NewUSVehicleFactory(logger), nil
	case RegionEU:
		return NewEUVehicleFactory(logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegion, string(region))
	}
}

var (
	_ VehicleFactory = USVehicleFactory{}
	_ VehicleFactory = EUVehicleFactory{}
)
