package vehicle

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/oopdemos/patterns-go/observability"
)

// EngineStartedMessage is the fixed part of the log line emitted by StartEngine.
const EngineStartedMessage = "Двигун запущено"

// Kind is the type tag of a concrete vehicle variant.
type Kind string

// Supported vehicle kinds.
const (
	KindCar        Kind = "car"
	KindMotorcycle Kind = "motorcycle"
)

// Vehicle is a region-specific vehicle created by a VehicleFactory.
type Vehicle interface {
	// ID returns the identifier assigned at construction.
	ID() uuid.UUID
	Make() string
	Model() string

	// RegionSpec returns the region tag bound by the factory that built the vehicle.
	RegionSpec() Region

	Kind() Kind

	// StartEngine logs that the engine was started. It changes no state.
	StartEngine()
}

// base holds the state shared by all vehicle variants.
type base struct {
	id         uuid.UUID
	make       string
	model      string
	regionSpec Region
	logger     observability.Logger
}

func newBase(vehicleMake, model string, regionSpec Region, logger observability.Logger) base {
	return base{
		id:         uuid.New(),
		make:       vehicleMake,
		model:      model,
		regionSpec: regionSpec,
		logger:     logger,
	}
}

func (b base) ID() uuid.UUID { return b.id }
func (b base) Make() string { return b.make }
func (b base) Model() string { return b.model }
func (b base) RegionSpec() Region { return b.regionSpec }

// logEngineStarted logs the engine start at info level if the logger is configured.
func (b base) logEngineStarted(kind Kind) {
	if b.logger == nil {
		return
	}

	b.logger.Info(
		fmt.Sprintf("%s %s (%s Spec): %s", b.make, b.model, b.regionSpec, EngineStartedMessage),
		observability.LogAttrVehicleID, b.id.String(),
		observability.LogAttrKind, string(kind),
		observability.LogAttrRegion, string(b.regionSpec),
	)
}

// Car is the passenger car variant of Vehicle.
type Car struct {
	base
}

// NewCar creates a Car. Factories are the usual way to obtain one.
func NewCar(vehicleMake, model string, regionSpec Region, logger observability.Logger) Car {
	return Car{base: newBase(vehicleMake, model, regionSpec, logger)}
}

// Kind returns KindCar.
func (c Car) Kind() Kind {
	return KindCar
}

// StartEngine logs the engine start.
func (c Car) StartEngine() {
	c.logEngineStarted(KindCar)
}

// Motorcycle is the two-wheeled variant of Vehicle.
type Motorcycle struct {
	base
}

// NewMotorcycle creates a Motorcycle. Factories are the usual way to obtain one.
func NewMotorcycle(vehicleMake, model string, regionSpec Region, logger observability.Logger) Motorcycle {
	return Motorcycle{base: newBase(vehicleMake, model, regionSpec, logger)}
}

// Kind returns KindMotorcycle.
func (m Motorcycle) Kind() Kind {
	return KindMotorcycle
}

// StartEngine logs the engine start.
func (m Motorcycle) StartEngine() {
	m.logEngineStarted(KindMotorcycle)
}

// Compile-time checks that both variants implement Vehicle.
var (
	_ Vehicle = Car{}
	_ Vehicle = Motorcycle{}
)
