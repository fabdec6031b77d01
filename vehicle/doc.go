// Package vehicle builds region-specific vehicles through abstract factories.
//
// A VehicleFactory binds a fixed region tag ("US" or "EU") into every Car and
// Motorcycle it creates. The region, make, and model of a vehicle are set once
// at construction and never change afterwards.
//
// Typical use:
//
//	factory, err := vehicle.FactoryFor(vehicle.RegionEU, logger)
//	if err != nil {
//		// unknown region
//	}
//
//	car := factory.CreateCar("ZAZ", "Slavuta")
//	car.StartEngine() // logs "ZAZ Slavuta (EU Spec): Двигун запущено"
package vehicle
