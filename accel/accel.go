// Package accel reads the tilt sensor used for tempo control.
package accel

import (
	"fmt"

	"periph.io/x/periph/conn/i2c"
	"periph.io/x/periph/conn/i2c/i2creg"
	"periph.io/x/periph/host"
	"tinygo.org/x/drivers/adxl345"
)

// StandardGravity converts g to m/s^2
const StandardGravity = 9.80665

// Sensor reports acceleration in m/s^2
type Sensor interface {
	Acceleration() (x, y, z float64, err error)
}

// ADXL345 is an ADXL345 accelerometer on a host I2C bus.
type ADXL345 struct {
	bus    i2c.BusCloser
	device adxl345.Device
}

// OpenADXL345 opens the named I2C bus ("" picks the first one) and configures
// the sensor on it.
func OpenADXL345(busName string) (*ADXL345, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("open i2c %q: %w", busName, err)
	}

	a := &ADXL345{
		bus:    bus,
		device: adxl345.New(Bus{bus}),
	}
	a.device.Configure()
	return a, nil
}

// Acceleration returns the reading in m/s^2
func (a *ADXL345) Acceleration() (x, y, z float64, err error) {
	ux, uy, uz, err := a.device.ReadAcceleration()
	if err != nil {
		return 0, 0, 0, err
	}
	return microG(ux), microG(uy), microG(uz), nil
}

func (a *ADXL345) Close() error {
	a.device.Halt()
	return a.bus.Close()
}

// microG converts the driver's micro-g readings to m/s^2
func microG(v int32) float64 {
	return float64(v) / 1e6 * StandardGravity
}

// Bus adapts a periph I2C bus to the TinyGo drivers bus interface. Tx comes
// from the embedded bus.
type Bus struct {
	i2c.Bus
}

func (b Bus) ReadRegister(addr uint8, reg uint8, buf []byte) error {
	return b.Bus.Tx(uint16(addr), []byte{reg}, buf)
}

func (b Bus) WriteRegister(addr uint8, reg uint8, buf []byte) error {
	w := append([]byte{reg}, buf...)
	return b.Bus.Tx(uint16(addr), w, nil)
}
