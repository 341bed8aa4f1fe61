package accel

import (
	"bytes"
	"math"
	"testing"

	"periph.io/x/periph/conn/physic"
)

// recordingBus is an i2c.Bus that records writes and answers reads.
type recordingBus struct {
	addr  uint16
	write []byte
	reply []byte
}

func (b *recordingBus) String() string                    { return "recording" }
func (b *recordingBus) SetSpeed(f physic.Frequency) error { return nil }
func (b *recordingBus) Tx(addr uint16, w, r []byte) error {
	b.addr = addr
	b.write = append([]byte(nil), w...)
	copy(r, b.reply)
	return nil
}

func TestBusRegisterAccess(t *testing.T) {
	rb := &recordingBus{reply: []byte{0xE5}}
	bus := Bus{rb}

	buf := make([]byte, 1)
	if err := bus.ReadRegister(0x53, 0x00, buf); err != nil {
		t.Fatal(err)
	}
	if rb.addr != 0x53 || !bytes.Equal(rb.write, []byte{0x00}) || buf[0] != 0xE5 {
		t.Errorf("read: addr=%#x write=%v buf=%v", rb.addr, rb.write, buf)
	}

	if err := bus.WriteRegister(0x53, 0x2D, []byte{0x08}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(rb.write, []byte{0x2D, 0x08}) {
		t.Errorf("write: got %v", rb.write)
	}
}

func TestMicroG(t *testing.T) {
	if got := microG(1_000_000); math.Abs(got-StandardGravity) > 1e-9 {
		t.Errorf("1g: got %v", got)
	}
	if got := microG(-500_000); math.Abs(got+StandardGravity/2) > 1e-9 {
		t.Errorf("-0.5g: got %v", got)
	}
}
