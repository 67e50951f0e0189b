//go:build tinygo && baremetal && picocalc

package hal

import (
	"errors"
	"machine"
	"time"
)

const (
	picoCalcKbdAddr uint16 = 0x1F
	picoCalcKbdFIFO byte   = 0x09
)

// Keyboard MCU FIFO event types.
const (
	picoCalcPress   byte = 0x01
	picoCalcRelease byte = 0x03
)

var picoCalcKeys = map[byte]KeyCode{
	0x08: KeyBackspace,
	0x09: KeyTab,
	0x0A: KeyEnter,
	0x0D: KeyEnter,
	0x81: KeyF1,
	0x82: KeyF2,
	0x83: KeyF3,
	0xB1: KeyEscape,
	0xB4: KeyLeft,
	0xB5: KeyUp,
	0xB6: KeyDown,
	0xB7: KeyRight,
	0xD6: KeyPageUp,
	0xD7: KeyPageDown,
}

var errNoKeyboard = errors.New("keyboard: I2C unavailable")

type i2cKeyboard struct {
	i2c   *machine.I2C
	write [1]byte
	read  [2]byte
}

func initI2CKeyboard() (*i2cKeyboard, error) {
	// I2C1 is the PicoCalc wiring; some targets only expose I2C0.
	for _, bus := range []*machine.I2C{machine.I2C1, machine.I2C0} {
		if bus == nil {
			continue
		}
		for _, freq := range []uint32{100_000, 400_000} {
			err := bus.Configure(machine.I2CConfig{
				SCL:       machine.GP7,
				SDA:       machine.GP6,
				Frequency: freq,
			})
			if err != nil {
				continue
			}
			k := &i2cKeyboard{i2c: bus, write: [1]byte{picoCalcKbdFIFO}}
			// The keyboard MCU can be slow to answer after power-on.
			for i := 0; i < 50; i++ {
				if k.poll() == nil {
					return k, nil
				}
				time.Sleep(10 * time.Millisecond)
			}
		}
	}
	return nil, errNoKeyboard
}

func (k *i2cKeyboard) poll() error {
	return k.i2c.Tx(picoCalcKbdAddr, k.write[:], k.read[:])
}

// readEvent pops one FIFO entry. Named keys report press and release; other
// keys report their character on press only.
func (k *i2cKeyboard) readEvent() (KeyEvent, bool) {
	if k.poll() != nil {
		return KeyEvent{}, false
	}
	kind, key := k.read[0], k.read[1]
	if key == 0 || (kind != picoCalcPress && kind != picoCalcRelease) {
		return KeyEvent{}, false
	}
	press := kind == picoCalcPress
	if code, ok := picoCalcKeys[key]; ok {
		return KeyEvent{Code: code, Press: press}, true
	}
	if !press || key >= 0x80 {
		return KeyEvent{}, false
	}
	return KeyEvent{Rune: rune(key), Press: true}, true
}
