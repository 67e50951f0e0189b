//go:build tinygo && baremetal && picocalc

package hal

import "time"

const (
	picoCalcWidth  = 320
	picoCalcHeight = 320
)

type picoCalcHAL struct {
	logger *uartLogger
	fb     Framebuffer
	kbd    Keyboard
	t      *tinyGoTime
}

// New returns a PicoCalc HAL (Pico/Pico2 on the PicoCalc carrier): ILI9488
// panel on SPI1, keyboard MCU on I2C, log lines on UART0.
//
// Without a panel frames stay in memory; without the keyboard MCU keys are
// read from the UART instead.
func New() HAL {
	uart := configureUART0()
	logger := &uartLogger{uart: uart}

	var blit func([]byte, int, int) error
	if lcd, err := initILI9488(); err == nil {
		blit = lcd.blit
	} else {
		logger.WriteLineString("hal: display: " + err.Error())
	}

	var kbd Keyboard
	if kb, err := newPicoCalcKeyboard(); err == nil {
		kbd = kb
	} else {
		logger.WriteLineString("hal: keyboard: " + err.Error())
		kbd = newUARTKeyboard(uart)
	}

	return &picoCalcHAL{
		logger: logger,
		fb:     newMemFramebuffer(picoCalcWidth, picoCalcHeight, blit),
		kbd:    kbd,
		t:      newTinyGoTime(),
	}
}

func (h *picoCalcHAL) Logger() Logger   { return h.logger }
func (h *picoCalcHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *picoCalcHAL) Input() Input     { return tinyGoInput{kbd: h.kbd} }
func (h *picoCalcHAL) Time() Time       { return h.t }

type picoCalcKeyboard struct {
	ch chan KeyEvent
}

func (k *picoCalcKeyboard) Events() <-chan KeyEvent { return k.ch }

func newPicoCalcKeyboard() (*picoCalcKeyboard, error) {
	kbd, err := initI2CKeyboard()
	if err != nil {
		return nil, err
	}
	dev := &picoCalcKeyboard{ch: make(chan KeyEvent, 64)}

	go func() {
		for {
			if ev, ok := kbd.readEvent(); ok {
				select {
				case dev.ch <- ev:
				default:
				}
			}
			time.Sleep(2 * time.Millisecond)
		}
	}()

	return dev, nil
}
