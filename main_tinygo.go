//go:build tinygo

package main

import (
	"fixgl/app"
	"fixgl/hal"
)

func main() {
	app.Run(hal.New())
}
