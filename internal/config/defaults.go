package config

import (
	_ "embed"
)

//go:embed defaults/stickman.ini
var exampleINI []byte

// Inline defaults used when a key is absent from the file.
const (
	DefaultWidth             = 80
	DefaultHeight            = 24
	DefaultFPS               = 15
	DefaultImagesDir         = "assets/"
	DefaultBackgroundImage   = "background.txt"
	DefaultBackgroundColor   = "gray"
	DefaultPlayerX           = 5
	DefaultPlayerY           = 5
	DefaultWalkRightVelocity = -2
	DefaultWalkRight         = "walk1.txt+walk2.txt"
	DefaultSize              = "Normal"
	DefaultPlayerColor       = "white"
	DefaultScale             = 1.0
)

// Upper bounds on values read from the file.
const (
	MaxSceneSize = 1000 // Cells, either dimension
	MaxFPS       = 240
	MaxScale     = 16.0
)

// ExampleINI returns the annotated example configuration file.
func ExampleINI() []byte {
	return exampleINI
}
