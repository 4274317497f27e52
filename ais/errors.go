package ais

import "errors"

// ErrUnknownMessage is returned when msg_type is out of the 0-27 range
// this module understands, or a DAC/FID-specialized sub-decoder is asked
// to handle a message it doesn't recognize (§7).
var ErrUnknownMessage = errors.New("ais: unknown message type")
