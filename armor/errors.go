package armor

import "errors"

// ErrInvalidPayload is returned when an armored payload contains a byte
// outside the armor alphabet (ASCII 0x30-0x57, 0x60-0x77).
var ErrInvalidPayload = errors.New("armor: invalid payload character")
