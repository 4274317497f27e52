package ais

// CommState is the decoded SOTDMA/ITDMA communication-state field shared
// by types 1, 2, 4, 9, 11, 18 (§4.7's "Communication-state decoder").
// Only the subset matching (msgType, syncState, slotTimeout) is
// meaningful; the rest are left at zero.
type CommState struct {
	SyncState        uint8
	SlotTimeout      uint8
	ReceivedStations uint16
	SlotNumber       uint16
	UTCHour          uint8
	UTCMinute        uint8
	SlotOffset       uint16
	KeepFlag         bool
	SlotIncrement    uint16
	NumSlots         uint8
	ITDMA            bool
}

// DecodeCommState interprets a raw communication-state field. msgType 18
// passes commStateSelector (the class B "comm state selector" flag) to
// choose between the SOTDMA (selector=0) and ITDMA (selector=1) layouts;
// it is ignored for the other message types, which are always SOTDMA.
func DecodeCommState(msgType int, raw uint32, width int, commStateSelector bool) CommState {
	itdma := msgType == 18 && commStateSelector
	if itdma {
		return decodeITDMA(raw)
	}
	return decodeSOTDMA(raw)
}

// decodeSOTDMA interprets the 19-bit SOTDMA layout used by types 1, 2, 4,
// 9, 11 and class B types 18 (when comm_state_selector=0): sync_state(2),
// slot_timeout(3), then a sub-field whose meaning depends on
// slot_timeout's value.
func decodeSOTDMA(raw uint32) CommState {
	cs := CommState{}
	cs.SyncState = uint8((raw >> 17) & 0x3)
	cs.SlotTimeout = uint8((raw >> 14) & 0x7)
	sub := raw & 0x3FFF // low 14 bits
	switch cs.SlotTimeout {
	case 0:
		cs.SlotOffset = uint16(sub & 0x3FFF)
	case 1:
		cs.UTCHour = uint8((sub >> 9) & 0x1F)
		cs.UTCMinute = uint8((sub >> 3) & 0x3F)
	case 2, 4, 6:
		cs.SlotNumber = uint16(sub & 0x3FFF)
	case 3, 5, 7:
		cs.ReceivedStations = uint16(sub & 0x3FFF)
	}
	return cs
}

// decodeITDMA interprets the 20-bit ITDMA layout used by type 18 (class B,
// comm_state_selector=1): the selector bit, then sync_state(2),
// slot_increment(13), num_slots(3), keep_flag(1).
func decodeITDMA(raw uint32) CommState {
	return CommState{
		ITDMA:         true,
		SyncState:     uint8((raw >> 17) & 0x3),
		SlotIncrement: uint16((raw >> 4) & 0x1FFF),
		NumSlots:      uint8((raw >> 1) & 0x7),
		KeepFlag:      raw&0x1 != 0,
	}
}

// EncodeCommState packs a CommState back into its raw bit layout,
// inverting DecodeCommState.
func EncodeCommState(cs CommState) uint32 {
	if cs.ITDMA {
		raw := uint32(1) << 19 // comm_state_selector
		raw |= uint32(cs.SyncState&0x3) << 17
		raw |= uint32(cs.SlotIncrement&0x1FFF) << 4
		raw |= uint32(cs.NumSlots&0x7) << 1
		if cs.KeepFlag {
			raw |= 1
		}
		return raw
	}
	raw := uint32(cs.SyncState&0x3) << 17
	raw |= uint32(cs.SlotTimeout&0x7) << 14
	switch cs.SlotTimeout {
	case 0:
		raw |= uint32(cs.SlotOffset) & 0x3FFF
	case 1:
		raw |= (uint32(cs.UTCHour) & 0x1F) << 9
		raw |= (uint32(cs.UTCMinute) & 0x3F) << 3
	case 2, 4, 6:
		raw |= uint32(cs.SlotNumber) & 0x3FFF
	case 3, 5, 7:
		raw |= uint32(cs.ReceivedStations) & 0x3FFF
	}
	return raw
}
