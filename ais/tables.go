package ais

// Field-table builders. Keeping these one-liners terse mirrors the
// teacher's canboat-derived field tables: the table itself carries all
// the meaning, the builder calls are just punctuation.
func u(name string, width int) Field  { return Field{Name: name, Width: width, Kind: KindUint} }
func i(name string, width int) Field  { return Field{Name: name, Width: width, Kind: KindInt} }
func bl(name string) Field            { return Field{Name: name, Width: 1, Kind: KindBool} }
func t6(name string, width int) Field { return Field{Name: name, Width: width, Kind: KindText6} }
func rb(name string, width int) Field { return Field{Name: name, Width: width, Kind: KindBits} }
func tail(name string) Field          { return Field{Name: name, Kind: KindBits, Tail: true} }
func en(name string, width int, spec *EnumSpec) Field {
	return Field{Name: name, Width: width, Kind: KindEnum, Enum: spec}
}
func us(name string, width int, scale float64) Field {
	return Field{Name: name, Width: width, Kind: KindUint, Scale: scale}
}
func is(name string, width int, scale float64) Field {
	return Field{Name: name, Width: width, Kind: KindInt, Scale: scale}
}

// turnField is the type 1/2/3 8-bit signed rate-of-turn field, decoded
// through DecodeTurn's ITU-R M.1371 square-root scale.
func turnField() Field { return Field{Name: "turn", Width: 8, Kind: KindTurn} }

// commStateField is the SOTDMA/ITDMA "radio" field shared by types 1, 2,
// 3, 4, 11 (width 19) and types 9 and 18 (width 20), decoded through
// DecodeCommState.
func commStateField(width int) Field {
	return Field{Name: "radio", Width: width, Kind: KindCommState}
}

// header is the type(6) repeat(2) mmsi(30) triple every message starts
// with (§3 DATA MODEL).
func header() []Field {
	return []Field{u("type", 6), u("repeat", 2), u("mmsi", 30)}
}

// positionReportFields is the canonical type 1/2/3 table, bit widths
// matching §4.7 exactly.
func positionReportFields() []Field {
	f := header()
	return append(f,
		en("status", 4, NavStatus),
		turnField(),
		us("speed", 10, 0.1),
		bl("accuracy"),
		is("lon", 28, 1.0/600000),
		is("lat", 27, 1.0/600000),
		us("course", 12, 0.1),
		u("heading", 9),
		u("second", 6),
		en("maneuver", 2, ManeuverIndicator),
		rb("spare", 3),
		bl("raim"),
		commStateField(19),
	)
}

// baseStationFields is the canonical type 4/11 table.
func baseStationFields() []Field {
	f := header()
	return append(f,
		u("year", 14),
		u("month", 4),
		u("day", 5),
		u("hour", 5),
		u("minute", 6),
		u("second", 6),
		bl("accuracy"),
		is("lon", 28, 1.0/600000),
		is("lat", 27, 1.0/600000),
		en("epfd", 4, EPFD),
		rb("spare", 10),
		bl("raim"),
		commStateField(19),
	)
}

// staticVoyageFields is the canonical type 5 table, 424 bits total
// (§4.7), sent as 2 fragments.
func staticVoyageFields() []Field {
	f := header()
	return append(f,
		u("ais_version", 2),
		u("imo", 30),
		t6("callsign", 42),
		t6("shipname", 120),
		en("ship_type", 8, ShipType),
		u("to_bow", 9),
		u("to_stern", 9),
		u("to_port", 6),
		u("to_starboard", 6),
		en("epfd", 4, EPFD),
		u("month", 4),
		u("day", 5),
		u("hour", 5),
		u("minute", 6),
		us("draught", 8, 0.1),
		t6("destination", 120),
		bl("dte"),
		rb("spare", 1),
	)
}

// binaryMessageFields is the type 6 (addressed) / type 8 (broadcast)
// table. Type 6 carries an extra dest_mmsi/retransmit pair type 8 lacks.
func binaryMessageFields(addressed bool) []Field {
	f := header()
	f = append(f, u("seqno", 2))
	if addressed {
		f = append(f, u("dest_mmsi", 30), bl("retransmit"), rb("spare", 1))
	} else {
		f = append(f, rb("spare", 2))
	}
	return append(f, u("dac", 10), u("fid", 6), tail("data"))
}

// ackFields is the type 7/13 table: up to 4 (mmsi, seqno) pairs, all but
// the first optional (truncated tail yields zero values, matching the
// decoder contract).
func ackFields() []Field {
	f := header()
	f = append(f, rb("spare", 2))
	for n := 1; n <= 4; n++ {
		suffix := ""
		if n > 1 {
			suffix = itoa(n)
		}
		f = append(f, u("mmsi"+suffix, 30), u("seqno"+suffix, 2))
	}
	return f
}

func itoa(n int) string {
	return string(rune('0' + n))
}

// sarAircraftFields is the type 9 table.
func sarAircraftFields() []Field {
	f := header()
	return append(f,
		u("altitude", 12),
		u("speed", 10),
		bl("accuracy"),
		is("lon", 28, 1.0/600000),
		is("lat", 27, 1.0/600000),
		us("course", 12, 0.1),
		u("second", 6),
		u("reserved", 8),
		bl("dte"),
		rb("spare", 3),
		bl("assigned"),
		bl("raim"),
		commStateField(20),
	)
}

// utcInquiryFields is the type 10 table.
func utcInquiryFields() []Field {
	f := header()
	return append(f, rb("spare1", 2), u("dest_mmsi", 30), rb("spare2", 2))
}

// safetyTextFields is the type 12 (addressed) / 14 (broadcast) table.
func safetyTextFields(addressed bool) []Field {
	f := header()
	if addressed {
		f = append(f, u("seqno", 2), u("dest_mmsi", 30), bl("retransmit"), rb("spare", 1))
	} else {
		f = append(f, rb("spare", 2))
	}
	return append(f, t6("text", 0).asTail())
}

// asTail marks a text6 field as consuming the remaining bits (type 12/14
// safety text has no fixed length).
func (f Field) asTail() Field {
	f.Tail = true
	return f
}

// interrogationFields is the type 15 table: up to two stations, each
// with up to two requested message types.
func interrogationFields() []Field {
	f := header()
	return append(f,
		rb("spare1", 2),
		u("mmsi1", 30), u("msgtype1_1", 6), u("offset1_1", 12),
		rb("spare2", 2), u("msgtype1_2", 6), u("offset1_2", 12),
		rb("spare3", 2),
		u("mmsi2", 30), u("msgtype2_1", 6), u("offset2_1", 12),
		rb("spare4", 2),
	)
}

// assignmentFields is the type 16 table (a single assignment, or two
// when the payload is long enough — the second pair simply truncates to
// defaults on short payloads).
func assignmentFields() []Field {
	f := header()
	return append(f,
		rb("spare1", 2),
		u("mmsi1", 30), u("offset1", 12), u("increment1", 10),
		u("mmsi2", 30), u("offset2", 12), u("increment2", 10),
	)
}

// classBPositionFields is the type 18 table.
func classBPositionFields() []Field {
	f := header()
	return append(f,
		rb("reserved", 8),
		us("speed", 10, 0.1),
		bl("accuracy"),
		is("lon", 28, 1.0/600000),
		is("lat", 27, 1.0/600000),
		us("course", 12, 0.1),
		u("heading", 9),
		u("second", 6),
		rb("regional", 2),
		bl("cs_unit"),
		bl("display"),
		bl("dsc"),
		bl("band"),
		bl("msg22"),
		bl("assigned"),
		bl("raim"),
		commStateField(20),
	)
}

// classBExtendedFields is the type 19 table.
func classBExtendedFields() []Field {
	f := header()
	return append(f,
		rb("reserved", 8),
		us("speed", 10, 0.1),
		bl("accuracy"),
		is("lon", 28, 1.0/600000),
		is("lat", 27, 1.0/600000),
		us("course", 12, 0.1),
		u("heading", 9),
		u("second", 6),
		rb("regional", 4),
		t6("shipname", 120),
		en("ship_type", 8, ShipType),
		u("to_bow", 9),
		u("to_stern", 9),
		u("to_port", 6),
		u("to_starboard", 6),
		en("epfd", 4, EPFD),
		bl("raim"),
		bl("dte"),
		bl("assigned"),
		rb("spare", 4),
	)
}

// linkManagementFields is the type 20 table.
func linkManagementFields() []Field {
	f := header()
	f = append(f, rb("spare", 2))
	for n := 1; n <= 4; n++ {
		suffix := itoa(n)
		f = append(f,
			u("offset"+suffix, 12),
			u("number"+suffix, 4),
			u("timeout"+suffix, 3),
			u("increment"+suffix, 11),
		)
	}
	return f
}

// aidToNavFields is the type 21 table, with a variable-length name
// extension tail (0-88 bits of six-bit text, §4.7).
func aidToNavFields() []Field {
	f := header()
	return append(f,
		en("aid_type", 5, NavAid),
		t6("name", 120),
		bl("accuracy"),
		is("lon", 28, 1.0/600000),
		is("lat", 27, 1.0/600000),
		u("to_bow", 9),
		u("to_stern", 9),
		u("to_port", 6),
		u("to_starboard", 6),
		en("epfd", 4, EPFD),
		u("second", 6),
		bl("off_position"),
		rb("regional", 8),
		bl("raim"),
		bl("virtual_aid"),
		bl("assigned"),
		rb("spare", 1),
		t6("name_ext", 0).asTail(),
	)
}

// channelManagementFieldsPrefix is the part of the type 22 table that the
// broadcast and addressed variants share, up to and including "power";
// the variants then diverge and meet again at the "addressed" flag
// (§4.7 "variant dispatch").
func channelManagementFieldsPrefix() []Field {
	f := header()
	return append(f,
		rb("spare1", 2),
		u("channel_a", 12),
		u("channel_b", 12),
		u("txrx", 4),
		bl("power"),
	)
}

func channelManagementFieldsBroadcast() []Field {
	f := channelManagementFieldsPrefix()
	return append(f,
		is("ne_lon", 18, 1.0/600000),
		is("ne_lat", 17, 1.0/600000),
		is("sw_lon", 18, 1.0/600000),
		is("sw_lat", 17, 1.0/600000),
		bl("addressed"),
		bl("band_a"),
		bl("band_b"),
		u("zonesize", 3),
		rb("spare2", 23),
	)
}

func channelManagementFieldsAddressed() []Field {
	f := channelManagementFieldsPrefix()
	return append(f,
		u("dest_mmsi1", 30),
		rb("pad1", 5),
		u("dest_mmsi2", 30),
		rb("pad2", 5),
		bl("addressed"),
		bl("band_a"),
		bl("band_b"),
		u("zonesize", 3),
		rb("spare2", 23),
	)
}

// groupAssignmentFields is the type 23 table.
func groupAssignmentFields() []Field {
	f := header()
	return append(f,
		rb("spare1", 2),
		is("ne_lon", 18, 1.0/600000),
		is("ne_lat", 17, 1.0/600000),
		is("sw_lon", 18, 1.0/600000),
		is("sw_lat", 17, 1.0/600000),
		u("station_type", 4),
		en("ship_type", 8, ShipType),
		rb("spare2", 22),
		en("txrx", 2, TXRXMode),
		en("interval", 4, StationInterval),
		u("quiet", 4),
		rb("spare3", 6),
	)
}

// staticDataReportFieldsA is type 24 part A (§4.7, discriminated by
// partno).
func staticDataReportFieldsA() []Field {
	f := header()
	return append(f, u("partno", 2), t6("shipname", 120))
}

// staticDataReportFieldsB is type 24 part B.
func staticDataReportFieldsB() []Field {
	f := header()
	return append(f,
		u("partno", 2),
		en("ship_type", 8, ShipType),
		t6("vendorid", 18),
		u("model", 4),
		u("serial", 20),
		t6("callsign", 42),
		u("to_bow", 9),
		u("to_stern", 9),
		u("to_port", 6),
		u("to_starboard", 6),
		u("mothership_mmsi", 30),
	)
}

// binaryMessageSingleSlotFields is type 25 (addressed/broadcast x
// structured/unstructured, 4 variants via 2 flag bits, §4.7).
func binaryMessageSingleSlotFields(addressed, structured bool) []Field {
	f := header()
	f = append(f, bl("addressed"), bl("structured"))
	if addressed {
		f = append(f, u("dest_mmsi", 30))
	}
	if structured {
		f = append(f, u("app_id", 16))
	}
	return append(f, tail("data"))
}

// binaryMessageMultiSlotFields is type 26, the same variant shape as 25
// plus a trailing communication-state field.
func binaryMessageMultiSlotFields(addressed, structured bool) []Field {
	f := header()
	f = append(f, bl("addressed"), bl("structured"))
	if addressed {
		f = append(f, u("dest_mmsi", 30))
	}
	if structured {
		f = append(f, u("app_id", 16))
	}
	return append(f, rb("data", 0).asTail(), u("radio", 20))
}

// longRangeFields is the type 27 table.
func longRangeFields() []Field {
	f := header()
	return append(f,
		bl("accuracy"),
		bl("raim"),
		en("status", 4, NavStatus),
		is("lon", 18, 1.0/600),
		is("lat", 17, 1.0/600),
		us("speed", 6, 1),
		us("course", 9, 1),
		bl("gnss"),
		rb("spare", 1),
	)
}
