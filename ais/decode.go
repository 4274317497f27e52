// Package ais implements the bit-exact AIS message schema engine: field
// tables describing all 27 VDM/VDO message types, a decoder and encoder
// that share those tables as their single source of truth (§4.7), and
// the supporting enum catalog, rate-of-turn, communication-state and
// MMSI helpers.
package ais

import "github.com/tormol/aisgo/bitvec"

// Decode reads the msg_type from bits (the first 6 bits of every AIS
// message, per §3) and dispatches to that type's field table, returning
// a generic Record. A short or malformed payload is not an error: it
// simply yields defaulted fields, per the decoder contract in §4.7.
// The only error is ErrUnknownMessage, for a msg_type outside 0-27.
func Decode(bits *bitvec.Vector) (*Record, error) {
	msgType := int(bits.GetUint(0, 6))
	fields, variant, err := tableFor(msgType, bits)
	if err != nil {
		return nil, err
	}
	return decodeFields(bits, fields, msgType, variant), nil
}

// tableFor selects the field table (and, for variant-dispatched types,
// names which variant) for msgType, peeking whatever discriminator bits
// that type's variant dispatch needs directly from bits. msg_type 0 is
// undefined by ITU-R M.1371 and is treated as type 1, matching what every
// receiver that tolerates it does in practice.
func tableFor(msgType int, bits *bitvec.Vector) ([]Field, string, error) {
	switch msgType {
	case 0, 1, 2, 3:
		return positionReportFields(), "", nil
	case 4, 11:
		return baseStationFields(), "", nil
	case 5:
		return staticVoyageFields(), "", nil
	case 6:
		return binaryMessageFields(true), "addressed", nil
	case 7, 13:
		return ackFields(), "", nil
	case 8:
		return binaryMessageFields(false), "broadcast", nil
	case 9:
		return sarAircraftFields(), "", nil
	case 10:
		return utcInquiryFields(), "", nil
	case 12:
		return safetyTextFields(true), "addressed", nil
	case 14:
		return safetyTextFields(false), "broadcast", nil
	case 15:
		return interrogationFields(), "", nil
	case 16:
		return assignmentFields(), "", nil
	case 17:
		return dgnssFields(), "", nil
	case 18:
		return classBPositionFields(), "", nil
	case 19:
		return classBExtendedFields(), "", nil
	case 20:
		return linkManagementFields(), "", nil
	case 21:
		return aidToNavFields(), "", nil
	case 22:
		if bits.GetBool(139) {
			return channelManagementFieldsAddressed(), "addressed", nil
		}
		return channelManagementFieldsBroadcast(), "broadcast", nil
	case 23:
		return groupAssignmentFields(), "", nil
	case 24:
		if bits.GetUint(38, 40) == 1 {
			return staticDataReportFieldsB(), "partB", nil
		}
		return staticDataReportFieldsA(), "partA", nil
	case 25:
		addressed, structured := bits.GetBool(38), bits.GetBool(39)
		return binaryMessageSingleSlotFields(addressed, structured), variantName(addressed, structured), nil
	case 26:
		addressed, structured := bits.GetBool(38), bits.GetBool(39)
		return binaryMessageMultiSlotFields(addressed, structured), variantName(addressed, structured), nil
	case 27:
		return longRangeFields(), "", nil
	default:
		return nil, "", ErrUnknownMessage
	}
}

func variantName(addressed, structured bool) string {
	switch {
	case addressed && structured:
		return "addressedStructured"
	case addressed:
		return "addressedUnstructured"
	case structured:
		return "broadcastStructured"
	default:
		return "broadcastUnstructured"
	}
}

// dgnssFields is the type 17 table.
func dgnssFields() []Field {
	f := header()
	return append(f,
		rb("spare1", 2),
		is("lon", 18, 1.0/600),
		is("lat", 17, 1.0/600),
		rb("spare2", 5),
		tail("data"),
	)
}

// Encode packs rec's fields according to its MsgType's table and returns
// a bit vector ready for armoring, the encoder half of the §4.7 contract.
// The caller supplies MsgType (and, for variant-dispatched types, the
// same addressed/structured/partno fields the Record already carries)
// so Encode doesn't need to re-derive the variant.
func Encode(rec *Record) (*bitvec.Vector, error) {
	fields, _, err := encodeTableFor(rec)
	if err != nil {
		return nil, err
	}
	return encodeFields(rec, fields), nil
}

func encodeTableFor(rec *Record) ([]Field, string, error) {
	switch rec.MsgType {
	case 0, 1, 2, 3:
		return positionReportFields(), "", nil
	case 4, 11:
		return baseStationFields(), "", nil
	case 5:
		return staticVoyageFields(), "", nil
	case 6:
		return binaryMessageFields(true), "addressed", nil
	case 7, 13:
		return ackFields(), "", nil
	case 8:
		return binaryMessageFields(false), "broadcast", nil
	case 9:
		return sarAircraftFields(), "", nil
	case 10:
		return utcInquiryFields(), "", nil
	case 12:
		return safetyTextFields(true), "addressed", nil
	case 14:
		return safetyTextFields(false), "broadcast", nil
	case 15:
		return interrogationFields(), "", nil
	case 16:
		return assignmentFields(), "", nil
	case 17:
		return dgnssFields(), "", nil
	case 18:
		return classBPositionFields(), "", nil
	case 19:
		return classBExtendedFields(), "", nil
	case 20:
		return linkManagementFields(), "", nil
	case 21:
		return aidToNavFields(), "", nil
	case 22:
		if rec.Bool("addressed") {
			return channelManagementFieldsAddressed(), "addressed", nil
		}
		return channelManagementFieldsBroadcast(), "broadcast", nil
	case 23:
		return groupAssignmentFields(), "", nil
	case 24:
		if rec.Uint("partno") == 1 {
			return staticDataReportFieldsB(), "partB", nil
		}
		return staticDataReportFieldsA(), "partA", nil
	case 25:
		a, s := rec.Bool("addressed"), rec.Bool("structured")
		return binaryMessageSingleSlotFields(a, s), variantName(a, s), nil
	case 26:
		a, s := rec.Bool("addressed"), rec.Bool("structured")
		return binaryMessageMultiSlotFields(a, s), variantName(a, s), nil
	case 27:
		return longRangeFields(), "", nil
	default:
		return nil, "", ErrUnknownMessage
	}
}
