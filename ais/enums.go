package ais

import "fmt"

// enumTable builds an EnumSpec from an explicit raw->name map plus a
// fallback name for anything not listed — the "closed set with total
// fallback" shape §4.8 describes, grounded on the teacher's shipDB.go
// lookup-with-default pattern.
func enumTable(specName string, names map[uint64]string, fallback string) *EnumSpec {
	byName := make(map[string]uint64, len(names))
	for raw, name := range names {
		byName[name] = raw
	}
	return &EnumSpec{
		Name: specName,
		Decode: func(raw uint64) string {
			if name, ok := names[raw]; ok {
				return name
			}
			return fallback
		},
		Encode: func(name string) (uint64, bool) {
			raw, ok := byName[name]
			return raw, ok
		},
	}
}

// NavStatus is the type 1/2/3 "status" field (ITU-R M.1371 table 45).
var NavStatus = enumTable("NavStatus", map[uint64]string{
	0:  "UnderWayUsingEngine",
	1:  "AtAnchor",
	2:  "NotUnderCommand",
	3:  "RestrictedManoeuvrability",
	4:  "ConstrainedByDraught",
	5:  "Moored",
	6:  "Aground",
	7:  "EngagedInFishing",
	8:  "UnderWaySailing",
	9:  "ReservedHSC",
	10: "ReservedWIG",
	11: "PowerDrivenVesselTowingAstern",
	12: "PowerDrivenVesselPushingAhead",
	13: "Reserved",
	14: "AISSARTActive",
	15: "NotDefined",
}, "NotDefined")

// ManeuverIndicator is the type 1/2/3 "maneuver" field.
var ManeuverIndicator = enumTable("ManeuverIndicator", map[uint64]string{
	0: "NotAvailable",
	1: "NoSpecialManeuver",
	2: "SpecialManeuver",
}, "NotAvailable")

// EPFD is the "electronic position fixing device" field shared by types
// 4/11, 5, 21.
var EPFD = enumTable("EPFD", map[uint64]string{
	0: "Undefined",
	1: "GPS",
	2: "GLONASS",
	3: "GPSGLONASS",
	4: "LoranC",
	5: "Chayka",
	6: "IntegratedNavigationSystem",
	7: "Surveyed",
	8: "Galileo",
}, "Undefined")

// ShipType collapses only the reserved tail subranges (25-29, 45-49,
// 56-57, 65-69, 75-79, 85-89, 95-99) to a per-category reserved member.
// The named codes, including the hazardous-category codes (x1-x4 of each
// WIG/HSC/Passenger/Cargo/Tanker/OtherType decade), are explicit
// shipTypeNames entries; any code in neither (1-19, 38-39, and anything
// above 99) decodes as NotAvailable.
var ShipType = &EnumSpec{
	Name:   "ShipType",
	Decode: decodeShipType,
	Encode: func(name string) (uint64, bool) {
		for raw := uint64(0); raw <= 99; raw++ {
			if decodeShipType(raw) == name {
				return raw, true
			}
		}
		return 0, false
	},
}

func decodeShipType(raw uint64) string {
	if name, ok := shipTypeNames[raw]; ok {
		return name
	}
	switch {
	case raw >= 25 && raw <= 29:
		return "WingInGroundReserved"
	case raw >= 45 && raw <= 49:
		return "HighSpeedCraftReserved"
	case raw == 56 || raw == 57:
		return "SpecialCraftReserved"
	case raw >= 65 && raw <= 69:
		return "PassengerReserved"
	case raw >= 75 && raw <= 79:
		return "CargoReserved"
	case raw >= 85 && raw <= 89:
		return "TankerReserved"
	case raw >= 95 && raw <= 99:
		return "OtherReserved"
	default:
		return "NotAvailable"
	}
}

var shipTypeNames = map[uint64]string{
	0:  "NotAvailable",
	20: "WingInGround",
	21: "WingInGroundHazardousCategoryA",
	22: "WingInGroundHazardousCategoryB",
	23: "WingInGroundHazardousCategoryC",
	24: "WingInGroundHazardousCategoryD",
	30: "Fishing",
	31: "Towing",
	32: "TowingLarge",
	33: "DredgingOrUnderwaterOps",
	34: "DivingOps",
	35: "MilitaryOps",
	36: "Sailing",
	37: "PleasureCraft",
	40: "HighSpeedCraft",
	41: "HighSpeedCraftHazardousCategoryA",
	42: "HighSpeedCraftHazardousCategoryB",
	43: "HighSpeedCraftHazardousCategoryC",
	44: "HighSpeedCraftHazardousCategoryD",
	50: "Pilot",
	51: "SearchAndRescue",
	52: "Tug",
	53: "PortTender",
	54: "AntiPollution",
	55: "LawEnforcement",
	58: "MedicalTransport",
	59: "NonCombatant",
	60: "Passenger",
	61: "PassengerHazardousCategoryA",
	62: "PassengerHazardousCategoryB",
	63: "PassengerHazardousCategoryC",
	64: "PassengerHazardousCategoryD",
	70: "Cargo",
	71: "CargoHazardousCategoryA",
	72: "CargoHazardousCategoryB",
	73: "CargoHazardousCategoryC",
	74: "CargoHazardousCategoryD",
	80: "Tanker",
	81: "TankerHazardousCategoryA",
	82: "TankerHazardousCategoryB",
	83: "TankerHazardousCategoryC",
	84: "TankerHazardousCategoryD",
	90: "Other",
	91: "OtherHazardousCategoryA",
	92: "OtherHazardousCategoryB",
	93: "OtherHazardousCategoryC",
	94: "OtherHazardousCategoryD",
}

// NavAid is the type 21 "aid_type" field.
var NavAid = enumTable("NavAid", map[uint64]string{
	0:  "Default",
	1:  "ReferencePoint",
	2:  "RACON",
	3:  "FixedStructure",
	4:  "EmergencyWreckMarking",
	5:  "LightWithoutSectors",
	6:  "LightWithSectors",
	7:  "LeadingLightFront",
	8:  "LeadingLightRear",
	9:  "BeaconCardinalN",
	10: "BeaconCardinalE",
	11: "BeaconCardinalS",
	12: "BeaconCardinalW",
	13: "BeaconPortHand",
	14: "BeaconStarboardHand",
	15: "BeaconPreferredChannelPortHand",
	16: "BeaconPreferredChannelStarboardHand",
	17: "BeaconIsolatedDanger",
	18: "BeaconSafeWater",
	19: "BeaconSpecialMark",
	20: "CardinalMarkN",
	21: "CardinalMarkE",
	22: "CardinalMarkS",
	23: "CardinalMarkW",
	24: "PortHandMark",
	25: "StarboardHandMark",
	26: "PreferredChannelPortHandMark",
	27: "PreferredChannelStarboardHandMark",
	28: "IsolatedDanger",
	29: "SafeWater",
	30: "SpecialMark",
	31: "LightVesselOrRigOrPlatform",
}, "Default")

// StationInterval is the type 16/22/23 assigned reporting interval enum.
var StationInterval = enumTable("StationInterval", map[uint64]string{
	0:  "AsAutonomous",
	1:  "Interval10Min",
	2:  "Interval6Min",
	3:  "Interval3Min",
	4:  "Interval1Min",
	5:  "Interval30Sec",
	6:  "Interval15Sec",
	7:  "Interval10Sec",
	8:  "Interval5Sec",
	9:  "NextShorterReportingInterval",
	10: "NextLongerReportingInterval",
}, "AsAutonomous")

// TXRXMode is the type 23 "txrx" field (which channels a group is
// assigned to transmit/receive on).
var TXRXMode = enumTable("TXRXMode", map[uint64]string{
	0: "TxATxBRxARxB",
	1: "TxARxARxB",
	2: "TxBRxARxB",
	3: "Reserved",
}, "Reserved")

// String satisfies fmt.Stringer for error messages that print an EnumSpec.
func (e *EnumSpec) String() string { return fmt.Sprintf("EnumSpec(%s)", e.Name) }
