package nmea

// TalkerID identifies the class of equipment that produced a sentence, the
// 2-char prefix of the 5-char NMEA header. It is a closed set with an
// explicit "unknown" fallback, per §4.8's "enums are total functions" rule.
type TalkerID uint8

// The closed set of talker identifiers this module recognizes (§3).
const (
	TalkerUnknown TalkerID = iota
	TalkerAB               // Independent AIS Base Station
	TalkerAD               // Dependent AIS Base Station
	TalkerAI               // Mobile AIS station
	TalkerAN               // Aid to Navigation AIS station
	TalkerAR               // AIS Receiving Station
	TalkerAS               // AIS Limited Base Station
	TalkerAT               // AIS Transmitting Station
	TalkerAX               // AIS Simplex Repeater Station
	TalkerBS               // Base Station (deprecated alias)
	TalkerSA               // Physical Shore AIS Station
)

var talkerByCode = map[string]TalkerID{
	"AB": TalkerAB,
	"AD": TalkerAD,
	"AI": TalkerAI,
	"AN": TalkerAN,
	"AR": TalkerAR,
	"AS": TalkerAS,
	"AT": TalkerAT,
	"AX": TalkerAX,
	"BS": TalkerBS,
	"SA": TalkerSA,
}

var talkerCode = map[TalkerID]string{
	TalkerAB: "AB", TalkerAD: "AD", TalkerAI: "AI", TalkerAN: "AN",
	TalkerAR: "AR", TalkerAS: "AS", TalkerAT: "AT", TalkerAX: "AX",
	TalkerBS: "BS", TalkerSA: "SA", TalkerUnknown: "??",
}

// ParseTalkerID maps a 2-character code to its TalkerID, returning
// TalkerUnknown for anything not in the closed set.
func ParseTalkerID(code string) TalkerID {
	if id, ok := talkerByCode[code]; ok {
		return id
	}
	return TalkerUnknown
}

// String returns the 2-character wire code, or "??" for TalkerUnknown.
func (t TalkerID) String() string {
	return talkerCode[t]
}
