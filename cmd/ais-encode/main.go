// Command ais-encode turns JSON records back into "!AIVDM/!AIVDO"
// sentences, the encode half of the CLI surface §6 describes. It is a
// thin wrapper around ais.Encode, armor.Encode and nmea.FormatMessage:
// all three already know how to do the work, this just wires stdin to
// stdout.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/tormol/aisgo/ais"
	"github.com/tormol/aisgo/armor"
	"github.com/tormol/aisgo/nmea"
)

// encoder holds the per-run state ais.Record encoding needs: the
// talker/formatter and channel picked from flags, and a rolling
// sequence_id so consecutive multi-fragment messages don't collide.
type encoder struct {
	formatter string
	channel   byte
	seq       int
	out       io.Writer
}

func (e *encoder) encodeOne(rec *ais.Record) error {
	bits, err := ais.Encode(rec)
	if err != nil {
		return err
	}
	payload, fillBits := armor.Encode(bits)
	e.seq = (e.seq + 1) % 10
	for _, line := range nmea.FormatMessage(nmea.TalkerAI, e.formatter, payload, fillBits, e.seq, e.channel) {
		io.WriteString(e.out, line)
	}
	return nil
}

func main() {
	mode := flag.String("mode", "auto", "input shape: single|lines|stream|auto")
	talkerFlag := flag.String("talker", "AIVDM", "sentence identifier: AIVDM|AIVDO")
	radio := flag.String("radio", "", "radio channel: A|B (omitted if unset)")
	flag.Parse()

	formatter, err := formatterFor(*talkerFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ais-encode:", err)
		os.Exit(1)
	}
	channel, err := channelFor(*radio)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ais-encode:", err)
		os.Exit(1)
	}

	e := &encoder{formatter: formatter, channel: channel, out: os.Stdout}
	if err := run(*mode, os.Stdin, e); err != nil {
		fmt.Fprintln(os.Stderr, "ais-encode:", err)
		os.Exit(1)
	}
}

// run dispatches on mode, reading JSON ais.Record values from r and
// handing each to e. single and auto-as-single errors are fatal (the
// only input expected never arrived); lines/stream errors are logged
// per-record and the run continues, matching ais-decode's "print and
// continue" policy (§7). The one exception is a malformed JSON value in
// stream (or auto-as-stream) mode, which ends the stream after logging.
func run(mode string, r io.Reader, e *encoder) error {
	switch mode {
	case "single":
		var rec ais.Record
		if err := json.NewDecoder(r).Decode(&rec); err != nil {
			return err
		}
		return e.encodeOne(&rec)
	case "lines":
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := scanner.Bytes()
			if len(line) == 0 {
				continue
			}
			var rec ais.Record
			if err := json.Unmarshal(line, &rec); err != nil {
				fmt.Fprintln(os.Stderr, "ais-encode:", err)
				continue
			}
			if err := e.encodeOne(&rec); err != nil {
				fmt.Fprintln(os.Stderr, "ais-encode:", err)
			}
		}
		return scanner.Err()
	case "stream":
		decodeStream(r, e)
		return nil
	case "auto":
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		var rec ais.Record
		if err := json.Unmarshal(data, &rec); err == nil {
			return e.encodeOne(&rec)
		}
		decodeStream(strings.NewReader(string(data)), e)
		return nil
	default:
		return fmt.Errorf("--mode must be single, lines, stream, or auto, got %q", mode)
	}
}

// decodeStream reads successive whitespace-separated JSON values from r
// (not necessarily one per line), the shape a long-running forwarder
// would pipe continuously rather than buffering a whole NDJSON file.
func decodeStream(r io.Reader, e *encoder) {
	dec := json.NewDecoder(r)
	for dec.More() {
		var rec ais.Record
		if err := dec.Decode(&rec); err != nil {
			fmt.Fprintln(os.Stderr, "ais-encode:", err)
			return
		}
		if err := e.encodeOne(&rec); err != nil {
			fmt.Fprintln(os.Stderr, "ais-encode:", err)
		}
	}
}

func formatterFor(talker string) (string, error) {
	switch talker {
	case "AIVDM":
		return "VDM", nil
	case "AIVDO":
		return "VDO", nil
	default:
		return "", fmt.Errorf("unknown --talker %q, want AIVDM or AIVDO", talker)
	}
}

func channelFor(radio string) (byte, error) {
	switch radio {
	case "":
		return 0, nil
	case "A":
		return 'A', nil
	case "B":
		return 'B', nil
	default:
		return 0, fmt.Errorf("--radio must be A or B, got %q", radio)
	}
}
