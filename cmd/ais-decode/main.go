// Command ais-decode turns a stream of "!AIVDM/!AIVDO" sentences into
// JSON, one decoded record per line — the decode half of the CLI
// surface §6 describes as an external collaborator, kept deliberately
// thin around the ais/nmea/multipart/armor/stream packages.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"

	"github.com/tormol/aisgo/internal/aislog"
	"github.com/tormol/aisgo/multipart"
	"github.com/tormol/aisgo/stream"
)

func main() {
	file := flag.StringP("file", "f", "", "read sentences from FILE instead of stdin")
	out := flag.StringP("out", "o", "", "write JSON to FILE instead of stdout")
	host := flag.String("host", "", "connect to HOST for the \"socket\" source")
	port := flag.Int("port", 0, "port for the \"socket\" source")
	sockType := flag.String("type", "tcp", "socket type: tcp|udp")
	strict := flag.Bool("strict", false, "exit non-zero if any checksum failure was seen")
	flag.Parse()

	outFile := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintln(os.Stderr, "ais-decode:", err)
			os.Exit(1)
		}
		defer f.Close()
		outFile = f
	}
	enc := json.NewEncoder(outFile)

	pipeline := stream.NewPipeline(0, multipart.NewDuplicateFilter(time.Minute))
	var sawChecksumFailure bool

	emit := func(line string, arrived time.Time) {
		decoded, err := pipeline.Feed(line, arrived)
		if err != nil {
			fmt.Fprintln(os.Stderr, "ais-decode:", err)
			return
		}
		if decoded == nil {
			return
		}
		if !decoded.Message.ChecksumValid {
			sawChecksumFailure = true
		}
		row := decoded.Record.Fields()
		row["msg_type"] = decoded.Record.MsgType
		if decoded.Record.Variant != "" {
			row["variant"] = decoded.Record.Variant
		}
		if err := enc.Encode(row); err != nil {
			fmt.Fprintln(os.Stderr, "ais-decode:", err)
		}
	}

	args := flag.Args()
	switch {
	case len(args) > 0 && args[0] == "single":
		for _, msg := range args[1:] {
			emit(msg, time.Now())
		}
	case len(args) > 0 && args[0] == "socket":
		if len(args) >= 3 {
			*host = args[1]
			if _, err := fmt.Sscan(args[2], port); err != nil {
				fmt.Fprintln(os.Stderr, "ais-decode: invalid port:", args[2])
				os.Exit(1)
			}
		}
		runSocket(*host, *port, *sockType, emit)
	case *file != "":
		if err := stream.ReadFile(*file, emit); err != nil {
			fmt.Fprintln(os.Stderr, "ais-decode:", err)
			os.Exit(1)
		}
	default:
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			emit(scanner.Text(), time.Now())
		}
	}

	if *strict && sawChecksumFailure {
		os.Exit(1)
	}
}

func runSocket(host string, port int, sockType string, emit stream.LineFunc) {
	addr := fmt.Sprintf("%s:%d", host, port)
	logger := aislog.New(os.Stderr, log.InfoLevel)
	switch sockType {
	case "udp":
		closer, err := stream.UDPListener(addr, emit)
		if err != nil {
			fmt.Fprintln(os.Stderr, "ais-decode:", err)
			os.Exit(1)
		}
		defer closer.Close()
		select {}
	default:
		stream.DialTCPClient(logger, addr, 0, emit)
	}
}
