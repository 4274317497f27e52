package stream

import (
	"bufio"
	"io"
	"net"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/klauspost/compress/gzip"
	"github.com/tarm/serial"

	"github.com/tormol/aisgo/internal/aislog"
)

// LineFunc receives one newline-terminated line and the time it was read.
type LineFunc func(line string, arrived time.Time)

const (
	retryAfterMin = 5 * time.Second
	retryAfterMax = 1 * time.Hour
	giveUpAfter   = 7 * 24 * time.Hour
)

func newReconnectBackoff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = retryAfterMin
	b.MaxInterval = retryAfterMax
	b.MaxElapsedTime = giveUpAfter
	b.Reset()
	return b
}

// ReadFile streams every line of path to onLine, starting at its first
// '\' (tag block), '!' (sentence) or '$' (Gatehouse wrapper); any text
// before that is dropped, and a line with none of them is skipped. A ".gz" suffix is read
// through a transparent gzip decompressor, since historical AIS logs are
// commonly distributed that way.
func ReadFile(path string, onLine LineFunc) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return err
		}
		defer gz.Close()
		r = gz
	}

	reader := bufio.NewReaderSize(r, 4096)
	for {
		raw, err := reader.ReadBytes('\n')
		now := time.Now()
		if idx := strings.IndexAny(string(raw), `\!$`); idx >= 0 {
			onLine(string(raw[idx:]), now)
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

// readFramed pulls chunks from r via Read and re-assembles "!"-prefixed
// lines across chunk boundaries, calling onLine for each one — the
// socket/serial-specific half of §4.9 ("sockets buffer partial lines
// across recv calls").
func readFramed(r io.Reader, onLine LineFunc) error {
	buf := make([]byte, 4096)
	var incomplete []byte
	for {
		n, err := r.Read(buf)
		now := time.Now()
		if n > 0 {
			chunk := buf[:n]
			for {
				line, next := firstLineInBuffer(incomplete, chunk)
				if next == -1 {
					incomplete = line
					break
				}
				onLine(string(line), now)
				incomplete = nil
				chunk = chunk[next:]
				if len(chunk) == 0 {
					break
				}
			}
		}
		if err != nil {
			return err
		}
	}
}

// DialTCPClient connects to addr as a client and streams lines to
// onLine, reconnecting with exponential backoff (grounded on
// server/listeners.go's readTCP/newSourceBackoff). A connection that
// stays idle for longer than silenceTimeout (0 disables the check) is
// dropped and redialed like any other failure. Blocks until the backoff
// budget is exhausted; intended to be run in its own goroutine.
func DialTCPClient(log *aislog.Logger, addr string, silenceTimeout time.Duration, onLine LineFunc) {
	b := newReconnectBackoff()
	for {
		failure := func() string {
			conn, err := net.DialTimeout("tcp", addr, 10*time.Second)
			if err != nil {
				return err.Error()
			}
			defer conn.Close()
			b.Reset()
			tc := &deadlineConn{Conn: conn, timeout: silenceTimeout}
			err = readFramed(tc, onLine)
			if err != nil && err != io.EOF {
				return err.Error()
			}
			return ""
		}()
		if failure == "" {
			continue
		}
		next := b.NextBackOff()
		if next == backoff.Stop {
			if log != nil {
				log.Errorf("giving up connecting to %s: %s", addr, failure)
			}
			return
		}
		if log != nil {
			log.Warnf("%s: %s, retrying in %s", addr, failure, next)
		}
		time.Sleep(next)
	}
}

type deadlineConn struct {
	net.Conn
	timeout time.Duration
}

func (c *deadlineConn) Read(p []byte) (int, error) {
	if c.timeout > 0 {
		c.SetReadDeadline(time.Now().Add(c.timeout))
	}
	return c.Conn.Read(p)
}

// TCPServer accepts connections on addr and multiplexes every client's
// lines into onLine in arrival order — the single serialization point
// §5 calls out ("the only inherently concurrent component ... funnels
// their bytes into one queue"). The returned io.Closer stops the
// listener and the dispatch goroutine; it does not close client
// connections, and each client goroutine ends when its connection does.
func TCPServer(log *aislog.Logger, addr string, onLine LineFunc) (net.Addr, io.Closer, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, err
	}
	type timedLine struct {
		text    string
		arrived time.Time
	}
	lines := make(chan timedLine, 256)
	done := make(chan struct{})
	var closing int32

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				if atomic.LoadInt32(&closing) == 0 && log != nil {
					log.Errorf("accept on %s: %s", addr, err)
				}
				return
			}
			go func() {
				defer conn.Close()
				_ = readFramed(conn, func(line string, arrived time.Time) {
					select {
					case lines <- timedLine{line, arrived}:
					case <-done:
					}
				})
			}()
		}
	}()

	go func() {
		for {
			select {
			case tl := <-lines:
				onLine(tl.text, tl.arrived)
			case <-done:
				return
			}
		}
	}()

	return ln.Addr(), closerFunc(func() error {
		atomic.StoreInt32(&closing, 1)
		close(done)
		return ln.Close()
	}), nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// UDPListener receives AIS sentences over UDP. Per §4.9, UDP packets are
// treated as self-contained: a datagram missing its own trailing
// newline is dropped rather than stitched to the next packet, since fire
// -and-forget UDP gives no ordering guarantee to stitch across.
func UDPListener(addr string, onLine LineFunc) (io.Closer, error) {
	laddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, err
	}
	conn, err := net.ListenUDP("udp", laddr)
	if err != nil {
		return nil, err
	}
	go func() {
		buf := make([]byte, 4096)
		for {
			n, _, err := conn.ReadFromUDP(buf)
			if err != nil {
				return
			}
			now := time.Now()
			line, next := firstLineInBuffer(nil, buf[:n])
			if next != -1 {
				onLine(string(line), now)
			}
		}
	}()
	return conn, nil
}

// OpenSerial streams lines from a USB-serial AIS receiver (dAISy-class
// hardware, digital VHF radios) over github.com/tarm/serial.
func OpenSerial(device string, baud int, onLine LineFunc) (io.Closer, error) {
	port, err := serial.OpenPort(&serial.Config{Name: device, Baud: baud})
	if err != nil {
		return nil, err
	}
	go readFramed(port, onLine)
	return port, nil
}
