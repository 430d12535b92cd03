package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"beenama/internal/log"
)

const (
	mpvSocketWait  = 100 * time.Millisecond
	mpvSocketTries = 50
	mpvReplyWait   = 5 * time.Second
)

// MPV drives an mpv subprocess over its JSON IPC socket. The socket
// lives in a randomized temp dir to prevent symlink attacks. Property
// observation delivers time-pos updates well inside the 500ms cadence
// the Engine contract requires.
type MPV struct {
	mu        sync.Mutex
	cmd       *exec.Cmd
	conn      net.Conn
	socketDir string
	nextID    int
	pending   map[int]chan mpvReply
	position  int64

	onPosition func(int64)
	onEnded    func()
	onError    func(error)
}

var _ Engine = (*MPV)(nil)

type mpvReply struct {
	Err  string
	Data json.RawMessage
}

// NewMPV returns an mpv-backed engine. Available reports whether the
// binary is on PATH.
func NewMPV() *MPV {
	return &MPV{pending: make(map[int]chan mpvReply)}
}

func Available() bool {
	_, err := exec.LookPath("mpv")
	return err == nil
}

func (m *MPV) Open(url string, startMillis int64) (int64, error) {
	socketDir, err := os.MkdirTemp("", "beenama-mpv-*")
	if err != nil {
		return 0, fmt.Errorf("creating temp dir for mpv socket: %w", err)
	}

	socketPath := filepath.Join(socketDir, "socket")

	// Explicit argument slice, no shell interpretation
	args := []string{
		url,
		"--input-ipc-server=" + socketPath,
		"--pause",
		"--really-quiet",
	}
	if startMillis > 0 {
		args = append(args, fmt.Sprintf("--start=%.3f", float64(startMillis)/1000))
	}

	cmd := exec.Command("mpv", args...)
	if err := cmd.Start(); err != nil {
		os.RemoveAll(socketDir)
		return 0, fmt.Errorf("starting mpv: %w", err)
	}

	conn, err := waitForSocket(socketPath)
	if err != nil {
		cmd.Process.Kill()
		cmd.Wait()
		os.RemoveAll(socketDir)
		return 0, err
	}

	m.mu.Lock()
	m.cmd = cmd
	m.conn = conn
	m.socketDir = socketDir
	m.position = startMillis
	m.mu.Unlock()

	go m.readEvents(conn)

	if _, err := m.request("observe_property", 1, "time-pos"); err != nil {
		m.Close()
		return 0, err
	}

	duration, err := m.waitForDuration()
	if err != nil {
		m.Close()
		return 0, err
	}
	return duration, nil
}

func waitForSocket(path string) (net.Conn, error) {
	for i := 0; i < mpvSocketTries; i++ {
		if conn, err := net.Dial("unix", path); err == nil {
			return conn, nil
		}
		time.Sleep(mpvSocketWait)
	}
	return nil, fmt.Errorf("mpv IPC socket did not appear at %s", path)
}

// waitForDuration polls until mpv has demuxed enough to know the
// duration. Streams report it as soon as the header is parsed.
func (m *MPV) waitForDuration() (int64, error) {
	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		data, err := m.request("get_property", "duration")
		if err == nil {
			var seconds float64
			if jerr := json.Unmarshal(data, &seconds); jerr == nil && seconds > 0 {
				return int64(seconds * 1000), nil
			}
		}
		time.Sleep(200 * time.Millisecond)
	}
	return 0, fmt.Errorf("mpv never reported a duration")
}

func (m *MPV) Play() error {
	_, err := m.request("set_property", "pause", false)
	return err
}

func (m *MPV) Pause() error {
	_, err := m.request("set_property", "pause", true)
	return err
}

func (m *MPV) SeekTo(millis int64) error {
	_, err := m.request("seek", float64(millis)/1000, "absolute")
	return err
}

func (m *MPV) SetVolume(v float64) error {
	_, err := m.request("set_property", "volume", v*100)
	return err
}

func (m *MPV) SetRate(r float64) error {
	_, err := m.request("set_property", "speed", r)
	return err
}

func (m *MPV) Position() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *MPV) Close() error {
	m.mu.Lock()
	conn := m.conn
	cmd := m.cmd
	dir := m.socketDir
	m.conn = nil
	m.cmd = nil
	m.mu.Unlock()

	if conn != nil {
		m.requestOn(conn, "quit")
		conn.Close()
	}
	if cmd != nil {
		// mpv exits non-zero on quit, which is normal
		cmd.Wait()
	}
	if dir != "" {
		os.RemoveAll(dir)
	}
	return nil
}

// SetFullscreen toggles the mpv window. Together with LockOrientation
// this makes MPV usable as the display Platform.
func (m *MPV) SetFullscreen(active bool) error {
	_, err := m.request("set_property", "fullscreen", active)
	return err
}

// LockOrientation is a no-op: the window manager owns the video
// window's orientation on desktop.
func (m *MPV) LockOrientation(o Orientation) error {
	log.Debugf("mpv: orientation %s requested, deferring to the window manager", o)
	return nil
}

func (m *MPV) OnPosition(fn func(int64)) { m.onPosition = fn }
func (m *MPV) OnEnded(fn func())         { m.onEnded = fn }
func (m *MPV) OnError(fn func(error))    { m.onError = fn }

// request sends an IPC command and waits for its matching reply.
func (m *MPV) request(cmd ...interface{}) (json.RawMessage, error) {
	m.mu.Lock()
	conn := m.conn
	m.mu.Unlock()
	if conn == nil {
		return nil, fmt.Errorf("mpv not running")
	}
	return m.requestOn(conn, cmd...)
}

func (m *MPV) requestOn(conn net.Conn, cmd ...interface{}) (json.RawMessage, error) {
	m.mu.Lock()
	m.nextID++
	id := m.nextID
	replyCh := make(chan mpvReply, 1)
	m.pending[id] = replyCh
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		delete(m.pending, id)
		m.mu.Unlock()
	}()

	payload, err := json.Marshal(map[string]interface{}{
		"command":    cmd,
		"request_id": id,
	})
	if err != nil {
		return nil, err
	}
	payload = append(payload, '\n')
	if _, err := conn.Write(payload); err != nil {
		return nil, fmt.Errorf("writing to mpv socket: %w", err)
	}

	select {
	case reply := <-replyCh:
		if reply.Err != "" && reply.Err != "success" {
			return nil, fmt.Errorf("mpv command failed: %s", reply.Err)
		}
		return reply.Data, nil
	case <-time.After(mpvReplyWait):
		return nil, fmt.Errorf("mpv did not reply")
	}
}

func (m *MPV) readEvents(conn net.Conn) {
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		var msg struct {
			Event     string          `json:"event"`
			Name      string          `json:"name"`
			Reason    string          `json:"reason"`
			Data      json.RawMessage `json:"data"`
			Error     string          `json:"error"`
			RequestID int             `json:"request_id"`
		}
		if err := json.Unmarshal(scanner.Bytes(), &msg); err != nil {
			log.Debugf("mpv: skipping malformed IPC line: %v", err)
			continue
		}

		if msg.RequestID != 0 {
			m.mu.Lock()
			ch := m.pending[msg.RequestID]
			m.mu.Unlock()
			if ch != nil {
				ch <- mpvReply{Err: msg.Error, Data: msg.Data}
			}
			continue
		}

		switch msg.Event {
		case "property-change":
			if msg.Name != "time-pos" {
				continue
			}
			var seconds float64
			if err := json.Unmarshal(msg.Data, &seconds); err != nil || seconds < 0 {
				continue
			}
			millis := int64(seconds * 1000)
			m.mu.Lock()
			m.position = millis
			fn := m.onPosition
			m.mu.Unlock()
			if fn != nil {
				fn(millis)
			}
		case "end-file":
			switch msg.Reason {
			case "eof":
				if m.onEnded != nil {
					m.onEnded()
				}
			case "error":
				if m.onError != nil {
					m.onError(fmt.Errorf("mpv playback error"))
				}
			}
		}
	}
}
