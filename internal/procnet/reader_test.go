package procnet

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ifrate/internal/domain"
)

const sampleTable = `Inter-|   Receive                                                |  Transmit
 face |bytes    packets errs drop fifo frame compressed multicast|bytes    packets errs drop fifo colls carrier compressed
    lo:  102400    1000    0    0    0     0          0         0    102400    1000    0    0    0     0       0          0
  eth0:    2048      10    0    0    0     0          0         0      1024       8    0    0    0     0       0          0
`

func writeSource(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dev")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func newTestReader(path string) (*Reader, *clock.Mock) {
	mock := clock.NewMock()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewReader(path, mock, logger), mock
}

func TestReadParsesDevices(t *testing.T) {
	r, mock := newTestReader(writeSource(t, []byte(sampleTable)))
	mock.Set(time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC))

	snap, err := r.Read(false)
	require.NoError(t, err)

	require.Len(t, snap.Devices, 2)
	assert.Equal(t, domain.DeviceStatistics{RX: 102400, TX: 102400}, snap.Devices["lo"])
	assert.Equal(t, domain.DeviceStatistics{RX: 2048, TX: 1024}, snap.Devices["eth0"])
	assert.True(t, snap.Timestamp.Equal(mock.Now()))
	assert.Equal(t, time.UTC, snap.Timestamp.Location())
}

func TestReadIsWhitespaceInsensitive(t *testing.T) {
	table := "h1\nh2\neth0:\t \t42   1 2 3 4 5 6 7     84 0 0 0 0 0 0 0\n"
	r, _ := newTestReader(writeSource(t, []byte(table)))

	snap, err := r.Read(false)
	require.NoError(t, err)
	assert.Equal(t, domain.DeviceStatistics{RX: 42, TX: 84}, snap.Devices["eth0"])
}

func TestReadTrimsAllTrailingColons(t *testing.T) {
	table := "h1\nh2\nveth0:: 1 0 0 0 0 0 0 0 2 0 0 0 0 0 0 0\n"
	r, _ := newTestReader(writeSource(t, []byte(table)))

	snap, err := r.Read(false)
	require.NoError(t, err)
	require.Contains(t, snap.Devices, "veth0")
	assert.Equal(t, domain.DeviceStatistics{RX: 1, TX: 2}, snap.Devices["veth0"])
}

func TestReadSourceUnavailable(t *testing.T) {
	r, _ := newTestReader(filepath.Join(t.TempDir(), "missing"))

	_, err := r.Read(false)
	var srcErr domain.SourceUnavailableError
	require.ErrorAs(t, err, &srcErr)
}

func TestReadMalformedRejectsWholeTable(t *testing.T) {
	cases := map[string]string{
		"non-numeric rx": "eth0: abc 0 0 0 0 0 0 0 9 0 0 0 0 0 0 0",
		"non-numeric tx": "eth0: 1 0 0 0 0 0 0 0 xyz 0 0 0 0 0 0 0",
		"missing rx":     "eth0:",
		"missing tx":     "eth0: 1 2 3",
	}
	for name, line := range cases {
		t.Run(name, func(t *testing.T) {
			table := "h1\nh2\nlo: 1 0 0 0 0 0 0 0 1 0 0 0 0 0 0 0\n" + line + "\n"
			r, _ := newTestReader(writeSource(t, []byte(table)))

			_, err := r.Read(false)
			var malErr domain.MalformedLineError
			require.ErrorAs(t, err, &malErr)
		})
	}
}

func TestReadHideZeroDropsIdleInterfaces(t *testing.T) {
	table := "h1\nh2\n" +
		"eth0: 10 0 0 0 0 0 0 0 20 0 0 0 0 0 0 0\n" +
		"dummy0: 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0\n"
	r, _ := newTestReader(writeSource(t, []byte(table)))

	snap, err := r.Read(true)
	require.NoError(t, err)
	assert.Contains(t, snap.Devices, "eth0")
	assert.NotContains(t, snap.Devices, "dummy0")

	// Without hiding, the idle interface stays.
	snap, err = r.Read(false)
	require.NoError(t, err)
	assert.Contains(t, snap.Devices, "dummy0")
}

func TestReadSkipsUndecodableLines(t *testing.T) {
	table := []byte("h1\nh2\n")
	table = append(table, 0xff, 0xfe, '\n')
	table = append(table, []byte("eth0: 1 0 0 0 0 0 0 0 2 0 0 0 0 0 0 0\n")...)
	r, _ := newTestReader(writeSource(t, table))

	snap, err := r.Read(false)
	require.NoError(t, err)
	require.Len(t, snap.Devices, 1)
	assert.Contains(t, snap.Devices, "eth0")
}

func TestReadEmptyTable(t *testing.T) {
	r, _ := newTestReader(writeSource(t, []byte("h1\nh2\n")))

	snap, err := r.Read(false)
	require.NoError(t, err)
	assert.Empty(t, snap.Devices)
}
