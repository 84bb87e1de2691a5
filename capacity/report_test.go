package capacity_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/konard/sonar/capacity"
)

func sampleResults() []capacity.Result {
	return []capacity.Result{
		{Name: "SonarVisit", MaxSize: 500_000, Elapsed: 123456 * time.Microsecond},
		{Name: "NearestNeighbor", MaxSize: 9_000, Elapsed: 29 * time.Second},
		{Name: "Broken", Err: errors.New("strategy panicked: kaboom")},
	}
}

func TestRank_DescendingAndStable(t *testing.T) {
	results := []capacity.Result{
		{Name: "a", MaxSize: 10},
		{Name: "b", MaxSize: 500},
		{Name: "c", MaxSize: 500},
		{Name: "d", MaxSize: 20},
	}

	ranked := capacity.Rank(results)
	require.Equal(t, []string{"b", "c", "d", "a"}, []string{
		ranked[0].Name, ranked[1].Name, ranked[2].Name, ranked[3].Name,
	})
}

func TestWriteTable_ContainsRankedRows(t *testing.T) {
	var buf bytes.Buffer
	err := capacity.WriteTable(&buf, sampleResults(), 30*time.Second)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "SUMMARY (timeout: 30s)")
	require.Contains(t, out, "SonarVisit")
	require.Contains(t, out, "500000")
	require.Contains(t, out, "123.46")
	require.Contains(t, out, "FAILED")

	// Ranked order is preserved on the page.
	require.Less(t,
		bytes.Index(buf.Bytes(), []byte("SonarVisit")),
		bytes.Index(buf.Bytes(), []byte("NearestNeighbor")))
}

func TestWriteJSON_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, capacity.WriteJSON(&buf, sampleResults()))

	var records []capacity.Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 3)

	require.Equal(t, "SonarVisit", records[0].Name)
	require.Equal(t, 500_000, records[0].MaxN)
	require.InDelta(t, 123.456, records[0].TimeMs, 1e-9)
	require.Empty(t, records[0].Error)

	require.Equal(t, "NearestNeighbor", records[1].Name)
	require.InDelta(t, 29_000.0, records[1].TimeMs, 1e-9)

	require.NotEmpty(t, records[2].Error)
}
