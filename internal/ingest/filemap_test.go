package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rowcrunch/onebrc/internal/rtest"
)

func writeTempFile(t *testing.T, contents string) string {
	t.Helper()
	dir := rtest.TempDir(t)
	path := filepath.Join(dir, "measurements.txt")
	rtest.OK(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestFileMapOpenAndClose(t *testing.T) {
	path := writeTempFile(t, "Berlin;10.0\nHamburg;-12.7\n")

	m, err := Open(path)
	rtest.OK(t, err)

	rtest.Equals(t, "Berlin;10.0\nHamburg;-12.7\n", string(m.Bytes()))
	rtest.OK(t, m.Close())
}

func TestOpenRejectsMissingTrailingNewline(t *testing.T) {
	path := writeTempFile(t, "Berlin;10.0")

	_, err := Open(path)
	rtest.Assert(t, err != nil, "expected an error for a file missing its trailing newline")
}

func TestOpenRejectsMissingFile(t *testing.T) {
	dir := rtest.TempDir(t)
	_, err := Open(filepath.Join(dir, "does-not-exist.txt"))
	rtest.Assert(t, err != nil, "expected an error for a missing file")
}

func TestRunEndToEnd(t *testing.T) {
	path := writeTempFile(t, "Berlin;10.0\nHamburg;-12.7\nNew York;21.5\nBerlin;-15.7\n")

	m, err := Open(path)
	rtest.OK(t, err)
	defer m.Close()

	got, err := Run(context.Background(), m, Options{Workers: 1})
	rtest.OK(t, err)
	rtest.Equals(t, "{Berlin=-15.7/-2.9/10.0, Hamburg=-12.7/-12.7/-12.7, New York=21.5/21.5/21.5}\n", got)
}

func TestRunKnownStationsPath(t *testing.T) {
	path := writeTempFile(t, "Berlin;10.0\nHamburg;-12.7\nNew York;21.5\nBerlin;-15.7\n")

	m, err := Open(path)
	rtest.OK(t, err)
	defer m.Close()

	got, err := Run(context.Background(), m, Options{
		Workers:       1,
		KnownStations: []string{"Berlin", "Hamburg", "New York"},
	})
	rtest.OK(t, err)
	rtest.Equals(t, "{Berlin=-15.7/-2.9/10.0, Hamburg=-12.7/-12.7/-12.7, New York=21.5/21.5/21.5}\n", got)
}

func TestRunKnownStationsFatalOnUnknown(t *testing.T) {
	path := writeTempFile(t, "Nowhere;1.0\n")

	m, err := Open(path)
	rtest.OK(t, err)
	defer m.Close()

	_, err = Run(context.Background(), m, Options{
		Workers:       1,
		KnownStations: []string{"Berlin"},
	})
	rtest.Assert(t, err != nil, "expected a fatal error for an unknown station")
}
