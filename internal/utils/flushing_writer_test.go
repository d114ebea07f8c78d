package utils_test

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/m2prune/internal/utils"
)

func TestFlushingWriterFlushesBufferedWriters(testInstance *testing.T) {
	destination := &bytes.Buffer{}
	bufferedWriter := bufio.NewWriterSize(destination, 4096)

	flushingWriter := utils.NewFlushingWriter(bufferedWriter)
	bytesWritten, writeError := flushingWriter.Write([]byte("deleted size"))
	require.NoError(testInstance, writeError)
	require.Equal(testInstance, len("deleted size"), bytesWritten)
	require.Equal(testInstance, "deleted size", destination.String())

	require.Same(testInstance, flushingWriter, utils.NewFlushingWriter(flushingWriter))
	require.Nil(testInstance, utils.NewFlushingWriter(nil))
}

type recordingSyncWriter struct {
	bytes.Buffer
	syncCalls int
}

func (writer *recordingSyncWriter) Sync() error {
	writer.syncCalls++
	return nil
}

func TestFlushingWriterDelegatesSync(testInstance *testing.T) {
	destination := &recordingSyncWriter{}
	flushingWriter, isFlushingWriter := utils.NewFlushingWriter(destination).(*utils.FlushingWriter)
	require.True(testInstance, isFlushingWriter)

	require.NoError(testInstance, flushingWriter.Sync())
	require.Equal(testInstance, 1, destination.syncCalls)

	bufferOnly, _ := utils.NewFlushingWriter(&bytes.Buffer{}).(*utils.FlushingWriter)
	require.NoError(testInstance, bufferOnly.Sync())
}
