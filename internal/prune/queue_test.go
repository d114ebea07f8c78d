package prune

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTraversalQueueIsFirstInFirstOut(testInstance *testing.T) {
	queue := newTraversalQueue("root")
	queue.Push("root/a")
	queue.Push("root/b")
	require.Equal(testInstance, 3, queue.Len())

	var drained []string
	for queue.Len() > 0 {
		path, ok := queue.Pop()
		require.True(testInstance, ok)
		drained = append(drained, path)
		if path == "root/a" {
			queue.Push("root/a/1.0-SNAPSHOT")
		}
	}

	require.Equal(testInstance, []string{"root", "root/a", "root/b", "root/a/1.0-SNAPSHOT"}, drained)

	_, ok := queue.Pop()
	require.False(testInstance, ok)
}
