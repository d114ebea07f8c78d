package prune

// traversalQueue is the first-in-first-out worklist of paths awaiting a visit.
type traversalQueue struct {
	pending []string
}

func newTraversalQueue(rootPath string) *traversalQueue {
	return &traversalQueue{pending: []string{rootPath}}
}

func (queue *traversalQueue) Push(path string) {
	queue.pending = append(queue.pending, path)
}

func (queue *traversalQueue) Pop() (string, bool) {
	if len(queue.pending) == 0 {
		return "", false
	}
	path := queue.pending[0]
	queue.pending[0] = ""
	queue.pending = queue.pending[1:]
	return path, true
}

func (queue *traversalQueue) Len() int {
	return len(queue.pending)
}
