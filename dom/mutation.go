package dom

// MutationCallback receives notifications about tree and attribute
// mutations within a document. Callbacks run synchronously inside the
// mutating call, so they must not mutate the same subtree re-entrantly.
type MutationCallback interface {
	// OnChildListMutation is called when children are added or removed.
	OnChildListMutation(target *Node, addedNodes, removedNodes []*Node)

	// OnAttributeMutation is called when an attribute is set or removed.
	OnAttributeMutation(target *Node, attributeName, oldValue string)
}

// RegisterMutationCallback registers a callback to receive mutation
// notifications for a document.
func RegisterMutationCallback(doc *Document, callback MutationCallback) {
	if doc == nil || callback == nil || doc.AsNode().documentData == nil {
		return
	}
	data := doc.AsNode().documentData
	data.mutationCallbacks = append(data.mutationCallbacks, callback)
}

// UnregisterMutationCallback removes a previously registered callback.
func UnregisterMutationCallback(doc *Document, callback MutationCallback) {
	if doc == nil || doc.AsNode().documentData == nil {
		return
	}
	data := doc.AsNode().documentData
	for i, cb := range data.mutationCallbacks {
		if cb == callback {
			data.mutationCallbacks = append(data.mutationCallbacks[:i], data.mutationCallbacks[i+1:]...)
			return
		}
	}
}

func notifyChildListMutation(target *Node, addedNodes, removedNodes []*Node) {
	for _, cb := range callbacksFor(target) {
		cb.OnChildListMutation(target, addedNodes, removedNodes)
	}
}

func notifyAttributeMutation(target *Node, attributeName, oldValue string) {
	for _, cb := range callbacksFor(target) {
		cb.OnAttributeMutation(target, attributeName, oldValue)
	}
}

func callbacksFor(target *Node) []MutationCallback {
	if target == nil || target.ownerDoc == nil {
		return nil
	}
	data := target.ownerDoc.AsNode().documentData
	if data == nil {
		return nil
	}
	return data.mutationCallbacks
}
