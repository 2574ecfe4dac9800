// Package registry implements the keyed store that lets widgets in unrelated
// subtrees agree on one shared size.
//
// Entries are addressed by a (domain, key) pair. Participants append natural
// sizes to an entry during a pass; the domain's owner then resolves each entry
// to the maximum of its samples. Each domain is held in a persistent hash map,
// so a [Snapshot] is free to take and stays valid after later writes, which is
// what the owner's before/after [Diff] relies on.
//
// A Registry is owned by one layout goroutine and is not safe for concurrent
// use.
package registry
