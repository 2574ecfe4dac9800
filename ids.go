package dimsync

import "sync/atomic"

// DomainID identifies the namespace owned by one SyncScope.
type DomainID uint64

// GroupID identifies a LinkGroup and is the address its broadcasts use.
type GroupID uint64

var (
	domainCounter atomic.Uint64
	groupCounter  atomic.Uint64
)

// NextDomainID returns a process-unique domain id.
func NextDomainID() DomainID {
	return DomainID(domainCounter.Add(1))
}

func nextGroupID() GroupID {
	return GroupID(groupCounter.Add(1))
}
