// Package debug provides optional debug logging for the layout machinery.
//
// When the DIMSYNC_DEBUG environment variable is set to a file path, messages
// are appended to that file. Init and SetOutput choose a destination
// explicitly. Otherwise every Logger is a no-op.
//
//	var log = debug.For("scope")
//	log.Log("domain %d: %d pass(es)", id, passes)
package debug
