// Package dimsync lets widgets in unrelated branches of a layout tree agree
// on one shared size along an axis.
//
// Two mechanisms are provided. A [SyncScope] owns a domain in a keyed
// [Registry]; any [SyncParticipant] below it records its natural size under a
// key, and the scope lays its subtree out a second time when the per-key
// maxima changed. A [LinkGroup] is a fixed-membership counter shared by
// [LinkedParticipant] widgets; once every member has reported, the maximum is
// broadcast on the [Bus] and only the members are revisited on the next frame.
//
// Widgets implement [Widget]; a [Host] drives frames over a root widget.
package dimsync
