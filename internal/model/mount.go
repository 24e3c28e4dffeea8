package model

import "strings"

// MountEntry is one active sshfs binding as reported by the mount listing.
type MountEntry struct {
	LocalRoot  Path   // mount point on this machine, as listed (not canonicalized)
	RemoteSpec string // "<host>:<remote_root>"
}

// RemoteHost returns the part of RemoteSpec before the first ':'.
func (e MountEntry) RemoteHost() string {
	host, _, _ := strings.Cut(e.RemoteSpec, ":")
	return host
}

// RemoteRoot returns the part of RemoteSpec after the first ':'.
// An empty root means the remote user's home directory.
func (e MountEntry) RemoteRoot() string {
	_, root, _ := strings.Cut(e.RemoteSpec, ":")
	return root
}

// MountTable maps local mount roots to their entries. Keys are unique and the
// table keeps listing order, which decides ties between nested mounts.
type MountTable struct {
	order   []Path
	entries map[Path]MountEntry
}

// NewMountTable builds a table from entries in listing order. A repeated
// LocalRoot replaces the earlier RemoteSpec but keeps the earlier position.
func NewMountTable(entries ...MountEntry) MountTable {
	t := MountTable{entries: make(map[Path]MountEntry, len(entries))}

	for _, entry := range entries {
		if _, seen := t.entries[entry.LocalRoot]; !seen {
			t.order = append(t.order, entry.LocalRoot)
		}

		t.entries[entry.LocalRoot] = entry
	}

	return t
}

// Len returns the number of mounts in the table.
func (t MountTable) Len() int {
	return len(t.order)
}

// Entries returns a copy of the entries in listing order.
func (t MountTable) Entries() []MountEntry {
	out := make([]MountEntry, 0, len(t.order))
	for _, root := range t.order {
		out = append(out, t.entries[root])
	}

	return out
}
