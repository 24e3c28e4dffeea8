package domain

import (
	"strconv"
	"strings"

	m "sshbatch.dev/pkg/sshbatch/internal/model"
)

// DefaultMountMarker identifies sshfs lines in a mount listing
// (findmnt reports the type as "fuse.sshfs").
const DefaultMountMarker = "sshfs"

// BuildMountTable parses raw mount listing lines into a MountTable. A line
// qualifies when it contains marker; its first field is the local mount point
// and its second the "host:path" source. Other lines, and qualifying lines
// that are too short or lack a ':' in the source, are skipped.
func BuildMountTable(lines []string, marker string) m.MountTable {
	if marker == "" {
		marker = DefaultMountMarker
	}

	entries := make([]m.MountEntry, 0, len(lines))

	for _, line := range lines {
		entry, ok := parseMountLine(line, marker)
		if !ok {
			continue
		}

		entries = append(entries, entry)
	}

	return m.NewMountTable(entries...)
}

func parseMountLine(line, marker string) (m.MountEntry, bool) {
	if !strings.Contains(line, marker) {
		return m.MountEntry{}, false
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return m.MountEntry{}, false
	}

	if !strings.Contains(fields[1], ":") {
		return m.MountEntry{}, false
	}

	return m.MountEntry{
		LocalRoot:  m.Path(unescapeMountField(fields[0])),
		RemoteSpec: unescapeMountField(fields[1]),
	}, true
}

// unescapeMountField decodes the \xHH escapes findmnt uses for whitespace and
// other unsafe bytes. Malformed escapes are kept verbatim.
func unescapeMountField(field string) string {
	if !strings.Contains(field, `\x`) {
		return field
	}

	var b strings.Builder

	for i := 0; i < len(field); i++ {
		if field[i] == '\\' && i+4 <= len(field) && field[i+1] == 'x' {
			if v, err := strconv.ParseUint(field[i+2:i+4], 16, 8); err == nil {
				b.WriteByte(byte(v))
				i += 3

				continue
			}
		}

		b.WriteByte(field[i])
	}

	return b.String()
}
