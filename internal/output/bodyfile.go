package output

import (
	"fmt"
	"io"

	"github.com/shubham/mfte/internal/ntfs"
)

// WriteBodyfile writes data as TSK 3.x pipe-delimited bodyfile lines:
// md5|name|inode|mode_as_string|UID|GID|size|atime|mtime|ctime|crtime.
// md5 and mode are always blank: this port never reads file content or
// POSIX mode bits, which an NTFS MFT record does not carry. drive
// prefixes name, matching how triage tooling tags bodyfile entries with
// the source volume.
func WriteBodyfile(w io.Writer, kind ntfs.Kind, data any, drive string) error {
	switch kind {
	case ntfs.KindMFT:
		records, ok := data.([]ntfs.MFTRecord)
		if !ok {
			return fmt.Errorf("output: expected []ntfs.MFTRecord for %s", kind)
		}
		for _, r := range records {
			name := fmt.Sprintf("%s:/%s", drive, r.FileName)
			_, err := fmt.Fprintf(w, "|%s|%d|%s|0|0|%d|%d|%d|%d|%d\n",
				name, r.EntryNumber, "", r.FileSize,
				epochOrZero(r.Accessed0x10), epochOrZero(r.Modified0x10),
				epochOrZero(r.RecordChanged0x10), epochOrZero(r.Created0x10))
			if err != nil {
				return err
			}
		}
		return nil

	case ntfs.KindUSN:
		entries, ok := data.([]ntfs.UsnEntry)
		if !ok {
			return fmt.Errorf("output: expected []ntfs.UsnEntry for %s", kind)
		}
		for _, e := range entries {
			name := fmt.Sprintf("%s:/%s", drive, e.FileName)
			ts := epochOrZero(e.Timestamp)
			_, err := fmt.Fprintf(w, "|%s|%d|%s|0|0|0|%d|%d|%d|%d\n",
				name, e.EntryNumber, "", ts, ts, ts, ts)
			if err != nil {
				return err
			}
		}
		return nil

	case ntfs.KindI30:
		entries, ok := data.([]ntfs.IndexEntry)
		if !ok {
			return fmt.Errorf("output: expected []ntfs.IndexEntry for %s", kind)
		}
		for _, e := range entries {
			name := fmt.Sprintf("%s:/%s", drive, e.FileName)
			_, err := fmt.Fprintf(w, "|%s|%d|%s|0|0|%d|%d|%d|%d|%d\n",
				name, e.EntryNumber, "", e.FileSize,
				epochOrZero(e.Accessed), epochOrZero(e.Modified),
				epochOrZero(e.Modified), epochOrZero(e.Created))
			if err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("output: bodyfile format not supported for kind %s", kind)
	}
}

func epochOrZero(ft ntfs.Filetime) int64 {
	if !ft.Valid {
		return 0
	}
	return ft.Time.Unix()
}
