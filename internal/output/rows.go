// Package output renders decoded ntfs records as console tables, CSV,
// JSON, or TSK-style bodyfiles.
package output

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/shubham/mfte/internal/ntfs"
)

// Rows is a header plus string-formatted data rows, the common shape
// both the table and CSV renderers consume.
type Rows struct {
	Header []string
	Data   [][]string
}

func filetimeString(ft ntfs.Filetime) string {
	if !ft.Valid {
		return ""
	}
	return ft.Time.Format("2006-01-02 15:04:05")
}

// ToRows flattens one kind's decoded records into Rows. data must be the
// slice type ntfs.Detect's kind implies: []ntfs.MFTRecord, []ntfs.UsnEntry,
// []ntfs.SecurityDescriptor, []ntfs.IndexEntry, or a single *ntfs.BootSector.
func ToRows(kind ntfs.Kind, data any) (Rows, error) {
	switch kind {
	case ntfs.KindMFT:
		records, ok := data.([]ntfs.MFTRecord)
		if !ok {
			return Rows{}, fmt.Errorf("output: expected []ntfs.MFTRecord for %s", kind)
		}
		rows := Rows{Header: []string{"entry", "seq", "in_use", "dir", "name", "parent_path", "size", "created_0x10", "modified_0x10"}}
		for _, r := range records {
			rows.Data = append(rows.Data, []string{
				fmt.Sprintf("%d", r.EntryNumber),
				fmt.Sprintf("%d", r.SeqNumber),
				fmt.Sprintf("%t", r.InUse),
				fmt.Sprintf("%t", r.IsDirectory),
				r.FileName,
				r.ParentPath,
				humanize.Bytes(r.FileSize),
				filetimeString(r.Created0x10),
				filetimeString(r.Modified0x10),
			})
		}
		return rows, nil

	case ntfs.KindUSN:
		entries, ok := data.([]ntfs.UsnEntry)
		if !ok {
			return Rows{}, fmt.Errorf("output: expected []ntfs.UsnEntry for %s", kind)
		}
		rows := Rows{Header: []string{"offset", "usn", "timestamp", "entry", "parent", "name", "reason"}}
		for _, e := range entries {
			rows.Data = append(rows.Data, []string{
				fmt.Sprintf("0x%x", e.Offset),
				fmt.Sprintf("%d", e.USN),
				filetimeString(e.Timestamp),
				fmt.Sprintf("%d", e.EntryNumber),
				fmt.Sprintf("%d", e.ParentEntry),
				e.FileName,
				e.Reason,
			})
		}
		return rows, nil

	case ntfs.KindBoot:
		boot, ok := data.(*ntfs.BootSector)
		if !ok {
			return Rows{}, fmt.Errorf("output: expected *ntfs.BootSector for %s", kind)
		}
		rows := Rows{Header: []string{"field", "value"}}
		rows.Data = append(rows.Data,
			[]string{"oem_id", boot.OEMID},
			[]string{"bytes_per_sector", fmt.Sprintf("%d", boot.BytesPerSector)},
			[]string{"sectors_per_cluster", fmt.Sprintf("%d", boot.SectorsPerCluster)},
			[]string{"cluster_size", humanize.Bytes(uint64(boot.SectorsPerCluster)*uint64(boot.BytesPerSector))},
			[]string{"total_sectors", fmt.Sprintf("%d", boot.TotalSectors)},
			[]string{"mft_start_cluster", fmt.Sprintf("%d", boot.MFTStartCluster)},
			[]string{"mft_mirror_start_cluster", fmt.Sprintf("%d", boot.MFTMirrorStartCluster)},
			[]string{"clusters_per_mft_record", fmt.Sprintf("%d", boot.ClustersPerMFTRecord)},
			[]string{"clusters_per_index_buffer", fmt.Sprintf("%d", boot.ClustersPerIndexBuffer)},
			[]string{"volume_serial_number", fmt.Sprintf("0x%x", boot.VolumeSerialNumber)},
		)
		return rows, nil

	case ntfs.KindSDS:
		descriptors, ok := data.([]ntfs.SecurityDescriptor)
		if !ok {
			return Rows{}, fmt.Errorf("output: expected []ntfs.SecurityDescriptor for %s", kind)
		}
		rows := Rows{Header: []string{"id", "hash", "offset", "length"}}
		for _, d := range descriptors {
			rows.Data = append(rows.Data, []string{
				fmt.Sprintf("%d", d.ID),
				fmt.Sprintf("0x%08x", d.Hash),
				fmt.Sprintf("0x%x", d.Offset),
				humanize.Bytes(uint64(d.Length)),
			})
		}
		return rows, nil

	case ntfs.KindI30:
		entries, ok := data.([]ntfs.IndexEntry)
		if !ok {
			return Rows{}, fmt.Errorf("output: expected []ntfs.IndexEntry for %s", kind)
		}
		rows := Rows{Header: []string{"entry", "parent", "dir", "name", "size", "created", "modified"}}
		for _, e := range entries {
			rows.Data = append(rows.Data, []string{
				fmt.Sprintf("%d", e.EntryNumber),
				fmt.Sprintf("%d", e.ParentEntry),
				fmt.Sprintf("%t", e.IsDirectory),
				e.FileName,
				humanize.Bytes(e.FileSize),
				filetimeString(e.Created),
				filetimeString(e.Modified),
			})
		}
		return rows, nil

	default:
		return Rows{}, fmt.Errorf("output: unsupported kind %s", kind)
	}
}
