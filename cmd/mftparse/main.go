// Command mftparse decodes a single NTFS artifact file — $MFT, $J, $Boot,
// $SDS, or $I30 — and prints or exports its records.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/shubham/mfte/internal/ntfs"
	"github.com/shubham/mfte/internal/output"
	"github.com/shubham/mfte/internal/source"
)

func main() {
	var (
		file   = flag.String("file", "", "Path to the NTFS artifact file (required)")
		kind   = flag.String("kind", "auto", "Artifact kind: auto, mft, usn, boot, sds, i30")
		format = flag.String("format", "table", "Output format: table, csv, json, bodyfile")
		out    = flag.String("out", "", "Output file path for csv/json/bodyfile (default stdout)")
		drive  = flag.String("drive", "C", "Drive letter used only by bodyfile output")
		limit  = flag.Int("limit", 0, "Cap on rows printed by the table renderer (0 = unlimited)")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: mftparse -file <path> [-kind auto|mft|usn|boot|sds|i30] [-format table|csv|json|bodyfile] [-out <path>]")
		os.Exit(1)
	}

	src, err := source.Open(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening artifact: %v\n", err)
		os.Exit(1)
	}
	defer src.Close()

	data := src.Bytes()

	resolvedKind, err := resolveKind(*kind, data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	records, err := decode(resolvedKind, data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", resolvedKind, err)
		os.Exit(1)
	}

	w := os.Stdout
	if *out != "" && *format != "table" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	switch *format {
	case "table":
		err = output.Table(os.Stdout, resolvedKind, records, *limit)
	case "csv":
		err = output.WriteCSV(w, resolvedKind, records)
	case "json":
		err = output.WriteJSON(w, records)
	case "bodyfile":
		err = output.WriteBodyfile(w, resolvedKind, records, *drive)
	default:
		fmt.Fprintf(os.Stderr, "Unknown format: %s\n", *format)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}

func resolveKind(requested string, data []byte) (ntfs.Kind, error) {
	switch requested {
	case "auto":
		k := ntfs.Detect(data)
		if k == ntfs.KindUnknown {
			return k, fmt.Errorf("could not detect artifact kind, pass -kind explicitly")
		}
		return k, nil
	case "mft":
		return ntfs.KindMFT, nil
	case "usn":
		return ntfs.KindUSN, nil
	case "boot":
		return ntfs.KindBoot, nil
	case "sds":
		return ntfs.KindSDS, nil
	case "i30":
		return ntfs.KindI30, nil
	default:
		return ntfs.KindUnknown, fmt.Errorf("unknown -kind %q", requested)
	}
}

func decode(kind ntfs.Kind, data []byte) (any, error) {
	switch kind {
	case ntfs.KindMFT:
		p := ntfs.NewMFTParser(data)
		if err := p.Parse(); err != nil {
			return nil, err
		}
		return p.Records(), nil
	case ntfs.KindUSN:
		p := ntfs.NewUSNParser(data)
		if err := p.Parse(); err != nil {
			return nil, err
		}
		return p.Records(), nil
	case ntfs.KindBoot:
		return ntfs.ParseBootSector(data)
	case ntfs.KindSDS:
		p := ntfs.NewSDSParser(data)
		if err := p.Parse(); err != nil {
			return nil, err
		}
		return p.Records(), nil
	case ntfs.KindI30:
		p := ntfs.NewI30Parser(data)
		if err := p.Parse(); err != nil {
			return nil, err
		}
		return p.Records(), nil
	default:
		return nil, fmt.Errorf("unsupported kind %s", kind)
	}
}
