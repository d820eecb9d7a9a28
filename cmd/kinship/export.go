package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nileroots/kinship-core/internal/domain/entities"
	"github.com/nileroots/kinship-core/internal/infrastructure/parsers"
)

func newExportCmd() *cobra.Command {
	var format, output string
	var limit int

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a tree's records to file",
		Long: `Exports people, parent links, and unions in the same record format the
import command reads, so an export can be re-imported into another tree.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, format, output, limit)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json, csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultExportLimit, "Maximum number of people to export")

	return cmd
}

func runExport(cmd *cobra.Command, format, output string, limit int) error {
	ctx := cmd.Context()

	if !contains(validFormats, format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", format, validFormats)
	}

	return withDeps(ctx, func(d *deps) error {
		people, err := d.PersonHandler.HandleList(ctx, d.TreeID, limit, 0)
		if err != nil {
			return err
		}
		records, err := buildExportRecords(cmd, d, people.People)
		if err != nil {
			return err
		}

		var w io.Writer = os.Stdout
		if output != "" {
			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer file.Close()
			w = file
		}

		switch format {
		case "json":
			err = formatJSON(w, records)
		case "csv":
			err = formatCSV(w, records)
		}
		if err != nil {
			return fmt.Errorf("writing export: %w", err)
		}

		if output != "" {
			fmt.Printf("Exported %d records to %s\n", len(records), output)
		}
		return nil
	})
}

// buildExportRecords flattens a tree into import-compatible records. Edges
// and unions reference people by name; edges whose endpoints fall outside
// the exported page are skipped.
func buildExportRecords(cmd *cobra.Command, d *deps, people []*entities.Person) ([]parsers.RawRecord, error) {
	ctx := cmd.Context()

	names := make(map[string]string, len(people))
	records := make([]parsers.RawRecord, 0, len(people))
	for _, p := range people {
		names[p.ID] = p.Name
		records = append(records, parsers.RawRecord{
			Record:   parsers.RecordPerson,
			Name:     p.Name,
			Sex:      string(p.Sex),
			Deceased: p.Deceased,
		})
	}

	edges, err := d.db.ListParentChildEdges(ctx, d.TreeID)
	if err != nil {
		return nil, fmt.Errorf("listing edges: %w", err)
	}
	for i := range edges {
		parent, okP := names[edges[i].ParentID]
		child, okC := names[edges[i].ChildID]
		if !okP || !okC {
			continue
		}
		records = append(records, parsers.RawRecord{
			Record: parsers.RecordParent,
			Parent: parent,
			Child:  child,
			Type:   string(edges[i].Type),
		})
	}

	unions, err := d.db.ListUnions(ctx, d.TreeID)
	if err != nil {
		return nil, fmt.Errorf("listing unions: %w", err)
	}
	for i := range unions {
		members := make([]string, 0, len(unions[i].MemberIDs))
		for _, id := range unions[i].MemberIDs {
			if name, ok := names[id]; ok {
				members = append(members, name)
			}
		}
		if len(members) < 2 {
			continue
		}
		records = append(records, parsers.RawRecord{
			Record:  parsers.RecordUnion,
			Members: members,
		})
	}

	return records, nil
}

// formatJSON writes records as an indented JSON array.
func formatJSON(w io.Writer, records []parsers.RawRecord) error {
	if records == nil {
		records = []parsers.RawRecord{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

// formatCSV writes records in the import command's CSV layout.
func formatCSV(w io.Writer, records []parsers.RawRecord) error {
	writer := csv.NewWriter(w)

	header := []string{"record", "name", "sex", "deceased", "parent", "child", "type", "members"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for i := range records {
		rec := &records[i]
		deceased := ""
		if rec.Record == parsers.RecordPerson {
			deceased = strconv.FormatBool(rec.Deceased)
		}
		row := []string{
			rec.Record,
			rec.Name,
			rec.Sex,
			deceased,
			rec.Parent,
			rec.Child,
			rec.Type,
			strings.Join(rec.Members, ";"),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
