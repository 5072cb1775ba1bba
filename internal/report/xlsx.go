package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/arcum42/sagemodels/internal/i18n"
)

// SheetName is the worksheet WriteXLSX fills.
const SheetName = "Models"

func xlsxHeader() []interface{} {
	return []interface{}{
		i18n.T("col_name"),
		i18n.T("col_type"),
		i18n.T("col_size"),
		i18n.T("col_last_used"),
		i18n.T("col_update"),
		i18n.T("col_model_id"),
		i18n.T("col_group"),
		i18n.T("col_path"),
		i18n.T("col_hash"),
	}
}

// WriteXLSX writes rep as a workbook with a header row and one row per
// model.
func WriteXLSX(w io.Writer, rep Report) error {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", SheetName)

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	if err := sw.SetRow("A1", xlsxHeader()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range rep.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		lastUsed, update, group := "", "", ""
		if row.LastUsed != nil {
			lastUsed = row.LastUsed.Format("2006-01-02 15:04")
		}
		if row.ShowUpdate {
			update = i18n.T("update_badge")
		}
		if row.IsGroupMember {
			group = fmt.Sprintf("%s (%d)", row.ModelID, row.GroupSize)
		}
		values := []interface{}{
			row.Name, row.Type, row.Size, lastUsed, update,
			row.ModelID, group, row.FilePath, row.Hash,
		}
		if err := sw.SetRow(cell, values); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush sheet: %w", err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
