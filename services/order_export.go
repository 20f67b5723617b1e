package services

import (
	"bytes"
	"fmt"

	"BabyNest/models"

	"github.com/xuri/excelize/v2"
)

var orderExportHeader = []string{
	"Tracking Number",
	"Owner Role",
	"Owner ID",
	"Shipping Address",
	"Items",
	"Total Price",
	"Order Status",
	"Payment Status",
	"Created At",
}

// ExportOrders renders the orders as an .xlsx workbook.
func ExportOrders(orders []models.Order) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Orders"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A1", &orderExportHeader); err != nil {
		return nil, err
	}
	last, _ := excelize.CoordinatesToCellName(len(orderExportHeader), 1)
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "A", "I", 20); err != nil {
		return nil, err
	}

	for i, o := range orders {
		owner, _ := o.OwnerRefs.Owner()
		items := 0
		for _, it := range o.OrderItems {
			items += it.Quantity
		}
		row := []interface{}{
			o.TrackingNumber,
			string(owner.Role),
			owner.ID,
			o.ShippingAddress,
			items,
			o.TotalPrice,
			string(o.OrderStatus),
			string(o.PaymentStatus),
			o.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
