package services

import (
	"bytes"
	"testing"
	"time"

	"BabyNest/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportOrdersWorkbook(t *testing.T) {
	orders := []models.Order{
		{
			TrackingNumber:  "ORD-1234565678",
			OwnerRefs:       models.NewOwnerRefs(models.RelativeOwner("r-1")),
			ShippingAddress: "1 Main St",
			TotalPrice:      42.5,
			OrderStatus:     models.OrderPending,
			PaymentStatus:   models.PaymentPending,
			OrderItems:      []models.OrderItem{{Quantity: 2}, {Quantity: 3}},
			CreatedAt:       time.Date(2024, 2, 1, 8, 30, 0, 0, time.UTC),
		},
	}

	data, err := ExportOrders(orders)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Orders"}, f.GetSheetList())
	rows, err := f.GetRows("Orders")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, orderExportHeader, rows[0])
	assert.Equal(t, []string{
		"ORD-1234565678", "RELATIVE", "r-1", "1 Main St", "5", "42.5", "PENDING", "PENDING", "2024-02-01 08:30:00",
	}, rows[1])
}

func TestExportOrdersEmpty(t *testing.T) {
	data, err := ExportOrders(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Orders")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
