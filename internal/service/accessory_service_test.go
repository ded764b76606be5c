package service

import (
	"testing"

	"go-phone-store/internal/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accessoryReq(name string, stock int) *AccessoryRequest {
	return &AccessoryRequest{
		Name:            name,
		Category:        "charger",
		PurchasePrice:   10,
		SellingPrice:    20,
		QuantityInStock: stock,
	}
}

func TestCreateAccessoryDefaultsMinQuantity(t *testing.T) {
	svc := NewAccessoryService(newFakeAccessoryRepo(), nil)

	accessory, err := svc.CreateAccessory(accessoryReq("Fast Charger", 10), "tester")
	require.NoError(t, err)
	assert.Equal(t, 5, accessory.MinQuantity)

	req := accessoryReq("Slow Charger", 10)
	req.MinQuantity = 2
	accessory2, err := svc.CreateAccessory(req, "tester")
	require.NoError(t, err)
	assert.Equal(t, 2, accessory2.MinQuantity)
}

func TestCreateAccessoryValidation(t *testing.T) {
	svc := NewAccessoryService(newFakeAccessoryRepo(), nil)

	req := accessoryReq("", 10)
	_, err := svc.CreateAccessory(req, "tester")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestAdjustStockClampsAtZero(t *testing.T) {
	repo := newFakeAccessoryRepo()
	svc := NewAccessoryService(repo, nil)

	accessory, err := svc.CreateAccessory(accessoryReq("Cable", 3), "tester")
	require.NoError(t, err)

	qty, err := svc.AdjustStock(accessory.ID, -10, "tester")
	require.NoError(t, err)
	assert.Equal(t, 0, qty)

	stored, _ := repo.FindByID(accessory.ID)
	assert.Equal(t, 0, stored.QuantityInStock)

	qty, err = svc.AdjustStock(accessory.ID, 7, "tester")
	require.NoError(t, err)
	assert.Equal(t, 7, qty)
}

func TestAdjustStockNotFound(t *testing.T) {
	svc := NewAccessoryService(newFakeAccessoryRepo(), nil)

	_, err := svc.AdjustStock(uuid.New(), 1, "tester")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestLowStockListing(t *testing.T) {
	svc := NewAccessoryService(newFakeAccessoryRepo(), nil)

	_, err := svc.CreateAccessory(accessoryReq("Plenty", 50), "tester")
	require.NoError(t, err)

	low := accessoryReq("Scarce", 2)
	low.MinQuantity = 5
	_, err = svc.CreateAccessory(low, "tester")
	require.NoError(t, err)

	// Stock equal to the threshold also counts as low.
	edge := accessoryReq("Edge", 5)
	edge.MinQuantity = 5
	_, err = svc.CreateAccessory(edge, "tester")
	require.NoError(t, err)

	listed, err := svc.GetLowStockAccessories()
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Scarce", listed[0].Name)
	assert.Equal(t, "Edge", listed[1].Name)
}

func TestDeleteAccessoryNotFoundOnSecondCall(t *testing.T) {
	svc := NewAccessoryService(newFakeAccessoryRepo(), nil)

	accessory, err := svc.CreateAccessory(accessoryReq("Holder", 4), "tester")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccessory(accessory.ID))

	err = svc.DeleteAccessory(accessory.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestSearchAccessories(t *testing.T) {
	svc := NewAccessoryService(newFakeAccessoryRepo(), nil)

	_, err := svc.CreateAccessory(accessoryReq("USB-C Cable", 10), "tester")
	require.NoError(t, err)
	_, err = svc.CreateAccessory(accessoryReq("Wall Charger", 10), "tester")
	require.NoError(t, err)

	matches, err := svc.SearchAccessories("usb-c")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "USB-C Cable", matches[0].Name)
}

func TestAccessoryStatistics(t *testing.T) {
	svc := NewAccessoryService(newFakeAccessoryRepo(), nil)

	_, err := svc.CreateAccessory(accessoryReq("Cable", 10), "tester")
	require.NoError(t, err)

	caseReq := accessoryReq("Case", 2)
	caseReq.Category = "case"
	caseReq.SellingPrice = 15
	_, err = svc.CreateAccessory(caseReq, "tester")
	require.NoError(t, err)

	stats, err := svc.GetStatistics()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalAccessories)
	assert.Equal(t, 12, stats.TotalQuantity)
	assert.Equal(t, float64(10*20+2*15), stats.TotalSellingValue)
	assert.Equal(t, 1, stats.LowStockCount)
	require.Contains(t, stats.Categories, "case")
	assert.Equal(t, 1, stats.Categories["case"].Count)
}
