package service

import (
	"encoding/json"
	"testing"

	"go-phone-store/internal/apperr"
	"go-phone-store/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExportTestEnv() (*fakePhoneRepo, *fakeAccessoryRepo, *fakeSaleRepo, ExportService) {
	phoneRepo := newFakePhoneRepo()
	accessoryRepo := newFakeAccessoryRepo()
	saleRepo := newFakeSaleRepo()
	svc := NewExportService(phoneRepo, accessoryRepo, saleRepo, &fakeCatalogRepo{}, newFakeSettingRepo())
	return phoneRepo, accessoryRepo, saleRepo, svc
}

func TestExportImportRoundTrip(t *testing.T) {
	phoneRepo, accessoryRepo, saleRepo, svc := newExportTestEnv()

	phoneRepo.Create(&model.Phone{
		PhoneNumber: "000001", SerialNumber: "SN1",
		Brand: "Apple", Model: "iPhone 13", Condition: model.ConditionNew,
	})
	accessoryRepo.Create(&model.Accessory{Name: "Cable", Category: "cable", QuantityInStock: 4})
	saleRepo.Create(&model.Sale{SaleNumber: "S-1", Status: model.SaleCompleted, TotalAmount: 100})

	payload, err := svc.Export()
	require.NoError(t, err)
	assert.Equal(t, "1.0", payload.Version)
	assert.False(t, payload.ExportedAt.IsZero())
	assert.Len(t, payload.Phones, 1)
	assert.Len(t, payload.Accessories, 1)
	assert.Len(t, payload.Sales, 1)
	assert.Equal(t, "Test Phone Store", payload.Settings[model.SettingCompanyName])

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	// Import into an empty store recreates everything.
	freshPhones, freshAccessories, freshSales, freshSvc := newExportTestEnv()
	summary, err := freshSvc.Import(raw, "tester")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Phones)
	assert.Equal(t, 1, summary.Accessories)
	assert.Equal(t, 1, summary.Sales)
	assert.Equal(t, 0, summary.Skipped)

	phones, _ := freshPhones.FindAll()
	require.Len(t, phones, 1)
	assert.Equal(t, "SN1", phones[0].SerialNumber)
	accessories, _ := freshAccessories.FindAll()
	assert.Len(t, accessories, 1)
	sales, _ := freshSales.FindAll()
	assert.Len(t, sales, 1)
}

func TestImportIsIdempotent(t *testing.T) {
	phoneRepo, _, _, svc := newExportTestEnv()

	phoneRepo.Create(&model.Phone{
		PhoneNumber: "000001", SerialNumber: "SN1",
		Brand: "Apple", Model: "iPhone 13", Condition: model.ConditionNew,
	})

	payload, err := svc.Export()
	require.NoError(t, err)
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	// Importing back into the same store skips every existing record.
	summary, err := svc.Import(raw, "tester")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Phones)
	assert.Equal(t, 1, summary.Skipped)

	phones, _ := phoneRepo.FindAll()
	assert.Len(t, phones, 1)
}

func TestImportRejectsBadPayloads(t *testing.T) {
	_, _, _, svc := newExportTestEnv()

	_, err := svc.Import([]byte("{not json"), "tester")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.Import([]byte(`{"phones":[]}`), "tester")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
