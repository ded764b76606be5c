package service

import (
	"testing"

	"go-phone-store/internal/apperr"
	"go-phone-store/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogTestEnv() (*fakeCatalogRepo, *fakePhoneRepo, *fakeAccessoryRepo, CatalogService) {
	catalogRepo := &fakeCatalogRepo{}
	phoneRepo := newFakePhoneRepo()
	accessoryRepo := newFakeAccessoryRepo()
	svc := NewCatalogService(catalogRepo, phoneRepo, accessoryRepo)
	return catalogRepo, phoneRepo, accessoryRepo, svc
}

func TestAddPhoneTypeRejectsDuplicate(t *testing.T) {
	_, _, _, svc := newCatalogTestEnv()

	_, err := svc.AddPhoneType(&PhoneTypeRequest{Brand: "Apple", Model: "iPhone 15"}, "tester")
	require.NoError(t, err)

	_, err = svc.AddPhoneType(&PhoneTypeRequest{Brand: "Apple", Model: "iPhone 15"}, "tester")
	require.Error(t, err)
	assert.Equal(t, apperr.KindDuplicateKey, apperr.KindOf(err))
}

func TestDeletePhoneTypeInUse(t *testing.T) {
	_, phoneRepo, _, svc := newCatalogTestEnv()

	_, err := svc.AddPhoneType(&PhoneTypeRequest{Brand: "Apple", Model: "iPhone 15"}, "tester")
	require.NoError(t, err)

	phoneRepo.Create(&model.Phone{
		PhoneNumber: "000001", SerialNumber: "SN1",
		Brand: "Apple", Model: "iPhone 15", Condition: model.ConditionNew,
	})

	err = svc.DeletePhoneType("Apple", "iPhone 15")
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	// After the phone is gone the type can be removed.
	all, _ := phoneRepo.FindAll()
	require.NoError(t, phoneRepo.Delete(all[0].ID))
	require.NoError(t, svc.DeletePhoneType("Apple", "iPhone 15"))
}

func TestDeletePhoneTypeNotFound(t *testing.T) {
	_, _, _, svc := newCatalogTestEnv()

	err := svc.DeletePhoneType("Nokia", "3310")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestAddCategoryNormalizesName(t *testing.T) {
	_, _, _, svc := newCatalogTestEnv()

	category, err := svc.AddCategory(&CategoryRequest{Name: " Chargers ", DisplayName: "Chargers"}, "tester")
	require.NoError(t, err)
	assert.Equal(t, "chargers", category.Name)
	assert.True(t, category.IsActive)

	_, err = svc.AddCategory(&CategoryRequest{Name: "chargers", DisplayName: "Chargers"}, "tester")
	require.Error(t, err)
	assert.Equal(t, apperr.KindDuplicateKey, apperr.KindOf(err))
}

func TestDeleteCategoryInUse(t *testing.T) {
	_, _, accessoryRepo, svc := newCatalogTestEnv()

	_, err := svc.AddCategory(&CategoryRequest{Name: "case", DisplayName: "Cases"}, "tester")
	require.NoError(t, err)

	accessoryRepo.Create(&model.Accessory{Name: "Clear Case", Category: "case", QuantityInStock: 3})

	err = svc.DeleteCategory("case")
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Equal(t, 409, apperr.HTTPStatus(err))
}

func TestDeleteEmptyCategory(t *testing.T) {
	catalogRepo, _, _, svc := newCatalogTestEnv()

	_, err := svc.AddCategory(&CategoryRequest{Name: "holder", DisplayName: "Holders"}, "tester")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory("holder"))
	assert.Empty(t, catalogRepo.categories)
}
