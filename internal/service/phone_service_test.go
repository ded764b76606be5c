package service

import (
	"testing"

	"go-phone-store/internal/apperr"
	"go-phone-store/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPhoneService(repo *fakePhoneRepo) PhoneService {
	return NewPhoneService(repo, nil, 0)
}

func createPhoneReq(serial string) *CreatePhoneRequest {
	return &CreatePhoneRequest{
		Brand:         "Apple",
		Model:         "iPhone 13",
		Condition:     "new",
		SerialNumber:  serial,
		PurchasePrice: 500,
		SellingPrice:  650,
	}
}

func TestCreatePhoneAssignsSequentialNumbers(t *testing.T) {
	repo := newFakePhoneRepo()
	svc := newTestPhoneService(repo)

	first, err := svc.CreatePhone(createPhoneReq("SN001"), "tester")
	require.NoError(t, err)
	assert.Equal(t, "000001", first.PhoneNumber)

	second, err := svc.CreatePhone(createPhoneReq("SN002"), "tester")
	require.NoError(t, err)
	assert.Equal(t, "000002", second.PhoneNumber)
}

func TestCreatePhoneSkipsGapsToMaxPlusOne(t *testing.T) {
	repo := newFakePhoneRepo()
	svc := newTestPhoneService(repo)

	// Earlier deletions leave holes; allocation continues past the max.
	for _, n := range []string{"000001", "000002", "000007"} {
		repo.Create(&model.Phone{PhoneNumber: n, SerialNumber: "pre-" + n})
	}

	phone, err := svc.CreatePhone(createPhoneReq("SN100"), "tester")
	require.NoError(t, err)
	assert.Equal(t, "000008", phone.PhoneNumber)
}

func TestCreatePhoneTreatsMalformedNumbersAsZero(t *testing.T) {
	repo := newFakePhoneRepo()
	svc := newTestPhoneService(repo)

	repo.Create(&model.Phone{PhoneNumber: "garbage", SerialNumber: "pre-1"})

	phone, err := svc.CreatePhone(createPhoneReq("SN100"), "tester")
	require.NoError(t, err)
	assert.Equal(t, "000001", phone.PhoneNumber)
}

func TestCreatePhoneCapacityExceeded(t *testing.T) {
	repo := newFakePhoneRepo()
	svc := newTestPhoneService(repo)

	repo.Create(&model.Phone{PhoneNumber: "100000", SerialNumber: "pre-max"})

	_, err := svc.CreatePhone(createPhoneReq("SN100"), "tester")
	require.Error(t, err)
	assert.Equal(t, apperr.KindCapacityExceeded, apperr.KindOf(err))
}

func TestCreatePhonePersistenceFailure(t *testing.T) {
	repo := newFakePhoneRepo()
	repo.createErr = errStoreDown
	svc := newTestPhoneService(repo)

	_, err := svc.CreatePhone(createPhoneReq("SN050"), "tester")
	require.Error(t, err)
	assert.Equal(t, apperr.KindPersistence, apperr.KindOf(err))
	assert.Equal(t, 500, apperr.HTTPStatus(err))
}

func TestCreatePhoneDuplicateSerial(t *testing.T) {
	repo := newFakePhoneRepo()
	svc := newTestPhoneService(repo)

	_, err := svc.CreatePhone(createPhoneReq("SN123"), "tester")
	require.NoError(t, err)

	_, err = svc.CreatePhone(createPhoneReq("SN123"), "tester")
	require.Error(t, err)
	assert.Equal(t, apperr.KindDuplicateKey, apperr.KindOf(err))
	assert.Equal(t, 409, apperr.HTTPStatus(err))

	all, _ := repo.FindAll()
	assert.Len(t, all, 1)
}

func TestCreatePhoneWithBarcode(t *testing.T) {
	repo := newFakePhoneRepo()
	svc := newTestPhoneService(repo)

	req := createPhoneReq("SN200")
	req.BarcodeInput = " 12-34 "
	phone, err := svc.CreatePhone(req, "tester")
	require.NoError(t, err)
	assert.Equal(t, "1234", phone.PhoneNumber)

	// Same barcode again collides on the phone number.
	req2 := createPhoneReq("SN201")
	req2.BarcodeInput = "1234"
	_, err = svc.CreatePhone(req2, "tester")
	require.Error(t, err)
	assert.Equal(t, apperr.KindDuplicateKey, apperr.KindOf(err))
}

func TestCreatePhoneKeepsScannedManufacturerBarcode(t *testing.T) {
	repo := newFakePhoneRepo()
	svc := newTestPhoneService(repo)

	// An EAN-13 scan is stored as-is rather than squeezed into the
	// 6-digit allocated format.
	req := createPhoneReq("SN210")
	req.BarcodeInput = "4006381333931"
	phone, err := svc.CreatePhone(req, "tester")
	require.NoError(t, err)
	assert.Equal(t, "4006381333931", phone.PhoneNumber)
}

func TestCreatePhoneRejectsOversizedBarcode(t *testing.T) {
	repo := newFakePhoneRepo()
	svc := newTestPhoneService(repo)

	req := createPhoneReq("SN310")
	req.BarcodeInput = "123456789012345678901" // 21 digits, wider than the column
	_, err := svc.CreatePhone(req, "tester")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	all, _ := repo.FindAll()
	assert.Empty(t, all)
}

func TestCreatePhoneAllocationExhausted(t *testing.T) {
	repo := newFakePhoneRepo()
	repo.numberTaken = true
	svc := NewPhoneService(repo, nil, 3)

	_, err := svc.CreatePhone(createPhoneReq("SN500"), "tester")
	require.Error(t, err)
	assert.Equal(t, apperr.KindAllocationExhausted, apperr.KindOf(err))
	assert.Equal(t, 409, apperr.HTTPStatus(err))

	// One uniqueness check per attempt, then the loop gives up.
	assert.Equal(t, 3, repo.findByNumberCalls)
	all, _ := repo.FindAll()
	assert.Empty(t, all)
}

func TestCreatePhoneRejectsNonNumericBarcode(t *testing.T) {
	repo := newFakePhoneRepo()
	svc := newTestPhoneService(repo)

	req := createPhoneReq("SN300")
	req.BarcodeInput = "abc-def"
	_, err := svc.CreatePhone(req, "tester")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestCreatePhoneValidation(t *testing.T) {
	repo := newFakePhoneRepo()
	svc := newTestPhoneService(repo)

	req := createPhoneReq("SN400")
	req.Brand = ""
	_, err := svc.CreatePhone(req, "tester")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Equal(t, 400, apperr.HTTPStatus(err))
}

func TestCreateUsedPhoneKeepsConditionFields(t *testing.T) {
	repo := newFakePhoneRepo()
	svc := newTestPhoneService(repo)

	battery := "85%"
	grade := model.GradeGood
	age := 18

	req := createPhoneReq("SN500")
	req.Condition = "used"
	req.BatteryLevel = &battery
	req.Grade = &grade
	req.AgeMonths = &age

	phone, err := svc.CreatePhone(req, "tester")
	require.NoError(t, err)
	require.NotNil(t, phone.BatteryLevel)
	assert.Equal(t, "85%", *phone.BatteryLevel)
	require.NotNil(t, phone.Grade)
	assert.Equal(t, model.GradeGood, *phone.Grade)

	// New phones never carry used-only fields even if sent.
	req2 := createPhoneReq("SN501")
	req2.BatteryLevel = &battery
	phone2, err := svc.CreatePhone(req2, "tester")
	require.NoError(t, err)
	assert.Nil(t, phone2.BatteryLevel)
}

func TestUpdatePhoneDuplicateSerialExcludesSelf(t *testing.T) {
	repo := newFakePhoneRepo()
	svc := newTestPhoneService(repo)

	phone, err := svc.CreatePhone(createPhoneReq("SN600"), "tester")
	require.NoError(t, err)
	_, err = svc.CreatePhone(createPhoneReq("SN601"), "tester")
	require.NoError(t, err)

	// Keeping its own serial is fine.
	upd := &UpdatePhoneRequest{
		Brand: "Apple", Model: "iPhone 13", SerialNumber: "SN600",
		PurchasePrice: 500, SellingPrice: 700,
	}
	updated, err := svc.UpdatePhone(phone.ID, upd, "tester")
	require.NoError(t, err)
	assert.Equal(t, float64(700), updated.SellingPrice)

	// Taking another phone's serial is not.
	upd.SerialNumber = "SN601"
	_, err = svc.UpdatePhone(phone.ID, upd, "tester")
	require.Error(t, err)
	assert.Equal(t, apperr.KindDuplicateKey, apperr.KindOf(err))
}

func TestDeletePhoneNotFoundOnSecondCall(t *testing.T) {
	repo := newFakePhoneRepo()
	svc := newTestPhoneService(repo)

	phone, err := svc.CreatePhone(createPhoneReq("SN700"), "tester")
	require.NoError(t, err)

	require.NoError(t, svc.DeletePhone(phone.ID))

	err = svc.DeletePhone(phone.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, 404, apperr.HTTPStatus(err))
}

func TestDeletedNumberIsReusedWhenItWasMax(t *testing.T) {
	repo := newFakePhoneRepo()
	svc := newTestPhoneService(repo)

	first, err := svc.CreatePhone(createPhoneReq("SN800"), "tester")
	require.NoError(t, err)
	assert.Equal(t, "000001", first.PhoneNumber)

	require.NoError(t, svc.DeletePhone(first.ID))

	// With the store empty again the sequence restarts.
	second, err := svc.CreatePhone(createPhoneReq("SN801"), "tester")
	require.NoError(t, err)
	assert.Equal(t, "000001", second.PhoneNumber)
}

func TestSearchPhones(t *testing.T) {
	repo := newFakePhoneRepo()
	svc := newTestPhoneService(repo)

	req := createPhoneReq("SN900")
	req.Brand = "Samsung"
	req.Model = "Galaxy S22"
	_, err := svc.CreatePhone(req, "tester")
	require.NoError(t, err)

	req2 := createPhoneReq("SN901")
	req2.Condition = "used"
	_, err = svc.CreatePhone(req2, "tester")
	require.NoError(t, err)

	matches, err := svc.SearchPhones("galaxy", "")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Samsung", matches[0].Brand)

	used, err := svc.SearchPhones("", "used")
	require.NoError(t, err)
	require.Len(t, used, 1)
	assert.Equal(t, "SN901", used[0].SerialNumber)

	none, err := svc.SearchPhones("pixel", "")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPhoneStatistics(t *testing.T) {
	repo := newFakePhoneRepo()
	svc := newTestPhoneService(repo)

	_, err := svc.CreatePhone(createPhoneReq("SN910"), "tester")
	require.NoError(t, err)

	usedReq := createPhoneReq("SN911")
	usedReq.Condition = "used"
	usedReq.PurchasePrice = 200
	usedReq.SellingPrice = 300
	_, err = svc.CreatePhone(usedReq, "tester")
	require.NoError(t, err)

	stats, err := svc.GetStatistics()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalPhones)
	assert.Equal(t, 1, stats.NewPhones)
	assert.Equal(t, 1, stats.UsedPhones)
	assert.Equal(t, float64(700), stats.TotalPurchaseValue)
	assert.Equal(t, float64(950), stats.TotalSellingValue)
	// Same brand/model but different condition stays separate.
	assert.Len(t, stats.BrandSummaries, 2)
}

func TestGetPhoneByIDNotFound(t *testing.T) {
	svc := newTestPhoneService(newFakePhoneRepo())

	_, err := svc.GetPhoneByID(uuid.New())
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}
