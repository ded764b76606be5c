package service

import (
	"errors"
	"time"

	"go-phone-store/internal/model"

	"github.com/google/uuid"
)

var (
	errRecordNotFound = errors.New("record not found")
	errStoreDown      = errors.New("store unavailable")
)

// In-memory repository fakes. They mimic the lookup semantics of the real
// gorm-backed repos: a miss returns (nil, error).

type fakePhoneRepo struct {
	phones    map[uuid.UUID]*model.Phone
	order     []uuid.UUID
	createErr error

	// numberTaken makes every FindByNumber lookup report a collision,
	// regardless of contents. findByNumberCalls counts the lookups.
	numberTaken       bool
	findByNumberCalls int
}

func newFakePhoneRepo() *fakePhoneRepo {
	return &fakePhoneRepo{phones: make(map[uuid.UUID]*model.Phone)}
}

func (r *fakePhoneRepo) Create(phone *model.Phone) error {
	if r.createErr != nil {
		return r.createErr
	}
	if phone.ID == uuid.Nil {
		phone.ID = uuid.New()
	}
	copied := *phone
	r.phones[phone.ID] = &copied
	r.order = append(r.order, phone.ID)
	return nil
}

func (r *fakePhoneRepo) FindAll() ([]model.Phone, error) {
	out := make([]model.Phone, 0, len(r.phones))
	for _, id := range r.order {
		if p, ok := r.phones[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePhoneRepo) FindByID(id uuid.UUID) (*model.Phone, error) {
	p, ok := r.phones[id]
	if !ok {
		return nil, errRecordNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakePhoneRepo) FindBySerial(serial string) (*model.Phone, error) {
	for _, p := range r.phones {
		if p.SerialNumber == serial {
			copied := *p
			return &copied, nil
		}
	}
	return nil, errRecordNotFound
}

func (r *fakePhoneRepo) FindByNumber(number string) (*model.Phone, error) {
	r.findByNumberCalls++
	if r.numberTaken {
		return &model.Phone{PhoneNumber: number}, nil
	}
	for _, p := range r.phones {
		if p.PhoneNumber == number {
			copied := *p
			return &copied, nil
		}
	}
	return nil, errRecordNotFound
}

func (r *fakePhoneRepo) AllNumbers() ([]string, error) {
	var numbers []string
	for _, id := range r.order {
		if p, ok := r.phones[id]; ok {
			numbers = append(numbers, p.PhoneNumber)
		}
	}
	return numbers, nil
}

func (r *fakePhoneRepo) Update(phone *model.Phone) error {
	if _, ok := r.phones[phone.ID]; !ok {
		return errRecordNotFound
	}
	copied := *phone
	r.phones[phone.ID] = &copied
	return nil
}

func (r *fakePhoneRepo) Delete(id uuid.UUID) error {
	if _, ok := r.phones[id]; !ok {
		return errRecordNotFound
	}
	delete(r.phones, id)
	return nil
}

type fakeAccessoryRepo struct {
	accessories map[uuid.UUID]*model.Accessory
	order       []uuid.UUID
}

func newFakeAccessoryRepo() *fakeAccessoryRepo {
	return &fakeAccessoryRepo{accessories: make(map[uuid.UUID]*model.Accessory)}
}

func (r *fakeAccessoryRepo) Create(accessory *model.Accessory) error {
	if accessory.ID == uuid.Nil {
		accessory.ID = uuid.New()
	}
	copied := *accessory
	r.accessories[accessory.ID] = &copied
	r.order = append(r.order, accessory.ID)
	return nil
}

func (r *fakeAccessoryRepo) FindAll() ([]model.Accessory, error) {
	out := make([]model.Accessory, 0, len(r.accessories))
	for _, id := range r.order {
		if a, ok := r.accessories[id]; ok {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAccessoryRepo) FindByID(id uuid.UUID) (*model.Accessory, error) {
	a, ok := r.accessories[id]
	if !ok {
		return nil, errRecordNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeAccessoryRepo) FindByCategory(category string) ([]model.Accessory, error) {
	var out []model.Accessory
	for _, id := range r.order {
		if a, ok := r.accessories[id]; ok && a.Category == category {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAccessoryRepo) CountByCategory(category string) (int64, error) {
	var count int64
	for _, a := range r.accessories {
		if a.Category == category {
			count++
		}
	}
	return count, nil
}

func (r *fakeAccessoryRepo) Update(accessory *model.Accessory) error {
	if _, ok := r.accessories[accessory.ID]; !ok {
		return errRecordNotFound
	}
	copied := *accessory
	r.accessories[accessory.ID] = &copied
	return nil
}

func (r *fakeAccessoryRepo) UpdateStock(id uuid.UUID, newQuantity int, updatedBy string) error {
	a, ok := r.accessories[id]
	if !ok {
		return errRecordNotFound
	}
	a.QuantityInStock = newQuantity
	a.UpdatedBy = updatedBy
	return nil
}

func (r *fakeAccessoryRepo) Delete(id uuid.UUID) error {
	if _, ok := r.accessories[id]; !ok {
		return errRecordNotFound
	}
	delete(r.accessories, id)
	return nil
}

type fakeSaleRepo struct {
	sales map[uuid.UUID]*model.Sale
	order []uuid.UUID

	numberTaken       bool
	findByNumberCalls int
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[uuid.UUID]*model.Sale)}
}

func (r *fakeSaleRepo) Create(sale *model.Sale) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	if sale.CreatedAt.IsZero() {
		sale.CreatedAt = time.Now()
	}
	copied := *sale
	r.sales[sale.ID] = &copied
	r.order = append(r.order, sale.ID)
	return nil
}

func (r *fakeSaleRepo) FindAll() ([]model.Sale, error) {
	out := make([]model.Sale, 0, len(r.sales))
	for _, id := range r.order {
		if s, ok := r.sales[id]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) FindByID(id uuid.UUID) (*model.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, errRecordNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSaleRepo) FindByNumber(number string) (*model.Sale, error) {
	r.findByNumberCalls++
	if r.numberTaken {
		return &model.Sale{SaleNumber: number}, nil
	}
	for _, s := range r.sales {
		if s.SaleNumber == number {
			copied := *s
			return &copied, nil
		}
	}
	return nil, errRecordNotFound
}

func (r *fakeSaleRepo) FindBetween(start, end time.Time) ([]model.Sale, error) {
	var out []model.Sale
	for _, id := range r.order {
		if s, ok := r.sales[id]; ok && !s.CreatedAt.Before(start) && s.CreatedAt.Before(end) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) Update(sale *model.Sale) error {
	if _, ok := r.sales[sale.ID]; !ok {
		return errRecordNotFound
	}
	copied := *sale
	r.sales[sale.ID] = &copied
	return nil
}

func (r *fakeSaleRepo) UpdateStatus(id uuid.UUID, status model.SaleStatus, updatedBy string) error {
	s, ok := r.sales[id]
	if !ok {
		return errRecordNotFound
	}
	s.Status = status
	s.UpdatedBy = updatedBy
	return nil
}

func (r *fakeSaleRepo) Delete(id uuid.UUID) error {
	if _, ok := r.sales[id]; !ok {
		return errRecordNotFound
	}
	delete(r.sales, id)
	return nil
}

func (r *fakeSaleRepo) GetRevenueSummary(start, end time.Time) (float64, int64, error) {
	var revenue float64
	var count int64
	for _, s := range r.sales {
		if s.Status != model.SaleCompleted {
			continue
		}
		if s.CreatedAt.Before(start) || !s.CreatedAt.Before(end) {
			continue
		}
		revenue += s.TotalAmount
		count++
	}
	return revenue, count, nil
}

type fakeCatalogRepo struct {
	phoneTypes []model.PhoneType
	categories []model.AccessoryCategory
}

func (r *fakeCatalogRepo) FindAllPhoneTypes() ([]model.PhoneType, error) {
	return append([]model.PhoneType(nil), r.phoneTypes...), nil
}

func (r *fakeCatalogRepo) FindPhoneType(brand, modelName string) (*model.PhoneType, error) {
	for i := range r.phoneTypes {
		if r.phoneTypes[i].Brand == brand && r.phoneTypes[i].Model == modelName {
			copied := r.phoneTypes[i]
			return &copied, nil
		}
	}
	return nil, errRecordNotFound
}

func (r *fakeCatalogRepo) CreatePhoneType(pt *model.PhoneType) error {
	pt.ID = uint(len(r.phoneTypes) + 1)
	r.phoneTypes = append(r.phoneTypes, *pt)
	return nil
}

func (r *fakeCatalogRepo) DeletePhoneType(brand, modelName string) error {
	for i := range r.phoneTypes {
		if r.phoneTypes[i].Brand == brand && r.phoneTypes[i].Model == modelName {
			r.phoneTypes = append(r.phoneTypes[:i], r.phoneTypes[i+1:]...)
			return nil
		}
	}
	return errRecordNotFound
}

func (r *fakeCatalogRepo) FindAllCategories() ([]model.AccessoryCategory, error) {
	return append([]model.AccessoryCategory(nil), r.categories...), nil
}

func (r *fakeCatalogRepo) FindCategoryByName(name string) (*model.AccessoryCategory, error) {
	for i := range r.categories {
		if r.categories[i].Name == name {
			copied := r.categories[i]
			return &copied, nil
		}
	}
	return nil, errRecordNotFound
}

func (r *fakeCatalogRepo) CreateCategory(category *model.AccessoryCategory) error {
	category.ID = uint(len(r.categories) + 1)
	r.categories = append(r.categories, *category)
	return nil
}

func (r *fakeCatalogRepo) DeleteCategory(name string) error {
	for i := range r.categories {
		if r.categories[i].Name == name {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return errRecordNotFound
}

func (r *fakeCatalogRepo) SeedDefaults() error { return nil }

type fakeSettingRepo struct {
	values map[string]string
}

func newFakeSettingRepo() *fakeSettingRepo {
	return &fakeSettingRepo{values: map[string]string{
		model.SettingCompanyName:    "Test Phone Store",
		model.SettingCompanyAddress: "1 Test Street",
		model.SettingCompanyPhone:   "555-0100",
	}}
}

func (r *fakeSettingRepo) Get(key string) (string, error) {
	v, ok := r.values[key]
	if !ok {
		return "", errRecordNotFound
	}
	return v, nil
}

func (r *fakeSettingRepo) Set(key, value string) error {
	r.values[key] = value
	return nil
}

func (r *fakeSettingRepo) All() (map[string]string, error) {
	out := make(map[string]string, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out, nil
}

func (r *fakeSettingRepo) SeedDefaults() error { return nil }
