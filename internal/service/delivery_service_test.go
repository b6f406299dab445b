package service

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"paquexpress/internal/errors"
	"paquexpress/internal/model"
)

// MockPackageRepository is a mock implementation of PackageRepository.
type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) CreateBatch(ctx context.Context, pkgs []model.Package) error {
	args := m.Called(ctx, pkgs)
	return args.Error(0)
}

func (m *MockPackageRepository) FindByID(ctx context.Context, id uint) (*model.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Package), args.Error(1)
}

func (m *MockPackageRepository) ListByUser(ctx context.Context, userID uint) ([]model.Package, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Package), args.Error(1)
}

// MockDeliveryRepository is a mock implementation of DeliveryRepository.
type MockDeliveryRepository struct {
	mock.Mock
}

func (m *MockDeliveryRepository) CreateWithEvidence(ctx context.Context, delivery *model.Delivery, photo *model.Photo) error {
	args := m.Called(ctx, delivery, photo)
	return args.Error(0)
}

func (m *MockDeliveryRepository) ListByUser(ctx context.Context, userID uint) ([]model.Delivery, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Delivery), args.Error(1)
}

// MockPhotoStore is a mock implementation of storage.PhotoStore.
type MockPhotoStore struct {
	mock.Mock
}

func (m *MockPhotoStore) Save(name string, r io.Reader) (string, error) {
	args := m.Called(name, r)
	return args.String(0), args.Error(1)
}

// MockGeocoder is a mock implementation of geocode.Geocoder.
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) ReverseGeocode(ctx context.Context, lat, lon decimal.Decimal) (string, error) {
	args := m.Called(ctx, lat, lon)
	return args.String(0), args.Error(1)
}

func TestDeliveryService_RecordDelivery(t *testing.T) {
	lat := decimal.RequireFromString("19.4326")
	lon := decimal.RequireFromString("-99.1332")
	user := &model.User{ID: 1, Username: "alice"}
	pkg := &model.Package{ID: 7, UserID: 1, TrackingCode: "PKG-001", Status: model.PackageStatusPending}

	tests := []struct {
		name          string
		userID        uint
		packageID     uint
		setupMocks    func(*MockUserRepository, *MockPackageRepository, *MockDeliveryRepository, *MockPhotoStore, *MockGeocoder)
		expectedError error
		expectedAddr  string
	}{
		{
			name:      "successful delivery with resolved address",
			userID:    1,
			packageID: 7,
			setupMocks: func(ur *MockUserRepository, pr *MockPackageRepository, dr *MockDeliveryRepository, ps *MockPhotoStore, gc *MockGeocoder) {
				ur.On("FindByID", mock.Anything, uint(1)).Return(user, nil)
				pr.On("FindByID", mock.Anything, uint(7)).Return(pkg, nil)
				ps.On("Save", "proof.jpg", mock.Anything).Return("uploads/1756000000_proof.jpg", nil)
				gc.On("ReverseGeocode", mock.Anything, lat, lon).Return("Centro, Mexico City, Mexico", nil)
				dr.On("CreateWithEvidence", mock.Anything, mock.AnythingOfType("*model.Delivery"), mock.AnythingOfType("*model.Photo")).Return(nil)
			},
			expectedAddr: "Centro, Mexico City, Mexico",
		},
		{
			name:      "geocoder unreachable falls back to placeholder",
			userID:    1,
			packageID: 7,
			setupMocks: func(ur *MockUserRepository, pr *MockPackageRepository, dr *MockDeliveryRepository, ps *MockPhotoStore, gc *MockGeocoder) {
				ur.On("FindByID", mock.Anything, uint(1)).Return(user, nil)
				pr.On("FindByID", mock.Anything, uint(7)).Return(pkg, nil)
				ps.On("Save", "proof.jpg", mock.Anything).Return("uploads/1756000000_proof.jpg", nil)
				gc.On("ReverseGeocode", mock.Anything, lat, lon).Return("", stderrors.New("timeout"))
				dr.On("CreateWithEvidence", mock.Anything, mock.AnythingOfType("*model.Delivery"), mock.AnythingOfType("*model.Photo")).Return(nil)
			},
			expectedAddr: FallbackAddress,
		},
		{
			name:      "long resolved address is truncated",
			userID:    1,
			packageID: 7,
			setupMocks: func(ur *MockUserRepository, pr *MockPackageRepository, dr *MockDeliveryRepository, ps *MockPhotoStore, gc *MockGeocoder) {
				ur.On("FindByID", mock.Anything, uint(1)).Return(user, nil)
				pr.On("FindByID", mock.Anything, uint(7)).Return(pkg, nil)
				ps.On("Save", "proof.jpg", mock.Anything).Return("uploads/1756000000_proof.jpg", nil)
				gc.On("ReverseGeocode", mock.Anything, lat, lon).Return(strings.Repeat("a", 300), nil)
				dr.On("CreateWithEvidence", mock.Anything, mock.AnythingOfType("*model.Delivery"), mock.AnythingOfType("*model.Photo")).Return(nil)
			},
			expectedAddr: strings.Repeat("a", 255),
		},
		{
			name:      "long multi-byte address is truncated by characters",
			userID:    1,
			packageID: 7,
			setupMocks: func(ur *MockUserRepository, pr *MockPackageRepository, dr *MockDeliveryRepository, ps *MockPhotoStore, gc *MockGeocoder) {
				ur.On("FindByID", mock.Anything, uint(1)).Return(user, nil)
				pr.On("FindByID", mock.Anything, uint(7)).Return(pkg, nil)
				ps.On("Save", "proof.jpg", mock.Anything).Return("uploads/1756000000_proof.jpg", nil)
				gc.On("ReverseGeocode", mock.Anything, lat, lon).Return(strings.Repeat("é", 300), nil)
				dr.On("CreateWithEvidence", mock.Anything, mock.AnythingOfType("*model.Delivery"), mock.AnythingOfType("*model.Photo")).Return(nil)
			},
			expectedAddr: strings.Repeat("é", 255),
		},
		{
			name:      "multi-byte address within the character limit is kept whole",
			userID:    1,
			packageID: 7,
			setupMocks: func(ur *MockUserRepository, pr *MockPackageRepository, dr *MockDeliveryRepository, ps *MockPhotoStore, gc *MockGeocoder) {
				ur.On("FindByID", mock.Anything, uint(1)).Return(user, nil)
				pr.On("FindByID", mock.Anything, uint(7)).Return(pkg, nil)
				ps.On("Save", "proof.jpg", mock.Anything).Return("uploads/1756000000_proof.jpg", nil)
				// 200 characters but 400 bytes; must not be touched.
				gc.On("ReverseGeocode", mock.Anything, lat, lon).Return(strings.Repeat("é", 200), nil)
				dr.On("CreateWithEvidence", mock.Anything, mock.AnythingOfType("*model.Delivery"), mock.AnythingOfType("*model.Photo")).Return(nil)
			},
			expectedAddr: strings.Repeat("é", 200),
		},
		{
			name:      "nonexistent user",
			userID:    99,
			packageID: 7,
			setupMocks: func(ur *MockUserRepository, pr *MockPackageRepository, dr *MockDeliveryRepository, ps *MockPhotoStore, gc *MockGeocoder) {
				ur.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrUserNotFound,
		},
		{
			name:      "nonexistent package",
			userID:    1,
			packageID: 99,
			setupMocks: func(ur *MockUserRepository, pr *MockPackageRepository, dr *MockDeliveryRepository, ps *MockPhotoStore, gc *MockGeocoder) {
				ur.On("FindByID", mock.Anything, uint(1)).Return(user, nil)
				pr.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrPackageNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			packageRepo := new(MockPackageRepository)
			deliveryRepo := new(MockDeliveryRepository)
			photoStore := new(MockPhotoStore)
			geocoder := new(MockGeocoder)
			tt.setupMocks(userRepo, packageRepo, deliveryRepo, photoStore, geocoder)

			service := NewDeliveryService(userRepo, packageRepo, deliveryRepo, photoStore, geocoder)
			delivery, err := service.RecordDelivery(
				context.Background(), tt.userID, tt.packageID, lat, lon,
				bytes.NewReader([]byte("jpeg bytes")), "proof.jpg")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, delivery)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, delivery)
				assert.Equal(t, tt.userID, delivery.UserID)
				assert.Equal(t, tt.packageID, delivery.PackageID)
				assert.Equal(t, "uploads/1756000000_proof.jpg", delivery.PhotoPath)
				assert.Equal(t, tt.expectedAddr, delivery.Address)
				assert.True(t, utf8.ValidString(delivery.Address))
				assert.LessOrEqual(t, utf8.RuneCountInString(delivery.Address), maxAddressLen)
				assert.True(t, lat.Equal(delivery.Latitude))
				assert.True(t, lon.Equal(delivery.Longitude))
				assert.False(t, delivery.DeliveredAt.IsZero())
			}

			userRepo.AssertExpectations(t)
			packageRepo.AssertExpectations(t)
			deliveryRepo.AssertExpectations(t)
			photoStore.AssertExpectations(t)
			geocoder.AssertExpectations(t)
		})
	}
}

func TestDeliveryService_RecordDelivery_EvidenceRecord(t *testing.T) {
	lat := decimal.RequireFromString("19.4326")
	lon := decimal.RequireFromString("-99.1332")

	userRepo := new(MockUserRepository)
	packageRepo := new(MockPackageRepository)
	deliveryRepo := new(MockDeliveryRepository)
	photoStore := new(MockPhotoStore)
	geocoder := new(MockGeocoder)

	userRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)
	packageRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.Package{ID: 7, TrackingCode: "PKG-001"}, nil)
	photoStore.On("Save", "proof.jpg", mock.Anything).Return("uploads/1756000000_proof.jpg", nil)
	geocoder.On("ReverseGeocode", mock.Anything, lat, lon).Return("somewhere", nil)

	var evidence *model.Photo
	deliveryRepo.On("CreateWithEvidence", mock.Anything, mock.AnythingOfType("*model.Delivery"), mock.AnythingOfType("*model.Photo")).
		Run(func(args mock.Arguments) {
			evidence = args.Get(2).(*model.Photo)
		}).
		Return(nil)

	service := NewDeliveryService(userRepo, packageRepo, deliveryRepo, photoStore, geocoder)
	_, err := service.RecordDelivery(context.Background(), 1, 7, lat, lon, bytes.NewReader(nil), "proof.jpg")

	assert.NoError(t, err)
	assert.NotNil(t, evidence)
	assert.Equal(t, "evidence for package PKG-001", evidence.Description)
	assert.Equal(t, "uploads/1756000000_proof.jpg", evidence.Path)
}

func TestDeliveryService_ListDeliveriesForUser(t *testing.T) {
	deliveryRepo := new(MockDeliveryRepository)
	deliveryRepo.On("ListByUser", mock.Anything, uint(1)).Return([]model.Delivery{
		{ID: 2, UserID: 1}, {ID: 1, UserID: 1},
	}, nil)

	service := NewDeliveryService(new(MockUserRepository), new(MockPackageRepository), deliveryRepo, new(MockPhotoStore), new(MockGeocoder))
	deliveries, err := service.ListDeliveriesForUser(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, deliveries, 2)
	assert.Equal(t, uint(2), deliveries[0].ID)
	deliveryRepo.AssertExpectations(t)
}
