package services

import (
	"math"
	"testing"

	"hotel-inventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Quantities accumulate across incremental adds; the call pushing the sum
// past rooms_total fails and leaves the stored state untouched.
func TestIncrementalAddsRespectCeiling(t *testing.T) {
	f := newFixture(t)
	svc := f.roomConfigService()
	hotel := f.createHotel(t, f.owner, 30)

	_, err := svc.Create(hotel.ID, f.owner, RoomConfigurationInput{RoomType: "Standard", Accommodation: "Single", Quantity: 10})
	require.NoError(t, err)
	assert.Equal(t, uint(10), f.configuredSum(t, hotel.ID))

	_, err = svc.Create(hotel.ID, f.owner, RoomConfigurationInput{RoomType: "Standard", Accommodation: "Double", Quantity: 15})
	require.NoError(t, err)
	assert.Equal(t, uint(25), f.configuredSum(t, hotel.ID))

	// 25 + 10 > 30: rejected, sum unchanged.
	_, err = svc.Create(hotel.ID, f.owner, RoomConfigurationInput{RoomType: "Suite", Accommodation: "Single", Quantity: 10})
	var exceeded *CapacityExceededError
	require.ErrorAs(t, err, &exceeded)
	assert.Equal(t, uint(30), exceeded.Limit)
	assert.Equal(t, uint(25), f.configuredSum(t, hotel.ID))

	// Falling short of the total is fine on the incremental path.
	_, err = svc.Create(hotel.ID, f.owner, RoomConfigurationInput{RoomType: "Suite", Accommodation: "Single", Quantity: 5})
	assert.NoError(t, err)
	assert.Equal(t, uint(30), f.configuredSum(t, hotel.ID))
}

// A quantity large enough to wrap the unsigned aggregate past the ceiling
// must be rejected before anything is written.
func TestCreateRejectsWrappingQuantity(t *testing.T) {
	f := newFixture(t)
	svc := f.roomConfigService()
	hotel := f.createHotel(t, f.owner, 30)

	_, err := svc.Create(hotel.ID, f.owner, RoomConfigurationInput{RoomType: "Standard", Accommodation: "Single", Quantity: 10})
	require.NoError(t, err)
	_, err = svc.Create(hotel.ID, f.owner, RoomConfigurationInput{RoomType: "Standard", Accommodation: "Double", Quantity: 15})
	require.NoError(t, err)

	// 25 + (MaxUint-20) wraps to 4 under plain unsigned addition.
	_, err = svc.Create(hotel.ID, f.owner, RoomConfigurationInput{RoomType: "Suite", Accommodation: "Single", Quantity: math.MaxUint - 20})
	var exceeded *CapacityExceededError
	require.ErrorAs(t, err, &exceeded)
	assert.Equal(t, uint(30), exceeded.Limit)

	var count int64
	require.NoError(t, f.db.Model(&models.RoomConfiguration{}).Where("hotel_id = ?", hotel.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count)
	assert.Equal(t, uint(25), f.configuredSum(t, hotel.ID))

	first, err := svc.Create(hotel.ID, f.owner, RoomConfigurationInput{RoomType: "Suite", Accommodation: "Double", Quantity: 5})
	require.NoError(t, err)
	_, err = svc.UpdateQuantity(first.ID, f.owner, math.MaxUint-20)
	require.ErrorAs(t, err, &exceeded)
	assert.Equal(t, uint(30), f.configuredSum(t, hotel.ID))
}

// Updating a row's quantity excludes that row's old quantity from the
// aggregate before checking the new one.
func TestUpdateQuantityExcludesOwnRow(t *testing.T) {
	f := newFixture(t)
	svc := f.roomConfigService()
	hotel := f.createHotel(t, f.owner, 30)

	first, err := svc.Create(hotel.ID, f.owner, RoomConfigurationInput{RoomType: "Standard", Accommodation: "Single", Quantity: 10})
	require.NoError(t, err)
	_, err = svc.Create(hotel.ID, f.owner, RoomConfigurationInput{RoomType: "Standard", Accommodation: "Double", Quantity: 15})
	require.NoError(t, err)

	// 25 - 10 + 4 = 19 <= 30.
	updated, err := svc.UpdateQuantity(first.ID, f.owner, 4)
	require.NoError(t, err)
	assert.Equal(t, uint(4), updated.Quantity)
	assert.Equal(t, uint(19), f.configuredSum(t, hotel.ID))

	// 19 - 4 + 16 = 31 > 30: rejected, old quantity kept.
	_, err = svc.UpdateQuantity(first.ID, f.owner, 16)
	var exceeded *CapacityExceededError
	require.ErrorAs(t, err, &exceeded)
	assert.Equal(t, uint(19), f.configuredSum(t, hotel.ID))

	// 19 - 4 + 15 = 30 is exactly at the ceiling.
	_, err = svc.UpdateQuantity(first.ID, f.owner, 15)
	assert.NoError(t, err)
}

func TestCreateRejectsInvalidCombination(t *testing.T) {
	f := newFixture(t)
	svc := f.roomConfigService()
	hotel := f.createHotel(t, f.owner, 30)

	_, err := svc.Create(hotel.ID, f.owner, RoomConfigurationInput{RoomType: "Standard", Accommodation: "Triple", Quantity: 5})
	var combination *InvalidCombinationError
	require.ErrorAs(t, err, &combination)
	assert.Equal(t, "Standard", combination.RoomType)
	assert.Equal(t, "Triple", combination.Accommodation)
	assert.Zero(t, f.configuredSum(t, hotel.ID))
}

func TestCreateRejectsDuplicatePair(t *testing.T) {
	f := newFixture(t)
	svc := f.roomConfigService()
	hotel := f.createHotel(t, f.owner, 30)

	_, err := svc.Create(hotel.ID, f.owner, RoomConfigurationInput{RoomType: "Standard", Accommodation: "Single", Quantity: 5})
	require.NoError(t, err)

	_, err = svc.Create(hotel.ID, f.owner, RoomConfigurationInput{RoomTypeID: f.standard.ID, AccommodationID: f.single.ID, Quantity: 5})
	var duplicate *DuplicateConfigurationError
	require.ErrorAs(t, err, &duplicate)
}

func TestCreateResolvesByNameOrID(t *testing.T) {
	f := newFixture(t)
	svc := f.roomConfigService()
	hotel := f.createHotel(t, f.owner, 30)

	byName, err := svc.Create(hotel.ID, f.owner, RoomConfigurationInput{RoomType: "Junior", Accommodation: "Quadruple", Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, f.junior.ID, byName.RoomTypeID)
	assert.Equal(t, "Quadruple", byName.Accommodation.Name)

	byID, err := svc.Create(hotel.ID, f.owner, RoomConfigurationInput{RoomTypeID: f.suite.ID, AccommodationID: f.double.ID, Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, "Suite", byID.RoomType.Name)

	_, err = svc.Create(hotel.ID, f.owner, RoomConfigurationInput{RoomType: "Junior", Accommodation: "Quintuple", Quantity: 5})
	var unknown *UnknownCatalogEntryError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "accommodation", unknown.Kind)
}

func TestCreateAuthorization(t *testing.T) {
	f := newFixture(t)
	svc := f.roomConfigService()
	hotel := f.createHotel(t, f.owner, 30)

	_, err := svc.Create(hotel.ID, f.other, RoomConfigurationInput{RoomType: "Standard", Accommodation: "Single", Quantity: 5})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Create(hotel.ID, f.admin, RoomConfigurationInput{RoomType: "Standard", Accommodation: "Single", Quantity: 5})
	assert.NoError(t, err)
}

func TestCreateForMissingHotel(t *testing.T) {
	f := newFixture(t)
	svc := f.roomConfigService()

	_, err := svc.Create(4242, f.owner, RoomConfigurationInput{RoomType: "Standard", Accommodation: "Single", Quantity: 5})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRoomConfiguration(t *testing.T) {
	f := newFixture(t)
	svc := f.roomConfigService()
	hotel := f.createHotel(t, f.owner, 30)

	config, err := svc.Create(hotel.ID, f.owner, RoomConfigurationInput{RoomType: "Standard", Accommodation: "Single", Quantity: 10})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(config.ID, f.other), ErrForbidden)

	require.NoError(t, svc.Delete(config.ID, f.owner))
	assert.Zero(t, f.configuredSum(t, hotel.ID))

	assert.ErrorIs(t, svc.Delete(config.ID, f.owner), ErrNotFound)
}

func TestListByHotel(t *testing.T) {
	f := newFixture(t)
	svc := f.roomConfigService()
	hotel := f.createHotel(t, f.owner, 30)

	_, err := svc.ListByHotel(777)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Create(hotel.ID, f.owner, RoomConfigurationInput{RoomType: "Standard", Accommodation: "Single", Quantity: 10})
	require.NoError(t, err)
	_, err = svc.Create(hotel.ID, f.owner, RoomConfigurationInput{RoomType: "Suite", Accommodation: "Triple", Quantity: 10})
	require.NoError(t, err)

	configs, err := svc.ListByHotel(hotel.ID)
	require.NoError(t, err)
	require.Len(t, configs, 2)
	assert.Equal(t, "Standard", configs[0].RoomType.Name)
	assert.Equal(t, "Triple", configs[1].Accommodation.Name)
}
