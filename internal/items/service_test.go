package items

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/averyhollis/stockroom-backend/pkg/db/models"
	pkgerrors "github.com/averyhollis/stockroom-backend/pkg/errors"
	"github.com/averyhollis/stockroom-backend/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupItemsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Building{},
		&models.Location{},
		&models.ItemType{},
		&models.Item{},
		&models.Shipment{},
	))
	return db
}

type itemsFixture struct {
	svc   Service
	db    *gorm.DB
	actor *models.User
	locA  models.Location
	locB  models.Location
}

func setupItemsFixture(t *testing.T) *itemsFixture {
	t.Helper()
	db := setupItemsTestDB(t)

	actor := &models.User{First: "Avery", Last: "Hollis", Username: "avery", PasswordHash: "x"}
	require.NoError(t, db.Create(actor).Error)

	require.NoError(t, db.Create(&models.ItemType{Name: "laptop"}).Error)
	require.NoError(t, db.Create(&models.ItemType{Name: "monitor"}).Error)

	building := models.Building{Name: "HQ", Address: "1 Main St"}
	require.NoError(t, db.Create(&building).Error)

	locA := models.Location{BuildingID: building.ID, Name: "Shelf A"}
	locB := models.Location{BuildingID: building.ID, Name: "Shelf B"}
	require.NoError(t, db.Create(&locA).Error)
	require.NoError(t, db.Create(&locB).Error)

	svc, err := NewService(db)
	require.NoError(t, err)

	return &itemsFixture{svc: svc, db: db, actor: actor, locA: locA, locB: locB}
}

func (f *itemsFixture) intake(t *testing.T, itemType, serial, part string) *ItemView {
	t.Helper()
	view, err := f.svc.Intake(context.Background(), IntakeInput{
		ItemType:   itemType,
		LocationID: f.locA.ID,
		Serial:     serial,
		Part:       part,
		Madlib:     "fresh off the truck",
		Image:      []byte{0x89, 0x50, 0x4e, 0x47},
	}, f.actor)
	require.NoError(t, err)
	return view
}

func errorCode(t *testing.T, err error) pkgerrors.Code {
	t.Helper()
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	return typed.Code()
}

func TestIntakeCreatesItem(t *testing.T) {
	f := setupItemsFixture(t)

	view := f.intake(t, "laptop", "SN-1", "PN-1")

	assert.NotZero(t, view.ItemID)
	assert.Equal(t, "laptop", view.ItemType)
	require.NotNil(t, view.LocationID)
	assert.Equal(t, f.locA.ID, *view.LocationID)
	assert.Equal(t, f.actor.ID, view.LastUser.ID)
	assert.Equal(t, "Avery", view.LastUser.First)
	assert.WithinDuration(t, time.Now().UTC(), view.LastUpdated, time.Minute)

	var stored models.Item
	require.NoError(t, f.db.First(&stored, "id = ?", view.ItemID).Error)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, stored.Image)
}

func TestIntakeRejectsUnknownItemType(t *testing.T) {
	f := setupItemsFixture(t)

	_, err := f.svc.Intake(context.Background(), IntakeInput{
		ItemType:   "toaster",
		LocationID: f.locA.ID,
		Serial:     "SN-1",
		Part:       "PN-1",
		Image:      []byte{1},
	}, f.actor)
	assert.Equal(t, pkgerrors.CodeNotFound, errorCode(t, err))

	var count int64
	require.NoError(t, f.db.Model(&models.Item{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestIntakeRejectsUnknownLocation(t *testing.T) {
	f := setupItemsFixture(t)

	_, err := f.svc.Intake(context.Background(), IntakeInput{
		ItemType:   "laptop",
		LocationID: 9999,
		Serial:     "SN-1",
		Part:       "PN-1",
		Image:      []byte{1},
	}, f.actor)
	assert.Equal(t, pkgerrors.CodeNotFound, errorCode(t, err))
}

func TestIntakeRequiresImage(t *testing.T) {
	f := setupItemsFixture(t)

	_, err := f.svc.Intake(context.Background(), IntakeInput{
		ItemType:   "laptop",
		LocationID: f.locA.ID,
		Serial:     "SN-1",
		Part:       "PN-1",
	}, f.actor)
	assert.Equal(t, pkgerrors.CodeValidation, errorCode(t, err))
}

func TestMoveUpdatesOnlyMoveFields(t *testing.T) {
	f := setupItemsFixture(t)
	view := f.intake(t, "laptop", "SN-1", "PN-1")

	other := &models.User{First: "Blake", Last: "Reed", Username: "blake", PasswordHash: "x"}
	require.NoError(t, f.db.Create(other).Error)

	err := f.svc.Move(context.Background(), view.ItemID, MoveInput{
		LocationID: f.locB.ID,
		Madlib:     "moved to shelf B",
	}, other)
	require.NoError(t, err)

	var stored models.Item
	require.NoError(t, f.db.First(&stored, "id = ?", view.ItemID).Error)
	require.NotNil(t, stored.LocationID)
	assert.Equal(t, f.locB.ID, *stored.LocationID)
	assert.Equal(t, "moved to shelf B", stored.Madlib)
	assert.Equal(t, other.ID, stored.LastUserID)
	assert.Equal(t, "SN-1", stored.Serial)
	assert.Equal(t, "PN-1", stored.Part)
	assert.Equal(t, "laptop", stored.ItemType)
	assert.NotEmpty(t, stored.Image)
}

func TestMoveRejectsUnknownItem(t *testing.T) {
	f := setupItemsFixture(t)

	err := f.svc.Move(context.Background(), 9999, MoveInput{LocationID: f.locA.ID, Madlib: "x"}, f.actor)
	assert.Equal(t, pkgerrors.CodeNotFound, errorCode(t, err))
}

func TestMoveRejectsUnknownLocation(t *testing.T) {
	f := setupItemsFixture(t)
	view := f.intake(t, "laptop", "SN-1", "PN-1")

	err := f.svc.Move(context.Background(), view.ItemID, MoveInput{LocationID: 9999, Madlib: "x"}, f.actor)
	assert.Equal(t, pkgerrors.CodeNotFound, errorCode(t, err))
}

func TestShipCreatesShipmentOnce(t *testing.T) {
	f := setupItemsFixture(t)
	view := f.intake(t, "laptop", "SN-1", "PN-1")

	shipment, err := f.svc.Ship(context.Background(), view.ItemID, "500 Elsewhere Ave", f.actor)
	require.NoError(t, err)
	assert.Equal(t, view.ItemID, shipment.ItemID)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), shipment.CreatedDate)
	assert.Equal(t, "500 Elsewhere Ave", shipment.Address)
	assert.Nil(t, shipment.ShipDate)
	assert.Nil(t, shipment.DeliverDate)

	_, err = f.svc.Ship(context.Background(), view.ItemID, "somewhere else", f.actor)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())
	assert.Equal(t, "item already shipped", typed.Message())

	var count int64
	require.NoError(t, f.db.Model(&models.Shipment{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestShipRejectsUnknownItem(t *testing.T) {
	f := setupItemsFixture(t)

	_, err := f.svc.Ship(context.Background(), 9999, "nowhere", f.actor)
	assert.Equal(t, pkgerrors.CodeNotFound, errorCode(t, err))
}

func TestMoveStillAllowedAfterShip(t *testing.T) {
	f := setupItemsFixture(t)
	view := f.intake(t, "laptop", "SN-1", "PN-1")

	_, err := f.svc.Ship(context.Background(), view.ItemID, "500 Elsewhere Ave", f.actor)
	require.NoError(t, err)

	// relocating before the box physically leaves is still legal
	err = f.svc.Move(context.Background(), view.ItemID, MoveInput{LocationID: f.locB.ID, Madlib: "staged at dock"}, f.actor)
	require.NoError(t, err)
}

func TestImageRoundTrip(t *testing.T) {
	f := setupItemsFixture(t)
	view := f.intake(t, "laptop", "SN-1", "PN-1")

	image, err := f.svc.Image(context.Background(), view.ItemID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, image)

	_, err = f.svc.Image(context.Background(), 9999)
	assert.Equal(t, pkgerrors.CodeNotFound, errorCode(t, err))
}

func TestSearchFiltersAndCombines(t *testing.T) {
	f := setupItemsFixture(t)
	f.intake(t, "laptop", "SN-1", "PN-1")
	f.intake(t, "laptop", "SN-2", "PN-2")
	f.intake(t, "monitor", "SN-3", "PN-1")

	laptop := "laptop"
	views, err := f.svc.Search(context.Background(), Filter{ItemType: &laptop}, pagination.Default())
	require.NoError(t, err)
	assert.Len(t, views, 2)

	part := "PN-1"
	views, err = f.svc.Search(context.Background(), Filter{ItemType: &laptop, Part: &part}, pagination.Default())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "SN-1", views[0].Serial)

	serial := "SN-3"
	views, err = f.svc.Search(context.Background(), Filter{Serial: &serial}, pagination.Default())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "monitor", views[0].ItemType)
}

func TestSearchResolvesLastUser(t *testing.T) {
	f := setupItemsFixture(t)
	f.intake(t, "laptop", "SN-1", "PN-1")

	views, err := f.svc.Search(context.Background(), Filter{}, pagination.Default())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, f.actor.ID, views[0].LastUser.ID)
	assert.Equal(t, "Avery", views[0].LastUser.First)
	assert.Equal(t, "Hollis", views[0].LastUser.Last)
}

func TestSearchPaginatesInStableOrder(t *testing.T) {
	f := setupItemsFixture(t)
	for i := 1; i <= 5; i++ {
		f.intake(t, "laptop", fmt.Sprintf("SN-%d", i), "PN")
	}

	first, err := f.svc.Search(context.Background(), Filter{}, pagination.Page{Skip: 0, Limit: 2})
	require.NoError(t, err)
	second, err := f.svc.Search(context.Background(), Filter{}, pagination.Page{Skip: 2, Limit: 2})
	require.NoError(t, err)

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	assert.Equal(t, "SN-1", first[0].Serial)
	assert.Equal(t, "SN-2", first[1].Serial)
	assert.Equal(t, "SN-3", second[0].Serial)
	assert.Equal(t, "SN-4", second[1].Serial)
}

func TestSearchClampsNegativePagination(t *testing.T) {
	f := setupItemsFixture(t)
	f.intake(t, "laptop", "SN-1", "PN-1")
	f.intake(t, "laptop", "SN-2", "PN-2")

	// negative limit means an empty page
	views, err := f.svc.Search(context.Background(), Filter{}, pagination.Page{Skip: 0, Limit: -1})
	require.NoError(t, err)
	assert.Empty(t, views)

	// negative skip behaves like zero
	views, err = f.svc.Search(context.Background(), Filter{}, pagination.Page{Skip: -1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, views, 2)
}
