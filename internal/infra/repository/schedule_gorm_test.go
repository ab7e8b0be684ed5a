package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/omnishop/omnishop-api/internal/db"
	"github.com/omnishop/omnishop-api/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One named in-memory database per test: the pool can open several
	// connections, and tests must not see each other's rows.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_fk=1"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, dbpkg.Migrate(db))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
	})

	return db
}

func seedSeller(t *testing.T, db *gorm.DB) models.Seller {
	t.Helper()
	seller := models.Seller{
		FullName:     "Awa Diallo",
		Email:        "awa@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(&seller).Error)
	return seller
}

func TestListAppointmentsForRange(t *testing.T) {
	db := openTestDB(t)
	repo := NewScheduleGormRepository(db)
	ctx := context.Background()

	seller := seedSeller(t, db)
	other := models.Seller{FullName: "Autre", Email: "autre@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&other).Error)

	mk := func(sellerID, date, hhmm string) {
		require.NoError(t, repo.CreateAppointment(ctx, &models.Appointment{
			SellerID:        sellerID,
			AppointmentDate: date,
			AppointmentTime: hhmm,
			Status:          "Scheduled",
		}))
	}

	mk(seller.ID, "2026-03-09", "15:00")
	mk(seller.ID, "2026-03-09", "09:30")
	mk(seller.ID, "2026-03-15", "10:00")
	mk(seller.ID, "2026-03-16", "10:00") // outside window
	mk(other.ID, "2026-03-10", "10:00")  // other seller

	list, err := repo.ListAppointmentsForRange(ctx, seller.ID, "2026-03-09", "2026-03-15")
	require.NoError(t, err)

	t.Run("inclusive boundaries, seller scoped", func(t *testing.T) {
		require.Len(t, list, 3)
		for _, a := range list {
			assert.Equal(t, seller.ID, a.SellerID)
		}
	})

	t.Run("ordered by date then time", func(t *testing.T) {
		assert.Equal(t, "09:30", list[0].AppointmentTime)
		assert.Equal(t, "15:00", list[1].AppointmentTime)
		assert.Equal(t, "2026-03-15", list[2].AppointmentDate)
	})
}

func TestAppointmentJoins(t *testing.T) {
	db := openTestDB(t)
	repo := NewScheduleGormRepository(db)
	ctx := context.Background()

	seller := seedSeller(t, db)

	phone := "+221770000000"
	customer := models.Customer{SellerID: seller.ID, FullName: "Moussa Ba", WhatsappNumber: &phone}
	require.NoError(t, db.Create(&customer).Error)

	product := models.Product{SellerID: seller.ID, Name: "Robe wax", Price: 45, StockQuantity: 3}
	require.NoError(t, db.Create(&product).Error)

	ap := models.Appointment{
		SellerID:        seller.ID,
		AppointmentDate: "2026-03-09",
		AppointmentTime: "14:00",
		Status:          "Scheduled",
		CustomerID:      &customer.ID,
		ProductID:       &product.ID,
	}
	require.NoError(t, repo.CreateAppointment(ctx, &ap))

	got, err := repo.GetAppointmentForSeller(ctx, ap.ID, seller.ID)
	require.NoError(t, err)

	require.NotNil(t, got.Customer)
	assert.Equal(t, "Moussa Ba", got.Customer.FullName)
	require.NotNil(t, got.Product)
	assert.Equal(t, "Robe wax", got.Product.Name)

	t.Run("another seller cannot read it", func(t *testing.T) {
		_, err := repo.GetAppointmentForSeller(ctx, ap.ID, "someone-else")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestDeleteAppointment(t *testing.T) {
	db := openTestDB(t)
	repo := NewScheduleGormRepository(db)
	ctx := context.Background()

	seller := seedSeller(t, db)

	ap := models.Appointment{
		SellerID:        seller.ID,
		AppointmentDate: "2026-03-09",
		AppointmentTime: "14:00",
		Status:          "Scheduled",
	}
	require.NoError(t, repo.CreateAppointment(ctx, &ap))

	t.Run("wrong seller does not delete", func(t *testing.T) {
		err := repo.DeleteAppointment(ctx, ap.ID, "someone-else")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("owner deletes once", func(t *testing.T) {
		require.NoError(t, repo.DeleteAppointment(ctx, ap.ID, seller.ID))

		err := repo.DeleteAppointment(ctx, ap.ID, seller.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestListProductsInStock(t *testing.T) {
	db := openTestDB(t)
	repo := NewScheduleGormRepository(db)
	ctx := context.Background()

	seller := seedSeller(t, db)

	for _, p := range []models.Product{
		{SellerID: seller.ID, Name: "Boubou brodé", Price: 80, StockQuantity: 2},
		{SellerID: seller.ID, Name: "Sac raphia", Price: 25, StockQuantity: 0},
		{SellerID: seller.ID, Name: "Collier perles", Price: 15, StockQuantity: 10},
	} {
		product := p
		require.NoError(t, db.Create(&product).Error)
	}

	products, err := repo.ListProductsInStock(ctx, seller.ID)
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, "Boubou brodé", products[0].Name)
	assert.Equal(t, "Collier perles", products[1].Name)
}
