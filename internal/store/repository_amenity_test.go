package store

import (
	"database/sql"
	"database/sql/driver"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/gatherly/internal/logger"
	"github.com/MKhiriev/gatherly/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAmenityRepo(db *sql.DB) *amenityRepository {
	return &amenityRepository{DB: newDBFromSQL(db), logger: logger.Nop()}
}

func TestListAmenities(t *testing.T) {
	tests := []struct {
		name     string
		category models.AmenityCategory
		pattern  string
		args     []driver.Value
	}{
		{name: "all", pattern: `SELECT amenity_id, (.+) FROM amenities ORDER BY category, amenity_name`},
		{
			name:     "by category",
			category: models.AmenityCatering,
			pattern:  `FROM amenities WHERE category = \$1 ORDER BY`,
			args:     []driver.Value{"catering"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			mock.ExpectQuery(tt.pattern).
				WithArgs(tt.args...).
				WillReturnRows(sqlmock.NewRows(amenityRowColumns).
					AddRow(amenityRow(5, "Kitchen", models.AmenityCatering)...))

			got, err := newAmenityRepo(db).ListAmenities(testContext(), tt.category)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, "Kitchen", got[0].AmenityName)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFindAmenityByID(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(findAmenityByID)).
		WithArgs(int64(40)).
		WillReturnRows(sqlmock.NewRows(amenityRowColumns))

	_, err := newAmenityRepo(db).FindAmenityByID(testContext(), 40)
	require.ErrorIs(t, err, ErrAmenityNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAmenity(t *testing.T) {
	input := models.Amenity{AmenityName: "Ramp", Category: models.AmenityAccessibility}

	t.Run("created", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(createAmenity)).
			WithArgs("Ramp", "", "", "accessibility").
			WillReturnRows(sqlmock.NewRows(amenityRowColumns).
				AddRow(amenityRow(12, "Ramp", models.AmenityAccessibility)...))

		got, err := newAmenityRepo(db).CreateAmenity(testContext(), input)
		require.NoError(t, err)
		assert.Equal(t, int64(12), got.AmenityID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate name", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(createAmenity)).
			WillReturnError(pgError(pgerrcode.UniqueViolation))

		_, err := newAmenityRepo(db).CreateAmenity(testContext(), input)
		require.ErrorIs(t, err, ErrAmenityAlreadyExists)
	})
}

func TestUpdateAmenity(t *testing.T) {
	icon := "ramp"

	t.Run("updated", func(t *testing.T) {
		db, mock := newTestDB(t)
		row := amenityRow(12, "Ramp", models.AmenityAccessibility)
		row[3] = "ramp"
		mock.ExpectQuery(`UPDATE amenities SET icon = \$1 WHERE amenity_id = \$2 RETURNING`).
			WithArgs("ramp", int64(12)).
			WillReturnRows(sqlmock.NewRows(amenityRowColumns).AddRow(row...))

		got, err := newAmenityRepo(db).UpdateAmenity(testContext(), 12, models.AmenityUpdate{Icon: &icon})
		require.NoError(t, err)
		assert.Equal(t, "ramp", got.Icon)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown amenity", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(`UPDATE amenities`).WillReturnRows(sqlmock.NewRows(amenityRowColumns))

		_, err := newAmenityRepo(db).UpdateAmenity(testContext(), 12, models.AmenityUpdate{Icon: &icon})
		require.ErrorIs(t, err, ErrAmenityNotFound)
	})

	t.Run("empty update never reaches the database", func(t *testing.T) {
		db, mock := newTestDB(t)

		_, err := newAmenityRepo(db).UpdateAmenity(testContext(), 12, models.AmenityUpdate{})
		require.ErrorIs(t, err, ErrBuildingSQLQuery)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteAmenity(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectExec(regexp.QuoteMeta(deleteAmenity)).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.ErrorIs(t, newAmenityRepo(db).DeleteAmenity(testContext(), 3), ErrAmenityNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
