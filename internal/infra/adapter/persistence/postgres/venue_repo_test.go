package postgres_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"turismo-api/internal/domain/entity"
	pg "turismo-api/internal/infra/adapter/persistence/postgres"
	"turismo-api/internal/repository"
)

func venueRow(v *entity.Venue) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "kind", "name", "category", "description", "schedule",
	}).AddRow(
		v.ID, string(v.Kind), v.Name, v.Category, v.Description, v.Schedule,
	)
}

func TestVenueRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := &entity.Venue{
		ID: 1, Kind: entity.KindPlace, Name: "Museo Nacional de Bellas Artes",
		Category: "museum", Description: "art museum", Schedule: "Tue-Sun 11-19",
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WithArgs(int64(1)).
		WillReturnRows(venueRow(want))

	repo := pg.NewVenueRepo(db)
	got, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestVenueRepo_Get_notFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM venues").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "kind", "name", "category", "description", "schedule",
		}))

	repo := pg.NewVenueRepo(db)
	got, err := repo.Get(context.Background(), 99)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got != nil {
		t.Fatalf("want nil for missing venue, got %+v", got)
	}
}

func TestVenueRepo_List_kindFilter(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM venues").
		WithArgs("restaurant").
		WillReturnRows(venueRow(&entity.Venue{
			ID: 3, Kind: entity.KindRestaurant, Name: "La Parrilla", Category: "restaurante",
		}))

	kind := entity.KindRestaurant
	repo := pg.NewVenueRepo(db)
	got, err := repo.List(context.Background(), repository.VenueFilter{Kind: &kind})
	if err != nil || len(got) != 1 {
		t.Fatalf("List err=%v len=%d", err, len(got))
	}
	if got[0].Kind != entity.KindRestaurant {
		t.Fatalf("kind = %v", got[0].Kind)
	}
}

func TestVenueRepo_List_textFilter(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM venues").
		WithArgs("place", "%museo%").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "kind", "name", "category", "description", "schedule",
		}))

	kind := entity.KindPlace
	repo := pg.NewVenueRepo(db)
	_, err := repo.List(context.Background(), repository.VenueFilter{Kind: &kind, Text: "museo"})
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestVenueRepo_Create_assignsID(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO venues")).
		WithArgs("place", "Obelisco", "monument", "icon of Buenos Aires", "always open").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	repo := pg.NewVenueRepo(db)
	v := &entity.Venue{
		Kind: entity.KindPlace, Name: "Obelisco", Category: "monument",
		Description: "icon of Buenos Aires", Schedule: "always open",
	}
	if err := repo.Create(context.Background(), v); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if v.ID != 7 {
		t.Fatalf("store-assigned id = %d, want 7", v.ID)
	}
}

func TestVenueRepo_Update_missingRow(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE venues")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewVenueRepo(db)
	err := repo.Update(context.Background(), &entity.Venue{ID: 42, Name: "x", Category: "y"})
	if err == nil {
		t.Fatal("want error for zero rows affected")
	}
}

func TestVenueRepo_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM venues")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewVenueRepo(db)
	if err := repo.Delete(context.Background(), 5); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
}
