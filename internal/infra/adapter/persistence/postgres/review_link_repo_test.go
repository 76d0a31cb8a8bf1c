package postgres_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"turismo-api/internal/domain/entity"
	pg "turismo-api/internal/infra/adapter/persistence/postgres"
)

func TestReviewLinkRepo_Link_targetsKindTable(t *testing.T) {
	tests := []struct {
		kind  entity.Kind
		query string
	}{
		{entity.KindPlace, "INSERT INTO place_reviews (place_id, review_id)"},
		{entity.KindRestaurant, "INSERT INTO restaurant_reviews (restaurant_id, review_id)"},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			db, mock, _ := sqlmock.New()
			defer func() { _ = db.Close() }()

			mock.ExpectExec(regexp.QuoteMeta(tt.query)).
				WithArgs(int64(7), int64(42)).
				WillReturnResult(sqlmock.NewResult(0, 1))

			repo := pg.NewReviewLinkRepo(db)
			if err := repo.Link(context.Background(), tt.kind, 7, 42); err != nil {
				t.Fatalf("Link err=%v", err)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestReviewLinkRepo_Link_duplicateIsNoop(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	// ON CONFLICT DO NOTHING reports zero rows affected for a repeat link.
	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT DO NOTHING")).
		WithArgs(int64(7), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewReviewLinkRepo(db)
	if err := repo.Link(context.Background(), entity.KindPlace, 7, 42); err != nil {
		t.Fatalf("duplicate Link err=%v", err)
	}
}

func TestReviewLinkRepo_Unlink_coversEveryKind(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM place_reviews WHERE review_id = $1")).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM restaurant_reviews WHERE review_id = $1")).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewReviewLinkRepo(db)
	if err := repo.Unlink(context.Background(), 42); err != nil {
		t.Fatalf("Unlink err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestReviewLinkRepo_ReviewIDsFor(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM restaurant_reviews").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"review_id"}).
			AddRow(int64(10)).AddRow(int64(11)).AddRow(int64(12)))

	repo := pg.NewReviewLinkRepo(db)
	got, err := repo.ReviewIDsFor(context.Background(), entity.KindRestaurant, 3)
	if err != nil {
		t.Fatalf("ReviewIDsFor err=%v", err)
	}
	if diff := cmp.Diff([]int64{10, 11, 12}, got); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestReviewLinkRepo_ReviewIDsFor_noneLinked(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM place_reviews").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"review_id"}))

	repo := pg.NewReviewLinkRepo(db)
	got, err := repo.ReviewIDsFor(context.Background(), entity.KindPlace, 9)
	if err != nil {
		t.Fatalf("ReviewIDsFor err=%v", err)
	}
	if len(got) != 0 {
		t.Fatalf("want no ids, got %v", got)
	}
}

func TestReviewLinkRepo_DeleteDangling(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM place_reviews")).
		WithArgs("place").
		WillReturnResult(sqlmock.NewResult(0, 4))

	repo := pg.NewReviewLinkRepo(db)
	n, err := repo.DeleteDangling(context.Background(), entity.KindPlace)
	if err != nil {
		t.Fatalf("DeleteDangling err=%v", err)
	}
	if n != 4 {
		t.Fatalf("removed = %d, want 4", n)
	}
}
