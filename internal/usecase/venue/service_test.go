package venue_test

import (
	"context"
	"errors"
	"testing"

	"turismo-api/internal/domain/entity"
	"turismo-api/internal/repository"
	venueUC "turismo-api/internal/usecase/venue"
)

/* ───────── stubs ───────── */

// Minimal in-memory VenueRepository.
type stubRepo struct {
	data   map[int64]*entity.Venue
	nextID int64
	err    error // set to force every call to fail
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Venue{}, nextID: 1}
}

func (s *stubRepo) List(_ context.Context, filter repository.VenueFilter) ([]*entity.Venue, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Venue
	for _, v := range s.data {
		if filter.Kind != nil && v.Kind != *filter.Kind {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Venue, error) {
	return s.data[id], s.err
}

func (s *stubRepo) Create(_ context.Context, v *entity.Venue) error {
	if s.err != nil {
		return s.err
	}
	v.ID = s.nextID
	s.nextID++
	s.data[v.ID] = v
	return nil
}

func (s *stubRepo) Update(_ context.Context, v *entity.Venue) error {
	if s.err != nil {
		return s.err
	}
	s.data[v.ID] = v
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	delete(s.data, id)
	return nil
}

// stubLinks records unlinkVenue calls; the other methods are unused here.
type stubLinks struct {
	unlinkedVenues []int64
	err            error
}

func (s *stubLinks) Link(_ context.Context, _ entity.Kind, _, _ int64) error { return s.err }
func (s *stubLinks) Unlink(_ context.Context, _ int64) error                 { return s.err }
func (s *stubLinks) UnlinkVenue(_ context.Context, _ entity.Kind, venueID int64) error {
	if s.err != nil {
		return s.err
	}
	s.unlinkedVenues = append(s.unlinkedVenues, venueID)
	return nil
}
func (s *stubLinks) ReviewIDsFor(_ context.Context, _ entity.Kind, _ int64) ([]int64, error) {
	return nil, s.err
}
func (s *stubLinks) DeleteDangling(_ context.Context, _ entity.Kind) (int64, error) {
	return 0, s.err
}

func newService(repo *stubRepo, links *stubLinks) *venueUC.Service {
	return &venueUC.Service{Repo: repo, Links: links}
}

/* ───────── tests ───────── */

func TestCreate(t *testing.T) {
	repo := newStub()
	svc := newService(repo, &stubLinks{})

	v, err := svc.Create(context.Background(), venueUC.CreateInput{
		Kind:     entity.KindRestaurant,
		Name:     "  La Pasiva  ",
		Category: "chivitos",
	})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if v.ID == 0 {
		t.Fatal("store-assigned id missing")
	}
	if v.Name != "La Pasiva" {
		t.Errorf("name not trimmed: %q", v.Name)
	}
}

func TestCreate_validation(t *testing.T) {
	svc := newService(newStub(), &stubLinks{})

	tests := []struct {
		name  string
		in    venueUC.CreateInput
		field string
	}{
		{"unknown kind", venueUC.CreateInput{Kind: "museum", Name: "x", Category: "y"}, "kind"},
		{"blank name", venueUC.CreateInput{Kind: entity.KindPlace, Name: "   ", Category: "y"}, "name"},
		{"blank category", venueUC.CreateInput{Kind: entity.KindPlace, Name: "x", Category: ""}, "category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.in)
			var verr *entity.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("want ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Errorf("failing field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestGet_notFound(t *testing.T) {
	svc := newService(newStub(), &stubLinks{})

	if _, err := svc.Get(context.Background(), 404); !errors.Is(err, venueUC.ErrVenueNotFound) {
		t.Fatalf("err=%v, want ErrVenueNotFound", err)
	}
	if _, err := svc.Get(context.Background(), -1); !errors.Is(err, venueUC.ErrInvalidVenueID) {
		t.Fatalf("err=%v, want ErrInvalidVenueID", err)
	}
}

func TestUpdate_partialFields(t *testing.T) {
	repo := newStub()
	repo.data[1] = &entity.Venue{ID: 1, Kind: entity.KindPlace, Name: "Plaza", Category: "park", Schedule: "24h"}
	svc := newService(repo, &stubLinks{})

	name := "Plaza Independencia"
	got, err := svc.Update(context.Background(), venueUC.UpdateInput{ID: 1, Name: &name})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if got.Name != "Plaza Independencia" {
		t.Errorf("name = %q", got.Name)
	}
	if got.Category != "park" || got.Schedule != "24h" {
		t.Errorf("untouched fields changed: %+v", got)
	}
}

func TestUpdate_blankNameRejected(t *testing.T) {
	repo := newStub()
	repo.data[1] = &entity.Venue{ID: 1, Kind: entity.KindPlace, Name: "Plaza", Category: "park"}
	svc := newService(repo, &stubLinks{})

	blank := "   "
	_, err := svc.Update(context.Background(), venueUC.UpdateInput{ID: 1, Name: &blank})
	var verr *entity.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}

func TestDelete_unlinksButKeepsReviews(t *testing.T) {
	repo := newStub()
	repo.data[7] = &entity.Venue{ID: 7, Kind: entity.KindRestaurant, Name: "Bar Arocena", Category: "bar"}
	links := &stubLinks{}
	svc := newService(repo, links)

	if err := svc.Delete(context.Background(), 7); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if _, ok := repo.data[7]; ok {
		t.Fatal("venue still present")
	}
	if len(links.unlinkedVenues) != 1 || links.unlinkedVenues[0] != 7 {
		t.Fatalf("unlink cascade missing: %v", links.unlinkedVenues)
	}
}

func TestDelete_notFound(t *testing.T) {
	svc := newService(newStub(), &stubLinks{})
	if err := svc.Delete(context.Background(), 99); !errors.Is(err, venueUC.ErrVenueNotFound) {
		t.Fatalf("err=%v, want ErrVenueNotFound", err)
	}
}

func TestDelete_unlinkFailureAborts(t *testing.T) {
	repo := newStub()
	repo.data[7] = &entity.Venue{ID: 7, Kind: entity.KindPlace, Name: "Plaza", Category: "park"}
	links := &stubLinks{err: errors.New("store down")}
	svc := newService(repo, links)

	if err := svc.Delete(context.Background(), 7); err == nil {
		t.Fatal("want error when unlink fails")
	}
	if _, ok := repo.data[7]; !ok {
		t.Fatal("venue deleted despite unlink failure")
	}
}
