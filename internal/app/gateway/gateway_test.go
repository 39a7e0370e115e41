package gateway_test

import (
	"testing"

	"go.uber.org/zap"

	"github.com/cinelog/cinelog/internal/app/catalog"
	"github.com/cinelog/cinelog/internal/app/gateway"
	"github.com/cinelog/cinelog/internal/domain/models"
	"github.com/cinelog/cinelog/internal/testutil"
)

func TestLoad_PopulatesCatalog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.SeedMovie(ctx, "1", "Inception", "2010", "SciFi")
	fixtures.SeedUser(ctx, "1", "alice", "pw1", "a@x.com")
	fixtures.SeedReview(ctx, "1", "1", "1", 5, "great")

	gw := gateway.New(db, zap.NewNop())
	cat := catalog.New()
	if err := gw.Load(ctx, cat); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cat.Movies()) != 1 || len(cat.Users()) != 1 || len(cat.Reviews()) != 1 {
		t.Fatalf("unexpected catalog sizes: %d movies, %d users, %d reviews",
			len(cat.Movies()), len(cat.Users()), len(cat.Reviews()))
	}
	if cat.Reviews()[0].Comments != "great" {
		t.Errorf("review fields not loaded: %+v", cat.Reviews()[0])
	}
}

func TestLoad_DropsUnresolvableReviews(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.SeedMovie(ctx, "1", "Inception", "2010", "SciFi")
	fixtures.SeedUser(ctx, "1", "alice", "pw1", "a@x.com")
	fixtures.SeedReview(ctx, "1", "1", "1", 5, "resolvable")
	fixtures.SeedReview(ctx, "2", "99", "1", 3, "unknown user")
	fixtures.SeedReview(ctx, "3", "1", "99", 3, "unknown movie")

	gw := gateway.New(db, zap.NewNop())
	cat := catalog.New()
	if err := gw.Load(ctx, cat); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cat.Reviews()) != 1 {
		t.Fatalf("expected 1 resolvable review, got %d", len(cat.Reviews()))
	}
	if cat.Reviews()[0].ReviewID != "1" {
		t.Errorf("wrong review kept: %+v", cat.Reviews()[0])
	}
}

func TestFlush_RoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.SeedMovie(ctx, "1", "Inception", "2010", "SciFi")
	fixtures.SeedUser(ctx, "1", "alice", "pw1", "a@x.com")
	fixtures.SeedReview(ctx, "1", "1", "1", 5, "great")
	// This one is lost on load and must not round-trip.
	fixtures.SeedReview(ctx, "2", "99", "1", 3, "orphan")

	gw := gateway.New(db, zap.NewNop())
	cat := catalog.New()
	if err := gw.Load(ctx, cat); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// New in-memory records flushed for the first time.
	cat.AddUser(models.User{UserID: "2", Username: "bob", Password: "pw2", Email: "b@x.com"})
	cat.AddMovie(models.Movie{MovieID: "2", Title: "Heat", ReleaseDate: "1995", Genre: "Crime"})

	if err := gw.Flush(ctx, cat); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	// Flush is idempotent.
	if err := gw.Flush(ctx, cat); err != nil {
		t.Fatalf("second Flush failed: %v", err)
	}

	reloaded := catalog.New()
	if err := gw.Load(ctx, reloaded); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	if len(reloaded.Movies()) != 2 {
		t.Errorf("expected 2 movies after round-trip, got %d", len(reloaded.Movies()))
	}
	if len(reloaded.Users()) != 2 {
		t.Errorf("expected 2 users after round-trip, got %d", len(reloaded.Users()))
	}

	if u, ok := reloaded.FindUserByID("2"); !ok || u.Username != "bob" {
		t.Errorf("flushed user did not round-trip: %+v", u)
	}
	if m, ok := reloaded.FindMovieByID("2"); !ok || m.Title != "Heat" {
		t.Errorf("flushed movie did not round-trip: %+v", m)
	}

	// The orphan review stayed in the store document-wise but is
	// dropped again on load.
	for _, r := range reloaded.Reviews() {
		if r.ReviewID == "2" {
			t.Error("orphan review must not reappear in the catalog")
		}
	}
}

func TestUpdateReview_WritesThroughByPair(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.SeedMovie(ctx, "1", "Inception", "2010", "SciFi")
	fixtures.SeedUser(ctx, "1", "alice", "pw1", "a@x.com")
	fixtures.SeedReview(ctx, "1", "1", "1", 5, "great")

	gw := gateway.New(db, zap.NewNop())
	cat := catalog.New()
	if err := gw.Load(ctx, cat); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	updated, ok := cat.UpdateReview("1", 4, "great")
	if !ok {
		t.Fatal("in-memory update failed")
	}
	if err := gw.UpdateReview(ctx, updated); err != nil {
		t.Fatalf("UpdateReview failed: %v", err)
	}

	reloaded := catalog.New()
	if err := gw.Load(ctx, reloaded); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Reviews()[0].Rating != 4 {
		t.Errorf("expected stored rating 4, got %d", reloaded.Reviews()[0].Rating)
	}
	if reloaded.Reviews()[0].Comments != "great" {
		t.Errorf("expected comments unchanged, got %q", reloaded.Reviews()[0].Comments)
	}
}

func TestRemoveReview_DeletesBackingDocument(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.SeedMovie(ctx, "1", "Inception", "2010", "SciFi")
	fixtures.SeedUser(ctx, "1", "alice", "pw1", "a@x.com")
	fixtures.SeedReview(ctx, "1", "1", "1", 5, "great")

	gw := gateway.New(db, zap.NewNop())
	cat := catalog.New()
	if err := gw.Load(ctx, cat); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	removed, ok := cat.RemoveReview("1")
	if !ok {
		t.Fatal("in-memory removal failed")
	}
	if err := gw.RemoveReview(ctx, removed); err != nil {
		t.Fatalf("RemoveReview failed: %v", err)
	}

	reloaded := catalog.New()
	if err := gw.Load(ctx, reloaded); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(reloaded.Reviews()) != 0 {
		t.Errorf("expected review collection empty, got %d", len(reloaded.Reviews()))
	}
}
