package reviewstore_test

import (
	"testing"

	reviewstore "github.com/cinelog/cinelog/internal/app/store/reviews"
	"github.com/cinelog/cinelog/internal/domain/models"
	"github.com/cinelog/cinelog/internal/testutil"
)

func TestStore_Upsert_InsertsThenReplaces(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reviewstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	r := models.Review{ReviewID: "1", UserID: "1", MovieID: "1", Rating: 5, Comments: "great"}
	if err := store.Upsert(ctx, r); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	r.Rating = 3
	r.Comments = "on rewatch, fine"
	if err := store.Upsert(ctx, r); err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}

	reviews, err := store.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(reviews) != 1 {
		t.Fatalf("expected 1 review, got %d", len(reviews))
	}
	if reviews[0].Rating != 3 || reviews[0].Comments != "on rewatch, fine" {
		t.Errorf("expected upsert to replace fields, got %+v", reviews[0])
	}
}

func TestStore_UpdateRatingComments_FiltersByPair(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reviewstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.SeedReview(ctx, "1", "1", "1", 5, "great")
	fixtures.SeedReview(ctx, "2", "2", "1", 2, "meh")

	if err := store.UpdateRatingComments(ctx, "1", "1", 4, "still good"); err != nil {
		t.Fatalf("UpdateRatingComments failed: %v", err)
	}

	reviews, err := store.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	for _, r := range reviews {
		switch r.ReviewID {
		case "1":
			if r.Rating != 4 || r.Comments != "still good" {
				t.Errorf("review 1 not updated: %+v", r)
			}
		case "2":
			if r.Rating != 2 || r.Comments != "meh" {
				t.Errorf("review 2 must be untouched: %+v", r)
			}
		}
	}
}

func TestStore_DeleteByUserAndMovie(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reviewstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.SeedReview(ctx, "1", "1", "1", 5, "great")
	fixtures.SeedReview(ctx, "2", "1", "2", 4, "good")

	if err := store.DeleteByUserAndMovie(ctx, "1", "1"); err != nil {
		t.Fatalf("DeleteByUserAndMovie failed: %v", err)
	}

	reviews, err := store.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(reviews) != 1 {
		t.Fatalf("expected 1 review left, got %d", len(reviews))
	}
	if reviews[0].ReviewID != "2" {
		t.Errorf("expected review 2 to remain, got %q", reviews[0].ReviewID)
	}
}

func TestStore_DeleteByUserAndMovie_RemovesOnlyOneOfDuplicatePair(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reviewstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Two reviews by the same user for the same movie: the pair
	// filter deletes a single document, whichever matches first.
	fixtures.SeedReview(ctx, "1", "1", "1", 5, "first")
	fixtures.SeedReview(ctx, "2", "1", "1", 1, "second")

	if err := store.DeleteByUserAndMovie(ctx, "1", "1"); err != nil {
		t.Fatalf("DeleteByUserAndMovie failed: %v", err)
	}

	reviews, err := store.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(reviews) != 1 {
		t.Errorf("expected exactly one document deleted, %d left", len(reviews))
	}
}
