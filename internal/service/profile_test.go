package service_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/devlink-app/devlink/internal/domain"
	"github.com/devlink-app/devlink/internal/repository/sqlite"
	"github.com/devlink-app/devlink/internal/service"
)

func newTestProfileService(t *testing.T) (*service.ProfileService, *sqlite.DB) {
	t.Helper()
	db := newTestDB(t)
	return service.NewProfileService(db.Profiles(), db.Users()), db
}

func validProfileInput() service.ProfileInput {
	return service.ProfileInput{
		Status: "Developer",
		Skills: "go, rust, c++",
	}
}

func TestProfileService_Upsert_Create(t *testing.T) {
	svc, db := newTestProfileService(t)
	ctx := context.Background()

	user := seedUserForTest(t, db, "Ada", "upsert@example.com")

	in := validProfileInput()
	in.Company = "Acme"
	in.Twitter = "https://twitter.com/ada"

	profile, err := svc.Upsert(ctx, user.ID, in)
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	if got, want := profile.Skills, []string{"go", "rust", "c++"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected skills %v, got %v", want, got)
	}
	if profile.Company != "Acme" {
		t.Fatalf("expected company Acme, got %q", profile.Company)
	}
	if profile.Social.Twitter != "https://twitter.com/ada" {
		t.Fatalf("expected twitter link, got %q", profile.Social.Twitter)
	}
	if profile.Social.Youtube != "" {
		t.Fatalf("expected unset youtube link, got %q", profile.Social.Youtube)
	}
	if profile.UserName != "Ada" {
		t.Fatalf("expected joined user name Ada, got %q", profile.UserName)
	}
}

func TestProfileService_Upsert_ReplacePreservesNestedLists(t *testing.T) {
	svc, db := newTestProfileService(t)
	ctx := context.Background()

	user := seedUserForTest(t, db, "Ada", "replace@example.com")

	if _, err := svc.Upsert(ctx, user.ID, validProfileInput()); err != nil {
		t.Fatalf("first Upsert: %v", err)
	}
	if _, err := svc.AddExperience(ctx, user.ID, domain.Experience{
		Title: "Engineer", Company: "Acme", From: time.Now(),
	}); err != nil {
		t.Fatalf("AddExperience: %v", err)
	}

	in := validProfileInput()
	in.Status = "Senior Developer"
	in.Skills = "go"
	profile, err := svc.Upsert(ctx, user.ID, in)
	if err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	if profile.Status != "Senior Developer" {
		t.Fatalf("expected replaced status, got %q", profile.Status)
	}
	if len(profile.Experience) != 1 {
		t.Fatalf("expected experience to survive upsert, got %d entries", len(profile.Experience))
	}
}

func TestProfileService_Upsert_RequiresStatusAndSkills(t *testing.T) {
	svc, db := newTestProfileService(t)
	ctx := context.Background()

	user := seedUserForTest(t, db, "Ada", "required@example.com")

	_, err := svc.Upsert(ctx, user.ID, service.ProfileInput{Status: "Developer"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing skills, got %v", err)
	}
	_, err = svc.Upsert(ctx, user.ID, service.ProfileInput{Skills: "go"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing status, got %v", err)
	}
}

func TestProfileService_AddExperience_NoProfile(t *testing.T) {
	svc, db := newTestProfileService(t)
	ctx := context.Background()

	user := seedUserForTest(t, db, "Ada", "noprofile@example.com")

	_, err := svc.AddExperience(ctx, user.ID, domain.Experience{
		Title: "Engineer", Company: "Acme", From: time.Now(),
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound without a profile, got %v", err)
	}
}

func TestProfileService_Experience_HeadInsertAndRoundTrip(t *testing.T) {
	svc, db := newTestProfileService(t)
	ctx := context.Background()

	user := seedUserForTest(t, db, "Ada", "exp@example.com")
	if _, err := svc.Upsert(ctx, user.ID, validProfileInput()); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	first, err := svc.AddExperience(ctx, user.ID, domain.Experience{
		Title: "Junior", Company: "Acme", From: time.Now().AddDate(-2, 0, 0),
	})
	if err != nil {
		t.Fatalf("AddExperience junior: %v", err)
	}
	before := first.Experience

	updated, err := svc.AddExperience(ctx, user.ID, domain.Experience{
		Title: "Senior", Company: "Acme", From: time.Now(),
	})
	if err != nil {
		t.Fatalf("AddExperience senior: %v", err)
	}

	// Most recent entry sits at the head.
	if len(updated.Experience) != 2 || updated.Experience[0].Title != "Senior" {
		t.Fatalf("expected head insert, got %+v", updated.Experience)
	}

	// Removing it by id returns the list to its prior state.
	after, err := svc.RemoveExperience(ctx, user.ID, updated.Experience[0].ID)
	if err != nil {
		t.Fatalf("RemoveExperience: %v", err)
	}
	if len(after.Experience) != 1 || after.Experience[0].ID != before[0].ID {
		t.Fatalf("expected round-trip back to %+v, got %+v", before, after.Experience)
	}
}

func TestProfileService_RemoveExperience_UnknownIDIsNoOp(t *testing.T) {
	svc, db := newTestProfileService(t)
	ctx := context.Background()

	user := seedUserForTest(t, db, "Ada", "noopexp@example.com")
	if _, err := svc.Upsert(ctx, user.ID, validProfileInput()); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if _, err := svc.AddExperience(ctx, user.ID, domain.Experience{
		Title: "Engineer", Company: "Acme", From: time.Now(),
	}); err != nil {
		t.Fatalf("AddExperience: %v", err)
	}

	profile, err := svc.RemoveExperience(ctx, user.ID, "no-such-id")
	if err != nil {
		t.Fatalf("RemoveExperience: %v", err)
	}
	if len(profile.Experience) != 1 {
		t.Fatalf("expected list unchanged, got %d entries", len(profile.Experience))
	}
}

func TestProfileService_Education_AddAndRemove(t *testing.T) {
	svc, db := newTestProfileService(t)
	ctx := context.Background()

	user := seedUserForTest(t, db, "Ada", "edu@example.com")
	if _, err := svc.Upsert(ctx, user.ID, validProfileInput()); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	profile, err := svc.AddEducation(ctx, user.ID, domain.Education{
		School: "MIT", Degree: "BSc", FieldOfStudy: "CS", From: time.Now().AddDate(-4, 0, 0),
	})
	if err != nil {
		t.Fatalf("AddEducation: %v", err)
	}
	if len(profile.Education) != 1 || profile.Education[0].ID == "" {
		t.Fatalf("expected one education entry with id, got %+v", profile.Education)
	}

	profile, err = svc.RemoveEducation(ctx, user.ID, profile.Education[0].ID)
	if err != nil {
		t.Fatalf("RemoveEducation: %v", err)
	}
	if len(profile.Education) != 0 {
		t.Fatalf("expected empty education list, got %+v", profile.Education)
	}
}

func TestProfileService_AddEducation_Validation(t *testing.T) {
	svc, db := newTestProfileService(t)
	ctx := context.Background()

	user := seedUserForTest(t, db, "Ada", "eduvalid@example.com")
	if _, err := svc.Upsert(ctx, user.ID, validProfileInput()); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	_, err := svc.AddEducation(ctx, user.ID, domain.Education{School: "MIT"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProfileService_DeleteOwn_RemovesUserButNotPosts(t *testing.T) {
	svc, db := newTestProfileService(t)
	ctx := context.Background()

	user := seedUserForTest(t, db, "Ada", "delete@example.com")
	if _, err := svc.Upsert(ctx, user.ID, validProfileInput()); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	posts := service.NewPostService(db.Posts(), db.Users())
	post, err := posts.Create(ctx, user.ID, "still here")
	if err != nil {
		t.Fatalf("Create post: %v", err)
	}

	if err := svc.DeleteOwn(ctx, user.ID); err != nil {
		t.Fatalf("DeleteOwn: %v", err)
	}

	if _, err := db.Profiles().GetByUserID(ctx, user.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected profile gone, got %v", err)
	}
	if _, err := db.Users().GetByID(ctx, user.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected user gone, got %v", err)
	}

	// Posts are intentionally not cascade-deleted.
	if _, err := db.Posts().GetByID(ctx, post.ID); err != nil {
		t.Fatalf("expected post to survive account deletion, got %v", err)
	}
}

func TestProfileService_GetAll(t *testing.T) {
	svc, db := newTestProfileService(t)
	ctx := context.Background()

	a := seedUserForTest(t, db, "Ada", "all-a@example.com")
	b := seedUserForTest(t, db, "Bob", "all-b@example.com")
	if _, err := svc.Upsert(ctx, a.ID, validProfileInput()); err != nil {
		t.Fatalf("Upsert a: %v", err)
	}
	if _, err := svc.Upsert(ctx, b.ID, validProfileInput()); err != nil {
		t.Fatalf("Upsert b: %v", err)
	}

	profiles, err := svc.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}
}
