package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mbalakin/seizurelog/internal/common"
	"github.com/mbalakin/seizurelog/internal/server/models"
)

func TestSeizureCreate_Success(t *testing.T) {
	db := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeSeizuresRepo{}
	s := NewSeizureService(db, &fakeRepoManager{s: repo})

	seizure, err := s.Create(context.Background(), "u1", models.SeizureAtonic, 42.5)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if seizure.ID == "" {
		t.Fatal("expected a generated id")
	}
	if seizure.UserID != "u1" || seizure.Type != models.SeizureAtonic || seizure.DurationSeconds != 42.5 {
		t.Fatalf("unexpected entry: %+v", seizure)
	}
	if seizure.Deleted {
		t.Fatal("new entry must not be tombstoned")
	}
	if repo.created != seizure {
		t.Fatal("stored entry differs from the returned one")
	}
}

func TestSeizureCreate_RejectsBadData(t *testing.T) {
	db := newSQLMockDB(t)
	defer db.Close()

	s := NewSeizureService(db, &fakeRepoManager{s: &fakeSeizuresRepo{}})

	if _, err := s.Create(context.Background(), "u1", models.SeizureType(99), 10); !errors.Is(err, common.ErrorSeizureData) {
		t.Fatalf("unknown type: expected ErrorSeizureData, got %v", err)
	}
	if _, err := s.Create(context.Background(), "u1", models.SeizureTonic, -1); !errors.Is(err, common.ErrorSeizureData) {
		t.Fatalf("negative duration: expected ErrorSeizureData, got %v", err)
	}
}

func TestSeizureDelete(t *testing.T) {
	db := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeSeizuresRepo{}
	s := NewSeizureService(db, &fakeRepoManager{s: repo})

	if err := s.Delete(context.Background(), "u1", "s1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	repo.softDelErr = common.ErrorNotFound
	if err := s.Delete(context.Background(), "u1", "someone-elses"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestSeizureList(t *testing.T) {
	db := newSQLMockDB(t)
	defer db.Close()

	want := []*models.Seizure{
		{ID: "s1", UserID: "u1", DurationSeconds: 5},
		{ID: "s2", UserID: "u1", DurationSeconds: 10},
	}
	s := NewSeizureService(db, &fakeRepoManager{s: &fakeSeizuresRepo{rangeOut: want}})

	got, err := s.List(context.Background(), "u1", 5, 10)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "s1" || got[1].ID != "s2" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestSeizureList_InvertedRange(t *testing.T) {
	db := newSQLMockDB(t)
	defer db.Close()

	s := NewSeizureService(db, &fakeRepoManager{s: &fakeSeizuresRepo{}})

	if _, err := s.List(context.Background(), "u1", 10, 5); !errors.Is(err, common.ErrorSeizureData) {
		t.Fatalf("expected ErrorSeizureData, got %v", err)
	}
}
