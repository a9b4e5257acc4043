package store

import (
	"errors"
	"testing"

	"seasoncal/internal/models"
)

func TestCreateDerivesSeason(t *testing.T) {
	db := newTestDB(t)
	alice := mustRegister(t, NewUserStore(db), "alice", "a@x.com")
	activities := NewActivityStore(db)

	activity, err := activities.Create(alice.ID, ActivityInput{
		Month:        6,
		ActivityType: models.ActivityTypeFriends,
		Category:     "外出",
		Title:        "海边烧烤",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if activity.Season != "summer" {
		t.Errorf("season = %s, want summer", activity.Season)
	}
}

func TestCreateValidation(t *testing.T) {
	db := newTestDB(t)
	alice := mustRegister(t, NewUserStore(db), "alice", "a@x.com")
	activities := NewActivityStore(db)

	cases := []struct {
		name string
		in   ActivityInput
		want error
	}{
		{"month too low", ActivityInput{Month: 0, ActivityType: "alone", Title: "x"}, ErrInvalidMonth},
		{"month too high", ActivityInput{Month: 13, ActivityType: "alone", Title: "x"}, ErrInvalidMonth},
		{"unknown type", ActivityInput{Month: 3, ActivityType: "robots", Title: "x"}, ErrInvalidType},
		{"empty title", ActivityInput{Month: 3, ActivityType: "alone", Title: ""}, ErrEmptyTitle},
	}

	for _, tc := range cases {
		if _, err := activities.Create(alice.ID, tc.in); !errors.Is(err, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestListGrouped(t *testing.T) {
	db := newTestDB(t)
	alice := mustRegister(t, NewUserStore(db), "alice", "a@x.com")
	activities := NewActivityStore(db)

	if _, err := activities.Create(alice.ID, ActivityInput{
		Month: 6, ActivityType: models.ActivityTypeFriends, Category: "外出", Title: "海边烧烤",
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	groups, err := activities.ListGrouped(alice.ID, 6)
	if err != nil {
		t.Fatalf("ListGrouped failed: %v", err)
	}
	if len(groups) != 4 {
		t.Fatalf("got %d groups, want 4", len(groups))
	}

	// 固定顺序 alone/friends/family/elderly
	wantOrder := []string{"alone", "friends", "family", "elderly"}
	for i, g := range groups {
		if g.Type != wantOrder[i] {
			t.Errorf("group %d type = %s, want %s", i, g.Type, wantOrder[i])
		}
	}

	// 只出现在 friends 组
	for _, g := range groups {
		if g.Type == models.ActivityTypeFriends {
			if len(g.Items) != 1 || g.Items[0].Title != "海边烧烤" {
				t.Errorf("friends group = %+v, want the one activity", g.Items)
			}
		} else if len(g.Items) != 0 {
			t.Errorf("group %s should be empty, got %d items", g.Type, len(g.Items))
		}
	}

	// 其他月份看不到
	groups, _ = activities.ListGrouped(alice.ID, 7)
	for _, g := range groups {
		if len(g.Items) != 0 {
			t.Errorf("month 7 group %s should be empty", g.Type)
		}
	}
}

func TestListGroupedDropsUnknownType(t *testing.T) {
	db := newTestDB(t)
	alice := mustRegister(t, NewUserStore(db), "alice", "a@x.com")
	activities := NewActivityStore(db)

	// 枚举校验之前的历史脏数据只能绕过 store 写入
	legacy := models.Activity{
		UserID: alice.ID, Month: 6, Season: "summer",
		ActivityType: "coworkers", Category: "外出", Title: "团建",
	}
	if err := db.Create(&legacy).Error; err != nil {
		t.Fatalf("failed to seed legacy row: %v", err)
	}

	groups, err := activities.ListGrouped(alice.ID, 6)
	if err != nil {
		t.Fatalf("ListGrouped failed: %v", err)
	}
	for _, g := range groups {
		if len(g.Items) != 0 {
			t.Errorf("unknown type leaked into group %s", g.Type)
		}
	}
}

func TestOwnershipHiding(t *testing.T) {
	db := newTestDB(t)
	userStore := NewUserStore(db)
	alice := mustRegister(t, userStore, "alice", "a@x.com")
	bob := mustRegister(t, userStore, "bob", "b@x.com")
	activities := NewActivityStore(db)

	activity, err := activities.Create(bob.ID, ActivityInput{
		Month: 3, ActivityType: models.ActivityTypeFamily, Category: "外出", Title: "赏花",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	in := ActivityInput{Month: 4, ActivityType: models.ActivityTypeFamily, Category: "外出", Title: "改"}

	// alice 操作 bob 的记录,与操作不存在的记录结果完全一致
	if _, err := activities.Get(alice.ID, activity.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get other's activity: got %v, want ErrNotFound", err)
	}
	if _, err := activities.Update(alice.ID, activity.ID, in); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update other's activity: got %v, want ErrNotFound", err)
	}
	if err := activities.Delete(alice.ID, activity.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete other's activity: got %v, want ErrNotFound", err)
	}
	if _, err := activities.Get(alice.ID, 99999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get missing id: got %v, want ErrNotFound", err)
	}

	// bob 的记录安然无恙
	got, err := activities.Get(bob.ID, activity.ID)
	if err != nil {
		t.Fatalf("owner Get failed: %v", err)
	}
	if got.Title != "赏花" {
		t.Errorf("activity was mutated: %+v", got)
	}
}

func TestUpdateRecomputesSeason(t *testing.T) {
	db := newTestDB(t)
	alice := mustRegister(t, NewUserStore(db), "alice", "a@x.com")
	activities := NewActivityStore(db)

	activity, err := activities.Create(alice.ID, ActivityInput{
		Month: 3, ActivityType: models.ActivityTypeFamily, Category: "外出", Title: "Picnic",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if activity.Season != "spring" {
		t.Fatalf("season = %s, want spring", activity.Season)
	}

	updated, err := activities.Update(alice.ID, activity.ID, ActivityInput{
		Month: 12, ActivityType: models.ActivityTypeFamily, Category: "外出", Title: "Picnic",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Season != "winter" {
		t.Errorf("season after move to December = %s, want winter", updated.Season)
	}
}

func TestCountByMonth(t *testing.T) {
	db := newTestDB(t)
	userStore := NewUserStore(db)
	alice := mustRegister(t, userStore, "alice", "a@x.com")
	bob := mustRegister(t, userStore, "bob", "b@x.com")
	activities := NewActivityStore(db)

	for i := 0; i < 2; i++ {
		if _, err := activities.Create(alice.ID, ActivityInput{
			Month: 5, ActivityType: models.ActivityTypeAlone, Category: "家", Title: "读书",
		}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	// bob 的记录不计入 alice 的统计
	if _, err := activities.Create(bob.ID, ActivityInput{
		Month: 5, ActivityType: models.ActivityTypeAlone, Category: "家", Title: "看电影",
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	counts, err := activities.CountByMonth(alice.ID)
	if err != nil {
		t.Fatalf("CountByMonth failed: %v", err)
	}
	if len(counts) != 12 {
		t.Fatalf("got %d entries, want 12", len(counts))
	}
	for m := 1; m <= 12; m++ {
		want := int64(0)
		if m == 5 {
			want = 2
		}
		if counts[m] != want {
			t.Errorf("counts[%d] = %d, want %d", m, counts[m], want)
		}
	}
}

func TestDeleteDecrementsCount(t *testing.T) {
	db := newTestDB(t)
	alice := mustRegister(t, NewUserStore(db), "alice", "a@x.com")
	activities := NewActivityStore(db)

	first, _ := activities.Create(alice.ID, ActivityInput{
		Month: 8, ActivityType: models.ActivityTypeElderly, Category: "外出", Title: "散步",
	})
	if _, err := activities.Create(alice.ID, ActivityInput{
		Month: 8, ActivityType: models.ActivityTypeElderly, Category: "家", Title: "下棋",
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := activities.Delete(alice.ID, first.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	counts, _ := activities.CountByMonth(alice.ID)
	if counts[8] != 1 {
		t.Errorf("counts[8] = %d after delete, want 1", counts[8])
	}

	groups, _ := activities.ListGrouped(alice.ID, 8)
	for _, g := range groups {
		for _, a := range g.Items {
			if a.ID == first.ID {
				t.Error("deleted activity still listed")
			}
		}
	}
}
