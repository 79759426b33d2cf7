package clock

import (
	"context"
	"testing"
	"time"
)

func Test(t *testing.T) {
	ctx := context.Background()
	tool := New()
	tool.SetNow(func() time.Time {
		return time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)
	})
	ret, err := tool.Run(ctx, NewInput(""))
	if err != nil {
		t.Fatal(err)
	}
	if ret.Time != "2025-06-01 15:30:00" {
		t.Errorf("unexpected time: %s", ret.Time)
	}
	if ret.Timezone != "UTC" {
		t.Errorf("expecting UTC, got %s", ret.Timezone)
	}
}

func TestUnknownTimezone(t *testing.T) {
	ctx := context.Background()
	tool := New()
	if _, err := tool.Run(ctx, NewInput("Mars/Olympus_Mons")); err == nil {
		t.Error("expecting error for unknown timezone")
	}
}
