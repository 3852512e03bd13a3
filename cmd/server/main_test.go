package main

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/starquake/quizcrud/cmd/server/app"
	"github.com/starquake/quizcrud/internal/testutil"
)

type quizJSON struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  *string    `json:"description"`
	CreationDate time.Time  `json:"creation_date"`
	CloseDate    *time.Time `json:"close_date"`
	IsActive     bool       `json:"is_active"`
	OwnerID      uuid.UUID  `json:"owner_id"`
}

type detailJSON struct {
	Detail string `json:"detail"`
}

func TestRun_QuizLifecycle(t *testing.T) {
	t.Parallel()

	ctx, stop := testutil.SignalCtx(t)

	getenv := func(key string) string {
		env := map[string]string{
			"APP_ENV":   "test",
			"LOG_LEVEL": "debug",
		}

		return env[key]
	}

	ln := testutil.Listen(ctx, t)
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Run(ctx, getenv, testutil.NewTestWriter(t), ln)
	}()

	baseURL := fmt.Sprintf("http://%s", ln.Addr().String())
	if err := testutil.WaitForReady(ctx, t, 10*time.Second, baseURL+"/healthz"); err != nil {
		t.Fatalf("error waiting for server to be ready: %v", err)
	}

	// The store starts with the seed quizzes.
	var seeded []quizJSON
	if got, want := testutil.DoJSON(ctx, t, http.MethodGet, baseURL+"/quiz", nil, &seeded), http.StatusOK; got != want {
		t.Fatalf("list: status = %d, want %d", got, want)
	}
	if got, want := len(seeded), 3; got != want {
		t.Fatalf("list: got %d quizzes, want %d", got, want)
	}

	// Create
	owner := uuid.New()
	var created quizJSON
	status := testutil.DoJSON(ctx, t, http.MethodPost, baseURL+"/quiz", map[string]any{
		"title":     "Integration Test Quiz",
		"is_active": true,
		"owner_id":  owner.String(),
	}, &created)
	if got, want := status, http.StatusOK; got != want {
		t.Fatalf("create: status = %d, want %d", got, want)
	}
	for _, qz := range seeded {
		if qz.ID == created.ID {
			t.Fatalf("create: id %s already taken", created.ID)
		}
	}

	// Get returns what create returned.
	var got quizJSON
	if status = testutil.DoJSON(ctx, t, http.MethodGet, baseURL+"/quiz/"+created.ID.String(), nil, &got); status != http.StatusOK {
		t.Fatalf("get: status = %d, want %d", status, http.StatusOK)
	}
	if diff := cmp.Diff(got, created); diff != "" {
		t.Errorf("get diff (-got +want):\n%s", diff)
	}

	// Update keeps id and creation date.
	var detail detailJSON
	status = testutil.DoJSON(ctx, t, http.MethodPut, baseURL+"/quiz/"+created.ID.String(), map[string]any{
		"title":       "Renamed Quiz",
		"description": "Now with a description",
		"is_active":   false,
		"owner_id":    owner.String(),
	}, &detail)
	if status != http.StatusOK || detail.Detail != "Quiz updated" {
		t.Fatalf("update: status = %d, detail = %q", status, detail.Detail)
	}
	if status = testutil.DoJSON(ctx, t, http.MethodGet, baseURL+"/quiz/"+created.ID.String(), nil, &got); status != http.StatusOK {
		t.Fatalf("get after update: status = %d, want %d", status, http.StatusOK)
	}
	desc := "Now with a description"
	want := quizJSON{
		ID:           created.ID,
		Title:        "Renamed Quiz",
		Description:  &desc,
		CreationDate: created.CreationDate,
		IsActive:     false,
		OwnerID:      owner,
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("get after update diff (-got +want):\n%s", diff)
	}

	// Delete, then the quiz is gone.
	status = testutil.DoJSON(ctx, t, http.MethodDelete, baseURL+"/quiz/"+created.ID.String(), nil, &detail)
	if status != http.StatusOK || detail.Detail != "Quiz deleted" {
		t.Fatalf("delete: status = %d, detail = %q", status, detail.Detail)
	}
	status = testutil.DoJSON(ctx, t, http.MethodGet, baseURL+"/quiz/"+created.ID.String(), nil, &detail)
	if status != http.StatusNotFound || detail.Detail != "Quiz not found" {
		t.Fatalf("get after delete: status = %d, detail = %q", status, detail.Detail)
	}

	var after []quizJSON
	testutil.DoJSON(ctx, t, http.MethodGet, baseURL+"/quiz", nil, &after)
	if diff := cmp.Diff(after, seeded); diff != "" {
		t.Errorf("list after delete diff (-got +want):\n%s", diff)
	}

	// Shutdown server
	stop()
	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Run() returned error: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Error("server failed to shutdown in time")
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Parallel()

	getenv := func(key string) string {
		return map[string]string{"PORT": "not-a-port"}[key]
	}

	err := app.Run(t.Context(), getenv, testutil.NewTestWriter(t), nil)
	if err == nil {
		t.Fatal("expected error from Run")
	}
}
