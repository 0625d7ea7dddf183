package main

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/99minutos/identity-service/internal/core/ports"
	"github.com/99minutos/identity-service/internal/infrastructure/queue"
)

type captureCreate struct {
	mu   sync.Mutex
	cmds []ports.CreateUserCommand
}

func (c *captureCreate) Execute(_ context.Context, cmd ports.CreateUserCommand) (*ports.UserResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cmds = append(c.cmds, cmd)
	return &ports.UserResult{ID: "id", Email: cmd.Email}, nil
}

func TestFeed(t *testing.T) {
	input := strings.Join([]string{
		`{"email":"a@x.com","age":30,"password":"Secr3t!pass","first_name":"ann","last_name":"lee"}`,
		``,
		`not json`,
		`{"email":"b@x.com","age":41,"password":"Secr3t!pass","first_name":"bo","last_name":"kim"}`,
	}, "\n")

	create := &captureCreate{}
	d := queue.NewDispatcher(2, create, zerolog.Nop())
	d.Start(context.Background())

	malformed, err := feed(context.Background(), strings.NewReader(input), d, zerolog.Nop())
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	summary := d.Close()

	if malformed != 1 {
		t.Fatalf("expected 1 malformed line, got %d", malformed)
	}
	if summary.Created != 2 {
		t.Fatalf("expected 2 created, got %+v", summary)
	}

	var found bool
	for _, c := range create.cmds {
		if c.Email == "b@x.com" {
			found = true
			if c.Age != 41 || c.RawPassword != "Secr3t!pass" || c.FirstName != "bo" || c.LastName != "kim" {
				t.Fatalf("record not mapped: %+v", c)
			}
		}
	}
	if !found {
		t.Fatalf("expected b@x.com to be dispatched")
	}
}
