package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/savdo-crm/crm-api/internal/core/domain"
	"github.com/savdo-crm/crm-api/internal/core/ports"
)

func seedClients(t *testing.T, svc *ClientService) {
	t.Helper()
	inputs := []ports.CreateClientInput{
		{Name: "Anvar Karimov", Phone: "998901234567", Address: "Tashkent, Chilonzor"},
		{Name: "Madina Yusupova", Phone: "998907654321", Address: "Samarkand"},
		{Name: "Bobur Alimov", Phone: "998935550011", Address: "Bukhara old town"},
	}
	for _, in := range inputs {
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("seed create failed: %v", err)
		}
	}
}

func TestClientService_Search_BlankTermReturnsFullList(t *testing.T) {
	repo := &stubClientRepo{}
	svc := NewClientService(repo, zerolog.Nop())
	seedClients(t, svc)

	for _, term := range []string{"", "   ", "\t"} {
		got, err := svc.Search(context.Background(), term)
		if err != nil {
			t.Fatalf("Search(%q) error: %v", term, err)
		}
		if len(got) != 3 {
			t.Fatalf("Search(%q) returned %d clients, want 3", term, len(got))
		}
	}
}

func TestClientService_Search_CaseInsensitiveName(t *testing.T) {
	repo := &stubClientRepo{}
	svc := NewClientService(repo, zerolog.Nop())
	seedClients(t, svc)

	got, err := svc.Search(context.Background(), "MADINA")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Madina Yusupova" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestClientService_Search_MatchesPhoneAndAddress(t *testing.T) {
	repo := &stubClientRepo{}
	svc := NewClientService(repo, zerolog.Nop())
	seedClients(t, svc)

	byPhone, err := svc.Search(context.Background(), "935550011")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(byPhone) != 1 || byPhone[0].Name != "Bobur Alimov" {
		t.Fatalf("phone search: %+v", byPhone)
	}

	byAddress, err := svc.Search(context.Background(), "old TOWN")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(byAddress) != 1 || byAddress[0].Name != "Bobur Alimov" {
		t.Fatalf("address search: %+v", byAddress)
	}
}

func TestClientService_Search_NoMatch(t *testing.T) {
	repo := &stubClientRepo{}
	svc := NewClientService(repo, zerolog.Nop())
	seedClients(t, svc)

	got, err := svc.Search(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}

func TestClientService_DeleteRemovesFromList(t *testing.T) {
	repo := &stubClientRepo{}
	svc := NewClientService(repo, zerolog.Nop())
	seedClients(t, svc)

	all, _ := svc.List(context.Background())
	victim := all[0]

	if err := svc.Delete(context.Background(), victim.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	after, _ := svc.List(context.Background())
	if len(after) != 2 {
		t.Fatalf("expected 2 clients after delete, got %d", len(after))
	}
	for _, c := range after {
		if c.ID == victim.ID {
			t.Fatalf("deleted client still listed")
		}
	}
}

func TestClientService_DeleteMissingReportsNotFound(t *testing.T) {
	repo := &stubClientRepo{}
	svc := NewClientService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), "ghost"); err != domain.ErrClientNotFound {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientService_UpdatePartial(t *testing.T) {
	repo := &stubClientRepo{}
	svc := NewClientService(repo, zerolog.Nop())
	created, err := svc.Create(context.Background(), ports.CreateClientInput{
		Name: "Anvar Karimov", Phone: "998901234567", Address: "Tashkent",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	newPhone := "998900000000"
	updated, err := svc.Update(context.Background(), created.ID, ports.ClientUpdate{Phone: &newPhone})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Phone != newPhone {
		t.Fatalf("phone not updated: %q", updated.Phone)
	}
	if updated.Name != "Anvar Karimov" {
		t.Fatalf("untouched field changed: %q", updated.Name)
	}
}
