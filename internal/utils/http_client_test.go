package utils

import (
	"testing"
	"time"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("https://example.com", time.Second)

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_BaseURLAndTimeout(t *testing.T) {
	client := NewHTTPClient(" https://api.example.com/v3/ ", 3*time.Second)

	if client.BaseURL != "https://api.example.com/v3" {
		t.Errorf("expected trimmed base URL, got %q", client.BaseURL)
	}
	if client.GetClient().Timeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %s", client.GetClient().Timeout)
	}
	if got := client.Header.Get("Accept"); got != "application/json" {
		t.Errorf("expected Accept application/json, got %q", got)
	}
}

func TestNewHTTPClient_NoTimeout(t *testing.T) {
	client := NewHTTPClient("https://example.com", 0)

	if client.GetClient().Timeout != 0 {
		t.Errorf("expected no timeout, got %s", client.GetClient().Timeout)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	// Create two clients and make sure they don't share the same underlying resty.Client
	client1 := NewHTTPClient("https://example.com", 0)
	client2 := NewHTTPClient("https://example.com", 0)

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestHTTPClient_EmbeddedClientUsable(t *testing.T) {
	client := NewHTTPClient("https://example.com", 0)

	// Just check that we can call a basic method on the embedded resty client
	req := client.R()
	if req == nil {
		t.Fatal("expected non-nil request from embedded resty client")
	}
}
