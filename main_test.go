package main

import "testing"

func TestSelectServices(t *testing.T) {
	all, err := selectServices("all")
	if err != nil || len(all) != 3 {
		t.Fatalf("selectServices(all) = %v, %v", all, err)
	}
	one, err := selectServices("travel")
	if err != nil || len(one) != 1 || one[0] != "travel" {
		t.Fatalf("selectServices(travel) = %v, %v", one, err)
	}
	if _, err := selectServices("billing"); err == nil {
		t.Fatalf("expected error for unknown service")
	}
}

func TestRunRejectsAddrWithAllServices(t *testing.T) {
	if err := run([]string{"--addr", ":0"}); err == nil {
		t.Fatalf("expected error when --addr is combined with all services")
	}
}

func TestRunHelp(t *testing.T) {
	if err := run([]string{"--help"}); err != nil {
		t.Fatalf("--help should not fail: %v", err)
	}
}
