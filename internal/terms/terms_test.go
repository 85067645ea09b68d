package terms

import (
	"reflect"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	s := New()
	want := []string{"dob", "name"}
	if got := s.List(); !reflect.DeepEqual(got, want) {
		t.Errorf("New().List() = %v, want %v", got, want)
	}
}

func TestAddNormalizes(t *testing.T) {
	s := New("name")
	s.Add("  SSN ")
	if !s.Contains("ssn") {
		t.Error("Add should lowercase and trim before inserting")
	}
}

func TestAddIdempotent(t *testing.T) {
	s := New("name")
	s.Add("ssn")
	s.Add("ssn")
	s.Add("SSN")
	want := []string{"name", "ssn"}
	if got := s.List(); !reflect.DeepEqual(got, want) {
		t.Errorf("List() after duplicate adds = %v, want %v", got, want)
	}
}

func TestAddEmptyIsNoop(t *testing.T) {
	s := New("name")
	s.Add("")
	s.Add("   ")
	if s.Len() != 1 {
		t.Errorf("Len() = %d after empty adds, want 1", s.Len())
	}
}

func TestRemove(t *testing.T) {
	s := New("name", "dob")
	s.Remove("DOB")
	if s.Contains("dob") {
		t.Error("Remove should match case-insensitively")
	}
	// Removing an absent term is a no-op.
	s.Remove("ssn")
	if got := s.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestReset(t *testing.T) {
	s := New("name")
	s.Add("ssn")
	s.Remove("name")
	s.Reset()
	want := []string{"dob", "name"}
	if got := s.List(); !reflect.DeepEqual(got, want) {
		t.Errorf("List() after Reset = %v, want %v", got, want)
	}
}

func TestMatch(t *testing.T) {
	s := New("name", "dob")
	tests := []struct {
		header string
		want   bool
	}{
		{"PatientName", true},
		{"  DOB  ", true},
		{"date_of_visit", false},
		{"Surname", true}, // substring containment, not word match
		{"Notes", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := s.Match(tt.header); got != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.header, got, tt.want)
		}
	}
}

func TestDefaultsCopy(t *testing.T) {
	d := Defaults()
	d[0] = "mutated"
	if got := Defaults()[0]; got != "name" {
		t.Errorf("Defaults() should return a copy, got %q", got)
	}
}
