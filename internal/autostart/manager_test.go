package autostart

import (
	"errors"
	"testing"
)

// fakeManager is an in-memory Manager for exercising the path check logic.
type fakeManager struct {
	path        string
	registerErr error
	registers   []string
	unregisters int
}

func (f *fakeManager) IsRegistered() bool     { return f.path != "" }
func (f *fakeManager) RegisteredPath() string { return f.path }

func (f *fakeManager) Register(execPath string) error {
	if f.registerErr != nil {
		return f.registerErr
	}
	f.path = execPath
	f.registers = append(f.registers, execPath)
	return nil
}

func (f *fakeManager) Unregister() error {
	f.path = ""
	f.unregisters++
	return nil
}

func TestCheckPath(t *testing.T) {
	tests := []struct {
		name       string
		registered string
		exec       string
		wantOK     bool
	}{
		{"not registered", "", "/bin/calweek", true},
		{"exact match", "/bin/calweek", "/bin/calweek", true},
		{"cleaned paths match", "/opt//calweek/./calweek", "/opt/calweek/calweek", true},
		{"moved executable", "/old/calweek", "/new/calweek", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &fakeManager{path: tt.registered}
			ok, registered := CheckPath(m, tt.exec)
			if ok != tt.wantOK {
				t.Errorf("CheckPath ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok && registered != tt.registered {
				t.Errorf("CheckPath registered = %q, want %q", registered, tt.registered)
			}
		})
	}
}

func TestRepair(t *testing.T) {
	m := &fakeManager{path: "/old/calweek"}
	if err := Repair(m, "/new/calweek"); err != nil {
		t.Fatalf("Repair failed: %v", err)
	}
	if m.unregisters != 1 {
		t.Errorf("Repair should remove the stale entry once, removed %d times", m.unregisters)
	}
	if m.path != "/new/calweek" {
		t.Errorf("registered path = %q, want the new path", m.path)
	}
}

func TestRepairPropagatesRegisterFailure(t *testing.T) {
	wantErr := errors.New("write denied")
	m := &fakeManager{path: "/old/calweek", registerErr: wantErr}
	if err := Repair(m, "/new/calweek"); !errors.Is(err, wantErr) {
		t.Errorf("Repair error = %v, want %v", err, wantErr)
	}
}

func TestToggle(t *testing.T) {
	m := &fakeManager{}

	if err := Toggle(m, "/bin/calweek"); err != nil {
		t.Fatalf("Toggle on failed: %v", err)
	}
	if !m.IsRegistered() {
		t.Fatal("Toggle should register when no entry exists")
	}

	if err := Toggle(m, "/bin/calweek"); err != nil {
		t.Fatalf("Toggle off failed: %v", err)
	}
	if m.IsRegistered() {
		t.Fatal("Toggle should unregister an existing entry")
	}
}
