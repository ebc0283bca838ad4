package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Advice(ctx context.Context) error      { return f.record("advice") }
func (f *fakeExec) Quiz(ctx context.Context) error        { return f.record("quiz") }
func (f *fakeExec) Alarms(ctx context.Context) error      { return f.record("alarms") }
func (f *fakeExec) SetAlarm(ctx context.Context) error    { return f.record("setalarm") }
func (f *fakeExec) EditAlarm(ctx context.Context) error   { return f.record("editalarm") }
func (f *fakeExec) RemoveAlarm(ctx context.Context) error { return f.record("rmalarm") }
func (f *fakeExec) Profile(ctx context.Context) error     { return f.record("profile") }
func (f *fakeExec) Admin(ctx context.Context) error       { return f.record("admin") }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"advice",
		"quiz",
		"alarms",
		"setalarm",
		"editalarm",
		"rmalarm",
		"profile",
		"admin",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{
		"login", "advice", "quiz", "alarms", "setalarm",
		"editalarm", "rmalarm", "profile", "admin", "logout",
	}
	if len(exec.calls) != len(wantOrder) {
		t.Fatalf("calls: %+v", exec.calls)
	}
	for i, want := range wantOrder {
		if exec.calls[i] != want {
			t.Fatalf("call %d = %q, want %q (all: %+v)", i, exec.calls[i], want, exec.calls)
		}
	}
	if exec.loggedIn {
		t.Fatal("expected logged out after logout")
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader("register\n"))

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "register" {
		t.Fatalf("calls: %+v", exec.calls)
	}
}
