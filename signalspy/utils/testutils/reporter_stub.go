package testutils

import "fmt"

// ReporterStub records failures instead of failing the running test.
// FailNow only marks the stub; callers must stop on their own, as they
// would after runtime.Goexit with a real *testing.T.
type ReporterStub struct {
	Errors   []string
	Fatal    bool
	cleanups []func()
}

func NewReporterStub() *ReporterStub {
	return &ReporterStub{}
}

func (r *ReporterStub) Errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ReporterStub) FailNow() {
	r.Fatal = true
}

func (r *ReporterStub) Helper() {}

func (r *ReporterStub) Cleanup(fn func()) {
	r.cleanups = append(r.cleanups, fn)
}

// RunCleanups runs registered cleanups in reverse order, like testing.T does.
func (r *ReporterStub) RunCleanups() {
	for i := len(r.cleanups) - 1; i >= 0; i-- {
		r.cleanups[i]()
	}
	r.cleanups = nil
}

func (r *ReporterStub) Failed() bool {
	return len(r.Errors) > 0 || r.Fatal
}
