package check

// The visitor interfaces in package gasm are void-returning (matching
// asm's own shape, and the shape a producer/writer must drive), so a
// checker that must reject a call mid-traversal has nowhere to put an
// error return value. Every checker method instead panics with a
// *CheckError, and the chain is "poisoned" from that point on (the spec's
// own wording: a failing call is never forwarded downstream, and the
// caller must not keep driving a checker past a panic). Run recovers
// exactly that panic and turns it back into a normal error, so callers
// that don't want panic/recover in their own code can write:
//
//	err := check.Run(func() { classChecker.Visit(...); ... })
func Run(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if ce, ok := r.(*CheckError); ok {
				err = ce
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}
