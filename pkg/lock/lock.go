package lock

// GlobalLock freezes one month for every employee at once. Independent of
// the per-employee approval status.
type GlobalLock struct {
	Month     string
	Locked    bool
	ToggledBy string
}
