package twig

// MainComponentRef grants mutable access to a Ui's root component. The frame
// is recomputed once, when the reference is released, however many mutations
// were made through it.
//
// Go has no destructors: release the reference with defer right after
// obtaining it, or use Ui.Mutate. Until it is released, Draw keeps returning
// the previous frame.
//
//	ref := ui.MainComponent()
//	defer ref.Release()
//	ref.Get().SetNumber(3)
type MainComponentRef[E any, C Component[E]] struct {
	ui       *Ui[E, C]
	released bool
}

// MainComponent returns a reference to the root component. The caller must
// call Release on it.
func (u *Ui[E, C]) MainComponent() *MainComponentRef[E, C] {
	u.open++
	return &MainComponentRef[E, C]{ui: u}
}

// Get returns the root component. Panics after Release.
func (r *MainComponentRef[E, C]) Get() C {
	if r.released {
		panic("twig: use of released MainComponentRef")
	}
	return r.ui.root
}

// Release recomputes the frame. Only the first call has an effect.
func (r *MainComponentRef[E, C]) Release() {
	if r.released {
		return
	}
	r.released = true
	r.ui.open--
	r.ui.update()
}

// Released reports whether Release has been called.
func (r *MainComponentRef[E, C]) Released() bool {
	return r.released
}

// Mutate calls fn with the root component and recomputes the frame once
// afterwards. The frame is recomputed even if fn panics.
func (u *Ui[E, C]) Mutate(fn func(root C)) {
	ref := u.MainComponent()
	defer ref.Release()
	fn(ref.Get())
}
