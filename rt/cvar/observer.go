package cvar

// Observer is notified synchronously after a Var changes.
//
// CVarChanged runs on the writer's goroutine, inside the Set* call. It must be fast, must not
// block, and must not write to v (see ErrReentrantWrite). Reading v is fine.
type Observer interface {
	CVarChanged(v *Var)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(v *Var)

func (f ObserverFunc) CVarChanged(v *Var) { f(v) }

type observerEntry struct {
	o       Observer
	removed bool
}

// Subscription identifies a single observer registration.
//
// The zero Subscription is valid and Unsubscribe on it is a no-op.
type Subscription struct {
	v *Var
	e *observerEntry
}

// Unsubscribe removes the registration. It is idempotent.
func (s Subscription) Unsubscribe() {
	if s.v == nil {
		return
	}
	s.v.RemoveObserver(s)
}

// Active reports whether the registration is still in place.
func (s Subscription) Active() bool {
	return s.e != nil && !s.e.removed
}

// AddObserver appends o to the observer list and returns its registration token.
//
// There is no uniqueness check: adding the same observer twice registers it twice.
// A nil observer is ignored and yields the zero Subscription.
func (v *Var) AddObserver(o Observer) Subscription {
	if o == nil {
		return Subscription{}
	}
	e := &observerEntry{o: o}
	v.observers = append(v.observers, e)
	return Subscription{v: v, e: e}
}

// RemoveObserver removes the registration identified by s.
//
// Removing a registration that was already removed, or that belongs to another Var, is a no-op.
// Once RemoveObserver returns, the observer is never invoked by v again, even if v is in the
// middle of a notification pass.
func (v *Var) RemoveObserver(s Subscription) {
	if s.e == nil || s.v != v || s.e.removed {
		return
	}
	for i, e := range v.observers {
		if e == s.e {
			e.removed = true
			v.observers = append(v.observers[:i:i], v.observers[i+1:]...)
			return
		}
	}
}

// Observers returns the number of live registrations.
func (v *Var) Observers() int { return len(v.observers) }

// notify invokes every observer registered at the time of the call, in registration order.
func (v *Var) notify() {
	if len(v.observers) == 0 {
		return
	}
	pass := make([]*observerEntry, len(v.observers))
	copy(pass, v.observers)

	v.notifying = true
	defer func() { v.notifying = false }()

	for _, e := range pass {
		if e.removed {
			continue
		}
		v.invoke(e.o)
	}
}
