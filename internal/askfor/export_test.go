package askfor

// Wake prods the worker exactly like an external state change would. Tests
// drive an injected clock, so after advancing it they wake the worker the
// same way Announce and Disconnect do.
func Wake(s *Scheduler) {
	s.wake()
}
